package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/playdex/game-curator/internal/config"
	"github.com/playdex/game-curator/internal/llm"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-2.0-flash-exp"

// Provider generates game title recommendations via the Gemini API.
type Provider struct {
	apiKey     string
	model      string
	clientOpts []option.ClientOption
}

// NewProvider creates a Gemini-backed provider. Extra client options
// (endpoint, transport) let tests point it at a stub server.
func NewProvider(cfg config.GeminiConfig, opts ...option.ClientOption) *Provider {
	return &Provider{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		clientOpts: opts,
	}
}

func (p *Provider) Name() string {
	return "gemini"
}

func (p *Provider) DefaultModel() string {
	if p.model != "" {
		return p.model
	}
	return defaultModel
}

func (p *Provider) IsConfigured() bool {
	return p.apiKey != ""
}

// RecommendTitles asks Gemini for count game titles matching the
// prompt, best match first. Every failure mode degrades to an empty
// list; nothing propagates to the caller.
func (p *Provider) RecommendTitles(ctx context.Context, prompt string, count int) []string {
	if !p.IsConfigured() {
		log.Warn().Msg("gemini provider is not configured (missing API key)")
		return []string{}
	}

	opts := append([]option.ClientOption{option.WithAPIKey(p.apiKey)}, p.clientOpts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		log.Error().Err(err).Msg("failed to create gemini client")
		return []string{}
	}
	defer client.Close()

	model := client.GenerativeModel(p.DefaultModel())
	var temperature float32 = 0.7
	model.Temperature = &temperature
	model.SetMaxOutputTokens(2048)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction(count))},
	}
	// Ground generation with web search so titles are real and current
	model.Tools = []*genai.Tool{
		{GoogleSearchRetrieval: &genai.GoogleSearchRetrieval{}},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("gemini generation error")
		return []string{}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("no valid candidates in gemini response")
		return []string{}
	}

	var output string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			output += string(text)
		}
	}

	titles := llm.ExtractTitles(output, count)
	if titles == nil {
		log.Warn().Str("raw", output).Msg("failed to parse titles from gemini response")
		return []string{}
	}

	return titles
}

func systemInstruction(count int) string {
	return fmt.Sprintf(`You are a video game recommendation expert. When given a description or request,
recommend exactly %d video games that match the criteria.

The FIRST game should be the BEST match for the user's request.
The remaining %d games should be SIMILAR to the first game but with interesting variations.

ONLY return the exact titles of the games. DO NOT include any other information.
Your response should be ONLY a valid JSON array of strings with JUST the game names.

Example response format:
["Game Title 1", "Game Title 2", "Game Title 3", "Game Title 4"]

DO NOT include any explanation, description, or additional text in your response.
IMPORTANT: Make sure to return ONLY valid complete JSON array of strings.`, count, count-1)
}
