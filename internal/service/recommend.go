package service

import (
	"context"
	"errors"
	"strings"

	"github.com/playdex/game-curator/internal/domain"
	"github.com/playdex/game-curator/internal/llm"
	"github.com/rs/zerolog/log"
)

// ErrEmptyPrompt rejects blank prompts before any upstream call is made.
var ErrEmptyPrompt = errors.New("prompt must not be empty")

const defaultTitleCount = 4

// GameResolver turns candidate titles into enriched catalog records.
type GameResolver interface {
	Resolve(ctx context.Context, titles []string) domain.Recommendation
}

// RecommendService orchestrates the prompt-to-recommendation pipeline:
// candidate titles from the language model, then catalog resolution.
type RecommendService struct {
	provider llm.Provider
	resolver GameResolver
}

// NewRecommendService creates a new recommendation service
func NewRecommendService(provider llm.Provider, resolver GameResolver) *RecommendService {
	return &RecommendService{
		provider: provider,
		resolver: resolver,
	}
}

// Recommend generates candidate titles for the prompt and resolves
// them. count is the total number of titles requested, the main pick
// plus the similar batch; zero means the default. Upstream degradation
// yields an empty recommendation, not an error.
func (s *RecommendService) Recommend(ctx context.Context, prompt string, count int) (domain.Recommendation, error) {
	empty := domain.Recommendation{SimilarGames: []domain.GameRecord{}}

	if strings.TrimSpace(prompt) == "" {
		return empty, ErrEmptyPrompt
	}
	if count <= 0 {
		count = defaultTitleCount
	}

	titles := s.provider.RecommendTitles(ctx, prompt, count)
	if len(titles) == 0 {
		log.Warn().Str("provider", s.provider.Name()).Msg("no candidate titles generated")
		return empty, nil
	}

	return s.resolver.Resolve(ctx, titles), nil
}
