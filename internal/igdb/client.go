// Package igdb resolves game titles against the IGDB catalog API.
package igdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/playdex/game-curator/internal/ratelimit"
)

const (
	defaultBaseURL       = "https://api.igdb.com/v4"
	defaultTokenURL      = "https://id.twitch.tv/oauth2/token"
	defaultRatePerSecond = 4 // IGDB allows 4 requests per second
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is an IGDB API client. All requests share one rate limiter
// and one cached bearer credential.
type Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	tokenURL     string
	httpClient   HTTPDoer
	rateLimiter  *ratelimit.Limiter
	tokens       *tokenManager
}

// NewClient creates a new IGDB API client.
func NewClient(clientID, clientSecret string, opts ...Option) *Client {
	client := &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      defaultBaseURL,
		tokenURL:     defaultTokenURL,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		rateLimiter:  ratelimit.New("IGDB", defaultRatePerSecond),
	}

	for _, opt := range opts {
		opt(client)
	}

	client.tokens = newTokenManager(clientID, clientSecret, client.tokenURL, client.httpClient)

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithBaseURL sets a custom base URL for the IGDB API.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithTokenURL sets a custom token endpoint.
func WithTokenURL(tokenURL string) Option {
	return func(client *Client) {
		if tokenURL != "" {
			client.tokenURL = tokenURL
		}
	}
}

// WithRateLimiter sets a custom rate limiter for the client.
func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(client *Client) {
		if limiter != nil {
			client.rateLimiter = limiter
		}
	}
}

// Query posts an APIcalypse query body to an IGDB endpoint and decodes
// the JSON list response into out.
func (c *Client) Query(ctx context.Context, endpoint, body string, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("igdb auth: %w", err)
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build igdb request: %w", err)
	}
	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("igdb %s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("igdb %s returned status %d: %s", endpoint, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("igdb %s decode: %w", endpoint, err)
	}

	return nil
}
