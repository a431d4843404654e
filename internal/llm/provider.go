package llm

import "context"

// Provider defines the interface for title generation backends.
//
// RecommendTitles never returns an error: any failure in the
// underlying service (transport, empty response envelope, unparseable
// output) degrades to an empty list. Callers treat an empty list as
// "no recommendations", not as a fault to handle.
type Provider interface {
	// Name returns the provider identifier
	Name() string

	// IsConfigured checks if provider has valid credentials
	IsConfigured() bool

	// RecommendTitles returns up to count game titles for a free-text
	// prompt, best match first.
	RecommendTitles(ctx context.Context, prompt string, count int) []string
}
