package gemini

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/playdex/game-curator/internal/config"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/option"
)

func stubProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewProvider(
		config.GeminiConfig{APIKey: "test-key"},
		option.WithEndpoint(srv.URL),
		option.WithHTTPClient(srv.Client()),
	)
}

func TestRecommendTitles_MissingKeyReturnsEmpty(t *testing.T) {
	p := NewProvider(config.GeminiConfig{})

	titles := p.RecommendTitles(context.Background(), "anything", 4)

	assert.NotNil(t, titles)
	assert.Empty(t, titles)
}

func TestRecommendTitles_Success(t *testing.T) {
	p := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"candidates": [{
				"content": {
					"role": "model",
					"parts": [{"text": "[\"Hades\", \"Dead Cells\"]"}]
				}
			}]
		}`)
	})

	titles := p.RecommendTitles(context.Background(), "fast roguelikes", 4)

	assert.Equal(t, []string{"Hades", "Dead Cells"}, titles)
}

func TestRecommendTitles_TransportFaultReturnsEmpty(t *testing.T) {
	p := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"backend unavailable"}}`, http.StatusInternalServerError)
	})

	titles := p.RecommendTitles(context.Background(), "anything", 4)

	assert.NotNil(t, titles)
	assert.Empty(t, titles)
}

func TestRecommendTitles_NoCandidatesReturnsEmpty(t *testing.T) {
	p := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{}`)
	})

	titles := p.RecommendTitles(context.Background(), "anything", 4)

	assert.NotNil(t, titles)
	assert.Empty(t, titles)
}

func TestRecommendTitles_UnparseableOutputReturnsEmpty(t *testing.T) {
	p := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"candidates": [{
				"content": {
					"role": "model",
					"parts": [{"text": "I recommend Hades, a fine roguelike."}]
				}
			}]
		}`)
	})

	titles := p.RecommendTitles(context.Background(), "anything", 4)

	assert.NotNil(t, titles)
	assert.Empty(t, titles)
}
