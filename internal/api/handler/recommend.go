package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/playdex/game-curator/internal/api/response"
	"github.com/playdex/game-curator/internal/domain"
	"github.com/playdex/game-curator/internal/service"
)

// Recommender is the recommendation surface the handler depends on.
type Recommender interface {
	Recommend(ctx context.Context, prompt string, count int) (domain.Recommendation, error)
}

// RecommendHandler handles recommendation endpoints
type RecommendHandler struct {
	recommendService Recommender
}

// NewRecommendHandler creates a new recommendation handler
func NewRecommendHandler(recommendService Recommender) *RecommendHandler {
	return &RecommendHandler{recommendService: recommendService}
}

// Recommend turns a free-text prompt into an enriched game list
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var input domain.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	rec, err := h.recommendService.Recommend(r.Context(), input.Prompt, input.Count)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPrompt) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "failed to generate recommendations")
		return
	}

	response.OK(w, rec)
}
