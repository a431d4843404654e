package handler

import (
	"encoding/json"
	"net/http"

	"github.com/playdex/game-curator/internal/api/middleware"
	"github.com/playdex/game-curator/internal/api/response"
	"github.com/playdex/game-curator/internal/domain"
	"github.com/playdex/game-curator/internal/service"
)

// FavoriteHandler handles favorite endpoints
type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// List returns the authenticated user's favorites, newest first
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	favorites, err := h.favoriteService.List(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "failed to list favorites")
		return
	}

	response.OK(w, favorites)
}

// Toggle flips the favorite state of a game for the authenticated user
func (h *FavoriteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input domain.FavoriteToggle
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	favorited, err := h.favoriteService.Toggle(r.Context(), userID, input)
	if err != nil {
		response.InternalError(w, "failed to toggle favorite")
		return
	}

	response.OK(w, map[string]any{
		"game_id":   input.GameID,
		"favorited": favorited,
	})
}
