package domain

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a game a user has saved. One row per (user, game).
type Favorite struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"-"`
	GameID           int64      `json:"game_id"`
	Name             string     `json:"name"`
	CoverURL         string     `json:"cover_url,omitempty"`
	Summary          string     `json:"summary,omitempty"`
	Rating           *float64   `json:"rating,omitempty"`
	FirstReleaseDate *time.Time `json:"first_release_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// FavoriteToggle carries the game snapshot stored when favoriting.
type FavoriteToggle struct {
	GameID           int64    `json:"game_id" validate:"required,gt=0"`
	Name             string   `json:"name" validate:"required,max=255"`
	CoverURL         string   `json:"cover_url" validate:"omitempty,url,max=500"`
	Summary          string   `json:"summary"`
	Rating           *float64 `json:"rating" validate:"omitempty,gte=0,lte=100"`
	FirstReleaseDate *int64   `json:"first_release_date"`
}
