package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/playdex/game-curator/internal/domain"
)

// FavoriteRepository is the favorite persistence surface.
type FavoriteRepository interface {
	Create(ctx context.Context, fav *domain.Favorite) error
	GetByUserAndGame(ctx context.Context, userID uuid.UUID, gameID int64) (*domain.Favorite, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Favorite, error)
	Delete(ctx context.Context, userID uuid.UUID, gameID int64) error
}

// FavoriteService handles favorite operations
type FavoriteService struct {
	favoriteRepo FavoriteRepository
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(favoriteRepo FavoriteRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo}
}

// Toggle flips the favorite state for a game. Favoriting stores the
// snapshot from the request; unfavoriting ignores it. Returns whether
// the game is favorited after the call.
func (s *FavoriteService) Toggle(ctx context.Context, userID uuid.UUID, input domain.FavoriteToggle) (bool, error) {
	existing, err := s.favoriteRepo.GetByUserAndGame(ctx, userID, input.GameID)
	if err != nil {
		return false, fmt.Errorf("failed to look up favorite: %w", err)
	}

	if existing != nil {
		if err := s.favoriteRepo.Delete(ctx, userID, input.GameID); err != nil {
			return false, fmt.Errorf("failed to remove favorite: %w", err)
		}
		return false, nil
	}

	fav := &domain.Favorite{
		ID:        uuid.New(),
		UserID:    userID,
		GameID:    input.GameID,
		Name:      input.Name,
		CoverURL:  input.CoverURL,
		Summary:   input.Summary,
		Rating:    input.Rating,
		CreatedAt: time.Now(),
	}
	if input.FirstReleaseDate != nil {
		released := time.Unix(*input.FirstReleaseDate, 0).UTC()
		fav.FirstReleaseDate = &released
	}

	if err := s.favoriteRepo.Create(ctx, fav); err != nil {
		return false, fmt.Errorf("failed to save favorite: %w", err)
	}
	return true, nil
}

// List returns a user's favorites, newest first. Never nil.
func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]domain.Favorite, error) {
	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []domain.Favorite{}
	}
	return favorites, nil
}
