package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/playdex/game-curator/internal/domain"
)

// FavoriteRepository handles favorite data access
type FavoriteRepository struct {
	db *DB
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create inserts a favorite. The (user_id, game_id) pair is unique;
// a duplicate insert fails at the database level.
func (r *FavoriteRepository) Create(ctx context.Context, fav *domain.Favorite) error {
	query := `
		INSERT INTO favorites (id, user_id, game_id, name, cover_url, summary, rating, first_release_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		fav.ID,
		fav.UserID,
		fav.GameID,
		fav.Name,
		fav.CoverURL,
		fav.Summary,
		fav.Rating,
		fav.FirstReleaseDate,
		fav.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create favorite: %w", err)
	}

	return nil
}

// GetByUserAndGame retrieves a user's favorite for a specific game
func (r *FavoriteRepository) GetByUserAndGame(ctx context.Context, userID uuid.UUID, gameID int64) (*domain.Favorite, error) {
	query := `
		SELECT id, user_id, game_id, name, cover_url, summary, rating, first_release_date, created_at
		FROM favorites
		WHERE user_id = $1 AND game_id = $2
	`

	var fav domain.Favorite
	err := r.db.Pool.QueryRow(ctx, query, userID, gameID).Scan(
		&fav.ID,
		&fav.UserID,
		&fav.GameID,
		&fav.Name,
		&fav.CoverURL,
		&fav.Summary,
		&fav.Rating,
		&fav.FirstReleaseDate,
		&fav.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get favorite: %w", err)
	}

	return &fav, nil
}

// ListByUser retrieves all favorites for a user, newest first
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Favorite, error) {
	query := `
		SELECT id, user_id, game_id, name, cover_url, summary, rating, first_release_date, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var favorites []domain.Favorite
	for rows.Next() {
		var fav domain.Favorite
		if err := rows.Scan(
			&fav.ID,
			&fav.UserID,
			&fav.GameID,
			&fav.Name,
			&fav.CoverURL,
			&fav.Summary,
			&fav.Rating,
			&fav.FirstReleaseDate,
			&fav.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, fav)
	}

	return favorites, nil
}

// Delete removes a user's favorite for a game
func (r *FavoriteRepository) Delete(ctx context.Context, userID uuid.UUID, gameID int64) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND game_id = $2`

	_, err := r.db.Pool.Exec(ctx, query, userID, gameID)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	return nil
}
