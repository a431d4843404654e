package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/playdex/game-curator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFavoriteService_Toggle(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("favoriting stores the snapshot", func(t *testing.T) {
		repo := new(MockFavoriteRepository)
		svc := NewFavoriteService(repo)

		rating := 91.5
		released := int64(1488499200)
		input := domain.FavoriteToggle{
			GameID:           1942,
			Name:             "The Legend of Zelda: Breath of the Wild",
			CoverURL:         "https://images.igdb.com/igdb/image/upload/t_cover_big/co3p2d.jpg",
			Rating:           &rating,
			FirstReleaseDate: &released,
		}

		repo.On("GetByUserAndGame", ctx, userID, int64(1942)).Return(nil, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Favorite")).Return(nil)

		favorited, err := svc.Toggle(ctx, userID, input)
		require.NoError(t, err)
		assert.True(t, favorited)

		created := repo.Calls[1].Arguments.Get(1).(*domain.Favorite)
		assert.Equal(t, userID, created.UserID)
		assert.Equal(t, input.Name, created.Name)
		assert.Equal(t, &rating, created.Rating)
		require.NotNil(t, created.FirstReleaseDate)
		assert.Equal(t, time.Unix(released, 0).UTC(), *created.FirstReleaseDate)
		assert.NotEqual(t, uuid.Nil, created.ID)

		repo.AssertExpectations(t)
	})

	t.Run("toggling an existing favorite removes it", func(t *testing.T) {
		repo := new(MockFavoriteRepository)
		svc := NewFavoriteService(repo)

		existing := &domain.Favorite{ID: uuid.New(), UserID: userID, GameID: 7}
		repo.On("GetByUserAndGame", ctx, userID, int64(7)).Return(existing, nil)
		repo.On("Delete", ctx, userID, int64(7)).Return(nil)

		favorited, err := svc.Toggle(ctx, userID, domain.FavoriteToggle{GameID: 7, Name: "Hades"})
		require.NoError(t, err)
		assert.False(t, favorited)

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		repo.AssertExpectations(t)
	})
}

func TestFavoriteService_List_NeverNil(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := new(MockFavoriteRepository)
	svc := NewFavoriteService(repo)

	repo.On("ListByUser", ctx, userID).Return(nil, nil)

	favorites, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, favorites)
	assert.Empty(t, favorites)
}
