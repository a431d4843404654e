package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/playdex/game-curator/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UsernameTaken(ctx context.Context, username string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, username, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateUsername(ctx context.Context, id uuid.UUID, username string) error {
	args := m.Called(ctx, id, username)
	return args.Error(0)
}

// MockFavoriteRepository mocks the FavoriteRepository interface
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(ctx context.Context, fav *domain.Favorite) error {
	args := m.Called(ctx, fav)
	return args.Error(0)
}

func (m *MockFavoriteRepository) GetByUserAndGame(ctx context.Context, userID uuid.UUID, gameID int64) (*domain.Favorite, error) {
	args := m.Called(ctx, userID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, userID uuid.UUID, gameID int64) error {
	args := m.Called(ctx, userID, gameID)
	return args.Error(0)
}

// MockTitleProvider mocks llm.Provider
type MockTitleProvider struct {
	mock.Mock
}

func (m *MockTitleProvider) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockTitleProvider) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockTitleProvider) RecommendTitles(ctx context.Context, prompt string, count int) []string {
	args := m.Called(ctx, prompt, count)
	return args.Get(0).([]string)
}

// MockGameResolver mocks the GameResolver interface
type MockGameResolver struct {
	mock.Mock
}

func (m *MockGameResolver) Resolve(ctx context.Context, titles []string) domain.Recommendation {
	args := m.Called(ctx, titles)
	return args.Get(0).(domain.Recommendation)
}
