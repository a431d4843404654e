package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/playdex/game-curator/internal/domain"
	"github.com/playdex/game-curator/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testJWTManager() *security.JWTManager {
	return security.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	input := domain.UserCreate{
		Email:    "player@example.com",
		Username: "player_one",
		Password: "correct horse battery",
	}

	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, testJWTManager())

		repo.On("EmailExists", ctx, input.Email).Return(false, nil)
		repo.On("UsernameTaken", ctx, input.Username, uuid.Nil).Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.Register(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, input.Email, user.Email)
		assert.Equal(t, input.Username, user.Username)
		assert.NotEqual(t, uuid.Nil, user.ID)

		// Stored hash verifies against the original password.
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)))

		repo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, testJWTManager())

		repo.On("EmailExists", ctx, input.Email).Return(true, nil)

		_, err := svc.Register(ctx, input)
		assert.ErrorIs(t, err, ErrEmailTaken)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, testJWTManager())

		repo.On("EmailExists", ctx, input.Email).Return(false, nil)
		repo.On("UsernameTaken", ctx, input.Username, uuid.Nil).Return(true, nil)

		_, err := svc.Register(ctx, input)
		assert.ErrorIs(t, err, ErrUsernameTaken)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("open sesame"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "player@example.com",
		Username:     "player_one",
		PasswordHash: string(hash),
	}

	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, testJWTManager())

		repo.On("GetByEmail", ctx, user.Email).Return(user, nil)

		pair, err := svc.Login(ctx, domain.UserLogin{Email: user.Email, Password: "open sesame"})
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.Equal(t, int64((15 * time.Minute).Seconds()), pair.ExpiresIn)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, testJWTManager())

		repo.On("GetByEmail", ctx, user.Email).Return(user, nil)

		_, err := svc.Login(ctx, domain.UserLogin{Email: user.Email, Password: "guess"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, testJWTManager())

		repo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil)

		_, err := svc.Login(ctx, domain.UserLogin{Email: "nobody@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	jwtManager := testJWTManager()

	user := &domain.User{
		ID:       uuid.New(),
		Email:    "player@example.com",
		Username: "player_one",
	}

	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, jwtManager)

		refreshToken, err := jwtManager.GenerateRefreshToken(user.ID)
		require.NoError(t, err)

		repo.On("GetByID", ctx, user.ID).Return(user, nil)

		pair, err := svc.Refresh(ctx, refreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, jwtManager)

		_, err := svc.Refresh(ctx, "not-a-token")
		assert.Error(t, err)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestAuthService_UpdateUsername(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{
		ID:       uuid.New(),
		Email:    "player@example.com",
		Username: "old_name",
	}

	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, testJWTManager())

		repo.On("GetByID", ctx, user.ID).Return(user, nil)
		repo.On("UsernameTaken", ctx, "new_name", user.ID).Return(false, nil)
		repo.On("UpdateUsername", ctx, user.ID, "new_name").Return(nil)

		updated, err := svc.UpdateUsername(ctx, user.ID, "new_name")
		require.NoError(t, err)
		assert.Equal(t, "new_name", updated.Username)
		repo.AssertExpectations(t)
	})

	t.Run("name held by another account", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, testJWTManager())

		repo.On("GetByID", ctx, user.ID).Return(user, nil)
		repo.On("UsernameTaken", ctx, "taken_name", user.ID).Return(true, nil)

		_, err := svc.UpdateUsername(ctx, user.ID, "taken_name")
		assert.ErrorIs(t, err, ErrUsernameTaken)
		repo.AssertNotCalled(t, "UpdateUsername", mock.Anything, mock.Anything, mock.Anything)
	})
}
