package service

import (
	"context"
	"testing"

	"cycleclub-backend/internal/domain"
	"cycleclub-backend/internal/repository/postgres"
	"cycleclub-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-test-secret-test-secret!"

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret)

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("GetByEmail", ctx, "new@example.com").Return(nil, postgres.ErrUserNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		svc := NewAuthService(userRepo, tokens, nil)

		user, access, refresh, err := svc.Signup(ctx, "new@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		userRepo.AssertExpectations(t)
	})

	t.Run("EmailTaken", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("GetByEmail", ctx, "taken@example.com").
			Return(&domain.User{ID: "u1", Email: "taken@example.com"}, nil)

		svc := NewAuthService(userRepo, tokens, nil)

		_, _, _, err := svc.Signup(ctx, "taken@example.com", "secret123")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		svc := NewAuthService(new(mockUserRepo), tokens, nil)

		_, _, _, err := svc.Signup(ctx, "new@example.com", "123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{ID: "u1", Email: "asha@example.com", PasswordHash: string(hash)}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("GetByEmail", ctx, "asha@example.com").Return(stored, nil)

		svc := NewAuthService(userRepo, tokens, nil)

		user, access, refresh, err := svc.Login(ctx, "asha@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("GetByEmail", ctx, "asha@example.com").Return(stored, nil)

		svc := NewAuthService(userRepo, tokens, nil)

		_, _, _, err := svc.Login(ctx, "asha@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, postgres.ErrUserNotFound)

		svc := NewAuthService(userRepo, tokens, nil)

		_, _, _, err := svc.Login(ctx, "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret)
	stored := &domain.User{ID: "u1", Email: "asha@example.com"}

	t.Run("Success", func(t *testing.T) {
		refresh, err := tokens.GenerateRefreshToken("u1", "asha@example.com")
		require.NoError(t, err)

		userRepo := new(mockUserRepo)
		userRepo.On("GetByID", ctx, "u1").Return(stored, nil)

		svc := NewAuthService(userRepo, tokens, nil)

		access, newRefresh, err := svc.RefreshToken(ctx, refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("AccessTokenRejected", func(t *testing.T) {
		access, err := tokens.GenerateAccessToken("u1", "asha@example.com")
		require.NoError(t, err)

		svc := NewAuthService(new(mockUserRepo), tokens, nil)

		_, _, err = svc.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})

	t.Run("Garbage", func(t *testing.T) {
		svc := NewAuthService(new(mockUserRepo), tokens, nil)

		_, _, err := svc.RefreshToken(ctx, "not-a-token")
		assert.Error(t, err)
	})
}

func TestAuthService_IsAdministrator(t *testing.T) {
	svc := NewAuthService(new(mockUserRepo), security.NewTokenManager(testSecret), []string{"Admin@Example.com", " second@example.com "})

	assert.True(t, svc.IsAdministrator("admin@example.com"))
	assert.True(t, svc.IsAdministrator("ADMIN@EXAMPLE.COM"))
	assert.True(t, svc.IsAdministrator("second@example.com"))
	assert.False(t, svc.IsAdministrator("rider@example.com"))
	assert.False(t, svc.IsAdministrator(""))
}
