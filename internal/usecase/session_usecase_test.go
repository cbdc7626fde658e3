package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/property-admin/internal/domain"
	"github.com/property-admin/internal/domain/repository"
	"github.com/property-admin/internal/store"
	"github.com/property-admin/internal/usecase"
	"github.com/property-admin/internal/usecase/dto"
)

func TestSessionUseCase_Login(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("success records identity and caches the session", func(t *testing.T) {
		authRepo := &MockAuthRepository{}
		cacheRepo := &MockCacheRepository{}
		sessions := store.NewSessionStore()

		result := &repository.AuthResult{
			Token: "tok-1",
			User:  domain.User{ID: "u1", Email: "admin@example.com"},
		}
		authRepo.On("Login", ctx, "admin@example.com", "secret").Return(result, nil)
		cacheRepo.On("SetSession", ctx, "tok-1", &result.User, time.Hour).Return(nil)

		uc := usecase.NewSessionUseCase(authRepo, cacheRepo, sessions, time.Hour, logger)

		resp, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@example.com", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "tok-1", resp.Token)
		assert.Equal(t, "u1", resp.User.ID)

		user, token := sessions.Identity()
		require.NotNil(t, user)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "tok-1", token)
		assert.False(t, sessions.Loading())
		assert.Empty(t, sessions.Error())
		cacheRepo.AssertExpectations(t)
	})

	t.Run("failure records the error and leaves no identity", func(t *testing.T) {
		authRepo := &MockAuthRepository{}
		sessions := store.NewSessionStore()

		authRepo.On("Login", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("bad credentials"))

		uc := usecase.NewSessionUseCase(authRepo, &MockCacheRepository{}, sessions, time.Hour, logger)

		_, err := uc.Login(ctx, dto.LoginRequest{Email: "x@example.com", Password: "nope"})
		assert.Error(t, err)

		user, _ := sessions.Identity()
		assert.Nil(t, user)
		assert.False(t, sessions.Loading())
		assert.NotEmpty(t, sessions.Error())
	})

	t.Run("session cache failure still logs in", func(t *testing.T) {
		authRepo := &MockAuthRepository{}
		cacheRepo := &MockCacheRepository{}
		sessions := store.NewSessionStore()

		result := &repository.AuthResult{Token: "tok-1", User: domain.User{ID: "u1"}}
		authRepo.On("Login", ctx, mock.Anything, mock.Anything).Return(result, nil)
		cacheRepo.On("SetSession", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

		uc := usecase.NewSessionUseCase(authRepo, cacheRepo, sessions, time.Hour, logger)

		resp, err := uc.Login(ctx, dto.LoginRequest{Email: "a@b.co", Password: "p"})
		require.NoError(t, err)
		assert.Equal(t, "tok-1", resp.Token)
	})
}

func TestSessionUseCase_Register(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("password mismatch is rejected before any remote call", func(t *testing.T) {
		authRepo := &MockAuthRepository{}
		sessions := store.NewSessionStore()

		uc := usecase.NewSessionUseCase(authRepo, &MockCacheRepository{}, sessions, time.Hour, logger)

		_, err := uc.Register(ctx, dto.RegisterRequest{
			Email:           "new@example.com",
			Password:        "password1",
			ConfirmPassword: "password2",
		})
		assert.Error(t, err)
		authRepo.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
		assert.Empty(t, sessions.Error())
		assert.False(t, sessions.Loading())
	})

	t.Run("success creates the account and logs in", func(t *testing.T) {
		authRepo := &MockAuthRepository{}
		cacheRepo := &MockCacheRepository{}
		sessions := store.NewSessionStore()

		result := &repository.AuthResult{
			Token: "tok-new",
			User:  domain.User{ID: "u2", Email: "new@example.com", Role: domain.RoleManager},
		}
		authRepo.On("Register", ctx, mock.MatchedBy(func(u domain.User) bool {
			return u.Email == "new@example.com" && u.Role == domain.RoleManager
		}), "password1").Return(result, nil)
		cacheRepo.On("SetSession", ctx, "tok-new", &result.User, time.Hour).Return(nil)

		uc := usecase.NewSessionUseCase(authRepo, cacheRepo, sessions, time.Hour, logger)

		resp, err := uc.Register(ctx, dto.RegisterRequest{
			Email:           "new@example.com",
			Password:        "password1",
			ConfirmPassword: "password1",
			FirstName:       "Ada",
			LastName:        "Lovelace",
		})
		require.NoError(t, err)
		assert.Equal(t, "tok-new", resp.Token)

		user, token := sessions.Identity()
		require.NotNil(t, user)
		assert.Equal(t, "u2", user.ID)
		assert.Equal(t, "tok-new", token)
	})
}

func TestSessionUseCase_Logout(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("drops the cached session and clears the identity", func(t *testing.T) {
		cacheRepo := &MockCacheRepository{}
		sessions := store.NewSessionStore()
		sessions.SetIdentity(&domain.User{ID: "u1"}, "tok-1")

		cacheRepo.On("DeleteSession", ctx, "tok-1").Return(nil)

		uc := usecase.NewSessionUseCase(&MockAuthRepository{}, cacheRepo, sessions, time.Hour, logger)

		require.NoError(t, uc.Logout(ctx, "tok-1"))

		user, _ := sessions.Identity()
		assert.Nil(t, user)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("logout without a token only clears local state", func(t *testing.T) {
		cacheRepo := &MockCacheRepository{}
		sessions := store.NewSessionStore()
		sessions.SetIdentity(&domain.User{ID: "u1"}, "tok-1")

		uc := usecase.NewSessionUseCase(&MockAuthRepository{}, cacheRepo, sessions, time.Hour, logger)

		require.NoError(t, uc.Logout(ctx, ""))

		user, _ := sessions.Identity()
		assert.Nil(t, user)
		cacheRepo.AssertNotCalled(t, "DeleteSession", mock.Anything, mock.Anything)
	})
}

func TestSessionUseCase_CurrentIdentity(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("in-process identity wins", func(t *testing.T) {
		cacheRepo := &MockCacheRepository{}
		sessions := store.NewSessionStore()
		sessions.SetIdentity(&domain.User{ID: "u1"}, "tok-1")

		uc := usecase.NewSessionUseCase(&MockAuthRepository{}, cacheRepo, sessions, time.Hour, logger)

		user, err := uc.CurrentIdentity(ctx, "tok-1")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		cacheRepo.AssertNotCalled(t, "GetSession", mock.Anything, mock.Anything)
	})

	t.Run("falls back to the shared cache for other tokens", func(t *testing.T) {
		cacheRepo := &MockCacheRepository{}
		sessions := store.NewSessionStore()

		cacheRepo.On("GetSession", ctx, "tok-2").Return(&domain.User{ID: "u2"}, nil)

		uc := usecase.NewSessionUseCase(&MockAuthRepository{}, cacheRepo, sessions, time.Hour, logger)

		user, err := uc.CurrentIdentity(ctx, "tok-2")
		require.NoError(t, err)
		assert.Equal(t, "u2", user.ID)
	})

	t.Run("unknown token", func(t *testing.T) {
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("GetSession", ctx, "tok-x").Return(nil, nil)

		uc := usecase.NewSessionUseCase(&MockAuthRepository{}, cacheRepo, store.NewSessionStore(), time.Hour, logger)

		_, err := uc.CurrentIdentity(ctx, "tok-x")
		assert.Error(t, err)
	})
}
