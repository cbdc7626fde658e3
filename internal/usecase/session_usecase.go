package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/property-admin/internal/domain"
	"github.com/property-admin/internal/domain/repository"
	"github.com/property-admin/internal/pkg/errors"
	"github.com/property-admin/internal/store"
	"github.com/property-admin/internal/usecase/dto"
)

// SessionUseCase proxies login/register/logout to the remote authentication
// service and tracks loading/error state in the session store. Successful
// logins are cached token->identity in redis so other instances can resolve
// the session.
type SessionUseCase struct {
	authRepo   repository.AuthRepository
	cacheRepo  repository.CacheRepository
	sessions   *store.SessionStore
	sessionTTL time.Duration
	logger     *zap.Logger
}

// NewSessionUseCase - creation of a new SessionUseCase.
func NewSessionUseCase(
	authRepo repository.AuthRepository,
	cacheRepo repository.CacheRepository,
	sessions *store.SessionStore,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *SessionUseCase {
	return &SessionUseCase{
		authRepo:   authRepo,
		cacheRepo:  cacheRepo,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Login exchanges credentials with the auth service and records the identity.
func (uc *SessionUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	uc.sessions.SetLoading(true)
	defer uc.sessions.SetLoading(false)

	result, err := uc.authRepo.Login(ctx, req.Email, req.Password)
	if err != nil {
		uc.logger.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
		uc.sessions.SetError(err.Error())
		return nil, errors.ErrInvalidCredentials
	}

	uc.sessions.SetIdentity(&result.User, result.Token)

	if err := uc.cacheRepo.SetSession(ctx, result.Token, &result.User, uc.sessionTTL); err != nil {
		// Session still works in-process; only cross-instance lookup is lost.
		uc.logger.Error("Failed to cache session", zap.Error(err))
	}

	return &dto.AuthResponse{Token: result.Token, User: result.User}, nil
}

// Register validates the payload, creates the account remotely and logs the
// identity in. A mismatched confirmation is rejected synchronously without
// touching any store.
func (uc *SessionUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, errors.ErrPasswordMismatch
	}

	uc.sessions.SetLoading(true)
	defer uc.sessions.SetLoading(false)

	user := domain.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      domain.RoleManager,
		Phone:     req.Phone,
	}

	result, err := uc.authRepo.Register(ctx, user, req.Password)
	if err != nil {
		uc.logger.Warn("Registration failed", zap.String("email", req.Email), zap.Error(err))
		uc.sessions.SetError(err.Error())
		return nil, errors.ErrUpstreamUnavailable
	}

	uc.sessions.SetIdentity(&result.User, result.Token)

	if err := uc.cacheRepo.SetSession(ctx, result.Token, &result.User, uc.sessionTTL); err != nil {
		uc.logger.Error("Failed to cache session", zap.Error(err))
	}

	return &dto.AuthResponse{Token: result.Token, User: result.User}, nil
}

// Logout drops the cached session and clears the identity.
func (uc *SessionUseCase) Logout(ctx context.Context, token string) error {
	if token != "" {
		if err := uc.cacheRepo.DeleteSession(ctx, token); err != nil {
			uc.logger.Error("Failed to drop cached session", zap.Error(err))
		}
	}

	uc.sessions.Clear()
	return nil
}

// CurrentIdentity resolves the identity for a token: the in-process session
// first, the shared cache second.
func (uc *SessionUseCase) CurrentIdentity(ctx context.Context, token string) (*domain.User, error) {
	if user, current := uc.sessions.Identity(); user != nil && current == token {
		return user, nil
	}

	user, err := uc.cacheRepo.GetSession(ctx, token)
	if err != nil {
		uc.logger.Error("Session lookup failed", zap.Error(err))
		return nil, errors.ErrCacheError
	}
	if user == nil {
		return nil, errors.ErrSessionNotFound
	}
	return user, nil
}
