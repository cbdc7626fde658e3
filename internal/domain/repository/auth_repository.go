package repository

import (
	"context"

	"github.com/property-admin/internal/domain"
)

// AuthResult is the remote authentication service's success payload.
type AuthResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// AuthRepository - client contract for the remote authentication service.
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, user domain.User, password string) (*AuthResult, error)
}
