package repository

import (
	"context"
	"time"

	"github.com/property-admin/internal/domain"
)

// CacheRepository - byte cache plus the two typed key families the service
// uses: collection snapshots (warm start) and session tokens.
type CacheRepository interface {
	// Get returns the cached value or (nil, nil) on a miss
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with a TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key
	Delete(ctx context.Context, key string) error

	// Exists reports whether a key is present
	Exists(ctx context.Context, key string) (bool, error)

	// GetSnapshot returns the cached JSON snapshot of a collection
	GetSnapshot(ctx context.Context, collection string) ([]byte, error)

	// SetSnapshot stores the JSON snapshot of a collection
	SetSnapshot(ctx context.Context, collection string, data []byte, ttl time.Duration) error

	// GetSession returns the identity bound to a session token
	GetSession(ctx context.Context, token string) (*domain.User, error)

	// SetSession binds an identity to a session token
	SetSession(ctx context.Context, token string, user *domain.User, ttl time.Duration) error

	// DeleteSession invalidates a session token
	DeleteSession(ctx context.Context, token string) error
}
