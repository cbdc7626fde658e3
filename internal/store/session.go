package store

import (
	"sync"

	"github.com/property-admin/internal/domain"
)

// SessionStore holds the authenticated identity plus the loading/error state
// the UI reads during login/register flows. It is entirely independent of
// the entity Store and shares no data with it.
type SessionStore struct {
	mu       sync.RWMutex
	identity *domain.User
	token    string
	loading  bool
	lastErr  string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// SetLoading flips the in-flight flag for an authentication call.
func (s *SessionStore) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

func (s *SessionStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SetIdentity records a successful authentication and clears any prior error.
func (s *SessionStore) SetIdentity(user *domain.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = user
	s.token = token
	s.lastErr = ""
}

// Identity returns the current identity and its token; identity is nil when
// unauthenticated.
func (s *SessionStore) Identity() (*domain.User, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity, s.token
}

// SetError records the last authentication failure for the UI.
func (s *SessionStore) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = msg
}

func (s *SessionStore) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Clear drops the identity and error state (logout).
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.token = ""
	s.lastErr = ""
}
