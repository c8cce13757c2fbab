package memory

import (
	"context"
	"sync"

	"github.com/aquarelle/artmarket/internal/core/domain"
)

// SessionStore keeps the durable session slot in process memory. It is the
// store used when no Redis is configured; the session then does not survive a
// restart, which is acceptable for development and tests.
type SessionStore struct {
	mu   sync.Mutex
	user *domain.User
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Load(_ context.Context) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, nil
	}
	clone := *s.user
	return &clone, nil
}

func (s *SessionStore) Save(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *user
	s.user = &clone
	return nil
}

func (s *SessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}
