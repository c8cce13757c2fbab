package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/aquarelle/artmarket/internal/core/domain"
)

// sessionKey is the fixed identifier of the single durable session slot.
const sessionKey = "user"

// SessionStore persists the authenticated-user slot in Redis. The value is
// the JSON-serialized user record; a value that fails to parse is reported as
// an error so the caller can clear the slot and continue unauthenticated.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Load reads the slot once. An absent key is (nil, nil), not an error.
func (s *SessionStore) Load(ctx context.Context) (*domain.User, error) {
	raw, err := s.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("session load: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("session load: corrupt slot: %w", err)
	}
	return &user, nil
}

func (s *SessionStore) Save(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	// No TTL: the slot lives until logout clears it.
	if err := s.client.Set(ctx, sessionKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}
