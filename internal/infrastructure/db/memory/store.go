// Package memory provides the in-memory catalog store. It is the default
// backing store for development and tests; the mongo package offers the same
// contract over a real database.
package memory

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/aquarelle/artmarket/internal/core/domain"
)

// Store holds the user and artwork collections in insertion order. Each
// mutating operation is atomic with respect to its own read-append sequence;
// returned records are clones, so callers never alias internal state.
type Store struct {
	mu       sync.Mutex
	users    []domain.User
	artworks []domain.Artwork
}

func NewStore() *Store {
	return &Store{}
}

// --- Artwork methods ---

func (s *Store) ListArtworks(_ context.Context) ([]domain.Artwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneArtworks(s.artworks), nil
}

func (s *Store) ListArtworksByArtist(_ context.Context, artistID string) ([]domain.Artwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Artwork
	for _, a := range s.artworks {
		if a.ArtistID == artistID {
			out = append(out, a)
		}
	}
	return cloneArtworks(out), nil
}

func (s *Store) ListFeaturedArtworks(_ context.Context) ([]domain.Artwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Artwork
	for _, a := range s.artworks {
		if a.Featured {
			out = append(out, a)
		}
	}
	return cloneArtworks(out), nil
}

func (s *Store) FindArtworkByID(_ context.Context, id string) (*domain.Artwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.artworks {
		if a.ID == id {
			clone := a
			return &clone, nil
		}
	}
	return nil, domain.ErrArtworkNotFound
}

// CreateArtwork assigns a fresh ID and timestamp and appends the record.
func (s *Store) CreateArtwork(_ context.Context, artwork *domain.Artwork) (*domain.Artwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *artwork
	stored.ID = newID("artwork")
	stored.CreatedAt = time.Now().UTC()
	s.artworks = append(s.artworks, stored)

	clone := stored
	return &clone, nil
}

// --- User methods ---

func (s *Store) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *Store) FindUserByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *Store) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *user
	stored.ID = newID("user")
	stored.CreatedAt = time.Now().UTC()
	s.users = append(s.users, stored)

	clone := stored
	return &clone, nil
}

func (s *Store) ListArtists(_ context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.User
	for _, u := range s.users {
		if u.Role == domain.RoleArtist {
			out = append(out, u)
		}
	}
	return append([]domain.User{}, out...), nil
}

func cloneArtworks(items []domain.Artwork) []domain.Artwork {
	return append([]domain.Artwork{}, items...)
}

// newID returns a prefixed random identifier, e.g. "artwork_7A8B9C2D1E2F3A4B".
func newID(prefix string) string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%s_%016X", prefix, time.Now().UnixNano())
	}
	return fmt.Sprintf("%s_%X", prefix, b)
}
