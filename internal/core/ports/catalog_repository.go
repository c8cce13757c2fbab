package ports

import (
	"context"

	"github.com/aquarelle/artmarket/internal/core/domain"
)

// CatalogRepository defines persistence operations for artworks.
//
// Listing methods return artworks in insertion order. Empty results are
// returned as empty slices, never as errors; only a missing individual record
// maps to domain.ErrArtworkNotFound.
type CatalogRepository interface {
	ListArtworks(ctx context.Context) ([]domain.Artwork, error)
	ListArtworksByArtist(ctx context.Context, artistID string) ([]domain.Artwork, error)
	ListFeaturedArtworks(ctx context.Context) ([]domain.Artwork, error)
	FindArtworkByID(ctx context.Context, id string) (*domain.Artwork, error)
	// CreateArtwork assigns a fresh unique ID and creation timestamp, appends
	// the record, and returns the stored artwork. It never overwrites.
	CreateArtwork(ctx context.Context, artwork *domain.Artwork) (*domain.Artwork, error)
}

// UserRepository defines persistence operations for marketplace accounts.
type UserRepository interface {
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id string) (*domain.User, error)
	// CreateUser assigns a fresh ID and creation timestamp and appends the
	// record. Email uniqueness is the caller's responsibility.
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	// ListArtists returns every account with the artist role.
	ListArtists(ctx context.Context) ([]domain.User, error)
}
