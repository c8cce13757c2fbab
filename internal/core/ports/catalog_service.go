package ports

import (
	"context"

	"github.com/aquarelle/artmarket/internal/core/domain"
	"github.com/aquarelle/artmarket/internal/core/search"
)

// ListArtworksInput carries the optional listing parameters.
// Featured takes precedence over ArtistID when both are set.
type ListArtworksInput struct {
	Featured bool
	ArtistID string
	Criteria search.Criteria
}

// DimensionsInput holds the physical size of a new listing.
type DimensionsInput struct {
	Width  float64
	Height float64
	Unit   string
}

// CreateArtworkInput carries all data needed to publish a new listing.
// Title, Price, and ArtistID are required; the rest is optional detail.
type CreateArtworkInput struct {
	ArtistID     string
	Title        string
	Description  string
	Price        float64
	Images       []string
	Category     string
	Style        string
	Medium       string
	Dimensions   DimensionsInput
	Availability string
	Tags         []string
	Featured     bool
}

// CatalogService defines the use-case operations over the artwork catalog.
type CatalogService interface {
	// ListArtworks retrieves the requested slice of the catalog and applies
	// the search criteria to it.
	ListArtworks(ctx context.Context, input ListArtworksInput) ([]domain.Artwork, error)
	GetArtwork(ctx context.Context, id string) (*domain.Artwork, error)
	CreateArtwork(ctx context.Context, input CreateArtworkInput) (*domain.Artwork, error)
	// ListArtists returns the artist collection, filtered by the free-text
	// query when one is given. No pagination.
	ListArtists(ctx context.Context, query string) ([]domain.User, error)
}
