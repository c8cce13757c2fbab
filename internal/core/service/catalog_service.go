package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aquarelle/artmarket/internal/core/domain"
	"github.com/aquarelle/artmarket/internal/core/ports"
	"github.com/aquarelle/artmarket/internal/core/search"
)

// CatalogService implements artwork listing, lookup, creation, and artist
// search on top of the catalog repositories.
type CatalogService struct {
	catalog ports.CatalogRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewCatalogService(catalog ports.CatalogRepository, users ports.UserRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{catalog: catalog, users: users, logger: logger}
}

// ListArtworks retrieves the requested slice of the catalog and runs the
// search engine over it. Featured takes precedence over ArtistID when both
// are given; with neither, the full collection is the candidate set.
func (s *CatalogService) ListArtworks(ctx context.Context, input ports.ListArtworksInput) ([]domain.Artwork, error) {
	var (
		items []domain.Artwork
		err   error
	)
	switch {
	case input.Featured:
		items, err = s.catalog.ListFeaturedArtworks(ctx)
	case input.ArtistID != "":
		items, err = s.catalog.ListArtworksByArtist(ctx, input.ArtistID)
	default:
		items, err = s.catalog.ListArtworks(ctx)
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list artworks")
		return nil, err
	}

	return search.Artworks(items, input.Criteria), nil
}

// GetArtwork retrieves a single artwork; absence surfaces as
// domain.ErrArtworkNotFound, never a fault.
func (s *CatalogService) GetArtwork(ctx context.Context, id string) (*domain.Artwork, error) {
	return s.catalog.FindArtworkByID(ctx, id)
}

// CreateArtwork validates a new listing, stamps the denormalized artist name
// from the referenced artist record, and appends it to the catalog.
func (s *CatalogService) CreateArtwork(ctx context.Context, input ports.CreateArtworkInput) (*domain.Artwork, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than zero", domain.ErrValidation)
	}
	if input.ArtistID == "" {
		return nil, fmt.Errorf("%w: artist_id is required", domain.ErrValidation)
	}

	artist, err := s.users.FindUserByID(ctx, input.ArtistID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, err
	}
	if artist.Role != domain.RoleArtist {
		return nil, domain.ErrArtistNotFound
	}

	category := domain.Category(input.Category)
	if category == "" {
		category = domain.CategoryOther
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, input.Category)
	}

	availability := domain.Availability(input.Availability)
	if availability == "" {
		availability = domain.AvailabilityAvailable
	}

	artwork := &domain.Artwork{
		ArtistID:    input.ArtistID,
		ArtistName:  artist.Name,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Images:      input.Images,
		Category:    category,
		Style:       input.Style,
		Medium:      input.Medium,
		Dimensions: domain.Dimensions{
			Width:  input.Dimensions.Width,
			Height: input.Dimensions.Height,
			Unit:   dimensionUnit(input.Dimensions.Unit),
		},
		Availability: availability,
		Tags:         input.Tags,
		Featured:     input.Featured,
	}

	created, err := s.catalog.CreateArtwork(ctx, artwork)
	if err != nil {
		s.logger.Error().Err(err).Str("artist_id", input.ArtistID).Msg("failed to create artwork")
		return nil, err
	}

	s.logger.Info().
		Str("artwork_id", created.ID).
		Str("artist_id", created.ArtistID).
		Str("category", string(created.Category)).
		Msg("artwork created")

	return created, nil
}

// ListArtists returns the artist collection, filtered by the free-text query
// when one is given.
func (s *CatalogService) ListArtists(ctx context.Context, query string) ([]domain.User, error) {
	artists, err := s.users.ListArtists(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list artists")
		return nil, err
	}
	return search.Artists(artists, query), nil
}

func dimensionUnit(unit string) domain.DimensionUnit {
	if unit == string(domain.UnitInches) {
		return domain.UnitInches
	}
	return domain.UnitCm
}
