package handler

import "github.com/aquarelle/artmarket/internal/core/domain"

// --- Request / Response types ---

type dimensionsRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit" validate:"omitempty,oneof=cm inches"`
}

type createArtworkRequest struct {
	ArtistID     string            `json:"artist_id"    validate:"required"`
	Title        string            `json:"title"        validate:"required"`
	Description  string            `json:"description"`
	Price        float64           `json:"price"        validate:"required,gt=0"`
	Images       []string          `json:"images"`
	Category     string            `json:"category"`
	Style        string            `json:"style"`
	Medium       string            `json:"medium"`
	Dimensions   dimensionsRequest `json:"dimensions"`
	Availability string            `json:"availability" validate:"omitempty,oneof=available sold reserved"`
	Tags         []string          `json:"tags"`
	Featured     bool              `json:"featured"`
}

type artworkResponse struct {
	Artwork domain.Artwork `json:"artwork"`
}

type artworkListResponse struct {
	Artworks []domain.Artwork `json:"artworks"`
}

type artistListResponse struct {
	Artists []domain.User `json:"artists"`
}
