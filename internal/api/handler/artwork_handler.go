package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aquarelle/artmarket/internal/api/metrics"
	"github.com/aquarelle/artmarket/internal/core/domain"
	"github.com/aquarelle/artmarket/internal/core/ports"
	"github.com/aquarelle/artmarket/internal/core/search"
)

// ArtworkHandler handles HTTP requests for catalog operations.
type ArtworkHandler struct {
	service ports.CatalogService
}

func NewArtworkHandler(service ports.CatalogService) *ArtworkHandler {
	return &ArtworkHandler{service: service}
}

// List handles GET /v1/artworks.
//
// @Summary      List artworks
// @Tags         artworks
// @Produce      json
// @Param        featured   query     bool    false  "Only featured artworks (takes precedence over artist_id)"
// @Param        artist_id  query     string  false  "Only artworks by this artist"
// @Param        q          query     string  false  "Free-text search over title, description, artist name, and tags"
// @Param        category   query     []string false "Category filter (repeatable)"
// @Param        price_min  query     number  false  "Lower price bound (inclusive)"
// @Param        price_max  query     number  false  "Upper price bound (inclusive)"
// @Param        sort       query     string  false  "Sort key: newest, price-asc, price-desc, title, artist"
// @Success      200        {object}  artworkListResponse
// @Failure      400        {object}  errorResponse
// @Router       /v1/artworks [get]
func (h *ArtworkHandler) List(c echo.Context) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return err
	}

	input := ports.ListArtworksInput{
		Featured: c.QueryParam("featured") == "true",
		ArtistID: c.QueryParam("artist_id"),
		Criteria: criteria,
	}

	artworks, err := h.service.ListArtworks(c.Request().Context(), input)
	if err != nil {
		return err
	}

	sortKey := criteria.Sort
	if sortKey == "" {
		sortKey = search.SortNewest
	}
	metrics.CatalogSearchesTotal.WithLabelValues(string(sortKey)).Inc()

	return c.JSON(http.StatusOK, artworkListResponse{Artworks: artworks})
}

// Get handles GET /v1/artworks/:id.
//
// @Summary      Get an artwork by id
// @Tags         artworks
// @Produce      json
// @Param        id   path      string  true  "Artwork id"
// @Success      200  {object}  artworkResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/artworks/{id} [get]
func (h *ArtworkHandler) Get(c echo.Context) error {
	artwork, err := h.service.GetArtwork(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artworkResponse{Artwork: *artwork})
}

// Create handles POST /v1/artworks. Requires the artist role.
//
// @Summary      Publish a new artwork listing
// @Tags         artworks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createArtworkRequest  true  "Listing details"
// @Success      201   {object}  artworkResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/artworks [post]
func (h *ArtworkHandler) Create(c echo.Context) error {
	var req createArtworkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateArtwork(c.Request().Context(), ports.CreateArtworkInput{
		ArtistID:    req.ArtistID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Category:    req.Category,
		Style:       req.Style,
		Medium:      req.Medium,
		Dimensions: ports.DimensionsInput{
			Width:  req.Dimensions.Width,
			Height: req.Dimensions.Height,
			Unit:   req.Dimensions.Unit,
		},
		Availability: req.Availability,
		Tags:         req.Tags,
		Featured:     req.Featured,
	})
	if err != nil {
		return err
	}

	metrics.ArtworksCreatedTotal.WithLabelValues(string(created.Category)).Inc()
	return c.JSON(http.StatusCreated, artworkResponse{Artwork: *created})
}

// parseCriteria reads the filter/sort query parameters into engine criteria.
func parseCriteria(c echo.Context) (search.Criteria, error) {
	criteria := search.Criteria{
		Text: c.QueryParam("q"),
		Sort: search.SortKey(c.QueryParam("sort")),
	}

	for _, raw := range c.QueryParams()["category"] {
		cat := domain.Category(raw)
		if !cat.Valid() {
			return search.Criteria{}, echo.NewHTTPError(http.StatusBadRequest, "unknown category: "+raw)
		}
		criteria.Categories = append(criteria.Categories, cat)
	}

	minRaw, maxRaw := c.QueryParam("price_min"), c.QueryParam("price_max")
	if minRaw != "" || maxRaw != "" {
		bracket := search.PriceRange{Min: 0, Max: math.MaxFloat64}
		if minRaw != "" {
			v, err := strconv.ParseFloat(minRaw, 64)
			if err != nil {
				return search.Criteria{}, echo.NewHTTPError(http.StatusBadRequest, "price_min must be a number")
			}
			bracket.Min = v
		}
		if maxRaw != "" {
			v, err := strconv.ParseFloat(maxRaw, 64)
			if err != nil {
				return search.Criteria{}, echo.NewHTTPError(http.StatusBadRequest, "price_max must be a number")
			}
			bracket.Max = v
		}
		criteria.PriceRange = &bracket
	}

	return criteria, nil
}
