package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aquarelle/artmarket/internal/api/metrics"
	"github.com/aquarelle/artmarket/internal/core/ports"
)

// ArtistHandler handles HTTP requests for the artist directory.
type ArtistHandler struct {
	service ports.CatalogService
}

func NewArtistHandler(service ports.CatalogService) *ArtistHandler {
	return &ArtistHandler{service: service}
}

// List handles GET /v1/artists. Returns the full artist collection, filtered
// by the free-text query when one is given. No pagination.
//
// @Summary      List artists
// @Tags         artists
// @Produce      json
// @Param        q    query     string  false  "Free-text search over name, bio, specialties, and location"
// @Success      200  {object}  artistListResponse
// @Router       /v1/artists [get]
func (h *ArtistHandler) List(c echo.Context) error {
	query := c.QueryParam("q")

	artists, err := h.service.ListArtists(c.Request().Context(), query)
	if err != nil {
		return err
	}

	filtered := strings.TrimSpace(query) != ""
	metrics.ArtistSearchesTotal.WithLabelValues(strconv.FormatBool(filtered)).Inc()

	return c.JSON(http.StatusOK, artistListResponse{Artists: artists})
}
