package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aquarelle/artmarket/internal/api/handler"
	"github.com/aquarelle/artmarket/internal/core/domain"
	"github.com/aquarelle/artmarket/internal/core/ports"
	"github.com/aquarelle/artmarket/internal/core/search"
)

type stubCatalogService struct {
	listFn        func(ctx context.Context, input ports.ListArtworksInput) ([]domain.Artwork, error)
	getFn         func(ctx context.Context, id string) (*domain.Artwork, error)
	createFn      func(ctx context.Context, input ports.CreateArtworkInput) (*domain.Artwork, error)
	listArtistsFn func(ctx context.Context, query string) ([]domain.User, error)
}

func (s *stubCatalogService) ListArtworks(ctx context.Context, input ports.ListArtworksInput) ([]domain.Artwork, error) {
	return s.listFn(ctx, input)
}

func (s *stubCatalogService) GetArtwork(ctx context.Context, id string) (*domain.Artwork, error) {
	return s.getFn(ctx, id)
}

func (s *stubCatalogService) CreateArtwork(ctx context.Context, input ports.CreateArtworkInput) (*domain.Artwork, error) {
	return s.createFn(ctx, input)
}

func (s *stubCatalogService) ListArtists(ctx context.Context, query string) ([]domain.User, error) {
	return s.listArtistsFn(ctx, query)
}

func TestArtworkHandler_List_ParsesQueryParams(t *testing.T) {
	e := newTestServer()
	stub := &stubCatalogService{
		listFn: func(_ context.Context, input ports.ListArtworksInput) ([]domain.Artwork, error) {
			if !input.Featured {
				t.Fatal("expected featured flag")
			}
			if input.Criteria.Text != "rose" {
				t.Fatalf("unexpected text: %q", input.Criteria.Text)
			}
			if len(input.Criteria.Categories) != 2 {
				t.Fatalf("expected 2 categories, got %v", input.Criteria.Categories)
			}
			if input.Criteria.PriceRange == nil || input.Criteria.PriceRange.Min != 100 || input.Criteria.PriceRange.Max != 400 {
				t.Fatalf("unexpected bracket: %+v", input.Criteria.PriceRange)
			}
			if input.Criteria.Sort != search.SortPriceAsc {
				t.Fatalf("unexpected sort: %q", input.Criteria.Sort)
			}
			return []domain.Artwork{{ID: "a1"}}, nil
		},
	}
	h := handler.NewArtworkHandler(stub)

	c, rec := doJSON(e, http.MethodGet,
		"/v1/artworks?featured=true&q=rose&category=floral&category=landscape&price_min=100&price_max=400&sort=price-asc", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	artworks, ok := resp["artworks"].([]any)
	if !ok || len(artworks) != 1 {
		t.Fatalf("unexpected artworks payload: %+v", resp["artworks"])
	}
}

func TestArtworkHandler_List_RejectsUnknownCategory(t *testing.T) {
	e := newTestServer()
	stub := &stubCatalogService{
		listFn: func(context.Context, ports.ListArtworksInput) ([]domain.Artwork, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	h := handler.NewArtworkHandler(stub)

	c, rec := doJSON(e, http.MethodGet, "/v1/artworks?category=sculpture", "")
	if err := h.List(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestArtworkHandler_List_RejectsBadPriceBound(t *testing.T) {
	e := newTestServer()
	stub := &stubCatalogService{
		listFn: func(context.Context, ports.ListArtworksInput) ([]domain.Artwork, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	h := handler.NewArtworkHandler(stub)

	c, rec := doJSON(e, http.MethodGet, "/v1/artworks?price_min=cheap", "")
	if err := h.List(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestArtworkHandler_Get_NotFound(t *testing.T) {
	e := newTestServer()
	stub := &stubCatalogService{
		getFn: func(_ context.Context, id string) (*domain.Artwork, error) {
			return nil, domain.ErrArtworkNotFound
		},
	}
	h := handler.NewArtworkHandler(stub)

	c, rec := doJSON(e, http.MethodGet, "/v1/artworks/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Get(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestArtworkHandler_Create_Success(t *testing.T) {
	e := newTestServer()
	stub := &stubCatalogService{
		createFn: func(_ context.Context, input ports.CreateArtworkInput) (*domain.Artwork, error) {
			if input.ArtistID != "artist_1" || input.Title != "Autumn Creek" || input.Price != 300 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Artwork{
				ID:         "artwork_1",
				ArtistID:   input.ArtistID,
				ArtistName: "Emma Waters",
				Title:      input.Title,
				Price:      input.Price,
				Category:   domain.CategoryLandscape,
			}, nil
		},
	}
	h := handler.NewArtworkHandler(stub)

	c, rec := doJSON(e, http.MethodPost, "/v1/artworks",
		`{"artist_id":"artist_1","title":"Autumn Creek","price":300,"category":"landscape"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	artwork, ok := resp["artwork"].(map[string]any)
	if !ok || artwork["artist_name"] != "Emma Waters" {
		t.Fatalf("unexpected artwork payload: %+v", resp["artwork"])
	}
}

func TestArtworkHandler_Create_RejectsMissingFields(t *testing.T) {
	e := newTestServer()
	stub := &stubCatalogService{
		createFn: func(context.Context, ports.CreateArtworkInput) (*domain.Artwork, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	h := handler.NewArtworkHandler(stub)

	c, rec := doJSON(e, http.MethodPost, "/v1/artworks", `{"title":"No Artist"}`)
	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestArtworkHandler_Create_UnknownArtist(t *testing.T) {
	e := newTestServer()
	stub := &stubCatalogService{
		createFn: func(context.Context, ports.CreateArtworkInput) (*domain.Artwork, error) {
			return nil, domain.ErrArtistNotFound
		},
	}
	h := handler.NewArtworkHandler(stub)

	c, rec := doJSON(e, http.MethodPost, "/v1/artworks",
		`{"artist_id":"nobody","title":"X","price":100}`)
	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestArtistHandler_List(t *testing.T) {
	e := newTestServer()
	stub := &stubCatalogService{
		listArtistsFn: func(_ context.Context, query string) ([]domain.User, error) {
			if query != "landscape" {
				t.Fatalf("unexpected query: %q", query)
			}
			return []domain.User{{ID: "artist_1", Name: "Emma Waters", Role: domain.RoleArtist}}, nil
		},
	}
	h := handler.NewArtistHandler(stub)

	c, rec := doJSON(e, http.MethodGet, "/v1/artists?q=landscape", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	artists, ok := resp["artists"].([]any)
	if !ok || len(artists) != 1 {
		t.Fatalf("unexpected artists payload: %+v", resp["artists"])
	}
}
