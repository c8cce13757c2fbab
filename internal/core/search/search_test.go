package search

import (
	"reflect"
	"testing"
	"time"

	"github.com/aquarelle/artmarket/internal/core/domain"
)

var (
	t1 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	t2 = time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
)

func fixtureArtworks() []domain.Artwork {
	return []domain.Artwork{
		{
			ID:         "a1",
			ArtistName: "Emma Waters",
			Title:      "Misty Mountain Dawn",
			Price:      350,
			Category:   domain.CategoryLandscape,
			Tags:       []string{"mountain", "mist", "peaceful"},
			CreatedAt:  t1,
		},
		{
			ID:         "a2",
			ArtistName: "David Brushworth",
			Title:      "Emotional Storm",
			Price:      450,
			Category:   domain.CategoryAbstract,
			Tags:       []string{"abstract", "storm"},
			CreatedAt:  t2,
		},
		{
			ID:         "a3",
			ArtistName: "Emma Waters",
			Title:      "Wild Rose Garden",
			Price:      280,
			Category:   domain.CategoryFloral,
			Tags:       []string{"roses", "garden"},
			CreatedAt:  t1.Add(time.Hour),
		},
	}
}

func ids(items []domain.Artwork) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.ID)
	}
	return out
}

func TestArtworks_FilterIsIdempotent(t *testing.T) {
	criteria := Criteria{
		Text:       "storm",
		Categories: []domain.Category{domain.CategoryAbstract},
		Sort:       SortNewest,
	}

	once := Artworks(fixtureArtworks(), criteria)
	twice := Artworks(once, criteria)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filter not idempotent: %v != %v", ids(once), ids(twice))
	}
}

func TestArtworks_TextFilterIsCaseInsensitive(t *testing.T) {
	upper := Artworks(fixtureArtworks(), Criteria{Text: "ROSE"})
	lower := Artworks(fixtureArtworks(), Criteria{Text: "rose"})

	if !reflect.DeepEqual(upper, lower) {
		t.Fatalf("case-sensitive text filter: %v != %v", ids(upper), ids(lower))
	}
	if len(upper) != 1 || upper[0].ID != "a3" {
		t.Fatalf("expected [a3], got %v", ids(upper))
	}
}

func TestArtworks_TextFilterMatchesTags(t *testing.T) {
	got := Artworks(fixtureArtworks(), Criteria{Text: "peaceful"})
	if len(got) != 1 || got[0].ID != "a1" {
		t.Fatalf("expected tag match [a1], got %v", ids(got))
	}
}

func TestArtworks_TextFilterMatchesArtistName(t *testing.T) {
	got := Artworks(fixtureArtworks(), Criteria{Text: "brushworth"})
	if len(got) != 1 || got[0].ID != "a2" {
		t.Fatalf("expected artist match [a2], got %v", ids(got))
	}
}

func TestArtworks_BlankQueryAndEmptySetsAreNoOps(t *testing.T) {
	got := Artworks(fixtureArtworks(), Criteria{Text: "   ", Sort: SortNewest})
	if len(got) != 3 {
		t.Fatalf("expected all 3 records, got %v", ids(got))
	}
}

func TestArtworks_PriceAscReversedEqualsPriceDesc(t *testing.T) {
	// Fixture prices are distinct, so the orderings must mirror exactly.
	asc := Artworks(fixtureArtworks(), Criteria{Sort: SortPriceAsc})
	desc := Artworks(fixtureArtworks(), Criteria{Sort: SortPriceDesc})

	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Fatalf("asc reversed != desc: %v vs %v", ids(asc), ids(desc))
		}
	}
}

func TestArtworks_SortNewestIsDefault(t *testing.T) {
	got := Artworks(fixtureArtworks(), Criteria{})
	want := []string{"a2", "a3", "a1"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}

	// An unknown key falls back to newest-first.
	fallback := Artworks(fixtureArtworks(), Criteria{Sort: SortKey("bogus")})
	if !reflect.DeepEqual(ids(fallback), want) {
		t.Fatalf("unknown key: expected %v, got %v", want, ids(fallback))
	}
}

func TestArtworks_SortTitle(t *testing.T) {
	got := Artworks(fixtureArtworks(), Criteria{Sort: SortTitle})
	want := []string{"a2", "a1", "a3"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestArtworks_NewestAndPriceBracketScenario(t *testing.T) {
	a1 := domain.Artwork{ID: "A1", Price: 350, Category: domain.CategoryLandscape, CreatedAt: t1}
	a2 := domain.Artwork{ID: "A2", Price: 450, Category: domain.CategoryAbstract, CreatedAt: t2}

	newest := Artworks([]domain.Artwork{a1, a2}, Criteria{Sort: SortNewest})
	if !reflect.DeepEqual(ids(newest), []string{"A2", "A1"}) {
		t.Fatalf("newest: expected [A2 A1], got %v", ids(newest))
	}

	bracket := Artworks([]domain.Artwork{a1, a2}, Criteria{PriceRange: &PriceRange{Min: 0, Max: 400}})
	if !reflect.DeepEqual(ids(bracket), []string{"A1"}) {
		t.Fatalf("bracket: expected [A1], got %v", ids(bracket))
	}
}

func TestArtworks_CategoryFilter(t *testing.T) {
	got := Artworks(fixtureArtworks(), Criteria{
		Categories: []domain.Category{domain.CategoryFloral, domain.CategoryAbstract},
		Sort:       SortPriceAsc,
	})
	if !reflect.DeepEqual(ids(got), []string{"a3", "a2"}) {
		t.Fatalf("expected [a3 a2], got %v", ids(got))
	}
}

func TestArtworks_EmptyInputAndEmptyResult(t *testing.T) {
	if got := Artworks(nil, Criteria{Text: "anything"}); len(got) != 0 {
		t.Fatalf("empty input: expected empty output, got %v", ids(got))
	}
	if got := Artworks(fixtureArtworks(), Criteria{Text: "no such painting"}); len(got) != 0 {
		t.Fatalf("no matches: expected empty output, got %v", ids(got))
	}
}

func fixtureArtists() []domain.User {
	return []domain.User{
		{
			ID:   "u1",
			Name: "Emma Waters",
			Role: domain.RoleArtist,
			Profile: domain.ArtistProfile{
				Bio:         "Landscapes and botanical illustration.",
				Specialties: []string{"Landscape", "Botanical"},
				Location:    "Portland, Oregon",
			},
		},
		{
			ID:   "u2",
			Name: "David Brushworth",
			Role: domain.RoleArtist,
			Profile: domain.ArtistProfile{
				Bio:         "Abstract painter.",
				Specialties: []string{"Abstract"},
				Location:    "San Francisco, California",
			},
		},
	}
}

func TestArtists_MatchesAcrossFields(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"emma", "u1"},           // name
		{"BOTANICAL", "u1"},      // specialty, case-insensitive
		{"abstract painter", "u2"}, // bio
		{"portland", "u1"},       // location
	}
	for _, tc := range cases {
		got := Artists(fixtureArtists(), tc.query)
		if len(got) != 1 || got[0].ID != tc.want {
			t.Fatalf("query %q: expected [%s], got %d results", tc.query, tc.want, len(got))
		}
	}
}

func TestArtists_BlankQueryPassesEveryone(t *testing.T) {
	if got := Artists(fixtureArtists(), "  "); len(got) != 2 {
		t.Fatalf("expected 2 artists, got %d", len(got))
	}
}
