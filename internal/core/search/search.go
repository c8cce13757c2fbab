// Package search implements the catalog filter/sort engine. Every function is
// a pure transformation of its inputs: the same collection and criteria always
// produce the same output, and the input slices are never mutated.
package search

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/aquarelle/artmarket/internal/core/domain"
)

// SortKey selects the ordering of a filtered artwork listing.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortTitle     SortKey = "title"
	SortArtist    SortKey = "artist"
)

// PriceRange is an inclusive price bracket. A nil range disables the stage.
type PriceRange struct {
	Min float64
	Max float64
}

// Criteria is the full set of active filter/sort parameters for one listing
// view. The zero value passes every record and sorts newest-first.
type Criteria struct {
	Text       string
	Categories []domain.Category
	PriceRange *PriceRange
	Sort       SortKey
}

// Artworks filters and orders the collection per the criteria. The stages run
// in a fixed order (text, category, price, sort) and each stage only shrinks
// or preserves the candidate set. An empty result is an empty slice, never an
// error.
func Artworks(items []domain.Artwork, c Criteria) []domain.Artwork {
	out := make([]domain.Artwork, 0, len(items))

	query := strings.ToLower(strings.TrimSpace(c.Text))
	for _, a := range items {
		if query != "" && !artworkMatches(a, query) {
			continue
		}
		if len(c.Categories) > 0 && !containsCategory(c.Categories, a.Category) {
			continue
		}
		if c.PriceRange != nil && (a.Price < c.PriceRange.Min || a.Price > c.PriceRange.Max) {
			continue
		}
		out = append(out, a)
	}

	sortArtworks(out, c.Sort)
	return out
}

// Artists filters the artist collection by the same case-insensitive substring
// rule, OR-combined over name, bio, the specialty set, and location. A blank
// query passes everyone.
func Artists(users []domain.User, query string) []domain.User {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if q == "" || artistMatches(u, q) {
			out = append(out, u)
		}
	}
	return out
}

// artworkMatches reports whether any searchable field contains the normalized
// query substring.
func artworkMatches(a domain.Artwork, query string) bool {
	if strings.Contains(strings.ToLower(a.Title), query) ||
		strings.Contains(strings.ToLower(a.Description), query) ||
		strings.Contains(strings.ToLower(a.ArtistName), query) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func artistMatches(u domain.User, query string) bool {
	if strings.Contains(strings.ToLower(u.Name), query) {
		return true
	}
	p, ok := u.Profile.(domain.ArtistProfile)
	if !ok {
		return false
	}
	if strings.Contains(strings.ToLower(p.Bio), query) ||
		strings.Contains(strings.ToLower(p.Location), query) {
		return true
	}
	for _, s := range p.Specialties {
		if strings.Contains(strings.ToLower(s), query) {
			return true
		}
	}
	return false
}

func containsCategory(set []domain.Category, c domain.Category) bool {
	for _, s := range set {
		if s == c {
			return true
		}
	}
	return false
}

// sortArtworks orders the slice in place with a stable sort. Unknown keys fall
// back to newest-first.
func sortArtworks(items []domain.Artwork, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price < items[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price > items[j].Price
		})
	case SortTitle:
		col := newCollator()
		sort.SliceStable(items, func(i, j int) bool {
			return col.CompareString(items[i].Title, items[j].Title) < 0
		})
	case SortArtist:
		col := newCollator()
		sort.SliceStable(items, func(i, j int) bool {
			return col.CompareString(items[i].ArtistName, items[j].ArtistName) < 0
		})
	default: // SortNewest
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	}
}

// newCollator builds a fresh collator per sort; collate.Collator carries an
// internal buffer and is not safe for concurrent use.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.Loose)
}
