package memory

import (
	"time"

	"github.com/aquarelle/artmarket/internal/core/domain"
)

// Seed loads the development fixture set: two artists, one customer, and four
// artworks. Safe to call once on an empty store; timestamps are staggered so
// the newest-first ordering is deterministic.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	s.users = append(s.users,
		domain.User{
			ID:        "artist_1",
			Email:     "emma.waters@example.com",
			Name:      "Emma Waters",
			Role:      domain.RoleArtist,
			Avatar:    "/avatars/emma-waters.png",
			CreatedAt: now.Add(-96 * time.Hour),
			Profile: domain.ArtistProfile{
				Bio:         "Watercolor artist specializing in landscapes and botanical illustration, inspired by the changing moods of nature.",
				Specialties: []string{"Landscape", "Botanical", "Seascape"},
				Experience:  "8 years",
				Location:    "Portland, Oregon",
				Website:     "www.emmawaters.art",
				SocialMedia: domain.SocialMedia{
					Instagram: "@emmawaters_art",
					Facebook:  "Emma Waters Art",
				},
				CommissionSettings: domain.CommissionSettings{
					IsAccepting:    true,
					PriceRange:     domain.PriceRange{Min: 150, Max: 800},
					TurnaroundTime: "2-3 weeks",
					Styles:         []string{"Realistic", "Impressionistic", "Contemporary"},
				},
				Portfolio: []string{},
			},
		},
		domain.User{
			ID:        "artist_2",
			Email:     "david.brush@example.com",
			Name:      "David Brushworth",
			Role:      domain.RoleArtist,
			Avatar:    "/avatars/david-brushworth.png",
			CreatedAt: now.Add(-72 * time.Hour),
			Profile: domain.ArtistProfile{
				Bio:         "Abstract watercolor painter exploring emotion through fluid forms and vibrant color.",
				Specialties: []string{"Abstract", "Contemporary", "Experimental"},
				Experience:  "12 years",
				Location:    "San Francisco, California",
				SocialMedia: domain.SocialMedia{
					Instagram: "@davidbrush_art",
					Twitter:   "@brushworth",
				},
				CommissionSettings: domain.CommissionSettings{
					IsAccepting:    true,
					PriceRange:     domain.PriceRange{Min: 200, Max: 1200},
					TurnaroundTime: "3-4 weeks",
					Styles:         []string{"Abstract", "Contemporary", "Expressive"},
				},
				Portfolio: []string{},
			},
		},
		domain.User{
			ID:        "customer_1",
			Email:     "sarah.collector@example.com",
			Name:      "Sarah Collector",
			Role:      domain.RoleCustomer,
			CreatedAt: now.Add(-48 * time.Hour),
			Profile: domain.CustomerProfile{
				FavoriteStyles:  []string{"Landscape", "Abstract"},
				PurchaseHistory: []string{},
				Wishlist:        []string{},
			},
		},
	)

	s.artworks = append(s.artworks,
		domain.Artwork{
			ID:           "artwork_1",
			ArtistID:     "artist_1",
			ArtistName:   "Emma Waters",
			Title:        "Misty Mountain Dawn",
			Description:  "A serene watercolor of mountains shrouded in morning mist, painted with transparent washes.",
			Price:        350,
			Images:       []string{"/artworks/misty-mountain-dawn.png"},
			Category:     domain.CategoryLandscape,
			Style:        "Realistic",
			Medium:       "Watercolor on paper",
			Dimensions:   domain.Dimensions{Width: 40, Height: 30, Unit: domain.UnitCm},
			Availability: domain.AvailabilityAvailable,
			Tags:         []string{"mountain", "mist", "dawn", "nature", "peaceful"},
			CreatedAt:    now.Add(-90 * time.Hour),
			Featured:     true,
		},
		domain.Artwork{
			ID:           "artwork_2",
			ArtistID:     "artist_1",
			ArtistName:   "Emma Waters",
			Title:        "Wild Rose Garden",
			Description:  "Botanical study of wild roses in full bloom, each petal rendered with attention to light and shadow.",
			Price:        280,
			Images:       []string{"/artworks/wild-rose-garden.png"},
			Category:     domain.CategoryFloral,
			Style:        "Realistic",
			Medium:       "Watercolor on paper",
			Dimensions:   domain.Dimensions{Width: 35, Height: 25, Unit: domain.UnitCm},
			Availability: domain.AvailabilityAvailable,
			Tags:         []string{"roses", "flowers", "botanical", "garden", "romantic"},
			CreatedAt:    now.Add(-60 * time.Hour),
			Featured:     false,
		},
		domain.Artwork{
			ID:           "artwork_3",
			ArtistID:     "artist_2",
			ArtistName:   "David Brushworth",
			Title:        "Emotional Storm",
			Description:  "An abstract expression of turbulent emotion in bold color washes and dynamic brushstrokes.",
			Price:        450,
			Images:       []string{"/artworks/emotional-storm.png"},
			Category:     domain.CategoryAbstract,
			Style:        "Abstract",
			Medium:       "Watercolor on paper",
			Dimensions:   domain.Dimensions{Width: 50, Height: 35, Unit: domain.UnitCm},
			Availability: domain.AvailabilityAvailable,
			Tags:         []string{"abstract", "emotions", "storm", "dynamic", "expressive"},
			CreatedAt:    now.Add(-36 * time.Hour),
			Featured:     true,
		},
		domain.Artwork{
			ID:           "artwork_4",
			ArtistID:     "artist_2",
			ArtistName:   "David Brushworth",
			Title:        "Ocean Depths",
			Description:  "Flowing interpretation of deep ocean currents and the quiet beauty of underwater landscapes.",
			Price:        520,
			Images:       []string{"/artworks/ocean-depths.png"},
			Category:     domain.CategorySeascape,
			Style:        "Abstract",
			Medium:       "Watercolor on paper",
			Dimensions:   domain.Dimensions{Width: 45, Height: 32, Unit: domain.UnitCm},
			Availability: domain.AvailabilityAvailable,
			Tags:         []string{"ocean", "water", "depths", "blue", "flowing"},
			CreatedAt:    now.Add(-12 * time.Hour),
			Featured:     false,
		},
	)
}
