package domain

import "time"

// Category classifies an artwork into one of the nine catalog sections.
type Category string

const (
	CategoryLandscape Category = "landscape"
	CategoryPortrait  Category = "portrait"
	CategoryAbstract  Category = "abstract"
	CategoryStillLife Category = "still-life"
	CategoryFloral    Category = "floral"
	CategoryAnimal    Category = "animal"
	CategorySeascape  Category = "seascape"
	CategoryCityscape Category = "cityscape"
	CategoryOther     Category = "other"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryLandscape, CategoryPortrait, CategoryAbstract,
	CategoryStillLife, CategoryFloral, CategoryAnimal,
	CategorySeascape, CategoryCityscape, CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Availability represents the sale state of an artwork.
type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilitySold      Availability = "sold"
	AvailabilityReserved  Availability = "reserved"
)

// DimensionUnit is the measurement unit of an artwork's dimensions.
type DimensionUnit string

const (
	UnitCm     DimensionUnit = "cm"
	UnitInches DimensionUnit = "inches"
)

// Dimensions is the physical size of a painting.
type Dimensions struct {
	Width  float64       `json:"width" bson:"width"`
	Height float64       `json:"height" bson:"height"`
	Unit   DimensionUnit `json:"unit" bson:"unit"`
}

// Artwork is a single catalog listing. ArtistName is a denormalized copy of
// the artist's name, stamped at creation time; it is not kept in sync with
// later artist renames.
type Artwork struct {
	ID           string       `json:"id" bson:"_id,omitempty"`
	ArtistID     string       `json:"artist_id" bson:"artist_id"`
	ArtistName   string       `json:"artist_name" bson:"artist_name"`
	Title        string       `json:"title" bson:"title"`
	Description  string       `json:"description" bson:"description"`
	Price        float64      `json:"price" bson:"price"`
	Images       []string     `json:"images" bson:"images"`
	Category     Category     `json:"category" bson:"category"`
	Style        string       `json:"style" bson:"style"`
	Medium       string       `json:"medium" bson:"medium"`
	Dimensions   Dimensions   `json:"dimensions" bson:"dimensions"`
	Availability Availability `json:"availability" bson:"availability"`
	Tags         []string     `json:"tags" bson:"tags"`
	CreatedAt    time.Time    `json:"created_at" bson:"created_at"`
	Featured     bool         `json:"featured" bson:"featured"`
}
