package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Role distinguishes the two account kinds in the marketplace.
type Role string

const (
	RoleArtist   Role = "artist"
	RoleCustomer Role = "customer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleArtist || r == RoleCustomer
}

// User models a marketplace account. The Profile variant is determined by
// Role: artists carry an ArtistProfile, customers a CustomerProfile, never
// both.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	Avatar       string    `json:"avatar,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	Profile      Profile   `json:"profile"`
}

// Profile is the role-tagged variant attached to a User.
type Profile interface {
	ProfileRole() Role
}

// SocialMedia holds an artist's optional social handles.
type SocialMedia struct {
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
}

// PriceRange is an inclusive price bracket in whole currency units.
type PriceRange struct {
	Min float64 `json:"min" bson:"min"`
	Max float64 `json:"max" bson:"max"`
}

// CommissionSettings describes whether and how an artist takes commissions.
type CommissionSettings struct {
	IsAccepting    bool       `json:"is_accepting" bson:"is_accepting"`
	PriceRange     PriceRange `json:"price_range" bson:"price_range"`
	TurnaroundTime string     `json:"turnaround_time" bson:"turnaround_time"`
	Styles         []string   `json:"styles" bson:"styles"`
}

// ArtistProfile is the profile variant for Role == RoleArtist.
type ArtistProfile struct {
	Bio                string             `json:"bio" bson:"bio"`
	Specialties        []string           `json:"specialties" bson:"specialties"`
	Experience         string             `json:"experience" bson:"experience"`
	Location           string             `json:"location" bson:"location"`
	Website            string             `json:"website,omitempty" bson:"website,omitempty"`
	SocialMedia        SocialMedia        `json:"social_media" bson:"social_media"`
	CommissionSettings CommissionSettings `json:"commission_settings" bson:"commission_settings"`
	Portfolio          []string           `json:"portfolio" bson:"portfolio"`
}

func (ArtistProfile) ProfileRole() Role { return RoleArtist }

// Address is a postal address attached to a customer profile.
type Address struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zip_code" bson:"zip_code"`
	Country string `json:"country" bson:"country"`
}

// CustomerProfile is the profile variant for Role == RoleCustomer.
type CustomerProfile struct {
	FavoriteStyles  []string `json:"favorite_styles" bson:"favorite_styles"`
	PurchaseHistory []string `json:"purchase_history" bson:"purchase_history"`
	Wishlist        []string `json:"wishlist" bson:"wishlist"`
	ShippingAddress *Address `json:"shipping_address,omitempty" bson:"shipping_address,omitempty"`
	BillingAddress  *Address `json:"billing_address,omitempty" bson:"billing_address,omitempty"`
}

func (CustomerProfile) ProfileRole() Role { return RoleCustomer }

// DefaultProfile builds the empty profile shape a freshly registered account
// starts with. Artists begin with commissions closed and the standard bracket.
func DefaultProfile(role Role) Profile {
	if role == RoleArtist {
		return ArtistProfile{
			Specialties: []string{},
			CommissionSettings: CommissionSettings{
				IsAccepting:    false,
				PriceRange:     PriceRange{Min: 100, Max: 500},
				TurnaroundTime: "2-3 weeks",
				Styles:         []string{},
			},
			Portfolio: []string{},
		}
	}
	return CustomerProfile{
		FavoriteStyles:  []string{},
		PurchaseHistory: []string{},
		Wishlist:        []string{},
	}
}

// userJSON is the wire shape of a User; Profile decoding is deferred so the
// variant can be selected by the role tag.
type userJSON struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Role      Role            `json:"role"`
	Avatar    string          `json:"avatar,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Profile   json.RawMessage `json:"profile"`
}

// MarshalJSON emits the profile as the concrete variant for the user's role.
func (u User) MarshalJSON() ([]byte, error) {
	var raw json.RawMessage
	if u.Profile != nil {
		b, err := json.Marshal(u.Profile)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	return json.Marshal(userJSON{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		Profile:   raw,
	})
}

// UnmarshalJSON decodes the profile into the variant dictated by the role tag.
func (u *User) UnmarshalJSON(data []byte) error {
	var uj userJSON
	if err := json.Unmarshal(data, &uj); err != nil {
		return err
	}

	u.ID = uj.ID
	u.Email = uj.Email
	u.Name = uj.Name
	u.Role = uj.Role
	u.Avatar = uj.Avatar
	u.CreatedAt = uj.CreatedAt
	u.Profile = nil

	if len(uj.Profile) == 0 || string(uj.Profile) == "null" {
		return nil
	}

	switch uj.Role {
	case RoleArtist:
		var p ArtistProfile
		if err := json.Unmarshal(uj.Profile, &p); err != nil {
			return err
		}
		u.Profile = p
	case RoleCustomer:
		var p CustomerProfile
		if err := json.Unmarshal(uj.Profile, &p); err != nil {
			return err
		}
		u.Profile = p
	default:
		return fmt.Errorf("user: unknown role %q", uj.Role)
	}
	return nil
}
