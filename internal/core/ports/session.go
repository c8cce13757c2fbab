package ports

import (
	"context"

	"github.com/aquarelle/artmarket/internal/core/domain"
)

// SessionStore is the durable single-slot storage for the authenticated user.
// Load returns (nil, nil) when the slot is empty. A corrupt slot is reported
// as an error; callers are expected to Clear and continue unauthenticated.
type SessionStore interface {
	Load(ctx context.Context) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
	Clear(ctx context.Context) error
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// SessionService is the single-slot authentication state machine.
//
// The slot holds at most one authenticated user. Every successful login,
// registration, and logout keeps the durable store and the in-memory slot in
// step: the store is written first, so a storage failure leaves the slot
// untouched.
type SessionService interface {
	// Restore loads the slot from durable storage. Absent or unparsable data
	// clears the store and leaves the session unauthenticated; it never fails
	// the startup path.
	Restore(ctx context.Context)
	// Login succeeds iff a user exists for the email and the password passes
	// the in-scope policy. Returns a signed bearer token alongside the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Register fails with domain.ErrUserExists on a duplicate email, leaving
	// the store unchanged. On success the new account is authenticated.
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	// Logout unconditionally clears the slot and its durable entry.
	Logout(ctx context.Context) error
	// Current returns the authenticated user, or nil when unauthenticated.
	Current() *domain.User
}
