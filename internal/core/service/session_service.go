package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/aquarelle/artmarket/internal/core/domain"
	"github.com/aquarelle/artmarket/internal/core/ports"
)

// minPasswordLen is the full in-scope credential policy: a login succeeds for
// any existing email as long as the supplied password reaches this length.
// Hashes are stored at registration for a later migration to real comparison.
const minPasswordLen = 6

// SessionService owns the single authenticated-user slot for the running
// client. Every transition writes the durable store before the in-memory
// slot, so a storage failure leaves the session uncommitted.
type SessionService struct {
	users     ports.UserRepository
	store     ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger

	mu      sync.Mutex
	current *domain.User
}

func NewSessionService(users ports.UserRepository, store ports.SessionStore, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionService{
		users:     users,
		store:     store,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Restore loads the durable slot once at startup. Absent data leaves the
// session unauthenticated; unparsable data additionally clears the slot.
// Restore never fails the startup path.
func (s *SessionService) Restore(ctx context.Context) {
	user, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("session restore failed, clearing slot")
		if clearErr := s.store.Clear(ctx); clearErr != nil {
			s.logger.Warn().Err(clearErr).Msg("failed to clear corrupt session slot")
		}
		return
	}
	if user == nil {
		return
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()

	s.logger.Info().Str("user_id", user.ID).Msg("session restored")
}

// Login authenticates by email. The password check is length-only; unknown
// emails and short passwords both yield domain.ErrInvalidCredentials with the
// session state unchanged.
func (s *SessionService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || len(password) < minPasswordLen {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := s.commit(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login succeeded")
	return token, user, nil
}

// Register creates a new account with the role-default profile and
// authenticates it. A duplicate email fails with domain.ErrUserExists and
// leaves the store unchanged.
func (s *SessionService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return "", nil, fmt.Errorf("%w: email, password and name are required", domain.ErrValidation)
	}
	role := domain.Role(input.Role)
	if !role.Valid() {
		return "", nil, fmt.Errorf("%w: role must be artist or customer", domain.ErrValidation)
	}

	if _, err := s.users.FindUserByEmail(ctx, input.Email); err == nil {
		return "", nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Email:        input.Email,
		Name:         input.Name,
		Role:         role,
		PasswordHash: string(hash),
		Profile:      domain.DefaultProfile(role),
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return "", nil, err
	}

	if err := s.commit(ctx, created); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(role)).Msg("account registered")
	return token, created, nil
}

// Logout clears the durable entry and the in-memory slot. The slot is cleared
// even when the store errors, so a stale session never survives in-process.
func (s *SessionService) Logout(ctx context.Context) error {
	err := s.store.Clear(ctx)

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err != nil {
		s.logger.Error().Err(err).Msg("failed to clear durable session slot")
		return err
	}
	return nil
}

// Current returns a snapshot of the authenticated user, or nil.
func (s *SessionService) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	clone := *s.current
	return &clone
}

// commit persists the user to the durable slot and, only on success, moves
// the in-memory state to Authenticated.
func (s *SessionService) commit(ctx context.Context, user *domain.User) error {
	if err := s.store.Save(ctx, user); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
	return nil
}

func (s *SessionService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
