package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/marufsabili148/lombaku/internal/model"
	"github.com/marufsabili148/lombaku/internal/overlay"
	"github.com/marufsabili148/lombaku/internal/remote"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email is already registered")
	ErrNotSignedIn        = errors.New("no user is signed in")
)

// Service manages the two-state session machine: signed-out (no overlay
// session record) and signed-in (overlay session mirroring one remote
// User). The mirrored record is created on login/registration and never
// re-validated against the remote store afterwards.
type Service struct {
	remote  remote.Store
	overlay *overlay.Store
	salt    string
}

// Config holds configuration for the auth service
type Config struct {
	// Salt is the fixed secret suffix for credential digests
	Salt string
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		Salt: DefaultSalt,
	}
}

// New creates a new auth service
func New(remoteStore remote.Store, overlayStore *overlay.Store, cfg Config) *Service {
	if cfg.Salt == "" {
		cfg.Salt = DefaultConfig().Salt
	}
	return &Service{
		remote:  remoteStore,
		overlay: overlayStore,
		salt:    cfg.Salt,
	}
}

// CurrentSession returns the signed-in session, or nil when signed out
func (s *Service) CurrentSession(ctx context.Context) (*model.Session, error) {
	return s.overlay.GetSession(ctx)
}

// Login authenticates against the remote store and persists a session on
// success. A credential mismatch leaves the device signed out.
func (s *Service) Login(ctx context.Context, email, password string) (*model.Session, error) {
	digest := HashPassword(password, s.salt)

	user, err := s.remote.GetUserByCredentials(ctx, strings.ToLower(email), digest)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return s.persistSession(ctx, user)
}

// Register creates a remote account and signs the device in. A user with
// the same (case-folded) email must not already exist.
func (s *Service) Register(ctx context.Context, email, password, name string) (*model.Session, error) {
	email = strings.ToLower(email)

	_, err := s.remote.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	user, err := s.remote.InsertUser(ctx, remote.NewUser{
		Email:        email,
		Name:         name,
		PasswordHash: HashPassword(password, s.salt),
	})
	if err != nil {
		return nil, err
	}

	return s.persistSession(ctx, user)
}

// Logout clears the session unconditionally
func (s *Service) Logout(ctx context.Context) error {
	return s.overlay.ClearSession(ctx)
}

// Rename updates the signed-in user's display name remotely, then mirrors
// the new name into the local session. A failed remote update leaves the
// local name untouched so the two never diverge.
func (s *Service) Rename(ctx context.Context, name string) (*model.Session, error) {
	session, err := s.overlay.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNotSignedIn
	}

	if err := s.remote.UpdateUserName(ctx, session.UserID, name); err != nil {
		return nil, err
	}

	session.Name = name
	if err := s.overlay.SetSession(ctx, *session); err != nil {
		return nil, err
	}
	return session, nil
}

// persistSession mirrors a remote user into the overlay session record
func (s *Service) persistSession(ctx context.Context, user *model.User) (*model.Session, error) {
	session := model.Session{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
	if err := s.overlay.SetSession(ctx, session); err != nil {
		return nil, err
	}
	return &session, nil
}
