package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/xnn-portal/xnn-portal/internal/identity"
	"github.com/xnn-portal/xnn-portal/internal/shared"
)

// Credentials is the login input.
type Credentials struct {
	Username string `validate:"required"`
	Secret   string `validate:"required"`
}

// ServiceConfig tunes the session boundary.
type ServiceConfig struct {
	SessionTTL time.Duration
	// LoginDelay simulates directory latency. The delay is not cancellable
	// once started.
	LoginDelay time.Duration
}

// Service is the session/login boundary. Credential comparison is exact
// string equality against the seeded directory; this system is a mock by
// construction and stores no hashes.
type Service struct {
	directory identity.DirectoryPort
	sessions  SessionStore
	clock     shared.Clock
	validate  *validator.Validate
	logger    *slog.Logger
	cfg       ServiceConfig
}

// NewService constructs the auth service.
func NewService(directory identity.DirectoryPort, sessions SessionStore, clock shared.Clock, logger *slog.Logger, cfg ServiceConfig) *Service {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	return &Service{
		directory: directory,
		sessions:  sessions,
		clock:     clock,
		validate:  validator.New(),
		logger:    logger,
		cfg:       cfg,
	}
}

// Login authenticates a credential pair. Every failure shape, unknown
// username included, reports the same shared.ErrInvalidCredentials so the
// response does not reveal which half was wrong.
func (s *Service) Login(ctx context.Context, creds Credentials) (Session, identity.Principal, error) {
	if err := s.validate.Struct(creds); err != nil {
		return Session{}, identity.Principal{}, shared.ErrInvalidCredentials
	}

	if s.cfg.LoginDelay > 0 {
		time.Sleep(s.cfg.LoginDelay)
	}

	entry, err := s.directory.Lookup(ctx, creds.Username)
	if err != nil {
		return Session{}, identity.Principal{}, shared.ErrInvalidCredentials
	}
	if entry.Secret != creds.Secret || !entry.Principal.IsActive {
		return Session{}, identity.Principal{}, shared.ErrInvalidCredentials
	}

	now := s.clock.Now()
	sess := Session{
		Token:       uuid.NewString(),
		PrincipalID: entry.Principal.ID,
		Username:    entry.Principal.Username,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.cfg.SessionTTL),
	}
	if err := s.sessions.Put(ctx, sess); err != nil {
		return Session{}, identity.Principal{}, err
	}
	if err := s.directory.TouchLastActive(ctx, entry.Principal.ID, now); err != nil && s.logger != nil {
		s.logger.Warn("touch last active", slog.Any("error", err))
	}

	principal := entry.Principal
	principal.LastActive = now
	return sess, principal, nil
}

// Logout removes the session unconditionally. It has no failure mode a
// caller can act on; an unknown token is already logged out.
func (s *Service) Logout(ctx context.Context, token string) {
	if err := s.sessions.Delete(ctx, token); err != nil && s.logger != nil {
		s.logger.Warn("delete session", slog.Any("error", err))
	}
}

// Authenticate resolves a token to its principal. Unknown and expired
// tokens both resolve to nil, which callers treat as anonymous.
func (s *Service) Authenticate(ctx context.Context, token string) (*identity.Principal, error) {
	if token == "" {
		return nil, nil
	}
	sess, ok, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if !ok || sess.Expired(s.clock.Now()) {
		return nil, nil
	}
	principal, err := s.directory.Principal(ctx, sess.PrincipalID)
	if err != nil {
		return nil, nil
	}
	return &principal, nil
}

// SweepExpired removes expired sessions from the store.
func (s *Service) SweepExpired(ctx context.Context) (int, error) {
	return s.sessions.DeleteExpired(ctx, s.clock.Now())
}
