package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/endoforge/appforge/internal/domain"
	"github.com/endoforge/appforge/internal/repository"
	"github.com/endoforge/appforge/pkg/config"
	"github.com/endoforge/appforge/pkg/crypto"
	"github.com/endoforge/appforge/pkg/token"
)

// ErrInvalidCredentials covers both unknown email and wrong password so
// callers cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// ErrEmailTaken indicates signup hit an existing account.
var ErrEmailTaken = errors.New("auth: email already registered")

// Service owns credentials and sessions. Session liveness is decided by
// the store lookup in Resolve; the signature embedded in each token is an
// issuance-integrity layer and is not re-verified on the request path.
type Service struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	logger   *slog.Logger
	cfg      config.APIConfig
}

// New constructs a Service.
func New(users repository.UserRepository, sessions repository.SessionRepository, logger *slog.Logger, cfg config.APIConfig) Service {
	return Service{users: users, sessions: sessions, logger: logger, cfg: cfg}
}

// NormalizeEmail canonicalizes an email for use as a store key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a new account and opens its first session. The
// uniqueness check is atomic in the store, so a concurrent duplicate
// signup loses with ErrEmailTaken.
func (s Service) Signup(ctx context.Context, email, password string) (*domain.User, string, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        NormalizeEmail(email),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}
	tok, err := s.openSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("user registered", "user_id", user.ID)
	return user, tok, nil
}

// Login verifies credentials and opens a new session. Each login creates
// an independent session; existing ones are untouched.
func (s Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !crypto.VerifyPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}
	tok, err := s.openSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("user logged in", "user_id", user.ID)
	return user, tok, nil
}

// Resolve looks the raw bearer token up in the session store. This is the
// authoritative liveness check for every protected request; expired and
// revoked sessions return repository.ErrNotFound.
func (s Service) Resolve(ctx context.Context, tok string) (*domain.Session, error) {
	if strings.TrimSpace(tok) == "" {
		return nil, repository.ErrNotFound
	}
	return s.sessions.GetSession(ctx, tok)
}

// Logout revokes the session for tok. Other sessions of the same user
// stay live.
func (s Service) Logout(ctx context.Context, tok string) error {
	return s.sessions.DeleteSession(ctx, tok)
}

func (s Service) openSession(ctx context.Context, user *domain.User) (string, error) {
	tok, err := token.Sign(user.ID, []byte(s.cfg.AuthTokenSecret))
	if err != nil {
		return "", err
	}
	session := &domain.Session{UserID: user.ID, Email: user.Email}
	if err := s.sessions.PutSession(ctx, tok, session, s.cfg.SessionTTL); err != nil {
		return "", err
	}
	return tok, nil
}
