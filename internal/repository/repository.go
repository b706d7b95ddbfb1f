package repository

import (
	"context"
	"time"

	"github.com/endoforge/appforge/internal/domain"
)

// UserRepository persists account records keyed by normalized email.
type UserRepository interface {
	// CreateUser stores a new user. It returns ErrAlreadyExists when the
	// email is already taken; the check-and-put is atomic.
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// SessionRepository persists live sessions keyed by raw bearer token.
// Expiry is enforced by the store's TTL, not by the caller.
type SessionRepository interface {
	PutSession(ctx context.Context, token string, session *domain.Session, ttl time.Duration) error
	// GetSession returns ErrNotFound for unknown, expired and revoked
	// tokens alike.
	GetSession(ctx context.Context, token string) (*domain.Session, error)
	// DeleteSession revokes a session. Deleting an absent token is not an
	// error.
	DeleteSession(ctx context.Context, token string) error
}
