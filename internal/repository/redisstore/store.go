package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/cenkalti/backoff/v5"
	redis "github.com/redis/go-redis/v9"

	"github.com/endoforge/appforge/internal/domain"
	"github.com/endoforge/appforge/internal/repository"
)

const (
	userKeyPrefix    = "user:"
	sessionKeyPrefix = "session:"

	connectMaxElapsed = 15 * time.Second
	pingTimeout       = 2 * time.Second
)

// Store is the Redis-backed key-value store holding user records and live
// sessions. Users live at user:<email> without expiry; sessions live at
// session:<token> with the configured TTL.
type Store struct {
	client *redis.Client
	logger *slog.Logger
}

// New connects to Redis and verifies connectivity, retrying with
// exponential backoff so the API survives the store starting slightly
// later than the process.
func New(addr, password string, db int, logger *slog.Logger) (*Store, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ping := func() (struct{}, error) {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()
		return struct{}{}, client.Ping(ctx).Err()
	}
	notify := func(err error, next time.Duration) {
		logger.Warn("store unreachable, retrying", "error", err, "next_attempt_in", next)
	}
	if _, err := backoff.Retry(context.Background(), ping,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(connectMaxElapsed),
		backoff.WithNotify(notify),
	); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect store: %w", err)
	}
	return &Store{client: client, logger: logger}, nil
}

// CreateUser stores a user record with SET NX so concurrent signups for
// the same email cannot both win.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	ok, err := s.client.SetNX(ctx, userKeyPrefix+user.Email, payload, 0).Result()
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	if !ok {
		return repository.ErrAlreadyExists
	}
	return nil
}

// GetUserByEmail loads a user record.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	raw, err := s.client.Get(ctx, userKeyPrefix+email).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &user, nil
}

// PutSession stores a session snapshot under the raw token with a TTL.
func (s *Store) PutSession(ctx context.Context, token string, session *domain.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+token, payload, ttl).Err(); err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// GetSession loads the session for a token. Expired and revoked sessions
// are indistinguishable from never-issued ones.
func (s *Store) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

// DeleteSession revokes a session.
func (s *Store) DeleteSession(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Ping reports store health.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the client.
func (s *Store) Close() error {
	return s.client.Close()
}
