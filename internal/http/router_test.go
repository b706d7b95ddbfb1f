package httpx

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/endoforge/appforge/internal/domain"
	"github.com/endoforge/appforge/internal/repository"
	"github.com/endoforge/appforge/internal/service/auth"
	"github.com/endoforge/appforge/internal/service/blueprint"
	"github.com/endoforge/appforge/internal/service/evidence"
	"github.com/endoforge/appforge/pkg/config"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := newFakeStore()
	cfg := config.APIConfig{
		AuthTokenSecret: "router-test-secret",
		SessionTTL:      7 * 24 * time.Hour,
	}
	router := NewRouter(
		log,
		auth.New(store, store, log, cfg),
		evidence.New(log),
		blueprint.New(log),
		NewMemoryRateLimiter(),
		nil,
	)
	t.Cleanup(router.Close)
	return router
}

// fakeStore satisfies both repository interfaces, mirroring the
// key/value store's semantics without a running instance.
type fakeStore struct {
	mu       sync.Mutex
	users    map[string]domain.User
	sessions map[string]domain.Session
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[string]domain.User),
		sessions: make(map[string]domain.Session),
	}
}

func (f *fakeStore) CreateUser(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Email]; ok {
		return repository.ErrAlreadyExists
	}
	f.users[user.Email] = *user
	return nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (f *fakeStore) PutSession(_ context.Context, token string, session *domain.Session, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[token] = *session
	return nil
}

func (f *fakeStore) GetSession(_ context.Context, token string) (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[token]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &session, nil
}

func (f *fakeStore) DeleteSession(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, token)
	return nil
}

// downSessionRepo simulates a store outage on session reads while leaving
// writes intact, so sessions can be issued and then become unreachable.
type downSessionRepo struct {
	*fakeStore
	readErr error
}

func (d *downSessionRepo) GetSession(context.Context, string) (*domain.Session, error) {
	return nil, d.readErr
}
