package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/bankgate/internal/bank/domain"
	"github.com/aussiebroadwan/bankgate/internal/bank/service"
	"github.com/aussiebroadwan/bankgate/internal/bank/store"
	"github.com/aussiebroadwan/bankgate/internal/bank/store/drivers/sqlite"
	"github.com/aussiebroadwan/bankgate/pkg/cryptox"
	"github.com/aussiebroadwan/bankgate/pkg/revocation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *fakeClock { return &fakeClock{now: time.Now().UTC().Truncate(time.Second)} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// brokenStore simulates an unreachable revocation backend.
type brokenStore struct{}

var errStoreDown = errors.New("connection refused")

func (brokenStore) Put(context.Context, string, time.Duration) error { return errStoreDown }
func (brokenStore) Exists(context.Context, string) (bool, error)     { return false, errStoreDown }
func (brokenStore) Ping(context.Context) error                       { return errStoreDown }

func newTokenService(t *testing.T, clock *fakeClock, revoked revocation.Store) *service.TokenService {
	t.Helper()
	ts, err := service.NewTokenService(service.TokenConfig{
		Secret: testSecret,
		Issuer: "bank-api",
		TTL:    time.Hour,
		Now:    clock.Now,
	}, revoked)
	require.NoError(t, err)
	return ts
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

var testHasher = cryptox.NewPasswordHasher("test-pepper")

func createUser(t *testing.T, s store.Store, email, password string, role domain.Role) domain.User {
	t.Helper()
	hash, err := testHasher.Hash(password)
	require.NoError(t, err)

	u := domain.User{ID: uuid.New(), Name: "Test", Email: email, PasswordHash: hash, Role: role}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}
