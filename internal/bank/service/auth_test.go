package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/bankgate/internal/bank/domain"
	"github.com/aussiebroadwan/bankgate/internal/bank/service"
	"github.com/aussiebroadwan/bankgate/pkg/revocation"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T, clock *fakeClock) *service.AuthService {
	t.Helper()
	return &service.AuthService{
		Store:     newTestStore(t),
		Tokens:    newTokenService(t, clock, revocation.NewMemoryStore(clock.Now)),
		Passwords: testHasher,
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clock := newClock()
	svc := newAuthService(t, clock)
	createUser(t, svc.Store, "alice@example.com", "s3cret!", domain.RoleClient)

	t.Run("valid credentials", func(t *testing.T) {
		res, err := svc.Login(ctx, "alice@example.com", "s3cret!")
		require.NoError(t, err)
		require.NotEmpty(t, res.Token)
		require.Equal(t, time.Hour, res.ExpiresIn)
		require.Equal(t, clock.Now().Add(time.Hour), res.ExpiresAt)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice@example.com", "nope")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email looks the same", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "s3cret!")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clock := newClock()
	svc := newAuthService(t, clock)
	createUser(t, svc.Store, "root@example.com", "r00t!", domain.RoleAdmin)

	res, err := svc.Login(ctx, "root@example.com", "r00t!")
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		id, err := svc.Authenticate(ctx, res.Token)
		require.NoError(t, err)
		require.Equal(t, domain.Identity{Subject: "root@example.com", Role: domain.RoleAdmin}, id)

		u, err := svc.Me(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "root@example.com", u.Email)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "garbage")
		require.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("subject without a user", func(t *testing.T) {
		ghost, _, err := svc.Tokens.Issue("ghost@example.com")
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, ghost)
		require.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		clock := newClock()
		svc := newAuthService(t, clock)
		createUser(t, svc.Store, "bob@example.com", "b0b!", domain.RoleClient)

		res, err := svc.Login(ctx, "bob@example.com", "b0b!")
		require.NoError(t, err)

		clock.Advance(time.Hour)
		_, err = svc.Authenticate(ctx, res.Token)
		require.ErrorIs(t, err, service.ErrInvalidToken)
	})
}

func TestLogoutInvalidatesToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clock := newClock()
	svc := newAuthService(t, clock)
	createUser(t, svc.Store, "alice@example.com", "s3cret!", domain.RoleClient)

	res, err := svc.Login(ctx, "alice@example.com", "s3cret!")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, res.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, res.Token))

	clock.Advance(time.Minute)
	_, err = svc.Authenticate(ctx, res.Token)
	require.ErrorIs(t, err, service.ErrInvalidToken, "revoked long before natural expiry")

	// A fresh login still works.
	res2, err := svc.Login(ctx, "alice@example.com", "s3cret!")
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, res2.Token)
	require.NoError(t, err)
}

func TestMeUnknownUser(t *testing.T) {
	svc := newAuthService(t, newClock())
	_, err := svc.Me(context.Background(), domain.Identity{Subject: "ghost@example.com", Role: domain.RoleClient})
	require.ErrorIs(t, err, service.ErrNotFound)
}
