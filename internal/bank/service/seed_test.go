package service_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/aussiebroadwan/bankgate/internal/bank/domain"
	"github.com/aussiebroadwan/bankgate/internal/bank/service"
	"github.com/stretchr/testify/require"
)

func TestSeedIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	seeder := &service.SeedService{
		Store:     s,
		Passwords: testHasher,
		Logger:    slog.Default(),
		Users:     service.DefaultSeedUsers(),
	}

	require.NoError(t, seeder.Seed(ctx))
	require.NoError(t, seeder.Seed(ctx))

	accounts, err := s.Accounts().ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2, "one account per client, none for the admin")

	admin, err := s.Users().GetUserByEmail(ctx, "admin@efrei.net")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, admin.Role)
	require.NoError(t, testHasher.Verify("securePasswordAdmin123*", admin.PasswordHash))

	for _, email := range []string{"cedric.alonso@efrei.net", "guillaume.gomez@efrei.net"} {
		a, err := s.Accounts().GetAccountByOwner(ctx, email)
		require.NoError(t, err)
		require.True(t, a.Balance.IsZero())
	}
}

func TestSeedRejectsAnonymousUsers(t *testing.T) {
	seeder := &service.SeedService{
		Store:     newTestStore(t),
		Passwords: testHasher,
		Logger:    slog.Default(),
		Users:     []service.SeedUser{{Email: "x@example.com", Password: "x", Role: domain.RoleAnonymous}},
	}
	require.ErrorIs(t, seeder.Seed(context.Background()), service.ErrInvalidRequest)
}
