package service_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/bankgate/internal/bank/domain"
	"github.com/aussiebroadwan/bankgate/internal/bank/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	client = domain.Identity{Subject: "alice@example.com", Role: domain.RoleClient}
	admin  = domain.Identity{Subject: "root@example.com", Role: domain.RoleAdmin}
)

func newAccountService(t *testing.T) *service.AccountService {
	t.Helper()
	s := newTestStore(t)
	createUser(t, s, client.Subject, "pw", domain.RoleClient)
	createUser(t, s, admin.Subject, "pw", domain.RoleAdmin)

	return &service.AccountService{
		Store:  s,
		Policy: service.NewTransactionPolicy(service.DefaultTransactionThreshold),
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAccountCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newAccountService(t)

	a, err := svc.Create(ctx, client.Subject)
	require.NoError(t, err)
	require.Equal(t, client.Subject, a.OwnerEmail)
	require.True(t, a.Balance.IsZero())
	require.NotEqual(t, uuid.Nil, a.ID)

	t.Run("duplicate", func(t *testing.T) {
		_, err := svc.Create(ctx, client.Subject)
		require.ErrorIs(t, err, service.ErrAlreadyExists)
		require.Equal(t, "The user 'alice@example.com' already has a bank account.", service.Detail(err))
	})

	t.Run("unknown owner", func(t *testing.T) {
		_, err := svc.Create(ctx, "ghost@example.com")
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("empty owner", func(t *testing.T) {
		_, err := svc.Create(ctx, " ")
		require.ErrorIs(t, err, service.ErrInvalidRequest)
	})

	t.Run("lookups", func(t *testing.T) {
		mine, err := svc.ByOwner(ctx, client.Subject)
		require.NoError(t, err)
		require.Equal(t, a.ID, mine.ID)

		_, err = svc.ByOwner(ctx, admin.Subject)
		require.ErrorIs(t, err, service.ErrNotFound)

		all, err := svc.All(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})
}

func TestAccountCreditDebit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newAccountService(t)

	a, err := svc.Create(ctx, client.Subject)
	require.NoError(t, err)

	got, err := svc.Credit(ctx, a.ID, dec("1000"), client)
	require.NoError(t, err)
	require.True(t, dec("1000").Equal(got.Balance))

	got, err = svc.Credit(ctx, a.ID, dec("2500.50"), admin)
	require.NoError(t, err)
	require.True(t, dec("3500.50").Equal(got.Balance))

	got, err = svc.Debit(ctx, a.ID, dec("0.50"), client)
	require.NoError(t, err)
	require.True(t, dec("3500").Equal(got.Balance))

	t.Run("policy denial leaves balance alone", func(t *testing.T) {
		_, err := svc.Credit(ctx, a.ID, dec("1000"), admin)
		require.ErrorIs(t, err, service.ErrForbidden)

		_, err = svc.Debit(ctx, a.ID, dec("1000.01"), client)
		require.ErrorIs(t, err, service.ErrForbidden)

		cur, err := svc.ByOwner(ctx, client.Subject)
		require.NoError(t, err)
		require.True(t, dec("3500").Equal(cur.Balance))
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := svc.Credit(ctx, a.ID, dec("-5"), client)
		require.ErrorIs(t, err, service.ErrInvalidAmount)
	})

	t.Run("amount out of range leaves balance alone", func(t *testing.T) {
		for _, raw := range []string{"1e-20000000", "0e-20000000", "1e20000000", "0.001", "100000000000000000"} {
			_, err := svc.Credit(ctx, a.ID, dec(raw), client)
			require.ErrorIs(t, err, service.ErrInvalidAmount, "amount %s", raw)

			_, err = svc.Debit(ctx, a.ID, dec(raw), admin)
			require.ErrorIs(t, err, service.ErrInvalidAmount, "amount %s", raw)
		}

		cur, err := svc.ByOwner(ctx, client.Subject)
		require.NoError(t, err)
		require.True(t, dec("3500").Equal(cur.Balance))
	})

	t.Run("trailing zeros within scale", func(t *testing.T) {
		got, err := svc.Credit(ctx, a.ID, dec("0.500"), client)
		require.NoError(t, err)
		require.True(t, dec("3500.5").Equal(got.Balance))

		got, err = svc.Debit(ctx, a.ID, dec("0.5"), client)
		require.NoError(t, err)
		require.True(t, dec("3500").Equal(got.Balance))
	})

	t.Run("unknown account wins over policy", func(t *testing.T) {
		_, err := svc.Credit(ctx, uuid.New(), dec("5000"), client)
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("no overdraft rule", func(t *testing.T) {
		got, err := svc.Debit(ctx, a.ID, dec("5000"), admin)
		require.NoError(t, err)
		require.True(t, dec("-1500").Equal(got.Balance))
	})
}
