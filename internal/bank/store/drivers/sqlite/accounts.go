package sqlite

import (
	"context"

	"github.com/aussiebroadwan/bankgate/internal/bank/domain"
	"github.com/aussiebroadwan/bankgate/internal/bank/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type accountsRepo struct {
	q *queries
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	return mapConstraint(r.q.CreateAccount(ctx, accountRow{
		ID:         a.ID.String(),
		OwnerEmail: a.OwnerEmail,
		Balance:    a.Balance.String(),
	}))
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id uuid.UUID) (domain.Account, error) {
	row, err := r.q.GetAccountByID(ctx, id.String())
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return mapAccount(row)
}

func (r *accountsRepo) GetAccountByOwner(ctx context.Context, email string) (domain.Account, error) {
	row, err := r.q.GetAccountByOwner(ctx, email)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return mapAccount(row)
}

func (r *accountsRepo) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.q.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Account, 0, len(rows))
	for _, row := range rows {
		a, err := mapAccount(row)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *accountsRepo) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	n, err := r.q.UpdateAccountBalance(ctx, id.String(), balance.String())
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
