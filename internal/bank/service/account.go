package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/bankgate/internal/bank/domain"
	"github.com/aussiebroadwan/bankgate/internal/bank/store"
	"github.com/aussiebroadwan/bankgate/pkg/slogx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Amounts fit a NUMERIC(19,2) column.
const (
	maxAmountScale         = 2
	maxAmountIntegerDigits = 17
)

type AccountService struct {
	Store  store.Store
	Policy TransactionPolicy
}

// Create opens a zero-balance account for an existing user.
func (s *AccountService) Create(ctx context.Context, ownerEmail string) (domain.Account, error) {
	ownerEmail = strings.TrimSpace(ownerEmail)
	if ownerEmail == "" {
		return domain.Account{}, withDetail(ErrInvalidRequest, "ownerEmail is required")
	}

	account := domain.Account{
		ID:         uuid.New(),
		OwnerEmail: ownerEmail,
		Balance:    decimal.Zero,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByEmail(ctx, ownerEmail); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return withDetail(ErrNotFound, "No user found for email '%s'.", ownerEmail)
			}
			return err
		}

		_, err := tx.Accounts().GetAccountByOwner(ctx, ownerEmail)
		switch {
		case err == nil:
			return withDetail(ErrAlreadyExists, "The user '%s' already has a bank account.", ownerEmail)
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		if err := tx.Accounts().CreateAccount(ctx, account); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return withDetail(ErrAlreadyExists, "The user '%s' already has a bank account.", ownerEmail)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Account{}, err
	}

	slogx.FromContext(ctx).Info("bank account created",
		slog.String("account_id", account.ID.String()),
		slog.String("owner", ownerEmail),
	)
	return s.Store.Accounts().GetAccountByID(ctx, account.ID)
}

// All lists every account.
func (s *AccountService) All(ctx context.Context) ([]domain.Account, error) {
	return s.Store.Accounts().ListAccounts(ctx)
}

// ByOwner returns the account owned by email.
func (s *AccountService) ByOwner(ctx context.Context, email string) (domain.Account, error) {
	a, err := s.Store.Accounts().GetAccountByOwner(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, withDetail(ErrNotFound, "No account found for owner '%s'.", email)
		}
		return domain.Account{}, err
	}
	return a, nil
}

// Credit adds amount to the account after the transaction policy approves it
// for the caller's role.
func (s *AccountService) Credit(ctx context.Context, id uuid.UUID, amount decimal.Decimal, who domain.Identity) (domain.Account, error) {
	return s.apply(ctx, "credit", id, amount, who, decimal.Decimal.Add)
}

// Debit subtracts amount. Balances may go negative; there is no overdraft
// rule.
func (s *AccountService) Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal, who domain.Identity) (domain.Account, error) {
	return s.apply(ctx, "debit", id, amount, who, decimal.Decimal.Sub)
}

func (s *AccountService) apply(
	ctx context.Context,
	op string,
	id uuid.UUID,
	amount decimal.Decimal,
	who domain.Identity,
	fn func(balance, amount decimal.Decimal) decimal.Decimal,
) (domain.Account, error) {
	if err := checkAmount(amount); err != nil {
		return domain.Account{}, err
	}

	var updated domain.Account
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		account, err := tx.Accounts().GetAccountByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return withDetail(ErrNotFound, "No account found for id '%s'.", id)
			}
			return err
		}

		if err := s.Policy.Authorize(amount, who.Role); err != nil {
			return err
		}

		account.Balance = fn(account.Balance, amount)
		if err := tx.Accounts().UpdateBalance(ctx, account.ID, account.Balance); err != nil {
			return err
		}
		updated = account
		return nil
	})
	if err != nil {
		return domain.Account{}, err
	}

	slogx.FromContext(ctx).Info("bank account "+op+"ed",
		slog.String("account_id", id.String()),
		slog.String("amount", amount.String()),
		slog.String("balance", updated.Balance.String()),
	)
	return updated, nil
}

// checkAmount bounds the exponent before any arithmetic runs, since comparing
// or adding decimals rescales them to a common exponent.
func checkAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return withDetail(ErrInvalidAmount, "amount must not be negative")
	}
	exp := int(amount.Exponent())
	if exp < -18 || exp+amount.NumDigits() > maxAmountIntegerDigits {
		return withDetail(ErrInvalidAmount, "amount is out of range")
	}
	if !amount.Equal(amount.Round(maxAmountScale)) {
		return withDetail(ErrInvalidAmount, "amount must have at most %d decimal places", maxAmountScale)
	}
	return nil
}
