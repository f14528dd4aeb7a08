package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/bankgate/internal/bank/domain"
	"github.com/aussiebroadwan/bankgate/internal/bank/store"
	"github.com/aussiebroadwan/bankgate/pkg/cryptox"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SeedUser describes a user created on first start.
type SeedUser struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// DefaultSeedUsers are the demo accounts the service starts with.
func DefaultSeedUsers() []SeedUser {
	return []SeedUser{
		{Name: "Cédric Alonso", Email: "cedric.alonso@efrei.net", Password: "securePasswordCedric123*", Role: domain.RoleClient},
		{Name: "Guillaume Gomez", Email: "guillaume.gomez@efrei.net", Password: "securePasswordGuillaume123*", Role: domain.RoleClient},
		{Name: "Admin", Email: "admin@efrei.net", Password: "securePasswordAdmin123*", Role: domain.RoleAdmin},
	}
}

type SeedService struct {
	Store     store.Store
	Passwords *cryptox.PasswordHasher
	Logger    *slog.Logger
	Users     []SeedUser
}

// Seed creates the configured users and a zero-balance account for every
// client. Users and accounts that already exist are left untouched, so it is
// safe to run on every start.
func (s *SeedService) Seed(ctx context.Context) error {
	created := 0
	for _, su := range s.Users {
		if !su.Role.Storable() {
			return ErrInvalidRequest
		}

		n, err := s.seedOne(ctx, su)
		if err != nil {
			return err
		}
		created += n
	}

	s.Logger.Info("database seeded", "records_created", created)
	return nil
}

func (s *SeedService) seedOne(ctx context.Context, su SeedUser) (int, error) {
	hash, err := s.Passwords.Hash(su.Password)
	if err != nil {
		return 0, err
	}

	created := 0
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().GetUserByEmail(ctx, su.Email)
		switch {
		case errors.Is(err, store.ErrNotFound):
			if err := tx.Users().CreateUser(ctx, domain.User{
				ID:           uuid.New(),
				Name:         su.Name,
				Email:        su.Email,
				PasswordHash: hash,
				Role:         su.Role,
			}); err != nil {
				return err
			}
			created++
		case err != nil:
			return err
		}

		if su.Role != domain.RoleClient {
			return nil
		}

		_, err = tx.Accounts().GetAccountByOwner(ctx, su.Email)
		switch {
		case errors.Is(err, store.ErrNotFound):
			if err := tx.Accounts().CreateAccount(ctx, domain.Account{
				ID:         uuid.New(),
				OwnerEmail: su.Email,
				Balance:    decimal.Zero,
			}); err != nil {
				return err
			}
			created++
		case err != nil:
			return err
		}
		return nil
	})
	return created, err
}
