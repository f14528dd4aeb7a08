package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/bankgate/internal/bank/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose sub-repositories so a transaction can hand out the same repos.
type Store interface {
	Users() Users
	Accounts() Accounts

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByEmail looks a user up by token subject.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user. Duplicate emails yield ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Accounts interface {
	// CreateAccount inserts an account. A second account for the same owner
	// yields ErrAlreadyExists.
	CreateAccount(ctx context.Context, a domain.Account) error

	GetAccountByID(ctx context.Context, id uuid.UUID) (domain.Account, error)
	GetAccountByOwner(ctx context.Context, email string) (domain.Account, error)

	// ListAccounts returns every account, oldest first.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// UpdateBalance overwrites the balance and bumps updated_at.
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
}
