package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/bankgate/internal/bank/domain"
	"github.com/aussiebroadwan/bankgate/internal/bank/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	q   *queries
	dsn string
}

var _ store.Store = (*Store)(nil)

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// An in-memory database lives and dies with its connection.
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   newQueries(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users       { return &usersRepo{q: s.q} }
func (s *Store) Accounts() store.Accounts { return &accountsRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns unique violations into store.ErrAlreadyExists. The
// driver only exposes them through the message text.
func mapConstraint(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %v", store.ErrAlreadyExists, err)
	}
	return err
}

func mapUser(row userRow) (domain.User, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("sqlite: user %q: %w", row.ID, err)
	}
	role, err := domain.ParseRole(row.Role)
	if err != nil {
		return domain.User{}, fmt.Errorf("sqlite: user %q: %w", row.ID, err)
	}

	return domain.User{
		ID:           id,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         role,
		CreatedAt:    row.CreatedAt,
	}, nil
}

func mapAccount(row accountRow) (domain.Account, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return domain.Account{}, fmt.Errorf("sqlite: account %q: %w", row.ID, err)
	}
	balance, err := decimal.NewFromString(row.Balance)
	if err != nil {
		return domain.Account{}, fmt.Errorf("sqlite: account %q balance: %w", row.ID, err)
	}

	return domain.Account{
		ID:         id,
		OwnerEmail: row.OwnerEmail,
		Balance:    balance,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}, nil
}
