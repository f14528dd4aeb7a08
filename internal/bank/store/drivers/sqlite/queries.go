package sqlite

import (
	"context"
	"database/sql"
	"time"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so repos run the same
// statements in and out of transactions.
type dbtx interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

type queries struct {
	db dbtx
}

func newQueries(db dbtx) *queries { return &queries{db: db} }

type userRow struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

type accountRow struct {
	ID         string
	OwnerEmail string
	Balance    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

const getUserByEmail = `SELECT id, name, email, password_hash, role, created_at
FROM users WHERE email = ?`

func (q *queries) GetUserByEmail(ctx context.Context, email string) (userRow, error) {
	var r userRow
	err := q.db.QueryRowContext(ctx, getUserByEmail, email).
		Scan(&r.ID, &r.Name, &r.Email, &r.PasswordHash, &r.Role, &r.CreatedAt)
	return r, err
}

const createUser = `INSERT INTO users (id, name, email, password_hash, role)
VALUES (?, ?, ?, ?, ?)`

func (q *queries) CreateUser(ctx context.Context, r userRow) error {
	_, err := q.db.ExecContext(ctx, createUser, r.ID, r.Name, r.Email, r.PasswordHash, r.Role)
	return err
}

const countUsers = `SELECT COUNT(*) FROM users`

func (q *queries) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countUsers).Scan(&n)
	return n, err
}

const accountColumns = `id, owner_email, balance, created_at, updated_at`

func scanAccount(s interface{ Scan(...any) error }) (accountRow, error) {
	var r accountRow
	err := s.Scan(&r.ID, &r.OwnerEmail, &r.Balance, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

const createAccount = `INSERT INTO accounts (id, owner_email, balance) VALUES (?, ?, ?)`

func (q *queries) CreateAccount(ctx context.Context, r accountRow) error {
	_, err := q.db.ExecContext(ctx, createAccount, r.ID, r.OwnerEmail, r.Balance)
	return err
}

const getAccountByID = `SELECT ` + accountColumns + ` FROM accounts WHERE id = ?`

func (q *queries) GetAccountByID(ctx context.Context, id string) (accountRow, error) {
	return scanAccount(q.db.QueryRowContext(ctx, getAccountByID, id))
}

const getAccountByOwner = `SELECT ` + accountColumns + ` FROM accounts WHERE owner_email = ?`

func (q *queries) GetAccountByOwner(ctx context.Context, email string) (accountRow, error) {
	return scanAccount(q.db.QueryRowContext(ctx, getAccountByOwner, email))
}

const listAccounts = `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at, id`

func (q *queries) ListAccounts(ctx context.Context) ([]accountRow, error) {
	rows, err := q.db.QueryContext(ctx, listAccounts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []accountRow
	for rows.Next() {
		r, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

const updateAccountBalance = `UPDATE accounts
SET balance = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?`

func (q *queries) UpdateAccountBalance(ctx context.Context, id, balance string) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateAccountBalance, balance, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
