package sqlite

import (
	"context"

	"github.com/aussiebroadwan/bankgate/internal/bank/domain"
)

type usersRepo struct {
	q *queries
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	return mapConstraint(r.q.CreateUser(ctx, userRow{
		ID:           u.ID.String(),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role.String(),
	}))
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	count, err := r.q.CountUsers(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
