package sqlite

import (
	"context"

	"github.com/aussiebroadwan/inventory/internal/inventory/domain"
)

type usersRepo struct {
	q *queries
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row, err := r.q.GetUserByUsername(ctx, username)
	if err != nil {
		return domain.User{}, mapErr(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, username, passwordHash string) (domain.User, error) {
	row, err := r.q.CreateUser(ctx, username, passwordHash)
	if err != nil {
		return domain.User{}, mapErr(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	return affectedOne(r.q.UpdateUserPassword(ctx, userID, passwordHash))
}

func (r *usersRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.q.CountUsers(ctx)
	if err != nil {
		return 0, mapErr(err)
	}
	return n, nil
}
