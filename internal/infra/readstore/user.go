package readstore

import (
	"context"
	"errors"

	"bookmarket/internal/domain/user"
	"bookmarket/internal/infra"
	"bookmarket/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error) {
	const query = `
		SELECT id, email, role, business_id, is_active, password_hash
		FROM users
		WHERE email = $1
	`

	var (
		rm   readmodel.AuthorizedUserRM
		hash string
	)
	err := r.pool.QueryRow(ctx, query, email.String()).Scan(
		&rm.ID,
		&rm.Email,
		&rm.Role,
		&rm.BusinessID,
		&rm.IsActive,
		&hash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &rm, hash, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	const query = `
		SELECT id, email, role, business_id, is_active
		FROM users
		WHERE id = $1
	`

	var rm readmodel.AuthorizedUserRM
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rm.ID,
		&rm.Email,
		&rm.Role,
		&rm.BusinessID,
		&rm.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}

	return &rm, nil
}
