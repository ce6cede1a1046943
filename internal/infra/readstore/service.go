package readstore

import (
	"context"
	"errors"

	"bookmarket/internal/infra"
	"bookmarket/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceReadStore struct {
	pool *pgxpool.Pool
}

func NewServiceReadStore(pool *pgxpool.Pool) *ServiceReadStore {
	return &ServiceReadStore{pool: pool}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ServiceRM, error) {
	const query = `
		SELECT id, business_id, name, duration_minutes, is_active, created_at, updated_at
		FROM services
		WHERE id = $1
	`

	var rm readmodel.ServiceRM
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rm.ID,
		&rm.BusinessID,
		&rm.Name,
		&rm.DurationMinutes,
		&rm.IsActive,
		&rm.CreatedAt,
		&rm.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by id", err)
	}

	return &rm, nil
}
