package db

import (
	"context"

	"bookmarket/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrator applies goose SQL migrations over the shared pgx pool.
type Migrator struct {
	pool *pgxpool.Pool
	dir  string
}

func NewMigrator(pool *pgxpool.Pool, dir string) (*Migrator, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, errs.Wrap(err, "failed to set goose dialect")
	}
	return &Migrator{pool: pool, dir: dir}, nil
}

func (m *Migrator) Up(ctx context.Context) error {
	// goose drives database/sql, so borrow a *sql.DB view of the pool.
	sqlDB := stdlib.OpenDBFromPool(m.pool)
	defer sqlDB.Close()

	if err := goose.UpContext(ctx, sqlDB, m.dir); err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}
	return nil
}

func (m *Migrator) Version(ctx context.Context) (int64, error) {
	sqlDB := stdlib.OpenDBFromPool(m.pool)
	defer sqlDB.Close()

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return 0, errs.Wrap(err, "failed to read migration version")
	}
	return version, nil
}
