package bootstrap

import (
	"context"
	"log/slog"

	"bookmarket/internal/infra/db"
	"bookmarket/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.DB.RunMigrations {
		migrator, err := db.NewMigrator(pool, cfg.DB.MigrationsDir)
		if err != nil {
			cleanup()
			return nil, err
		}
		if err := migrator.Up(context.Background()); err != nil {
			cleanup()
			return nil, err
		}
		slog.Info("database migrations applied", "dir", cfg.DB.MigrationsDir)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
