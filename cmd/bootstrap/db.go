package bootstrap

import (
	"context"
	"log/slog"

	"lease-market/internal/infra/boltstore"
	"lease-market/internal/infra/db"
	"lease-market/internal/pkg/clock"
	"lease-market/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
		NewBoltStore,
	),
)

// NewDB returns a nil pool when postgres is not the configured driver.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	if cfg.Storage.Driver != config.StorageDriverPostgres {
		return nil, nil
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
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

// NewBoltStore returns a nil store when bolt is not the configured driver.
func NewBoltStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (*boltstore.Store, error) {
	if cfg.Storage.Driver != config.StorageDriverBolt {
		return nil, nil
	}

	store, err := boltstore.Open(cfg.Storage.BoltPath, cfg.Storage.BoltTimeout, clk, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
