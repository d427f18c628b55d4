// Command seed loads a TOML catalog of masters and resources into the
// configured storage backend.
//
//	seed -file catalog.toml
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"lease-market/internal/catalog"
	"lease-market/internal/handler/middleware"
	"lease-market/internal/infra/boltstore"
	"lease-market/internal/infra/db"
	"lease-market/internal/infra/postgres"
	"lease-market/internal/pkg/clock"
	"lease-market/internal/pkg/config"
)

func main() {
	file := flag.String("file", "catalog.toml", "path to the TOML catalog")
	timeout := flag.Duration("timeout", 30*time.Second, "overall timeout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	if err := run(cfg, *file, *timeout, logger); err != nil {
		logger.Error("seed failed", "file", *file, "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, path string, timeout time.Duration, logger *slog.Logger) error {
	f, err := catalog.ReadFile(path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	switch cfg.Storage.Driver {
	case config.StorageDriverBolt:
		store, err := boltstore.Open(cfg.Storage.BoltPath, cfg.Storage.BoltTimeout, clock.NewRealClock(), logger)
		if err != nil {
			return err
		}
		defer store.Close()
		return catalog.NewLoader(store.Masters(), store.Resources(), logger).Load(ctx, f)
	default:
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return err
		}
		defer cleanup()
		return catalog.NewLoader(
			postgres.NewMasterRepository(pool, logger),
			postgres.NewResourceRepository(pool, logger),
			logger,
		).Load(ctx, f)
	}
}
