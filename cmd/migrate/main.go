// Command migrate applies migrations/schema.sql to the configured postgres
// database through the atlas CLI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"lease-market/internal/handler/middleware"
	"lease-market/internal/pkg/config"
	"lease-market/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	schema := flag.String("schema", "file://migrations/schema.sql", "desired schema URL")
	devURL := flag.String("dev-url", "docker://postgres/17/dev?search_path=public", "atlas dev database URL")
	dryRun := flag.Bool("dry-run", false, "print the plan without applying it")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	if cfg.Storage.Driver != config.StorageDriverPostgres {
		logger.Info("nothing to migrate", "storage_driver", cfg.Storage.Driver)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := apply(ctx, cfg.DB.BuildDSN(), *schema, *devURL, *dryRun); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
	logger.Info("schema applied", "schema", *schema, "dry_run", *dryRun)
}

func apply(ctx context.Context, url, schema, devURL string, dryRun bool) error {
	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		return errs.Wrap(err, "failed to create atlas client")
	}

	_, err = client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         url,
		To:          schema,
		DevURL:      devURL,
		DryRun:      dryRun,
		AutoApprove: !dryRun,
	})
	if err != nil {
		return errs.Wrap(err, "atlas schema apply")
	}
	return nil
}
