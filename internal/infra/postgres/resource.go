package postgres

import (
	"context"
	"errors"
	"log/slog"

	"lease-market/internal/domain/resource"
	"lease-market/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	selectResourceByID = `
SELECT id, name, price_per_hour::text, daily_hour_cap FROM resources WHERE id = $1`

	upsertResource = `
INSERT INTO resources (id, name, price_per_hour, daily_hour_cap) VALUES ($1, $2, $3::numeric, $4)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    price_per_hour = EXCLUDED.price_per_hour,
    daily_hour_cap = EXCLUDED.daily_hour_cap,
    updated_at = now()`
)

type ResourceRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewResourceRepository(db DBTX, logger *slog.Logger) *ResourceRepository {
	return &ResourceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ResourceRepository) FindByID(ctx context.Context, id int64) (*resource.Resource, error) {
	var row resourceRow
	err := r.db.QueryRow(ctx, selectResourceByID, id).Scan(&row.ID, &row.Name, &row.PricePerHour, &row.DailyHourCap)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "resource not found", nil)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find resource by ID", err)
	}

	res, err := row.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDecodeFailure, "stored resource is invalid", err)
	}
	return res, nil
}

func (r *ResourceRepository) Upsert(ctx context.Context, res *resource.Resource) error {
	_, err := r.db.Exec(ctx, upsertResource, res.ID(), res.Name(), res.PricePerHour().String(), res.DailyHourCap())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to upsert resource", err)
	}
	return nil
}

type resourceRow struct {
	ID           int64
	Name         string
	PricePerHour string
	DailyHourCap int
}

func (row resourceRow) toDomain() (*resource.Resource, error) {
	rate, err := decimal.NewFromString(row.PricePerHour)
	if err != nil {
		return nil, err
	}
	return resource.NewResource(row.ID, row.Name, rate, resource.WithDailyHourCap(row.DailyHourCap))
}
