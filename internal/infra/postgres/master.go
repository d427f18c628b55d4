package postgres

import (
	"context"
	"errors"
	"log/slog"

	"lease-market/internal/domain/master"
	"lease-market/internal/infra"

	"github.com/jackc/pgx/v5"
)

const (
	selectMasterByID = `SELECT id, name, is_vip FROM masters WHERE id = $1`

	upsertMaster = `
INSERT INTO masters (id, name, is_vip) VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, is_vip = EXCLUDED.is_vip, updated_at = now()`
)

type MasterRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewMasterRepository(db DBTX, logger *slog.Logger) *MasterRepository {
	return &MasterRepository{
		db:     db,
		logger: logger,
	}
}

func (r *MasterRepository) FindByID(ctx context.Context, id int64) (*master.Master, error) {
	var (
		name string
		vip  bool
	)
	err := r.db.QueryRow(ctx, selectMasterByID, id).Scan(&id, &name, &vip)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "master not found", nil)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find master by ID", err)
	}

	m, err := master.NewMaster(id, name, vip)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDecodeFailure, "stored master is invalid", err)
	}
	return m, nil
}

func (r *MasterRepository) Upsert(ctx context.Context, m *master.Master) error {
	if _, err := r.db.Exec(ctx, upsertMaster, m.ID(), m.Name(), m.IsVIP()); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to upsert master", err)
	}
	return nil
}
