package postgres

import (
	"context"
	"log/slog"
	"time"

	"lease-market/internal/domain/lease"
	"lease-market/internal/domain/master"
	"lease-market/internal/infra"
	"lease-market/internal/pkg/clock"
	"lease-market/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	// Contracts touching any day in [$2, $3).
	selectContractsForResource = `
SELECT c.id, c.price::text, c.created_at,
       m.id, m.name, m.is_vip,
       r.id, r.name, r.price_per_hour::text, r.daily_hour_cap
FROM lease_contracts c
JOIN masters m ON m.id = c.master_id
JOIN resources r ON r.id = c.resource_id
WHERE c.resource_id = $1
  AND c.last_hour >= $2
  AND c.first_hour < $3
ORDER BY c.seq`

	selectContractHours = `
SELECT contract_id, hour_at FROM lease_contract_hours
WHERE contract_id = ANY($1)
ORDER BY contract_id, hour_at`

	insertContract = `
INSERT INTO lease_contracts (id, master_id, resource_id, price, first_hour, last_hour, created_at)
VALUES ($1, $2, $3, $4::numeric, $5, $6, $7)`
)

var errEmptyContract = errs.New("contract has no hours")

type ContractRepository struct {
	db     TxBeginner
	tx     *txRunner
	clock  clock.Clock
	logger *slog.Logger
}

func NewContractRepository(db TxBeginner, clk clock.Clock, logger *slog.Logger) *ContractRepository {
	return &ContractRepository{
		db:     db,
		tx:     newTxRunner(db, logger),
		clock:  clk,
		logger: logger,
	}
}

func (r *ContractRepository) FindForResource(ctx context.Context, resourceID int64, fromDay, toDay lease.DayKey) ([]*lease.Contract, error) {
	from, err := time.ParseInLocation(lease.DayLayout, fromDay.String(), time.UTC)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDecodeFailure, "invalid from day", err)
	}
	to, err := time.ParseInLocation(lease.DayLayout, toDay.String(), time.UTC)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDecodeFailure, "invalid to day", err)
	}

	rows, err := r.db.Query(ctx, selectContractsForResource, resourceID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to query contracts", err)
	}
	headers, err := pgx.CollectRows(rows, scanContractHeader)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan contracts", err)
	}
	if len(headers) == 0 {
		return []*lease.Contract{}, nil
	}

	hours, err := r.loadHours(ctx, headers)
	if err != nil {
		return nil, err
	}

	contracts := make([]*lease.Contract, len(headers))
	for i, h := range headers {
		c, err := h.toDomain(hours[h.ID])
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDecodeFailure, "stored contract is invalid", err)
		}
		contracts[i] = c
	}
	return contracts, nil
}

func (r *ContractRepository) loadHours(ctx context.Context, headers []contractHeader) (map[uuid.UUID][]lease.HourUnit, error) {
	ids := make([]uuid.UUID, len(headers))
	for i, h := range headers {
		ids[i] = h.ID
	}

	rows, err := r.db.Query(ctx, selectContractHours, ids)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to query contract hours", err)
	}
	defer rows.Close()

	hours := make(map[uuid.UUID][]lease.HourUnit, len(ids))
	for rows.Next() {
		var (
			id uuid.UUID
			at time.Time
		)
		if err := rows.Scan(&id, &at); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan contract hour", err)
		}
		hours[id] = append(hours[id], lease.NewHourUnit(at))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read contract hours", err)
	}
	return hours, nil
}

// Save writes the contract and its hours in one transaction.
// The id and creation time are assigned here.
func (r *ContractRepository) Save(ctx context.Context, contract *lease.Contract) (*lease.Contract, error) {
	first, last, ok := contract.Span()
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDecodeFailure, "refusing to save contract", errEmptyContract)
	}

	id := uuid.New()
	createdAt := r.clock.Now().UTC()

	hours := contract.Hours()
	err := r.tx.within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, insertContract,
			id,
			contract.Master().ID(),
			contract.Resource().ID(),
			contract.Price().String(),
			first.Time(),
			last.Time(),
			createdAt,
		)
		if err != nil {
			return err
		}

		rows := make([][]any, len(hours))
		for i, h := range hours {
			rows[i] = []any{id, h.Time()}
		}
		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"lease_contract_hours"},
			[]string{"contract_id", "hour_at"},
			pgx.CopyFromRows(rows),
		)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "contract already exists", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to save contract", err)
	}

	return lease.ReconstructContract(id, contract.Master(), contract.Resource(), contract.Price(), hours, createdAt), nil
}

type contractHeader struct {
	ID        uuid.UUID
	Price     string
	CreatedAt time.Time
	Master    struct {
		ID   int64
		Name string
		VIP  bool
	}
	Resource resourceRow
}

func scanContractHeader(row pgx.CollectableRow) (contractHeader, error) {
	var h contractHeader
	err := row.Scan(
		&h.ID, &h.Price, &h.CreatedAt,
		&h.Master.ID, &h.Master.Name, &h.Master.VIP,
		&h.Resource.ID, &h.Resource.Name, &h.Resource.PricePerHour, &h.Resource.DailyHourCap,
	)
	return h, err
}

func (h contractHeader) toDomain(hours []lease.HourUnit) (*lease.Contract, error) {
	m, err := master.NewMaster(h.Master.ID, h.Master.Name, h.Master.VIP)
	if err != nil {
		return nil, err
	}
	res, err := h.Resource.toDomain()
	if err != nil {
		return nil, err
	}
	price, err := decimal.NewFromString(h.Price)
	if err != nil {
		return nil, err
	}
	return lease.ReconstructContract(h.ID, m, res, price, hours, h.CreatedAt.UTC()), nil
}
