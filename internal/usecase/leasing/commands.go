package leasing

//go:generate mockgen -source=commands.go -destination=../../../tests/mock/leasing/mock_commands.go -package=leasingmock

import (
	"context"
	"log/slog"

	"lease-market/internal/domain/lease"
	"lease-market/internal/infra"
	"lease-market/internal/pkg/errs"
	"lease-market/internal/pkg/keylock"
)

type LeaseResult struct {
	// Response is the engine outcome; Contract is set only when it was accepted and saved.
	Response *Response
	Contract *lease.Contract
}

type Commands interface {
	Lease(ctx context.Context, req Request) (*LeaseResult, error)
}

type commandsImpl struct {
	engine *Engine
	store  ContractStore
	locks  *keylock.Locker[int64]
	logger *slog.Logger
}

func NewCommands(engine *Engine, store ContractStore, logger *slog.Logger) Commands {
	if logger == nil {
		logger = slog.Default()
	}
	return &commandsImpl{
		engine: engine,
		store:  store,
		locks:  keylock.New[int64](),
		logger: logger,
	}
}

// Lease runs the engine and saves an accepted contract. Runs for the same
// resource are serialized within this process so a check and its save are not
// interleaved with another request for that resource.
func (c *commandsImpl) Lease(ctx context.Context, req Request) (*LeaseResult, error) {
	release, err := c.locks.Acquire(ctx, req.ResourceID)
	if err != nil {
		return nil, errs.Wrap(err, "waiting for resource lock")
	}
	defer release()

	resp := c.engine.Run(ctx, req)
	if !resp.OK() {
		return &LeaseResult{Response: resp}, nil
	}

	saved, err := c.store.Save(ctx, resp.Contract())
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrContractConflict)
		}
		return nil, errs.Mark(err, errs.ErrStorageOperationFailed)
	}

	c.logger.Info("lease contract saved",
		slog.String("contract_id", saved.ID().String()),
		slog.Int64("master_id", req.MasterID),
		slog.Int64("resource_id", req.ResourceID),
		slog.String("price", saved.Price().StringFixed(2)),
	)

	return &LeaseResult{Response: resp, Contract: saved}, nil
}
