package leasing

import (
	"context"
	"fmt"
	"log/slog"

	"lease-market/internal/domain/lease"
	"lease-market/internal/domain/master"
	"lease-market/internal/domain/resource"
	"lease-market/internal/infra"
	"lease-market/internal/pkg/errs"
)

// Engine validates and prices lease requests. It keeps no state between calls,
// so one Engine may serve concurrent callers when its repositories allow it.
type Engine struct {
	masters   MasterRepository
	resources ResourceRepository
	contracts ContractRepository
	logger    *slog.Logger
}

func NewEngine(
	masters MasterRepository,
	resources ResourceRepository,
	contracts ContractRepository,
	logger *slog.Logger,
) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		masters:   masters,
		resources: resources,
		contracts: contracts,
		logger:    logger,
	}
}

// Run never returns an error: every failure ends up as the single rejection on
// the response. Repositories are called once each, master then resource then
// contracts, and stop at the first failure.
func (e *Engine) Run(ctx context.Context, req Request) (resp *Response) {
	defer func() {
		if p := recover(); p != nil {
			resp = e.fail(req, errs.New(fmt.Sprintf("panic during lease run: %v", p)))
		}
	}()

	m, err := e.resolveMaster(ctx, req.MasterID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return Rejected(lease.MasterNotFound(), MessageMasterNotFound)
		}
		return e.fail(req, err)
	}

	res, err := e.resolveResource(ctx, req.ResourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return Rejected(lease.ResourceNotFound(), MessageResourceNotFound)
		}
		return e.fail(req, err)
	}

	from, to, err := req.Range()
	if err != nil {
		return e.fail(req, err)
	}

	exp := lease.Expand(from, to)

	existing, err := e.contracts.FindForResource(ctx, res.ID(), lease.DayOf(from), lease.DayOf(to))
	if err != nil {
		return e.fail(req, errs.Wrap(err, "failed to load contracts for resource"))
	}

	if conflicts := lease.FindConflicts(m, existing, exp.Hours); len(conflicts) > 0 {
		rej := lease.HourConflict(conflicts)
		return Rejected(rej, Render(rej, res))
	}

	dailyCap := res.DailyHourCap()
	if days := lease.FindOvertimeDays(exp, dailyCap); len(days) > 0 {
		rej := lease.DailyOvertimeLimit(dailyCap, days)
		return Rejected(rej, Render(rej, res))
	}

	price := res.LeasePrice(lease.PayableHours(exp, dailyCap))

	contract, err := lease.NewContract(m, res, price, exp.Hours)
	if err != nil {
		return e.fail(req, errs.Wrap(err, "failed to build contract"))
	}

	e.logger.Debug("lease accepted",
		slog.Int64("master_id", m.ID()),
		slog.Int64("resource_id", res.ID()),
		slog.Int("hours", exp.Len()),
		slog.String("price", price.StringFixed(2)),
	)

	return Accepted(contract)
}

func (e *Engine) resolveMaster(ctx context.Context, id int64) (*master.Master, error) {
	m, err := e.masters.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, infra.RepositoryError{Kind: infra.KindNotFound}
	}
	return m, nil
}

func (e *Engine) resolveResource(ctx context.Context, id int64) (*resource.Resource, error) {
	res, err := e.resources.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, infra.RepositoryError{Kind: infra.KindNotFound}
	}
	return res, nil
}

// fail hides the cause behind the generic message but logs it and keeps it on
// the rejection for the host.
func (e *Engine) fail(req Request, cause error) *Response {
	e.logger.Warn("lease run failed",
		slog.Int64("master_id", req.MasterID),
		slog.Int64("resource_id", req.ResourceID),
		slog.String("error", cause.Error()),
	)
	rej := lease.GenericFailure(cause)
	return Rejected(rej, Render(rej, nil))
}
