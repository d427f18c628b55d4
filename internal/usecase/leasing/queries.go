package leasing

//go:generate mockgen -source=queries.go -destination=../../../tests/mock/leasing/mock_queries.go -package=leasingmock

import (
	"context"
	"time"

	"lease-market/internal/domain/lease"
	"lease-market/internal/domain/master"
	"lease-market/internal/domain/resource"
	"lease-market/internal/infra"
	"lease-market/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type MasterView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	VIP  bool   `json:"vip"`
}

type ResourceView struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	PricePerHour string `json:"price_per_hour"`
	DailyHourCap int    `json:"daily_hour_cap"`
}

type ContractView struct {
	ID         uuid.UUID `json:"id"`
	MasterID   int64     `json:"master_id"`
	MasterVIP  bool      `json:"master_vip"`
	ResourceID int64     `json:"resource_id"`
	Price      string    `json:"price"`
	Hours      []string  `json:"hours"`
	CreatedAt  time.Time `json:"created_at"`
}

type Queries interface {
	GetMaster(ctx context.Context, id int64) (*MasterView, error)
	GetResource(ctx context.Context, id int64) (*ResourceView, error)
	ContractsForResource(ctx context.Context, resourceID int64, fromDay, toDay string) ([]*ContractView, error)
}

type queriesImpl struct {
	masters   MasterRepository
	resources ResourceRepository
	contracts ContractRepository
}

func NewQueries(masters MasterRepository, resources ResourceRepository, contracts ContractRepository) Queries {
	return &queriesImpl{
		masters:   masters,
		resources: resources,
		contracts: contracts,
	}
}

func (q *queriesImpl) GetMaster(ctx context.Context, id int64) (*MasterView, error) {
	m, err := q.masters.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrMasterNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageOperationFailed)
	}
	return NewMasterView(m), nil
}

func (q *queriesImpl) GetResource(ctx context.Context, id int64) (*ResourceView, error) {
	res, err := q.resources.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrResourceNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageOperationFailed)
	}
	return NewResourceView(res), nil
}

func (q *queriesImpl) ContractsForResource(ctx context.Context, resourceID int64, fromDay, toDay string) ([]*ContractView, error) {
	from, err := time.Parse(lease.DayLayout, fromDay)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDayRange)
	}
	to, err := time.Parse(lease.DayLayout, toDay)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDayRange)
	}
	if from.After(to) {
		return nil, errs.ErrInvalidDayRange
	}

	if _, err := q.GetResource(ctx, resourceID); err != nil {
		return nil, err
	}

	contracts, err := q.contracts.FindForResource(ctx, resourceID, lease.DayOf(from), lease.DayOf(to))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageOperationFailed)
	}

	views := make([]*ContractView, len(contracts))
	for i, c := range contracts {
		views[i] = NewContractView(c)
	}
	return views, nil
}

func NewMasterView(m *master.Master) *MasterView {
	return &MasterView{ID: m.ID(), Name: m.Name(), VIP: m.IsVIP()}
}

func NewResourceView(r *resource.Resource) *ResourceView {
	return &ResourceView{
		ID:           r.ID(),
		Name:         r.Name(),
		PricePerHour: r.PricePerHour().StringFixed(2),
		DailyHourCap: r.DailyHourCap(),
	}
}

func NewContractView(c *lease.Contract) *ContractView {
	keys := c.HourKeys()
	hours := make([]string, len(keys))
	for i, k := range keys {
		hours[i] = k.String()
	}
	return &ContractView{
		ID:         c.ID(),
		MasterID:   c.Master().ID(),
		MasterVIP:  c.Master().IsVIP(),
		ResourceID: c.Resource().ID(),
		Price:      c.Price().StringFixed(2),
		Hours:      hours,
		CreatedAt:  c.CreatedAt(),
	}
}
