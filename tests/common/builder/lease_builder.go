//go:build unit || e2e

package builder

import (
	"time"

	"lease-market/internal/domain/lease"
	"lease-market/internal/domain/master"
	"lease-market/internal/domain/resource"
	reqdto "lease-market/internal/handler/dto/request"
	"lease-market/internal/usecase/leasing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MasterBuilder struct {
	ID   int64
	Name string
	VIP  bool
}

func NewMasterBuilder() *MasterBuilder {
	return &MasterBuilder{
		ID:   1,
		Name: "Lord Vader",
	}
}

func (b *MasterBuilder) With(mutate func(*MasterBuilder)) *MasterBuilder {
	mutate(b)
	return b
}

func (b *MasterBuilder) BuildDomain() *master.Master {
	m, err := master.NewMaster(b.ID, b.Name, b.VIP)
	if err != nil {
		panic(err)
	}
	return m
}

func (b *MasterBuilder) BuildView() *leasing.MasterView {
	return &leasing.MasterView{ID: b.ID, Name: b.Name, VIP: b.VIP}
}

type ResourceBuilder struct {
	ID           int64
	Name         string
	PricePerHour string
	DailyHourCap int
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		ID:           1,
		Name:         "Uncle Tom",
		PricePerHour: "10.00",
		DailyHourCap: resource.DefaultDailyHourCap,
	}
}

func (b *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(b)
	return b
}

func (b *ResourceBuilder) BuildDomain() *resource.Resource {
	r, err := resource.NewResource(b.ID, b.Name, decimal.RequireFromString(b.PricePerHour), resource.WithDailyHourCap(b.DailyHourCap))
	if err != nil {
		panic(err)
	}
	return r
}

func (b *ResourceBuilder) BuildView() *leasing.ResourceView {
	return &leasing.ResourceView{
		ID:           b.ID,
		Name:         b.Name,
		PricePerHour: decimal.RequireFromString(b.PricePerHour).StringFixed(2),
		DailyHourCap: b.DailyHourCap,
	}
}

// ContractBuilder holds hours as "2006-01-02 15" keys, inclusive range.
type ContractBuilder struct {
	ID        uuid.UUID
	Master    *MasterBuilder
	Resource  *ResourceBuilder
	Price     string
	From      string
	To        string
	CreatedAt time.Time
}

func NewContractBuilder() *ContractBuilder {
	return &ContractBuilder{
		ID:        uuid.New(),
		Master:    NewMasterBuilder(),
		Resource:  NewResourceBuilder(),
		Price:     "10.00",
		From:      "2024-05-01 10",
		To:        "2024-05-01 10",
		CreatedAt: time.Date(2024, 4, 30, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ContractBuilder) With(mutate func(*ContractBuilder)) *ContractBuilder {
	mutate(b)
	return b
}

func (b *ContractBuilder) Hours() []lease.HourUnit {
	from, err := lease.ParseHourKey(b.From)
	if err != nil {
		panic(err)
	}
	to, err := lease.ParseHourKey(b.To)
	if err != nil {
		panic(err)
	}
	return lease.Expand(from.Time(), to.Time()).Hours
}

func (b *ContractBuilder) BuildDomain() *lease.Contract {
	return lease.ReconstructContract(
		b.ID,
		b.Master.BuildDomain(),
		b.Resource.BuildDomain(),
		decimal.RequireFromString(b.Price),
		b.Hours(),
		b.CreatedAt,
	)
}

func (b *ContractBuilder) BuildView() *leasing.ContractView {
	return leasing.NewContractView(b.BuildDomain())
}

type LeaseRequestBuilder struct {
	MasterID   int64
	ResourceID int64
	TimeFrom   string
	TimeTo     string
}

func NewLeaseRequestBuilder() *LeaseRequestBuilder {
	return &LeaseRequestBuilder{
		MasterID:   1,
		ResourceID: 1,
		TimeFrom:   "2024-05-01 10:00:00",
		TimeTo:     "2024-05-01 10:00:00",
	}
}

func (b *LeaseRequestBuilder) With(mutate func(*LeaseRequestBuilder)) *LeaseRequestBuilder {
	mutate(b)
	return b
}

func (b *LeaseRequestBuilder) BuildCommand() leasing.Request {
	return leasing.Request{
		MasterID:   b.MasterID,
		ResourceID: b.ResourceID,
		TimeFrom:   b.TimeFrom,
		TimeTo:     b.TimeTo,
	}
}

func (b *LeaseRequestBuilder) BuildRequestDTO() reqdto.CreateLeaseRequest {
	return reqdto.CreateLeaseRequest{
		MasterID:   b.MasterID,
		ResourceID: b.ResourceID,
		TimeFrom:   b.TimeFrom,
		TimeTo:     b.TimeTo,
	}
}
