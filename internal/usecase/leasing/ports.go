package leasing

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/leasing/mock_ports.go -package=leasingmock

import (
	"context"

	"lease-market/internal/domain/lease"
	"lease-market/internal/domain/master"
	"lease-market/internal/domain/resource"
)

// Repositories report a missing entity with an infra.KindNotFound error.

type MasterRepository interface {
	FindByID(ctx context.Context, id int64) (*master.Master, error)
}

type ResourceRepository interface {
	FindByID(ctx context.Context, id int64) (*resource.Resource, error)
}

// ContractRepository filters by day, both ends inclusive, and returns contracts
// in a stable order (creation order for the bundled backends).
type ContractRepository interface {
	FindForResource(ctx context.Context, resourceID int64, fromDay, toDay lease.DayKey) ([]*lease.Contract, error)
}

// ContractStore persists a contract and returns it with its id and creation time.
type ContractStore interface {
	Save(ctx context.Context, contract *lease.Contract) (*lease.Contract, error)
}
