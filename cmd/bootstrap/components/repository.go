package components

import (
	"log/slog"

	"lease-market/internal/infra/boltstore"
	"lease-market/internal/infra/postgres"
	"lease-market/internal/pkg/clock"
	"lease-market/internal/pkg/config"
	"lease-market/internal/usecase/leasing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(clock.NewRealClock),
)

// Repositories groups the backend chosen by STORAGE_DRIVER behind the
// leasing ports.
type Repositories struct {
	fx.Out

	Masters   leasing.MasterRepository
	Resources leasing.ResourceRepository
	Contracts leasing.ContractRepository
	Store     leasing.ContractStore
}

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewRepositories,
	),
)

func NewRepositories(cfg config.Config, pool *pgxpool.Pool, bolt *boltstore.Store, clk clock.Clock, logger *slog.Logger) Repositories {
	if cfg.Storage.Driver == config.StorageDriverBolt {
		contracts := bolt.Contracts()
		return Repositories{
			Masters:   bolt.Masters(),
			Resources: bolt.Resources(),
			Contracts: contracts,
			Store:     contracts,
		}
	}

	contracts := postgres.NewContractRepository(pool, clk, logger)
	return Repositories{
		Masters:   postgres.NewMasterRepository(pool, logger),
		Resources: postgres.NewResourceRepository(pool, logger),
		Contracts: contracts,
		Store:     contracts,
	}
}
