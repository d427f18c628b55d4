package components

import (
	"lease-market/internal/usecase/leasing"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		leasing.NewEngine,
		leasing.NewCommands,
		leasing.NewQueries,
	),
)
