package bootstrap

import (
	"legal-storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	SimulationModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
