package components

import (
	"legal-storefront/internal/pkg/clock"
	"legal-storefront/internal/pkg/config"
	"legal-storefront/internal/pkg/jwt"
	"legal-storefront/internal/usecase"
	"legal-storefront/internal/usecase/commands"
	"legal-storefront/internal/usecase/queries"
	"legal-storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(s *jwt.Service) commands.TokenIssuer { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCartCommands,
		commands.NewFavoriteCommands,
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.CheckoutCommands {
			return commands.NewCheckoutCommands(uow, clk, cfg.Simulation.Currency)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(c shared.Catalog, cfg config.Config) queries.CatalogQueries {
			return queries.NewCatalogQueries(c, cfg.Simulation.AssetBaseURL)
		},
		queries.NewCartQueries,
		queries.NewFavoriteQueries,
		queries.NewSessionQueries,
		queries.NewOrderQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
