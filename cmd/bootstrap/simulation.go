package bootstrap

import (
	"log/slog"

	"legal-storefront/internal/domain/session"
	"legal-storefront/internal/infra/identity"
	"legal-storefront/internal/infra/readstore"
	"legal-storefront/internal/pkg/config"
	"legal-storefront/internal/pkg/latency"
	"legal-storefront/internal/usecase/commands"
	"legal-storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

// SimulationModule provides the pieces that stand in for real back ends.
var SimulationModule = fx.Module("simulation",
	fx.Provide(
		NewLatencySimulator,
		NewSessionPersistence,
		fx.Annotate(
			readstore.NewCatalog,
			fx.As(new(shared.Catalog)),
		),
		fx.Annotate(
			func(cfg config.Config) *identity.DemoProvider {
				return identity.NewDemoProvider(cfg.Simulation.User)
			},
			fx.As(new(commands.IdentityProvider)),
		),
	),
)

func NewLatencySimulator(cfg config.Config) *latency.Simulator {
	return latency.NewSimulator(cfg.Simulation.LatencyScale)
}

func NewSessionPersistence(cfg config.Config) (*session.Persistence, error) {
	policy, err := session.ParsePersistencePolicy(cfg.Simulation.SessionPersistence)
	if err != nil {
		return nil, err
	}
	slog.Info("session persistence configured", "policy", policy, "seed", cfg.Simulation.SessionSeed)
	return session.NewPersistence(policy, cfg.Simulation.SessionSeed), nil
}
