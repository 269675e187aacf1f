package components

import (
	"legal-storefront/internal/infra/memstore"
	"legal-storefront/internal/infra/uow"

	"go.uber.org/fx"
)

// PersistenceModule keeps all mutable state in one process-wide store.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		memstore.New,
		uow.NewMemoryUoW,
	),
)
