package components

import (
	"legal-storefront/internal/handler"
	"legal-storefront/internal/handler/api"
	"legal-storefront/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewOrderHandler,
		api.NewFavoriteHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	catalog *api.CatalogHandler,
	cart *api.CartHandler,
	checkout *api.CheckoutHandler,
	order *api.OrderHandler,
	favorite *api.FavoriteHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Catalog:  catalog,
		Cart:     cart,
		Checkout: checkout,
		Order:    order,
		Favorite: favorite,
	}
}
