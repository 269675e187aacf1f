package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"legal-storefront/internal/handler/api"
	"legal-storefront/internal/handler/middleware"
	"legal-storefront/internal/pkg/config"
	"legal-storefront/internal/pkg/latency"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth     *api.AuthHandler
	Catalog  *api.CatalogHandler
	Cart     *api.CartHandler
	Checkout *api.CheckoutHandler
	Order    *api.OrderHandler
	Favorite *api.FavoriteHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, sim *latency.Simulator) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, sim)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.RateLimit(cfg.RateLimit))
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, sim *latency.Simulator) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	delay := func(op latency.Operation) []gin.HandlerFunc {
		return []gin.HandlerFunc{middleware.SimulatedLatency(sim, op)}
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: delay(latency.OpLogin)},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: delay(latency.OpLogout)},
			{Method: http.MethodGet, Path: "/session", Handler: h.Auth.Session, Mw: delay(latency.OpCurrentSession)},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/documents", Handler: h.Catalog.ListDocuments, Mw: delay(latency.OpListDocuments)},
			{Method: http.MethodGet, Path: "/documents/:id", Handler: h.Catalog.GetDocument, Mw: delay(latency.OpGetDocument)},
			{Method: http.MethodGet, Path: "/documents/:id/download", Handler: h.Catalog.DownloadDocument, Mw: delay(latency.OpDownloadDocument)},
			{Method: http.MethodGet, Path: "/documents/:id/preview", Handler: h.Catalog.PreviewDocument, Mw: delay(latency.OpPreview)},
			{Method: http.MethodGet, Path: "/magazines", Handler: h.Catalog.ListMagazines, Mw: delay(latency.OpListMagazines)},
			{Method: http.MethodGet, Path: "/magazines/:id", Handler: h.Catalog.GetMagazine, Mw: delay(latency.OpGetMagazine)},
			{Method: http.MethodGet, Path: "/magazines/:id/download", Handler: h.Catalog.DownloadMagazine, Mw: delay(latency.OpDownloadMagazine)},
			{Method: http.MethodGet, Path: "/magazines/:id/preview", Handler: h.Catalog.PreviewMagazine, Mw: delay(latency.OpPreview)},
			{Method: http.MethodGet, Path: "/books", Handler: h.Catalog.ListBooks, Mw: delay(latency.OpListBooks)},
			{Method: http.MethodGet, Path: "/books/:id", Handler: h.Catalog.GetBook, Mw: delay(latency.OpGetBook)},
			{Method: http.MethodGet, Path: "/search", Handler: h.Catalog.Search, Mw: delay(latency.OpSearch)},
			{Method: http.MethodGet, Path: "/stats", Handler: h.Catalog.Stats, Mw: delay(latency.OpStats)},
		})

		addRoutes(apiGroup.Group("/cart"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Cart.Get, Mw: delay(latency.OpListCart)},
			{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear, Mw: delay(latency.OpClearCart)},
			{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem, Mw: delay(latency.OpAddToCart)},
			{Method: http.MethodPatch, Path: "/items/:id", Handler: h.Cart.SetQuantity, Mw: delay(latency.OpSetCartQuantity)},
			{Method: http.MethodDelete, Path: "/items/:id", Handler: h.Cart.RemoveItem, Mw: delay(latency.OpRemoveFromCart)},
		})

		checkout := apiGroup.Group("/checkout/payment-intents")
		checkout.Use(authMiddleware.RequireAuth())
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Checkout.CreatePaymentIntent, Mw: delay(latency.OpCreateIntent)},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Checkout.CancelPaymentIntent, Mw: delay(latency.OpCancelIntent)},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Checkout.ConfirmPayment, Mw: delay(latency.OpConfirmPayment)},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Order.List, Mw: delay(latency.OpListOrders)},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get, Mw: delay(latency.OpGetOrder)},
			})
		}

		addRoutes(apiGroup.Group("/favorites"), []route{
			{Method: http.MethodGet, Path: "/books", Handler: h.Favorite.ListBooks, Mw: delay(latency.OpListFavorites)},
			{Method: http.MethodGet, Path: "/documents", Handler: h.Favorite.ListDocuments, Mw: delay(latency.OpListFavorites)},
			{Method: http.MethodGet, Path: "/magazines", Handler: h.Favorite.ListMagazines, Mw: delay(latency.OpListFavorites)},
			{Method: http.MethodGet, Path: "/:type/:id", Handler: h.Favorite.IsFavorite, Mw: delay(latency.OpIsFavorite)},
			{Method: http.MethodPost, Path: "/:type/:id", Handler: h.Favorite.Add, Mw: delay(latency.OpToggleFavorite)},
			{Method: http.MethodDelete, Path: "/:type/:id", Handler: h.Favorite.Remove, Mw: delay(latency.OpToggleFavorite)},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
