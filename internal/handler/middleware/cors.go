package middleware

import (
	"log/slog"
	"slices"

	"legal-storefront/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets the storefront SPA send the session cookie and read
// the request id. A "*" origin drops credentials since browsers refuse that pair.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  cfg.AllowMethods,
		AllowHeaders:  cfg.AllowHeaders,
		ExposeHeaders: cfg.ExposeHeaders,
		MaxAge:        cfg.MaxAge,
	}
	if !slices.Contains(corsCfg.ExposeHeaders, requestIDHeader) {
		corsCfg.ExposeHeaders = append(slices.Clone(corsCfg.ExposeHeaders), requestIDHeader)
	}

	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		if cfg.AllowCredentials {
			slog.Warn("CORS wildcard origin configured, session cookies will not be sent cross-origin")
		}
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
		corsCfg.AllowCredentials = cfg.AllowCredentials
	}

	slog.Info("CORS middleware initialized", "origins", cfg.AllowOrigins, "credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}
