package middleware

import (
	"log/slog"
	"net/http"

	"legal-storefront/internal/handler/httperr"
	"legal-storefront/internal/pkg/config"
	"legal-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limit exceeded")

// RateLimit throttles the whole API with a single token bucket.
func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	if cfg.RPS <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	burst := max(cfg.Burst, 1)
	limiter := rate.NewLimiter(rate.Limit(cfg.RPS), burst)
	slog.Info("Rate limit middleware initialized", "rps", cfg.RPS, "burst", burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited,
				"Troppe richieste, riprova tra poco", "RateLimited")
			return
		}
		c.Next()
	}
}
