package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"legal-storefront/internal/handler/httperr"
	"legal-storefront/internal/pkg/cookie"
	"legal-storefront/internal/pkg/errs"
	"legal-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxUserIDKey = "user_id"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts the session cookie or a bearer token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrSessionRequired,
				errs.Message(usecase.ErrSessionRequired), string(errs.KindUnauthenticated))
			return
		}

		userID, err := m.tokenValidator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Abort(c, err)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok && id != ""
}
