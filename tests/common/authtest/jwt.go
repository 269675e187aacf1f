//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"legal-storefront/internal/pkg/clock"
	"legal-storefront/internal/pkg/config"
	"legal-storefront/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, clk clock.Clock) *jwt.Service {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, duration, clk)
}

// GenerateToken signs a token the server would accept if sessionID were current.
func (h *JWTHelper) GenerateToken(t *testing.T, userID, sessionID string) string {
	t.Helper()
	token, err := h.service(t, clock.NewRealClock()).GenerateToken(userID, sessionID)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token whose lifetime ended before now.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID, sessionID string) string {
	t.Helper()
	issued := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	service := jwt.NewService(h.cfg.Secret, time.Hour, issued)
	token, err := service.GenerateToken(userID, sessionID)
	require.NoError(t, err)
	return token
}

// SessionID returns the login session a valid token is bound to.
func (h *JWTHelper) SessionID(t *testing.T, token string) string {
	t.Helper()
	claims, err := h.service(t, clock.NewRealClock()).ValidateToken(token)
	require.NoError(t, err)
	return claims.ID
}
