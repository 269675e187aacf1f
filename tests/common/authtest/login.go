//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"legal-storefront/internal/pkg/cookie"
	"legal-storefront/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser logs the demo user in and returns the session cookie.
func LoginUser(t *testing.T, router *gin.Engine) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, sessionCookie, "Session cookie not found in response")
	require.NotEmpty(t, sessionCookie.Value, "Session cookie is empty")

	return sessionCookie
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
