//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// Recorder saves callers from importing net/http/httptest next to this package.
type Recorder = httptest.ResponseRecorder

// PerformRequest sends a JSON request, with a Bearer token when authToken is set.
func PerformRequest(t *testing.T, router http.Handler, method, path string, body any, authToken string) *Recorder {
	t.Helper()
	return PerformRequestWithCookies(t, router, method, path, body, nil, authToken)
}

// PerformRequestWithCookies is PerformRequest plus the given cookies,
// e.g. the session cookie returned by login.
func PerformRequestWithCookies(t *testing.T, router http.Handler, method, path string, body any, cookies []*http.Cookie, authToken string) *Recorder {
	t.Helper()

	req := httptest.NewRequest(method, path, encodeBody(t, body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func encodeBody(t *testing.T, body any) io.Reader {
	t.Helper()
	if body == nil {
		return http.NoBody
	}
	b, err := json.Marshal(body)
	require.NoError(t, err, "Failed to encode request body to JSON")
	return bytes.NewReader(b)
}

// ExtractCookie returns the named cookie set by the response, or nil.
func ExtractCookie(w *Recorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
