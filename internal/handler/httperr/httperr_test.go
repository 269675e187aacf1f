//go:build unit

package httperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"legal-storefront/internal/handler/httperr"
	"legal-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perform(t *testing.T, err error) (*httptest.ResponseRecorder, httperr.Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", func(c *gin.Context) { httperr.Abort(c, err) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var resp httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestAbortMapsKinds(t *testing.T) {
	cases := []struct {
		kind   errs.Kind
		status int
	}{
		{errs.KindNotFound, http.StatusNotFound},
		{errs.KindUnavailable, http.StatusConflict},
		{errs.KindValidationFailed, http.StatusBadRequest},
		{errs.KindConflict, http.StatusConflict},
		{errs.KindUnauthenticated, http.StatusUnauthorized},
		{errs.KindUpstreamFailure, http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			sentinel := errs.NewKind(tc.kind, "Libro non trovato")
			w, resp := perform(t, errs.Wrap(sentinel, "loading book"))

			assert.Equal(t, tc.status, w.Code)
			assert.False(t, resp.Success)
			assert.Equal(t, "Libro non trovato", resp.Error)
			assert.Equal(t, string(tc.kind), resp.Code)
		})
	}
}

func TestAbortHidesUnclassified(t *testing.T) {
	w, resp := perform(t, errs.New("store exploded: secret detail"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", resp.Error)
	assert.Equal(t, "Internal", resp.Code)
}
