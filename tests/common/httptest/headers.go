//go:build unit || e2e

package httptest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const jsonContentType = "application/json; charset=utf-8"

// AssertJSONEnvelopeHeaders checks what every API response carries:
// a JSON body and the request id set by the logging middleware.
func AssertJSONEnvelopeHeaders(t *testing.T, w *Recorder) {
	t.Helper()
	assert.Equal(t, jsonContentType, w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "missing request id")
}
