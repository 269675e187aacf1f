package httperr

import (
	"net/http"

	"legal-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

var statusByKind = map[errs.Kind]int{
	errs.KindNotFound:         http.StatusNotFound,
	errs.KindUnavailable:      http.StatusConflict,
	errs.KindValidationFailed: http.StatusBadRequest,
	errs.KindConflict:         http.StatusConflict,
	errs.KindUnauthenticated:  http.StatusUnauthorized,
	errs.KindUpstreamFailure:  http.StatusBadGateway,
}

func NewResponse(status int, msg, code string) Response {
	return Response{Status: status, Error: msg, Code: code}
}

func InternalResponse() Response {
	return NewResponse(http.StatusInternalServerError, internalMessage, string(errs.KindInternal))
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg, code string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, code)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort classifies err by kind. Unclassified errors are reported as 500
// without leaking their text.
func Abort(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		resp := InternalResponse()
		AbortWithError(c, resp.Status, err, resp.Error, resp.Code)
		return
	}
	AbortWithError(c, status, err, errs.Message(err), string(kind))
}

// BadRequest reports a malformed body or parameter.
func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, msg, string(errs.KindValidationFailed))
}

// StatusOf exposes the HTTP status a kind maps to; unknown kinds map to 500.
func StatusOf(kind errs.Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}
