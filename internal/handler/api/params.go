package api

import (
	"strconv"

	"legal-storefront/internal/handler/httperr"
	"legal-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// int64Param parses a positive numeric path parameter, aborting with 400 otherwise.
func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err == nil && id <= 0 {
		err = errs.New("id must be positive")
	}
	if err != nil {
		httperr.BadRequest(c, err, "Identificativo non valido")
		return 0, false
	}
	return id, true
}
