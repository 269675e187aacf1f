package api

import (
	resdto "legal-storefront/internal/handler/dto/response"
	"legal-storefront/internal/handler/httperr"
	"legal-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	q queries.OrderQueries
}

func NewOrderHandler(q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{q: q}
}

// @Summary List my orders
// @Description Newest first
// @Tags orders
// @Produce json
// @Security CookieAuth
// @Success 200 {object} resdto.Envelope[[]queries.OrderView]
// @Failure 401 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	orders, err := h.q.ListOrders(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.OK(c, orders)
}

// @Summary Get one of my orders
// @Tags orders
// @Produce json
// @Security CookieAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.Envelope[queries.OrderView]
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	order, err := h.q.GetOrder(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.OK(c, order)
}
