package api

import (
	reqdto "legal-storefront/internal/handler/dto/request"
	resdto "legal-storefront/internal/handler/dto/response"
	"legal-storefront/internal/handler/httperr"
	"legal-storefront/internal/handler/middleware"
	"legal-storefront/internal/usecase"
	"legal-storefront/internal/usecase/commands"
	"legal-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Create a payment intent
// @Tags checkout
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body reqdto.CreatePaymentIntentRequest true "Amount in euros"
// @Success 201 {object} resdto.Envelope[queries.PaymentIntentView]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /checkout/payment-intents [post]
func (h *CheckoutHandler) CreatePaymentIntent(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Importo non valido")
		return
	}
	pi, err := h.cmds.CreatePaymentIntent(c.Request.Context(), userID, req.ToMoney())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.Created(c, queries.ToPaymentIntentView(pi))
}

// @Summary Cancel a payment intent
// @Tags checkout
// @Produce json
// @Security CookieAuth
// @Param id path string true "Payment intent ID"
// @Success 200 {object} resdto.Envelope[resdto.MessageData]
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /checkout/payment-intents/{id}/cancel [post]
func (h *CheckoutHandler) CancelPaymentIntent(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	msg, err := h.cmds.CancelPaymentIntent(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.Message(c, msg)
}

// @Summary Confirm a payment
// @Description Turns the cart into a completed order and empties it.
// @Tags checkout
// @Produce json
// @Security CookieAuth
// @Param id path string true "Payment intent ID"
// @Success 200 {object} resdto.Envelope[queries.OrderView]
// @Failure 400 {object} httperr.Response "empty cart"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "intent consumed, cancelled or amount changed"
// @Router /checkout/payment-intents/{id}/confirm [post]
func (h *CheckoutHandler) ConfirmPayment(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	order, err := h.cmds.ConfirmPayment(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := queries.ToOrderView(order)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.OK(c, view)
}

// requireUser reads the id RequireAuth stored; a missing id means the route
// was mounted without it.
func requireUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, usecase.ErrSessionRequired)
		return "", false
	}
	return userID, true
}
