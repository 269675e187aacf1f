package api

import (
	reqdto "legal-storefront/internal/handler/dto/request"
	resdto "legal-storefront/internal/handler/dto/response"
	"legal-storefront/internal/handler/httperr"
	"legal-storefront/internal/usecase/commands"
	"legal-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Cart contents
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.Envelope[queries.CartView]
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.q.GetCart(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.OK(c, cart)
}

// @Summary Add a book to the cart
// @Description Adds quantity copies (default 1); an existing line is incremented.
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddToCartRequest true "Book and quantity"
// @Success 200 {object} resdto.Envelope[resdto.MessageData]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "out of stock"
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req reqdto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Richiesta non valida")
		return
	}
	res, err := h.cmds.AddItem(c.Request.Context(), req.BookID, req.Quantity)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.Message(c, res.Message)
}

// @Summary Change a cart line quantity
// @Description A quantity of 0 or less removes the line.
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Cart item ID"
// @Param request body reqdto.SetQuantityRequest true "New quantity"
// @Success 200 {object} resdto.Envelope[resdto.MessageData]
// @Failure 404 {object} httperr.Response
// @Router /cart/items/{id} [patch]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req reqdto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Richiesta non valida")
		return
	}
	res, err := h.cmds.SetQuantity(c.Request.Context(), id, *req.Quantity)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.Message(c, res.Message)
}

// @Summary Remove a cart line
// @Tags cart
// @Produce json
// @Param id path int true "Cart item ID"
// @Success 200 {object} resdto.Envelope[resdto.MessageData]
// @Failure 404 {object} httperr.Response
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	res, err := h.cmds.RemoveItem(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.Message(c, res.Message)
}

// @Summary Empty the cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.Envelope[resdto.MessageData]
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	res, err := h.cmds.Clear(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.Message(c, res.Message)
}
