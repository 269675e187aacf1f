package api

import (
	"legal-storefront/internal/domain/favorite"
	resdto "legal-storefront/internal/handler/dto/response"
	"legal-storefront/internal/handler/httperr"
	"legal-storefront/internal/usecase/commands"
	"legal-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	cmds commands.FavoriteCommands
	q    queries.FavoriteQueries
}

func NewFavoriteHandler(cmds commands.FavoriteCommands, q queries.FavoriteQueries) *FavoriteHandler {
	return &FavoriteHandler{cmds: cmds, q: q}
}

// @Summary Add a favorite
// @Description Idempotent
// @Tags favorites
// @Produce json
// @Param type path string true "book, document or magazine"
// @Param id path int true "Content ID"
// @Success 200 {object} resdto.Envelope[resdto.MessageData]
// @Failure 400 {object} httperr.Response
// @Router /favorites/{type}/{id} [post]
func (h *FavoriteHandler) Add(c *gin.Context) {
	t, id, ok := favoriteTarget(c)
	if !ok {
		return
	}
	msg, err := h.cmds.Add(c.Request.Context(), t, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.Message(c, msg)
}

// @Summary Remove a favorite
// @Description Idempotent
// @Tags favorites
// @Produce json
// @Param type path string true "book, document or magazine"
// @Param id path int true "Content ID"
// @Success 200 {object} resdto.Envelope[resdto.MessageData]
// @Failure 400 {object} httperr.Response
// @Router /favorites/{type}/{id} [delete]
func (h *FavoriteHandler) Remove(c *gin.Context) {
	t, id, ok := favoriteTarget(c)
	if !ok {
		return
	}
	msg, err := h.cmds.Remove(c.Request.Context(), t, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.Message(c, msg)
}

// @Summary Is it a favorite
// @Tags favorites
// @Produce json
// @Param type path string true "book, document or magazine"
// @Param id path int true "Content ID"
// @Success 200 {object} resdto.Envelope[resdto.FavoriteData]
// @Failure 400 {object} httperr.Response
// @Router /favorites/{type}/{id} [get]
func (h *FavoriteHandler) IsFavorite(c *gin.Context) {
	t, id, ok := favoriteTarget(c)
	if !ok {
		return
	}
	found, err := h.q.IsFavorite(c.Request.Context(), t, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.OK(c, resdto.FavoriteData{Favorite: found})
}

// @Summary Favorite books
// @Tags favorites
// @Produce json
// @Success 200 {object} resdto.Envelope[[]queries.BookView]
// @Router /favorites/books [get]
func (h *FavoriteHandler) ListBooks(c *gin.Context) {
	books, err := h.q.ListBooks(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.OK(c, books)
}

// @Summary Favorite documents
// @Tags favorites
// @Produce json
// @Success 200 {object} resdto.Envelope[[]queries.DocumentView]
// @Router /favorites/documents [get]
func (h *FavoriteHandler) ListDocuments(c *gin.Context) {
	docs, err := h.q.ListDocuments(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.OK(c, docs)
}

// @Summary Favorite magazines
// @Tags favorites
// @Produce json
// @Success 200 {object} resdto.Envelope[[]queries.MagazineView]
// @Router /favorites/magazines [get]
func (h *FavoriteHandler) ListMagazines(c *gin.Context) {
	mags, err := h.q.ListMagazines(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.OK(c, mags)
}

func favoriteTarget(c *gin.Context) (favorite.ContentType, int64, bool) {
	t, err := favorite.ParseContentType(c.Param("type"))
	if err != nil {
		httperr.Abort(c, err)
		return "", 0, false
	}
	id, ok := int64Param(c, "id")
	return t, id, ok
}
