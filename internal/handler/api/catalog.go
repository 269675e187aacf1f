package api

import (
	"context"

	resdto "legal-storefront/internal/handler/dto/response"
	"legal-storefront/internal/handler/httperr"
	"legal-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List documents
// @Tags documents
// @Produce json
// @Param category query string false "Category, \"Tutti\" or empty for all"
// @Success 200 {object} resdto.Envelope[[]queries.DocumentView]
// @Router /documents [get]
func (h *CatalogHandler) ListDocuments(c *gin.Context) {
	docs, err := h.q.ListDocuments(c.Request.Context(), c.Query("category"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.OK(c, docs)
}

// @Summary Get document
// @Tags documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} resdto.Envelope[queries.DocumentView] "data is null when absent"
// @Failure 400 {object} httperr.Response
// @Router /documents/{id} [get]
func (h *CatalogHandler) GetDocument(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	doc, err := h.q.GetDocument(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.OK(c, doc)
}

// @Summary Document download link
// @Tags documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} resdto.Envelope[resdto.URLData]
// @Failure 404 {object} httperr.Response
// @Router /documents/{id}/download [get]
func (h *CatalogHandler) DownloadDocument(c *gin.Context) {
	h.assetURL(c, queries.AssetDocument, h.q.DownloadURL)
}

// @Summary Document preview link
// @Tags documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} resdto.Envelope[resdto.URLData]
// @Failure 404 {object} httperr.Response
// @Router /documents/{id}/preview [get]
func (h *CatalogHandler) PreviewDocument(c *gin.Context) {
	h.assetURL(c, queries.AssetDocument, h.q.PreviewURL)
}

// @Summary List magazines
// @Tags magazines
// @Produce json
// @Success 200 {object} resdto.Envelope[[]queries.MagazineView]
// @Router /magazines [get]
func (h *CatalogHandler) ListMagazines(c *gin.Context) {
	mags, err := h.q.ListMagazines(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.OK(c, mags)
}

// @Summary Get magazine
// @Tags magazines
// @Produce json
// @Param id path int true "Magazine ID"
// @Success 200 {object} resdto.Envelope[queries.MagazineView] "data is null when absent"
// @Router /magazines/{id} [get]
func (h *CatalogHandler) GetMagazine(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	mag, err := h.q.GetMagazine(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.OK(c, mag)
}

// @Summary Magazine download link
// @Tags magazines
// @Produce json
// @Param id path int true "Magazine ID"
// @Success 200 {object} resdto.Envelope[resdto.URLData]
// @Failure 404 {object} httperr.Response
// @Router /magazines/{id}/download [get]
func (h *CatalogHandler) DownloadMagazine(c *gin.Context) {
	h.assetURL(c, queries.AssetMagazine, h.q.DownloadURL)
}

// @Summary Magazine preview link
// @Tags magazines
// @Produce json
// @Param id path int true "Magazine ID"
// @Success 200 {object} resdto.Envelope[resdto.URLData]
// @Failure 404 {object} httperr.Response
// @Router /magazines/{id}/preview [get]
func (h *CatalogHandler) PreviewMagazine(c *gin.Context) {
	h.assetURL(c, queries.AssetMagazine, h.q.PreviewURL)
}

// @Summary List books
// @Tags books
// @Produce json
// @Param category query string false "Category, \"Tutti\" or empty for all"
// @Success 200 {object} resdto.Envelope[[]queries.BookView]
// @Router /books [get]
func (h *CatalogHandler) ListBooks(c *gin.Context) {
	books, err := h.q.ListBooks(c.Request.Context(), c.Query("category"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.OK(c, books)
}

// @Summary Get book
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} resdto.Envelope[queries.BookView] "data is null when absent"
// @Router /books/{id} [get]
func (h *CatalogHandler) GetBook(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	book, err := h.q.GetBook(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.OK(c, book)
}

// @Summary Search the catalog
// @Description Case-insensitive match on titles and descriptions (and authors for books).
// @Description An empty query lists everything in scope.
// @Tags catalog
// @Produce json
// @Param q query string false "Search text"
// @Param type query string false "documents, magazines or books; empty for all"
// @Success 200 {object} resdto.Envelope[queries.SearchView]
// @Failure 400 {object} httperr.Response
// @Router /search [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	res, err := h.q.Search(c.Request.Context(), c.Query("q"), c.Query("type"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.OK(c, res)
}

// @Summary Catalog statistics
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.Envelope[queries.StatsView]
// @Router /stats [get]
func (h *CatalogHandler) Stats(c *gin.Context) {
	stats, err := h.q.Stats(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.OK(c, stats)
}

type assetURLFunc func(ctx context.Context, asset queries.AssetType, id int64) (string, error)

func (h *CatalogHandler) assetURL(c *gin.Context, asset queries.AssetType, fn assetURLFunc) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	url, err := fn(c.Request.Context(), asset, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.OK(c, resdto.URLData{URL: url})
}
