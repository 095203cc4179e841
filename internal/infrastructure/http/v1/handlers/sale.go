package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/id"
	"ventapos/internal/domain"
	"ventapos/internal/domain/documents/sale"
	"ventapos/internal/domain/posting"
	"ventapos/internal/infrastructure/http/v1/dto"
)

// SaleHandler handles sale document endpoints.
type SaleHandler struct {
	*BaseHandler
	engine *posting.Engine
	repo   sale.Repository
}

// NewSaleHandler creates a new sale handler.
func NewSaleHandler(base *BaseHandler, engine *posting.Engine, repo sale.Repository) *SaleHandler {
	return &SaleHandler{
		BaseHandler: base,
		engine:      engine,
		repo:        repo,
	}
}

// Post handles POST /sales - validate and commit a new sale.
func (h *SaleHandler) Post(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.PostSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	postingReq, err := req.ToPostingRequest()
	if err != nil {
		h.Error(c, err)
		return
	}

	doc, err := h.engine.PostSale(ctx, postingReq)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromSale(doc))
}

// Get handles GET /sales/:id - get sale with lines.
func (h *SaleHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.repo.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	lines, err := h.repo.GetLines(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}
	doc.Lines = lines

	c.JSON(http.StatusOK, dto.FromSale(doc))
}

// List handles GET /sales - list sale headers.
func (h *SaleHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := domain.DefaultListFilter()
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.Query("orderBy")

	result, err := h.repo.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, item := range result.Items {
		items[i] = dto.FromSale(item)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Delete handles DELETE /sales/:id - remove the sale record.
// Stock adjustments from posting are kept.
func (h *SaleHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.engine.DeleteTransaction(ctx, posting.KindSale, docID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// BulkDelete handles POST /sales/bulk-delete - remove multiple sale records.
func (h *SaleHandler) BulkDelete(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.BulkDeleteRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ids := make([]id.ID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		docID, err := id.Parse(raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid id format").WithDetail("id", raw))
			return
		}
		ids = append(ids, docID)
	}

	deleted, err := h.engine.BulkDeleteTransactions(ctx, posting.KindSale, ids)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BulkDeleteResponse{Deleted: deleted})
}
