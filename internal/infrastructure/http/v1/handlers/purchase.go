package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/id"
	"ventapos/internal/domain"
	"ventapos/internal/domain/documents/purchase"
	"ventapos/internal/domain/posting"
	"ventapos/internal/infrastructure/http/v1/dto"
)

// PurchaseHandler handles purchase document endpoints.
type PurchaseHandler struct {
	*BaseHandler
	engine *posting.Engine
	repo   purchase.Repository
}

// NewPurchaseHandler creates a new purchase handler.
func NewPurchaseHandler(base *BaseHandler, engine *posting.Engine, repo purchase.Repository) *PurchaseHandler {
	return &PurchaseHandler{
		BaseHandler: base,
		engine:      engine,
		repo:        repo,
	}
}

// Post handles POST /purchases - validate and commit a new purchase.
func (h *PurchaseHandler) Post(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.PostPurchaseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	postingReq, err := req.ToPostingRequest()
	if err != nil {
		h.Error(c, err)
		return
	}

	doc, err := h.engine.PostPurchase(ctx, postingReq)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromPurchase(doc))
}

// Get handles GET /purchases/:id - get purchase with lines.
func (h *PurchaseHandler) Get(c *gin.Context) {
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

	c.JSON(http.StatusOK, dto.FromPurchase(doc))
}

// List handles GET /purchases - list purchase headers.
func (h *PurchaseHandler) List(c *gin.Context) {
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
		items[i] = dto.FromPurchase(item)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Delete handles DELETE /purchases/:id - remove the purchase record.
// Stock adjustments from posting are kept.
func (h *PurchaseHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.engine.DeleteTransaction(ctx, posting.KindPurchase, docID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// BulkDelete handles POST /purchases/bulk-delete - remove multiple purchase records.
func (h *PurchaseHandler) BulkDelete(c *gin.Context) {
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

	deleted, err := h.engine.BulkDeleteTransactions(ctx, posting.KindPurchase, ids)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BulkDeleteResponse{Deleted: deleted})
}
