package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ventapos/internal/domain/reports"
	"ventapos/internal/infrastructure/http/v1/dto"
)

// ReportsHandler handles report endpoints.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetStockValuation handles GET /reports/stock-valuation
func (h *ReportsHandler) GetStockValuation(c *gin.Context) {
	ctx := c.Request.Context()

	var query dto.StockValuationQuery
	if !h.BindQuery(c, &query) {
		return
	}

	filter, err := query.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	report, err := h.service.GetStockValuation(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetSalesSummary handles GET /reports/sales-summary
func (h *ReportsHandler) GetSalesSummary(c *gin.Context) {
	ctx := c.Request.Context()

	var query dto.SalesSummaryQuery
	if !h.BindQuery(c, &query) {
		return
	}

	filter, err := query.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	summary, err := h.service.GetSalesSummary(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
