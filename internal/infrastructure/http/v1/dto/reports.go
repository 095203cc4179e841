package dto

import (
	"time"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/id"
	"ventapos/internal/domain/reports"
)

// StockValuationQuery for GET /reports/stock-valuation.
type StockValuationQuery struct {
	CategoryID  string `form:"categoryId"`
	ExcludeZero bool   `form:"excludeZero"`
	Limit       int    `form:"limit"`
	Offset      int    `form:"offset"`
}

// ToFilter converts query params to the report filter.
func (q StockValuationQuery) ToFilter() (reports.StockValuationFilter, error) {
	filter := reports.StockValuationFilter{
		ExcludeZero: q.ExcludeZero,
		Limit:       q.Limit,
		Offset:      q.Offset,
	}

	if q.CategoryID != "" {
		categoryID, err := id.Parse(q.CategoryID)
		if err != nil {
			return filter, apperror.NewValidation("invalid categoryId format").
				WithDetail("field", "categoryId")
		}
		filter.CategoryID = &categoryID
	}

	return filter, nil
}

// SalesSummaryQuery for GET /reports/sales-summary.
type SalesSummaryQuery struct {
	From     time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To       time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
	ClientID string    `form:"clientId"`
}

// ToFilter converts query params to the report filter.
func (q SalesSummaryQuery) ToFilter() (reports.SalesSummaryFilter, error) {
	filter := reports.SalesSummaryFilter{
		FromDate: q.From,
		ToDate:   q.To,
	}

	if q.ClientID != "" {
		clientID, err := id.Parse(q.ClientID)
		if err != nil {
			return filter, apperror.NewValidation("invalid clientId format").
				WithDetail("field", "clientId")
		}
		filter.ClientID = &clientID
	}

	return filter, nil
}
