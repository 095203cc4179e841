package reports

import (
	"context"
)

// Repository defines read-side queries for report generation.
type Repository interface {
	// GetStockValuation computes on-hand value per product.
	GetStockValuation(ctx context.Context, filter StockValuationFilter) (*StockValuation, error)

	// GetSalesSummary aggregates posted sales over a period.
	GetSalesSummary(ctx context.Context, filter SalesSummaryFilter) (*SalesSummary, error)
}
