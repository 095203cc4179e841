// Package reports provides report generation services.
package reports

import (
	"time"

	"ventapos/internal/core/id"
	"ventapos/internal/core/types"
)

// --- Stock Valuation Report ---

// StockValuationFilter defines filter for the stock valuation report.
type StockValuationFilter struct {
	// ProductIDs limits the report to specific products
	ProductIDs []id.ID

	// CategoryID limits the report to one category
	CategoryID *id.ID

	// ExcludeZero drops rows with zero on-hand stock
	ExcludeZero bool

	// Pagination
	Limit  int
	Offset int
}

// StockValuationItem represents a single row in the valuation report.
type StockValuationItem struct {
	ProductID   id.ID        `json:"productId"`
	ProductCode string       `json:"productCode"`
	ProductName string       `json:"productName"`
	Stock       int64        `json:"stock"`
	UnitCost    types.Amount `json:"unitCost"`
	// Value = stock × unit cost, computed in decimal space
	Value types.Money `json:"value"`
}

// StockValuation represents the full valuation report.
type StockValuation struct {
	AsOf       time.Time            `json:"asOf"`
	Items      []StockValuationItem `json:"items"`
	TotalItems int                  `json:"totalItems"`

	// TotalValue is the sum of row values
	TotalValue types.Money `json:"totalValue"`
}

// --- Sales Summary Report ---

// SalesSummaryFilter defines filter for the sales summary report.
type SalesSummaryFilter struct {
	// Period (required)
	FromDate time.Time
	ToDate   time.Time

	// ClientID limits the summary to one client
	ClientID *id.ID
}

// SalesSummary aggregates posted sales over a period.
type SalesSummary struct {
	FromDate time.Time `json:"fromDate"`
	ToDate   time.Time `json:"toDate"`

	DocumentCount int64 `json:"documentCount"`
	LineCount     int64 `json:"lineCount"`
	UnitsSold     int64 `json:"unitsSold"`

	// Revenue is the sum of document totals
	Revenue types.Money `json:"revenue"`
}
