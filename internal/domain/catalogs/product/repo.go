package product

import (
	"context"

	"ventapos/internal/core/id"
	"ventapos/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// AdjustStock atomically applies delta to the product's stock and returns
	// the new level. The adjustment is conditional: it fails with
	// INSUFFICIENT_STOCK (carrying the product name and available quantity)
	// if the result would drop below zero, and with REFERENCE_NOT_FOUND if
	// the product does not exist. Runs inside the ambient transaction when
	// one is present in ctx.
	AdjustStock(ctx context.Context, id id.ID, delta int64) (int64, error)

	// AvailableStock returns the current stock level.
	AvailableStock(ctx context.Context, id id.ID) (int64, error)

	// FindLowStock retrieves products with stock at or below threshold.
	FindLowStock(ctx context.Context, threshold int64, filter domain.ListFilter) (domain.ListResult[*Product], error)
}
