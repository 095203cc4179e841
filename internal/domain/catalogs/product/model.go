// Package product provides the Product catalog: the items sold and purchased,
// each carrying its current on-hand stock level.
package product

import (
	"context"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/entity"
	"ventapos/internal/core/types"
)

// Product represents a sellable item with its on-hand stock.
//
// Stock is owned by the posting engine: catalog updates never touch it, and
// the repository excludes the stock column from Update. The only write path
// is the repository's AdjustStock primitive.
type Product struct {
	entity.Catalog

	// UnitPrice is the selling price per unit (whole currency units)
	UnitPrice types.Amount `db:"unit_price" json:"unitPrice"`

	// UnitCost is the purchase cost per unit (whole currency units)
	UnitCost types.Amount `db:"unit_cost" json:"unitCost"`

	// Stock is the current on-hand quantity. Never negative.
	Stock int64 `db:"stock" json:"stock"`

	// CategoryID references the owning category
	CategoryID *string `db:"category_id" json:"categoryId,omitempty"`

	// SupplierID references the preferred supplier
	SupplierID *string `db:"supplier_id" json:"supplierId,omitempty"`

	// Description is an optional detailed description
	Description *string `db:"description" json:"description,omitempty"`
}

// NewProduct creates a new Product with required fields.
func NewProduct(code, name string, unitPrice, unitCost types.Amount) *Product {
	return &Product{
		Catalog:   entity.NewCatalog(code, name),
		UnitPrice: unitPrice,
		UnitCost:  unitCost,
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.UnitPrice < 0 {
		return apperror.NewValidation("unit price cannot be negative").
			WithDetail("field", "unitPrice")
	}

	if p.UnitCost < 0 {
		return apperror.NewValidation("unit cost cannot be negative").
			WithDetail("field", "unitCost")
	}

	if p.Stock < 0 {
		return apperror.NewValidation("stock cannot be negative").
			WithDetail("field", "stock")
	}

	return nil
}
