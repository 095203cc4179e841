// Package purchase provides the Purchase document: an inbound transaction
// that increments product stock when posted.
package purchase

import (
	"context"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/entity"
	"ventapos/internal/core/id"
	"ventapos/internal/core/types"
)

// Purchase represents a posted purchase: a parent record plus its line items.
// Written once by the posting engine and never updated.
type Purchase struct {
	entity.Document

	// SupplierID references the vendor
	SupplierID id.ID `db:"supplier_id" json:"supplierId"`

	// Total is the sum of line subtotals (exact integer arithmetic)
	Total types.Amount `db:"total" json:"total"`

	// Table part: received items
	Lines []Line `db:"-" json:"lines"`
}

// Line represents a purchase line item.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ProductID id.ID        `db:"product_id" json:"productId"`
	Quantity  int64        `db:"quantity" json:"quantity"`
	UnitCost  types.Amount `db:"unit_cost" json:"unitCost"`
	Subtotal  types.Amount `db:"subtotal" json:"subtotal"`
}

// NewPurchase creates a new purchase document.
func NewPurchase(supplierID id.ID) *Purchase {
	return &Purchase{
		Document:   entity.NewDocument(),
		SupplierID: supplierID,
		Lines:      make([]Line, 0),
	}
}

// AddLine appends a line and recalculates the total.
// Subtotal is exact: quantity × unit cost with no rounding.
func (p *Purchase) AddLine(productID id.ID, quantity int64, unitCost types.Amount) {
	line := Line{
		LineID:    id.New(),
		LineNo:    len(p.Lines) + 1,
		ProductID: productID,
		Quantity:  quantity,
		UnitCost:  unitCost,
		Subtotal:  quantity * unitCost,
	}

	p.Lines = append(p.Lines, line)
	p.recalculateTotal()
}

func (p *Purchase) recalculateTotal() {
	p.Total = 0
	for _, line := range p.Lines {
		p.Total += line.Subtotal
	}
}

// Validate implements entity.Validatable.
func (p *Purchase) Validate(ctx context.Context) error {
	if err := p.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(p.SupplierID) {
		return apperror.NewValidation("supplier is required").
			WithDetail("field", "supplierId")
	}

	if len(p.Lines) == 0 {
		return apperror.NewEmptyTransaction()
	}

	for i, line := range p.Lines {
		if id.IsNil(line.ProductID) {
			return apperror.NewValidation("product is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.Quantity <= 0 {
			return apperror.NewInvalidQuantityOrPrice(i+1, "quantity", line.Quantity)
		}
		if line.UnitCost <= 0 {
			return apperror.NewInvalidQuantityOrPrice(i+1, "unitCost", line.UnitCost)
		}
	}

	return nil
}
