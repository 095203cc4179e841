// Package sale provides the Sale document: an outbound transaction that
// decrements product stock when posted.
package sale

import (
	"context"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/entity"
	"ventapos/internal/core/id"
	"ventapos/internal/core/types"
)

// Sale represents a posted sale: a parent record plus its line items.
// Written once by the posting engine and never updated.
type Sale struct {
	entity.Document

	// ClientID references the customer
	ClientID id.ID `db:"client_id" json:"clientId"`

	// Total is the sum of line subtotals (exact integer arithmetic)
	Total types.Amount `db:"total" json:"total"`

	// Table part: sold items
	Lines []Line `db:"-" json:"lines"`
}

// Line represents a sale line item.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ProductID id.ID        `db:"product_id" json:"productId"`
	Quantity  int64        `db:"quantity" json:"quantity"`
	UnitPrice types.Amount `db:"unit_price" json:"unitPrice"`
	Subtotal  types.Amount `db:"subtotal" json:"subtotal"`
}

// NewSale creates a new sale document.
func NewSale(clientID id.ID) *Sale {
	return &Sale{
		Document: entity.NewDocument(),
		ClientID: clientID,
		Lines:    make([]Line, 0),
	}
}

// AddLine appends a line and recalculates the total.
// Subtotal is exact: quantity × unit price with no rounding.
func (s *Sale) AddLine(productID id.ID, quantity int64, unitPrice types.Amount) {
	line := Line{
		LineID:    id.New(),
		LineNo:    len(s.Lines) + 1,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  quantity * unitPrice,
	}

	s.Lines = append(s.Lines, line)
	s.recalculateTotal()
}

func (s *Sale) recalculateTotal() {
	s.Total = 0
	for _, line := range s.Lines {
		s.Total += line.Subtotal
	}
}

// Validate implements entity.Validatable.
func (s *Sale) Validate(ctx context.Context) error {
	if err := s.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(s.ClientID) {
		return apperror.NewValidation("client is required").
			WithDetail("field", "clientId")
	}

	if len(s.Lines) == 0 {
		return apperror.NewEmptyTransaction()
	}

	for i, line := range s.Lines {
		if id.IsNil(line.ProductID) {
			return apperror.NewValidation("product is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.Quantity <= 0 {
			return apperror.NewInvalidQuantityOrPrice(i+1, "quantity", line.Quantity)
		}
		if line.UnitPrice <= 0 {
			return apperror.NewInvalidQuantityOrPrice(i+1, "unitPrice", line.UnitPrice)
		}
	}

	return nil
}
