package entity

import (
	"context"
	"time"

	"ventapos/internal/core/apperror"
)

// Document is the base type for business transactions.
// Examples: Sale, Purchase.
//
// Documents are written once by the posting engine and never updated:
// a posted document is immutable, so there is no unpost/repost lifecycle.
type Document struct {
	BaseDocument

	// Number is the document number (generated, unique across documents)
	Number string `db:"number" json:"number"`

	// Date is the business date of the document
	Date time.Time `db:"date" json:"date"`

	// Notes is an optional user comment
	Notes string `db:"notes" json:"notes,omitempty"`
}

// NewDocument creates a new Document with generated ID and current date.
func NewDocument() Document {
	return Document{
		BaseDocument: NewBaseDocument(),
		Date:         time.Now().UTC(),
	}
}

// Validate implements Validatable interface.
func (d *Document) Validate(ctx context.Context) error {
	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}

	return nil
}
