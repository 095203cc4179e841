// Package supplier provides the Supplier catalog: the vendors purchases are
// posted against.
package supplier

import (
	"context"

	"ventapos/internal/core/entity"
)

// Supplier represents a vendor.
type Supplier struct {
	entity.Catalog

	Phone   *string `db:"phone" json:"phone,omitempty"`
	Email   *string `db:"email" json:"email,omitempty"`
	Address *string `db:"address" json:"address,omitempty"`

	// ContactName is the primary contact person
	ContactName *string `db:"contact_name" json:"contactName,omitempty"`
}

// NewSupplier creates a new Supplier with required fields.
func NewSupplier(code, name string) *Supplier {
	return &Supplier{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (s *Supplier) Validate(ctx context.Context) error {
	return s.Catalog.Validate(ctx)
}
