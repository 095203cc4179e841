// Package category provides the Category catalog used to group products.
package category

import (
	"context"

	"ventapos/internal/core/entity"
)

// Category groups products for navigation and reporting.
type Category struct {
	entity.Catalog

	Description *string `db:"description" json:"description,omitempty"`
}

// NewCategory creates a new Category with required fields.
func NewCategory(code, name string) *Category {
	return &Category{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (c *Category) Validate(ctx context.Context) error {
	return c.Catalog.Validate(ctx)
}
