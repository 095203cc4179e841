package dto

import (
	"ventapos/internal/domain/catalogs/category"
)

// CategoryResponse contains category fields.
type CategoryResponse struct {
	CatalogResponse
	Description *string `json:"description,omitempty"`
}

// FromCategory creates CategoryResponse from category.Category.
func FromCategory(c *category.Category) CategoryResponse {
	return CategoryResponse{
		CatalogResponse: FromCatalog(c.Catalog),
		Description:     c.Description,
	}
}

// CreateCategoryRequest for creating categories.
type CreateCategoryRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// ToEntity converts request to domain entity.
func (r CreateCategoryRequest) ToEntity() *category.Category {
	c := category.NewCategory(r.Code, r.Name)
	c.Description = r.Description
	return c
}

// UpdateCategoryRequest for updating categories.
type UpdateCategoryRequest struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Active      *bool   `json:"active"`
	Description *string `json:"description"`
	Version     int     `json:"version" binding:"required,min=1"`
}

// ApplyTo applies non-nil fields onto the existing entity.
func (r UpdateCategoryRequest) ApplyTo(c *category.Category) {
	if r.Code != nil {
		c.Code = *r.Code
	}
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Active != nil {
		c.Active = *r.Active
	}
	if r.Description != nil {
		c.Description = r.Description
	}
	c.Version = r.Version
}
