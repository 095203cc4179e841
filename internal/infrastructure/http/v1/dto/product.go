package dto

import (
	"ventapos/internal/core/types"
	"ventapos/internal/domain/catalogs/product"
)

// ProductResponse contains product fields.
type ProductResponse struct {
	CatalogResponse
	UnitPrice   types.Amount `json:"unitPrice"`
	UnitCost    types.Amount `json:"unitCost"`
	Stock       int64        `json:"stock"`
	CategoryID  *string      `json:"categoryId,omitempty"`
	SupplierID  *string      `json:"supplierId,omitempty"`
	Description *string      `json:"description,omitempty"`
}

// FromProduct creates ProductResponse from product.Product.
func FromProduct(p *product.Product) ProductResponse {
	return ProductResponse{
		CatalogResponse: FromCatalog(p.Catalog),
		UnitPrice:       p.UnitPrice,
		UnitCost:        p.UnitCost,
		Stock:           p.Stock,
		CategoryID:      p.CategoryID,
		SupplierID:      p.SupplierID,
		Description:     p.Description,
	}
}

// CreateProductRequest for creating products.
type CreateProductRequest struct {
	Code        string       `json:"code"`
	Name        string       `json:"name" binding:"required"`
	UnitPrice   types.Amount `json:"unitPrice" binding:"min=0"`
	UnitCost    types.Amount `json:"unitCost" binding:"min=0"`
	Stock       int64        `json:"stock" binding:"min=0"`
	CategoryID  *string      `json:"categoryId"`
	SupplierID  *string      `json:"supplierId"`
	Description *string      `json:"description"`
}

// ToEntity converts request to domain entity.
func (r CreateProductRequest) ToEntity() *product.Product {
	p := product.NewProduct(r.Code, r.Name, r.UnitPrice, r.UnitCost)
	p.Stock = r.Stock
	p.CategoryID = r.CategoryID
	p.SupplierID = r.SupplierID
	p.Description = r.Description
	return p
}

// UpdateProductRequest for updating products. Stock is absent on purpose:
// it changes only through posted transactions.
type UpdateProductRequest struct {
	Code        *string       `json:"code"`
	Name        *string       `json:"name"`
	UnitPrice   *types.Amount `json:"unitPrice"`
	UnitCost    *types.Amount `json:"unitCost"`
	Active      *bool         `json:"active"`
	CategoryID  *string       `json:"categoryId"`
	SupplierID  *string       `json:"supplierId"`
	Description *string       `json:"description"`
	Version     int           `json:"version" binding:"required,min=1"`
}

// ApplyTo applies non-nil fields onto the existing entity.
func (r UpdateProductRequest) ApplyTo(p *product.Product) {
	if r.Code != nil {
		p.Code = *r.Code
	}
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.UnitPrice != nil {
		p.UnitPrice = *r.UnitPrice
	}
	if r.UnitCost != nil {
		p.UnitCost = *r.UnitCost
	}
	if r.Active != nil {
		p.Active = *r.Active
	}
	if r.CategoryID != nil {
		p.CategoryID = r.CategoryID
	}
	if r.SupplierID != nil {
		p.SupplierID = r.SupplierID
	}
	if r.Description != nil {
		p.Description = r.Description
	}
	p.Version = r.Version
}
