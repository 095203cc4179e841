package dto

import (
	"ventapos/internal/domain/catalogs/supplier"
)

// SupplierResponse contains supplier fields.
type SupplierResponse struct {
	CatalogResponse
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Address     *string `json:"address,omitempty"`
	ContactName *string `json:"contactName,omitempty"`
}

// FromSupplier creates SupplierResponse from supplier.Supplier.
func FromSupplier(s *supplier.Supplier) SupplierResponse {
	return SupplierResponse{
		CatalogResponse: FromCatalog(s.Catalog),
		Phone:           s.Phone,
		Email:           s.Email,
		Address:         s.Address,
		ContactName:     s.ContactName,
	}
}

// CreateSupplierRequest for creating suppliers.
type CreateSupplierRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name" binding:"required"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	ContactName *string `json:"contactName"`
}

// ToEntity converts request to domain entity.
func (r CreateSupplierRequest) ToEntity() *supplier.Supplier {
	s := supplier.NewSupplier(r.Code, r.Name)
	s.Phone = r.Phone
	s.Email = r.Email
	s.Address = r.Address
	s.ContactName = r.ContactName
	return s
}

// UpdateSupplierRequest for updating suppliers.
type UpdateSupplierRequest struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Active      *bool   `json:"active"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	ContactName *string `json:"contactName"`
	Version     int     `json:"version" binding:"required,min=1"`
}

// ApplyTo applies non-nil fields onto the existing entity.
func (r UpdateSupplierRequest) ApplyTo(s *supplier.Supplier) {
	if r.Code != nil {
		s.Code = *r.Code
	}
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Active != nil {
		s.Active = *r.Active
	}
	if r.Phone != nil {
		s.Phone = r.Phone
	}
	if r.Email != nil {
		s.Email = r.Email
	}
	if r.Address != nil {
		s.Address = r.Address
	}
	if r.ContactName != nil {
		s.ContactName = r.ContactName
	}
	s.Version = r.Version
}
