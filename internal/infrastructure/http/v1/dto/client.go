package dto

import (
	"ventapos/internal/domain/catalogs/client"
)

// ClientResponse contains client fields.
type ClientResponse struct {
	CatalogResponse
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
}

// FromClient creates ClientResponse from client.Client.
func FromClient(c *client.Client) ClientResponse {
	return ClientResponse{
		CatalogResponse: FromCatalog(c.Catalog),
		Phone:           c.Phone,
		Email:           c.Email,
		Address:         c.Address,
	}
}

// CreateClientRequest for creating clients.
type CreateClientRequest struct {
	Code    string  `json:"code"`
	Name    string  `json:"name" binding:"required"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// ToEntity converts request to domain entity.
func (r CreateClientRequest) ToEntity() *client.Client {
	c := client.NewClient(r.Code, r.Name)
	c.Phone = r.Phone
	c.Email = r.Email
	c.Address = r.Address
	return c
}

// UpdateClientRequest for updating clients.
type UpdateClientRequest struct {
	Code    *string `json:"code"`
	Name    *string `json:"name"`
	Active  *bool   `json:"active"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Version int     `json:"version" binding:"required,min=1"`
}

// ApplyTo applies non-nil fields onto the existing entity.
func (r UpdateClientRequest) ApplyTo(c *client.Client) {
	if r.Code != nil {
		c.Code = *r.Code
	}
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Active != nil {
		c.Active = *r.Active
	}
	if r.Phone != nil {
		c.Phone = r.Phone
	}
	if r.Email != nil {
		c.Email = r.Email
	}
	if r.Address != nil {
		c.Address = r.Address
	}
	c.Version = r.Version
}
