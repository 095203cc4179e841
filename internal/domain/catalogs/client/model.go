// Package client provides the Client catalog: the customers sales are
// posted against.
package client

import (
	"context"

	"ventapos/internal/core/entity"
)

// Client represents a customer.
type Client struct {
	entity.Catalog

	Phone   *string `db:"phone" json:"phone,omitempty"`
	Email   *string `db:"email" json:"email,omitempty"`
	Address *string `db:"address" json:"address,omitempty"`
}

// NewClient creates a new Client with required fields.
func NewClient(code, name string) *Client {
	return &Client{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (c *Client) Validate(ctx context.Context) error {
	return c.Catalog.Validate(ctx)
}
