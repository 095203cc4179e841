package handlers

import (
	"ventapos/internal/domain/catalogs/client"
	"ventapos/internal/infrastructure/http/v1/dto"
)

// ClientHTTPHandler is the concrete catalog handler for clients.
type ClientHTTPHandler = CatalogHandler[
	*client.Client,
	dto.CreateClientRequest,
	dto.UpdateClientRequest,
]

// NewClientHandler creates a new client handler.
func NewClientHandler(base *BaseHandler, service *client.Service) *ClientHTTPHandler {
	config := CatalogHandlerConfig[
		*client.Client,
		dto.CreateClientRequest,
		dto.UpdateClientRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "client",

		MapCreateDTO: func(req dto.CreateClientRequest) *client.Client {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateClientRequest, existing *client.Client) *client.Client {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(c *client.Client) any {
			return dto.FromClient(c)
		},
	}

	return NewCatalogHandler(base, config)
}
