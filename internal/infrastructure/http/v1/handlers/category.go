package handlers

import (
	"ventapos/internal/domain/catalogs/category"
	"ventapos/internal/infrastructure/http/v1/dto"
)

// CategoryHTTPHandler is the concrete catalog handler for categories.
type CategoryHTTPHandler = CatalogHandler[
	*category.Category,
	dto.CreateCategoryRequest,
	dto.UpdateCategoryRequest,
]

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(base *BaseHandler, service *category.Service) *CategoryHTTPHandler {
	config := CatalogHandlerConfig[
		*category.Category,
		dto.CreateCategoryRequest,
		dto.UpdateCategoryRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "category",

		MapCreateDTO: func(req dto.CreateCategoryRequest) *category.Category {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateCategoryRequest, existing *category.Category) *category.Category {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(c *category.Category) any {
			return dto.FromCategory(c)
		},
	}

	return NewCatalogHandler(base, config)
}
