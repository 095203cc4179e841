package catalog_repo

import (
	"ventapos/internal/domain/catalogs/category"
	"ventapos/internal/infrastructure/storage/postgres"
)

const categoryTable = "cat_categories"

var categoryColumns = []string{
	"id", "code", "name", "active", "deletion_mark", "version",
	"description",
}

// CategoryRepo implements category.Repository for PostgreSQL.
type CategoryRepo struct {
	*BaseCatalogRepo[*category.Category]
}

// NewCategoryRepo creates a new category repository.
func NewCategoryRepo(txManager *postgres.TxManager) *CategoryRepo {
	return &CategoryRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			categoryTable,
			"category",
			categoryColumns,
			func() *category.Category { return &category.Category{} },
		),
	}
}

var _ category.Repository = (*CategoryRepo)(nil)
