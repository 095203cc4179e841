package catalog_repo

import (
	"ventapos/internal/domain/catalogs/supplier"
	"ventapos/internal/infrastructure/storage/postgres"
)

const supplierTable = "cat_suppliers"

var supplierColumns = []string{
	"id", "code", "name", "active", "deletion_mark", "version",
	"phone", "email", "address", "contact_name",
}

// SupplierRepo implements supplier.Repository for PostgreSQL.
type SupplierRepo struct {
	*BaseCatalogRepo[*supplier.Supplier]
}

// NewSupplierRepo creates a new supplier repository.
func NewSupplierRepo(txManager *postgres.TxManager) *SupplierRepo {
	return &SupplierRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			supplierTable,
			"supplier",
			supplierColumns,
			func() *supplier.Supplier { return &supplier.Supplier{} },
		),
	}
}

var _ supplier.Repository = (*SupplierRepo)(nil)
