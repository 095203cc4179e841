package catalog_repo

import (
	"ventapos/internal/domain/catalogs/client"
	"ventapos/internal/infrastructure/storage/postgres"
)

const clientTable = "cat_clients"

var clientColumns = []string{
	"id", "code", "name", "active", "deletion_mark", "version",
	"phone", "email", "address",
}

// ClientRepo implements client.Repository for PostgreSQL.
type ClientRepo struct {
	*BaseCatalogRepo[*client.Client]
}

// NewClientRepo creates a new client repository.
func NewClientRepo(txManager *postgres.TxManager) *ClientRepo {
	return &ClientRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			clientTable,
			"client",
			clientColumns,
			func() *client.Client { return &client.Client{} },
		),
	}
}

var _ client.Repository = (*ClientRepo)(nil)
