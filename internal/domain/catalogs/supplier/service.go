package supplier

import (
	"context"
	"fmt"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/tx"
	"ventapos/internal/domain"
)

// Service provides business logic for the Supplier catalog.
type Service struct {
	*domain.CatalogService[*Supplier]
	repo Repository
}

// NewService creates a new Supplier service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Supplier]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "supplier",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().On(domain.BeforeCreate, svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, sup *Supplier) error {
	if sup.Code == "" {
		sup.Code = fmt.Sprintf("SUP-%s", sup.ID.String()[:8])
	}

	existing, err := s.repo.GetByCode(ctx, sup.Code)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != sup.ID {
		return apperror.NewDuplicate("supplier", "code", sup.Code)
	}
	return nil
}
