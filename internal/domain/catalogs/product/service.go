package product

import (
	"context"
	"fmt"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/tx"
	"ventapos/internal/domain"
)

// Service provides business logic for the Product catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Product]
	repo Repository
}

// NewService creates a new Product service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "product",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().On(domain.BeforeCreate, svc.prepareForCreate)
	base.Hooks().On(domain.BeforeUpdate, svc.checkCodeUnique)

	return svc
}

// prepareForCreate generates a code when absent and checks uniqueness.
func (s *Service) prepareForCreate(ctx context.Context, p *Product) error {
	if p.Code == "" {
		p.Code = fmt.Sprintf("PRD-%s", p.ID.String()[:8])
	}
	return s.checkCodeUnique(ctx, p)
}

func (s *Service) checkCodeUnique(ctx context.Context, p *Product) error {
	existing, err := s.repo.GetByCode(ctx, p.Code)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != p.ID {
		return apperror.NewDuplicate("product", "code", p.Code)
	}
	return nil
}

// --- Entity-specific methods ---

// FindLowStock retrieves products with stock at or below threshold.
func (s *Service) FindLowStock(ctx context.Context, threshold int64, filter domain.ListFilter) (domain.ListResult[*Product], error) {
	return s.repo.FindLowStock(ctx, threshold, filter)
}
