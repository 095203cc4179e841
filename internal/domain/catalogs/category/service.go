package category

import (
	"context"
	"fmt"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/tx"
	"ventapos/internal/domain"
)

// Service provides business logic for the Category catalog.
type Service struct {
	*domain.CatalogService[*Category]
	repo Repository
}

// NewService creates a new Category service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Category]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "category",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().On(domain.BeforeCreate, svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, c *Category) error {
	if c.Code == "" {
		c.Code = fmt.Sprintf("CAT-%s", c.ID.String()[:8])
	}

	existing, err := s.repo.GetByCode(ctx, c.Code)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != c.ID {
		return apperror.NewDuplicate("category", "code", c.Code)
	}
	return nil
}
