package reports

import (
	"context"
	"time"

	"ventapos/internal/core/apperror"
)

// Service provides report generation operations.
type Service struct {
	repo Repository
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetStockValuation generates the stock valuation report.
func (s *Service) GetStockValuation(ctx context.Context, filter StockValuationFilter) (*StockValuation, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}

	report, err := s.repo.GetStockValuation(ctx, filter)
	if err != nil {
		if apperror.IsAppError(err) {
			return nil, err
		}
		return nil, apperror.NewInternal(err).WithDetail("report", "stock_valuation")
	}

	report.AsOf = time.Now().UTC()
	return report, nil
}

// GetSalesSummary generates the sales summary report for a period.
func (s *Service) GetSalesSummary(ctx context.Context, filter SalesSummaryFilter) (*SalesSummary, error) {
	if filter.FromDate.IsZero() || filter.ToDate.IsZero() {
		return nil, apperror.NewValidation("fromDate and toDate are required")
	}
	if filter.FromDate.After(filter.ToDate) {
		return nil, apperror.NewValidation("fromDate must be before toDate")
	}

	summary, err := s.repo.GetSalesSummary(ctx, filter)
	if err != nil {
		if apperror.IsAppError(err) {
			return nil, err
		}
		return nil, apperror.NewInternal(err).WithDetail("report", "sales_summary")
	}

	return summary, nil
}
