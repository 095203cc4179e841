package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventapos/internal/core/apperror"
)

type memReportRepo struct {
	lastValuationFilter StockValuationFilter
	summary             *SalesSummary
}

func (r *memReportRepo) GetStockValuation(_ context.Context, filter StockValuationFilter) (*StockValuation, error) {
	r.lastValuationFilter = filter
	return &StockValuation{}, nil
}

func (r *memReportRepo) GetSalesSummary(_ context.Context, filter SalesSummaryFilter) (*SalesSummary, error) {
	if r.summary != nil {
		return r.summary, nil
	}
	return &SalesSummary{FromDate: filter.FromDate, ToDate: filter.ToDate}, nil
}

func TestStockValuationClampsLimit(t *testing.T) {
	repo := &memReportRepo{}
	svc := NewService(repo)

	_, err := svc.GetStockValuation(context.Background(), StockValuationFilter{Limit: 50000})
	require.NoError(t, err)
	assert.Equal(t, 1000, repo.lastValuationFilter.Limit)

	_, err = svc.GetStockValuation(context.Background(), StockValuationFilter{})
	require.NoError(t, err)
	assert.Equal(t, 100, repo.lastValuationFilter.Limit)
}

func TestStockValuationStampsAsOf(t *testing.T) {
	svc := NewService(&memReportRepo{})

	report, err := svc.GetStockValuation(context.Background(), StockValuationFilter{})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), report.AsOf, time.Minute)
}

func TestSalesSummaryRequiresPeriod(t *testing.T) {
	svc := NewService(&memReportRepo{})

	_, err := svc.GetSalesSummary(context.Background(), SalesSummaryFilter{})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestSalesSummaryRejectsInvertedPeriod(t *testing.T) {
	svc := NewService(&memReportRepo{})

	_, err := svc.GetSalesSummary(context.Background(), SalesSummaryFilter{
		FromDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		ToDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestSalesSummaryPassesThrough(t *testing.T) {
	repo := &memReportRepo{}
	svc := NewService(repo)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	summary, err := svc.GetSalesSummary(context.Background(), SalesSummaryFilter{FromDate: from, ToDate: to})
	require.NoError(t, err)
	assert.Equal(t, from, summary.FromDate)
	assert.Equal(t, to, summary.ToDate)
}
