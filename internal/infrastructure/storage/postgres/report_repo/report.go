// Package report_repo provides PostgreSQL read-side queries for reports.
package report_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"ventapos/internal/core/id"
	"ventapos/internal/domain/reports"
	"ventapos/internal/infrastructure/storage/postgres"
)

// ReportRepo implements reports.Repository for PostgreSQL.
type ReportRepo struct {
	txManager *postgres.TxManager
}

// NewReportRepo creates a new report repository.
func NewReportRepo(txManager *postgres.TxManager) *ReportRepo {
	return &ReportRepo{txManager: txManager}
}

var _ reports.Repository = (*ReportRepo)(nil)

func (r *ReportRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

type stockValuationRow struct {
	ProductID   id.ID  `db:"id"`
	ProductCode string `db:"code"`
	ProductName string `db:"name"`
	Stock       int64  `db:"stock"`
	UnitCost    int64  `db:"unit_cost"`
}

// GetStockValuation computes on-hand value per product. Row values are
// computed in decimal space from the integer stock and unit cost.
func (r *ReportRepo) GetStockValuation(ctx context.Context, filter reports.StockValuationFilter) (*reports.StockValuation, error) {
	q := r.builder().
		Select("id", "code", "name", "stock", "unit_cost").
		From("cat_products").
		Where(squirrel.Eq{"deletion_mark": false})

	if len(filter.ProductIDs) > 0 {
		q = q.Where(squirrel.Eq{"id": filter.ProductIDs})
	}

	if filter.CategoryID != nil {
		q = q.Where(squirrel.Eq{"category_id": filter.CategoryID.String()})
	}

	if filter.ExcludeZero {
		q = q.Where(squirrel.Gt{"stock": 0})
	}

	q = q.OrderBy("name ASC")

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []stockValuationRow
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("stock valuation: %w", err)
	}

	report := &reports.StockValuation{
		AsOf:       time.Now().UTC(),
		Items:      make([]reports.StockValuationItem, 0, len(rows)),
		TotalValue: decimal.Zero,
	}

	for _, row := range rows {
		value := decimal.NewFromInt(row.Stock).Mul(decimal.NewFromInt(row.UnitCost))
		report.Items = append(report.Items, reports.StockValuationItem{
			ProductID:   row.ProductID,
			ProductCode: row.ProductCode,
			ProductName: row.ProductName,
			Stock:       row.Stock,
			UnitCost:    row.UnitCost,
			Value:       value,
		})
		report.TotalValue = report.TotalValue.Add(value)
	}
	report.TotalItems = len(report.Items)

	return report, nil
}

type salesSummaryRow struct {
	DocumentCount int64 `db:"document_count"`
	LineCount     int64 `db:"line_count"`
	UnitsSold     int64 `db:"units_sold"`
	Revenue       int64 `db:"revenue"`
}

// GetSalesSummary aggregates posted sales over a period.
func (r *ReportRepo) GetSalesSummary(ctx context.Context, filter reports.SalesSummaryFilter) (*reports.SalesSummary, error) {
	docsQ := r.builder().
		Select("id", "total").
		From("doc_sales").
		Where(squirrel.GtOrEq{"date": filter.FromDate}).
		Where(squirrel.LtOrEq{"date": filter.ToDate})

	if filter.ClientID != nil {
		docsQ = docsQ.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}

	q := r.builder().
		Select(
			"COUNT(DISTINCT d.id) AS document_count",
			"COUNT(l.line_id) AS line_count",
			"COALESCE(SUM(l.quantity), 0) AS units_sold",
			"COALESCE(SUM(l.subtotal), 0) AS revenue",
		).
		FromSelect(docsQ, "d").
		LeftJoin("doc_sale_lines l ON l.doc_id = d.id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row salesSummaryRow
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &row, sql, args...); err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}

	return &reports.SalesSummary{
		FromDate:      filter.FromDate,
		ToDate:        filter.ToDate,
		DocumentCount: row.DocumentCount,
		LineCount:     row.LineCount,
		UnitsSold:     row.UnitsSold,
		Revenue:       decimal.NewFromInt(row.Revenue),
	}, nil
}
