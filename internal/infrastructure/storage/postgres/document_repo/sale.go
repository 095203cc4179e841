package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"ventapos/internal/core/id"
	"ventapos/internal/domain/documents/sale"
	"ventapos/internal/infrastructure/storage/postgres"
)

const (
	saleTable      = "doc_sales"
	saleLinesTable = "doc_sale_lines"
)

var saleColumns = []string{
	"id", "number", "date", "notes", "deletion_mark", "version",
	"created_at", "created_by", "client_id", "total",
}

// SaleRepo implements sale.Repository for PostgreSQL.
type SaleRepo struct {
	*BaseDocumentRepo[*sale.Sale]
}

// NewSaleRepo creates a new sale repository.
func NewSaleRepo(txManager *postgres.TxManager) *SaleRepo {
	return &SaleRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txManager,
			saleTable,
			saleLinesTable,
			"sale",
			saleColumns,
			func() *sale.Sale { return &sale.Sale{} },
		),
	}
}

var _ sale.Repository = (*SaleRepo)(nil)

// SaveLines replaces all line rows for the document.
func (r *SaleRepo) SaveLines(ctx context.Context, docID id.ID, lines []sale.Line) error {
	querier := r.Querier(ctx)

	delSQL, delArgs, err := r.Builder().
		Delete(saleLinesTable).
		Where(squirrel.Eq{"doc_id": docID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete lines: %w", err)
	}

	if _, err := querier.Exec(ctx, delSQL, delArgs...); err != nil {
		return fmt.Errorf("delete lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(saleLinesTable).
		Columns("line_id", "doc_id", "line_no", "product_id", "quantity", "unit_price", "subtotal")

	for _, line := range lines {
		q = q.Values(line.LineID, docID, line.LineNo, line.ProductID, line.Quantity, line.UnitPrice, line.Subtotal)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		if fkErr := postgres.MapForeignKeyViolation(err, "sale line"); fkErr != nil {
			return fkErr
		}
		return fmt.Errorf("insert lines: %w", err)
	}

	return nil
}

// GetLines retrieves all lines ordered by line number.
func (r *SaleRepo) GetLines(ctx context.Context, docID id.ID) ([]sale.Line, error) {
	q := r.Builder().
		Select("line_id", "line_no", "product_id", "quantity", "unit_price", "subtotal").
		From(saleLinesTable).
		Where(squirrel.Eq{"doc_id": docID}).
		OrderBy("line_no ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	lines := make([]sale.Line, 0)
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}
