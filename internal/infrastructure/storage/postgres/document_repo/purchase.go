package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"ventapos/internal/core/id"
	"ventapos/internal/domain/documents/purchase"
	"ventapos/internal/infrastructure/storage/postgres"
)

const (
	purchaseTable      = "doc_purchases"
	purchaseLinesTable = "doc_purchase_lines"
)

var purchaseColumns = []string{
	"id", "number", "date", "notes", "deletion_mark", "version",
	"created_at", "created_by", "supplier_id", "total",
}

// PurchaseRepo implements purchase.Repository for PostgreSQL.
type PurchaseRepo struct {
	*BaseDocumentRepo[*purchase.Purchase]
}

// NewPurchaseRepo creates a new purchase repository.
func NewPurchaseRepo(txManager *postgres.TxManager) *PurchaseRepo {
	return &PurchaseRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txManager,
			purchaseTable,
			purchaseLinesTable,
			"purchase",
			purchaseColumns,
			func() *purchase.Purchase { return &purchase.Purchase{} },
		),
	}
}

var _ purchase.Repository = (*PurchaseRepo)(nil)

// SaveLines replaces all line rows for the document.
func (r *PurchaseRepo) SaveLines(ctx context.Context, docID id.ID, lines []purchase.Line) error {
	querier := r.Querier(ctx)

	delSQL, delArgs, err := r.Builder().
		Delete(purchaseLinesTable).
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
		Insert(purchaseLinesTable).
		Columns("line_id", "doc_id", "line_no", "product_id", "quantity", "unit_cost", "subtotal")

	for _, line := range lines {
		q = q.Values(line.LineID, docID, line.LineNo, line.ProductID, line.Quantity, line.UnitCost, line.Subtotal)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		if fkErr := postgres.MapForeignKeyViolation(err, "purchase line"); fkErr != nil {
			return fkErr
		}
		return fmt.Errorf("insert lines: %w", err)
	}

	return nil
}

// GetLines retrieves all lines ordered by line number.
func (r *PurchaseRepo) GetLines(ctx context.Context, docID id.ID) ([]purchase.Line, error) {
	q := r.Builder().
		Select("line_id", "line_no", "product_id", "quantity", "unit_cost", "subtotal").
		From(purchaseLinesTable).
		Where(squirrel.Eq{"doc_id": docID}).
		OrderBy("line_no ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	lines := make([]purchase.Line, 0)
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}
