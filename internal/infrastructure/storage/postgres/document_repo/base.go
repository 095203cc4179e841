// Package document_repo provides PostgreSQL implementations for document repositories.
//
// Documents are two-table aggregates: a parent row plus ordered line rows in a
// companion table keyed by doc_id. Parents carry a unique business number, so
// inserts surface DUPLICATE_ENTRY with field "number" on a collision.
package document_repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/id"
	"ventapos/internal/domain"
	"ventapos/internal/infrastructure/storage/postgres"
)

// BaseDocumentRepo provides common operations for document parent tables.
type BaseDocumentRepo[T any] struct {
	txManager  *postgres.TxManager
	tableName  string
	linesTable string
	entityName string
	selectCols []string
	newFn      func() T
}

// NewBaseDocumentRepo creates a new base document repository.
func NewBaseDocumentRepo[T any](
	txManager *postgres.TxManager,
	tableName string,
	linesTable string,
	entityName string,
	selectCols []string,
	newFn func() T,
) *BaseDocumentRepo[T] {
	return &BaseDocumentRepo[T]{
		txManager:  txManager,
		tableName:  tableName,
		linesTable: linesTable,
		entityName: entityName,
		selectCols: selectCols,
		newFn:      newFn,
	}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *BaseDocumentRepo[T]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Querier resolves the transaction-aware querier for ctx.
func (r *BaseDocumentRepo[T]) Querier(ctx context.Context) postgres.Querier {
	return r.txManager.GetQuerier(ctx)
}

// Create inserts the parent record using its "db" tags.
func (r *BaseDocumentRepo[T]) Create(ctx context.Context, doc T) error {
	data := postgres.StructToMap(doc)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in document")
	}

	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := r.Builder().
		Insert(r.tableName).
		SetMap(filteredData)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err = r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		if dupErr := postgres.MapUniqueViolation(err, r.entityName); dupErr != nil {
			return dupErr
		}
		return fmt.Errorf("insert %s: %w", r.tableName, err)
	}

	return nil
}

// GetByID retrieves the parent record (without lines).
func (r *BaseDocumentRepo[T]) GetByID(ctx context.Context, docID id.ID) (T, error) {
	doc := r.newFn()

	q := r.Builder().
		Select(r.selectCols...).
		From(r.tableName).
		Where(squirrel.Eq{"id": docID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return doc, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.Querier(ctx), doc, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return doc, apperror.NewNotFound(r.entityName, docID.String())
		}
		return doc, fmt.Errorf("get by id: %w", err)
	}

	return doc, nil
}

// List retrieves documents with filtering and pagination, newest first.
func (r *BaseDocumentRepo[T]) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[T], error) {
	result := domain.ListResult[T]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.Builder().
		Select(r.selectCols...).
		From(r.tableName)

	if filter.Search != "" {
		q = q.Where(squirrel.ILike{"number": "%" + filter.Search + "%"})
	}

	if len(filter.IDs) > 0 {
		q = q.Where(squirrel.Eq{"id": filter.IDs})
	}

	countQ := r.Builder().
		Select("COUNT(*)").
		FromSelect(q, "sub")

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return result, fmt.Errorf("build count query: %w", err)
	}

	querier := r.Querier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count: %w", err)
	}

	orderBy, err := r.parseOrderBy(filter.OrderBy)
	if err != nil {
		return result, err
	}
	q = q.OrderBy(orderBy)

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list: %w", err)
	}

	return result, nil
}

// DeleteWithLines removes the document and its lines. Lines go first so the
// FK never dangles; both statements run on the same querier.
func (r *BaseDocumentRepo[T]) DeleteWithLines(ctx context.Context, docID id.ID) error {
	querier := r.Querier(ctx)

	linesSQL, linesArgs, err := r.Builder().
		Delete(r.linesTable).
		Where(squirrel.Eq{"doc_id": docID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete lines: %w", err)
	}

	if _, err := querier.Exec(ctx, linesSQL, linesArgs...); err != nil {
		return fmt.Errorf("delete lines: %w", err)
	}

	docSQL, docArgs, err := r.Builder().
		Delete(r.tableName).
		Where(squirrel.Eq{"id": docID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := querier.Exec(ctx, docSQL, docArgs...)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.tableName, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.entityName, docID.String())
	}

	return nil
}

// BulkDeleteWithLines removes matching documents and their lines, returning
// how many parents were deleted. Unknown ids are ignored.
func (r *BaseDocumentRepo[T]) BulkDeleteWithLines(ctx context.Context, ids []id.ID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	querier := r.Querier(ctx)

	linesSQL, linesArgs, err := r.Builder().
		Delete(r.linesTable).
		Where(squirrel.Eq{"doc_id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete lines: %w", err)
	}

	if _, err := querier.Exec(ctx, linesSQL, linesArgs...); err != nil {
		return 0, fmt.Errorf("delete lines: %w", err)
	}

	docSQL, docArgs, err := r.Builder().
		Delete(r.tableName).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	result, err := querier.Exec(ctx, docSQL, docArgs...)
	if err != nil {
		return 0, fmt.Errorf("bulk delete %s: %w", r.tableName, err)
	}

	return result.RowsAffected(), nil
}

func (r *BaseDocumentRepo[T]) parseOrderBy(orderBy string) (string, error) {
	allowed := make(map[string]struct{}, len(r.selectCols))
	for _, col := range r.selectCols {
		allowed[col] = struct{}{}
	}

	if orderBy == "" {
		return "date DESC, number DESC", nil
	}

	direction := "ASC"
	field := orderBy
	if strings.HasPrefix(orderBy, "-") {
		direction = "DESC"
		field = strings.TrimPrefix(orderBy, "-")
	} else if strings.HasPrefix(orderBy, "+") {
		field = strings.TrimPrefix(orderBy, "+")
	}

	field = strings.TrimSpace(field)
	if _, ok := allowed[field]; !ok {
		return "", apperror.NewValidation("invalid orderBy").WithDetail("orderBy", orderBy)
	}

	return field + " " + direction, nil
}
