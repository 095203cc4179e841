package catalog_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/id"
	"ventapos/internal/domain"
	"ventapos/internal/domain/catalogs/product"
	"ventapos/internal/infrastructure/storage/postgres"
)

const productTable = "cat_products"

var productColumns = []string{
	"id", "code", "name", "active", "deletion_mark", "version",
	"unit_price", "unit_cost", "stock", "category_id", "supplier_id", "description",
}

// ProductRepo implements product.Repository for PostgreSQL.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txManager *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			productTable,
			"product",
			productColumns,
			func() *product.Product { return &product.Product{} },
			"stock", // stock is written only through AdjustStock
		),
	}
}

var _ product.Repository = (*ProductRepo)(nil)

// AdjustStock atomically applies delta to the product's stock, refusing to go
// below zero. The guard lives in the WHERE clause so concurrent adjustments
// serialize on the row and cannot oversell.
func (r *ProductRepo) AdjustStock(ctx context.Context, productID id.ID, delta int64) (int64, error) {
	q := r.Builder().
		Update(productTable).
		Set("stock", squirrel.Expr("stock + ?", delta)).
		Where(squirrel.Eq{"id": productID}).
		Where(squirrel.Expr("stock + ? >= 0", delta)).
		Suffix("RETURNING stock")

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build adjust stock: %w", err)
	}

	querier := r.Querier(ctx)

	var newStock int64
	err = querier.QueryRow(ctx, sql, args...).Scan(&newStock)
	if err == nil {
		return newStock, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("adjust stock: %w", err)
	}

	// No row updated: either the product is missing or the floor was hit.
	// Read name and stock in the same transaction to tell them apart.
	var (
		name      string
		available int64
	)
	lookupSQL, lookupArgs, err := r.Builder().
		Select("name", "stock").
		From(productTable).
		Where(squirrel.Eq{"id": productID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build stock lookup: %w", err)
	}

	err = querier.QueryRow(ctx, lookupSQL, lookupArgs...).Scan(&name, &available)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperror.NewReferenceNotFound("product", productID.String())
	}
	if err != nil {
		return 0, fmt.Errorf("stock lookup: %w", err)
	}

	return 0, apperror.NewInsufficientStock(name, -delta, available)
}

// AvailableStock returns the current stock level.
func (r *ProductRepo) AvailableStock(ctx context.Context, productID id.ID) (int64, error) {
	q := r.Builder().
		Select("stock").
		From(productTable).
		Where(squirrel.Eq{"id": productID})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var stock int64
	err = r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperror.NewNotFound("product", productID.String())
	}
	if err != nil {
		return 0, fmt.Errorf("available stock: %w", err)
	}

	return stock, nil
}

// FindLowStock retrieves active products with stock at or below threshold.
func (r *ProductRepo) FindLowStock(ctx context.Context, threshold int64, filter domain.ListFilter) (domain.ListResult[*product.Product], error) {
	result := domain.ListResult[*product.Product]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.baseSelect().
		Where(squirrel.Eq{"deletion_mark": false}).
		Where(squirrel.Eq{"active": true}).
		Where(squirrel.LtOrEq{"stock": threshold})

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

	q = q.OrderBy("stock ASC", "name ASC")
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
		return result, fmt.Errorf("find low stock: %w", err)
	}

	return result, nil
}
