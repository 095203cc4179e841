// Package posting implements the transactional posting engine.
//
// Each request moves through Received -> Validated -> Committed | Aborted.
// Structural validation happens before any storage access; everything that
// touches storage runs inside a single unit of work, so a posted transaction
// is all-or-nothing: parent record, line items and stock adjustments commit
// together or not at all.
package posting

import (
	"context"
	"time"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/id"
	"ventapos/internal/core/tx"
	"ventapos/internal/domain/documents/purchase"
	"ventapos/internal/domain/documents/sale"
	"ventapos/pkg/logger"
	"ventapos/pkg/txnumber"
)

// Document numbers are random-suffixed; on a unique-constraint collision the
// whole unit of work is retried with a fresh number.
const maxNumberAttempts = 3

// ProductStore is the slice of the product repository the engine needs.
type ProductStore interface {
	// AdjustStock atomically applies delta with a zero floor. Returns
	// REFERENCE_NOT_FOUND for a missing product and INSUFFICIENT_STOCK
	// when the decrement would underrun.
	AdjustStock(ctx context.Context, id id.ID, delta int64) (int64, error)

	// Exists reports whether the product is persisted.
	Exists(ctx context.Context, id id.ID) (bool, error)
}

// ClientStore resolves client references.
type ClientStore interface {
	Exists(ctx context.Context, id id.ID) (bool, error)
}

// SupplierStore resolves supplier references.
type SupplierStore interface {
	Exists(ctx context.Context, id id.ID) (bool, error)
}

// Engine posts sales and purchases and owns all unit-of-work boundaries,
// including retirement (see retire.go).
type Engine struct {
	sales     sale.Repository
	purchases purchase.Repository
	products  ProductStore
	clients   ClientStore
	suppliers SupplierStore
	txManager tx.Manager
	numbers   *txnumber.Generator

	// now is injectable for tests
	now func() time.Time
}

// Config wires the engine's collaborators.
type Config struct {
	Sales     sale.Repository
	Purchases purchase.Repository
	Products  ProductStore
	Clients   ClientStore
	Suppliers SupplierStore
	TxManager tx.Manager
	Numbers   *txnumber.Generator
}

// NewEngine creates a posting engine.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		sales:     cfg.Sales,
		purchases: cfg.Purchases,
		products:  cfg.Products,
		clients:   cfg.Clients,
		suppliers: cfg.Suppliers,
		txManager: cfg.TxManager,
		numbers:   cfg.Numbers,
		now:       time.Now,
	}
}

// PostSale validates and atomically commits a sale: parent record, lines and
// per-line stock decrements. The conditional decrement in the store rejects
// any line that would drive stock negative, aborting the whole transaction.
func (e *Engine) PostSale(ctx context.Context, req PostSaleRequest) (*sale.Sale, error) {
	doc, err := e.buildSale(ctx, req)
	if err != nil {
		return nil, err
	}

	if req.DeclaredTotal != 0 && req.DeclaredTotal != doc.Total {
		logger.Warn(ctx, "declared total differs from computed total",
			"declared", req.DeclaredTotal,
			"computed", doc.Total,
		)
	}

	var committed *sale.Sale
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		doc.Number = e.numbers.SaleNumber(doc.Date)

		err = e.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
			return e.commitSale(ctx, doc)
		})
		if err == nil {
			committed = doc
			break
		}
		if isNumberConflict(err) {
			logger.Warn(ctx, "document number collision, regenerating",
				"number", doc.Number, "attempt", attempt)
			continue
		}
		return nil, e.normalizePostingErr(ctx, err)
	}
	if committed == nil {
		return nil, e.normalizePostingErr(ctx, err)
	}

	logger.Info(ctx, "sale posted",
		"id", committed.ID.String(),
		"number", committed.Number,
		"total", committed.Total,
		"lines", len(committed.Lines),
	)
	return committed, nil
}

// buildSale performs structural validation and constructs the document.
// No storage access happens here.
func (e *Engine) buildSale(ctx context.Context, req PostSaleRequest) (*sale.Sale, error) {
	doc := sale.NewSale(req.ClientID)
	doc.Notes = req.Notes
	if !req.Date.IsZero() {
		doc.Date = req.Date.UTC()
	} else {
		doc.Date = e.now().UTC()
	}

	if len(req.Lines) == 0 {
		return nil, apperror.NewEmptyTransaction()
	}
	for i, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, apperror.NewInvalidQuantityOrPrice(i+1, "quantity", line.Quantity)
		}
		if line.UnitPrice <= 0 {
			return nil, apperror.NewInvalidQuantityOrPrice(i+1, "unitPrice", line.UnitPrice)
		}
		doc.AddLine(line.ProductID, line.Quantity, line.UnitPrice)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, err
	}
	return doc, nil
}

// commitSale runs inside the unit of work.
func (e *Engine) commitSale(ctx context.Context, doc *sale.Sale) error {
	ok, err := e.clients.Exists(ctx, doc.ClientID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewReferenceNotFound("client", doc.ClientID.String())
	}

	for i, line := range doc.Lines {
		ok, err := e.products.Exists(ctx, line.ProductID)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.NewReferenceNotFound("product", line.ProductID.String()).
				WithDetail("lineNo", i+1)
		}
	}

	if err := e.sales.Create(ctx, doc); err != nil {
		return err
	}
	if err := e.sales.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
		return err
	}

	// Stock decrements last: the conditional update short-circuits on the
	// first line that would underrun, aborting the transaction.
	for _, line := range doc.Lines {
		if _, err := e.products.AdjustStock(ctx, line.ProductID, -line.Quantity); err != nil {
			return err
		}
	}

	return nil
}

// PostPurchase validates and atomically commits a purchase. Stock is
// incremented per line; there is no availability check on the way in.
func (e *Engine) PostPurchase(ctx context.Context, req PostPurchaseRequest) (*purchase.Purchase, error) {
	doc, err := e.buildPurchase(ctx, req)
	if err != nil {
		return nil, err
	}

	var committed *purchase.Purchase
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		doc.Number = e.numbers.PurchaseNumber(doc.Date)

		err = e.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
			return e.commitPurchase(ctx, doc)
		})
		if err == nil {
			committed = doc
			break
		}
		if isNumberConflict(err) {
			logger.Warn(ctx, "document number collision, regenerating",
				"number", doc.Number, "attempt", attempt)
			continue
		}
		return nil, e.normalizePostingErr(ctx, err)
	}
	if committed == nil {
		return nil, e.normalizePostingErr(ctx, err)
	}

	logger.Info(ctx, "purchase posted",
		"id", committed.ID.String(),
		"number", committed.Number,
		"total", committed.Total,
		"lines", len(committed.Lines),
	)
	return committed, nil
}

func (e *Engine) buildPurchase(ctx context.Context, req PostPurchaseRequest) (*purchase.Purchase, error) {
	doc := purchase.NewPurchase(req.SupplierID)
	doc.Notes = req.Notes
	if !req.Date.IsZero() {
		doc.Date = req.Date.UTC()
	} else {
		doc.Date = e.now().UTC()
	}

	if len(req.Lines) == 0 {
		return nil, apperror.NewEmptyTransaction()
	}
	for i, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, apperror.NewInvalidQuantityOrPrice(i+1, "quantity", line.Quantity)
		}
		if line.UnitCost <= 0 {
			return nil, apperror.NewInvalidQuantityOrPrice(i+1, "unitCost", line.UnitCost)
		}
		doc.AddLine(line.ProductID, line.Quantity, line.UnitCost)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, err
	}
	return doc, nil
}

func (e *Engine) commitPurchase(ctx context.Context, doc *purchase.Purchase) error {
	ok, err := e.suppliers.Exists(ctx, doc.SupplierID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewReferenceNotFound("supplier", doc.SupplierID.String())
	}

	for i, line := range doc.Lines {
		ok, err := e.products.Exists(ctx, line.ProductID)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.NewReferenceNotFound("product", line.ProductID.String()).
				WithDetail("lineNo", i+1)
		}
	}

	if err := e.purchases.Create(ctx, doc); err != nil {
		return err
	}
	if err := e.purchases.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
		return err
	}

	for _, line := range doc.Lines {
		if _, err := e.products.AdjustStock(ctx, line.ProductID, line.Quantity); err != nil {
			return err
		}
	}

	return nil
}

// normalizePostingErr keeps structured domain errors intact and wraps
// everything else as POSTING_FAILED so storage details never leak.
func (e *Engine) normalizePostingErr(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := apperror.AsAppError(err); ok {
		switch appErr.Code {
		case apperror.CodeInternal, apperror.CodeDatabase:
			// fall through to POSTING_FAILED
		default:
			return appErr
		}
	}
	logger.Error(ctx, "posting aborted", "error", err)
	return apperror.NewPostingFailed(err)
}

// isNumberConflict reports whether err is a duplicate-key violation on the
// document number.
func isNumberConflict(err error) bool {
	appErr, ok := apperror.AsAppError(err)
	if !ok || appErr.Code != apperror.CodeDuplicate {
		return false
	}
	return appErr.Details["field"] == "number"
}
