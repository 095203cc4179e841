package posting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/id"
	"ventapos/internal/domain/documents/purchase"
	"ventapos/internal/domain/documents/sale"
	"ventapos/pkg/txnumber"
)

var (
	_ sale.Repository     = (*memSaleRepo)(nil)
	_ purchase.Repository = (*memPurchaseRepo)(nil)
	_ ProductStore        = (*memProductStore)(nil)
)

func newTestNumbers() *txnumber.Generator {
	return txnumber.New()
}

func TestPostSaleCommits(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	clientID := h.store.addClient()
	cola := h.store.addProduct("Cola", 10)
	chips := h.store.addProduct("Chips", 4)

	posted, err := h.engine.PostSale(ctx, PostSaleRequest{
		ClientID: clientID,
		Lines: []SaleLineRequest{
			{ProductID: cola, Quantity: 3, UnitPrice: 5},
			{ProductID: chips, Quantity: 2, UnitPrice: 7},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(29), posted.Total) // 3*5 + 2*7
	assert.Regexp(t, `^S-\d{8}-\d{5}$`, posted.Number)
	assert.Len(t, posted.Lines, 2)

	// Stock moved and the document is durable.
	assert.Equal(t, int64(7), h.store.products[cola].stock)
	assert.Equal(t, int64(2), h.store.products[chips].stock)

	stored, err := h.saleRepo.GetByID(ctx, posted.ID)
	require.NoError(t, err)
	assert.Equal(t, posted.Number, stored.Number)

	lines, err := h.saleRepo.GetLines(ctx, posted.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	var sum int64
	for _, l := range lines {
		assert.Equal(t, l.Quantity*l.UnitPrice, l.Subtotal)
		sum += l.Subtotal
	}
	assert.Equal(t, stored.Total, sum)
}

func TestPostSaleInsufficientStock(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	clientID := h.store.addClient()
	cola := h.store.addProduct("Cola", 2)

	_, err := h.engine.PostSale(ctx, PostSaleRequest{
		ClientID: clientID,
		Lines: []SaleLineRequest{
			{ProductID: cola, Quantity: 5, UnitPrice: 5},
		},
	})
	require.Error(t, err)
	require.True(t, apperror.IsInsufficientStock(err))

	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, "Cola", appErr.Details["product"])
	assert.Equal(t, int64(2), appErr.Details["available"])
	assert.Equal(t, int64(5), appErr.Details["requested"])

	// Nothing committed: stock unchanged, no documents.
	assert.Equal(t, int64(2), h.store.products[cola].stock)
	assert.Empty(t, h.store.sales)
	assert.Empty(t, h.store.saleLines)
}

func TestPostSaleSecondLineUnderrunAbortsAll(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	clientID := h.store.addClient()
	cola := h.store.addProduct("Cola", 10)
	chips := h.store.addProduct("Chips", 1)

	_, err := h.engine.PostSale(ctx, PostSaleRequest{
		ClientID: clientID,
		Lines: []SaleLineRequest{
			{ProductID: cola, Quantity: 3, UnitPrice: 5},
			{ProductID: chips, Quantity: 2, UnitPrice: 7},
		},
	})
	require.True(t, apperror.IsInsufficientStock(err))

	// The first line's decrement rolled back with everything else.
	assert.Equal(t, int64(10), h.store.products[cola].stock)
	assert.Equal(t, int64(1), h.store.products[chips].stock)
	assert.Empty(t, h.store.sales)
}

func TestPostSaleEmptyLines(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	clientID := h.store.addClient()

	_, err := h.engine.PostSale(ctx, PostSaleRequest{ClientID: clientID})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeEmptyTransaction, appErr.Code)

	// Rejected before any storage access.
	assert.Zero(t, h.clientStore.calls)
	assert.Zero(t, h.saleRepo.createCalls)
}

func TestPostSaleInvalidQuantityOrPrice(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	clientID := h.store.addClient()
	cola := h.store.addProduct("Cola", 10)

	cases := []struct {
		name string
		line SaleLineRequest
	}{
		{"zero quantity", SaleLineRequest{ProductID: cola, Quantity: 0, UnitPrice: 5}},
		{"negative quantity", SaleLineRequest{ProductID: cola, Quantity: -1, UnitPrice: 5}},
		{"zero price", SaleLineRequest{ProductID: cola, Quantity: 1, UnitPrice: 0}},
		{"negative price", SaleLineRequest{ProductID: cola, Quantity: 1, UnitPrice: -5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.engine.PostSale(ctx, PostSaleRequest{
				ClientID: clientID,
				Lines:    []SaleLineRequest{tc.line},
			})
			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeInvalidQuantityOrPrice, appErr.Code)
			assert.Equal(t, 1, appErr.Details["line"])
		})
	}

	assert.Zero(t, h.saleRepo.createCalls)
	assert.Equal(t, int64(10), h.store.products[cola].stock)
}

func TestPostSaleUnknownClient(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	cola := h.store.addProduct("Cola", 10)

	_, err := h.engine.PostSale(ctx, PostSaleRequest{
		ClientID: id.New(),
		Lines: []SaleLineRequest{
			{ProductID: cola, Quantity: 1, UnitPrice: 5},
		},
	})
	require.True(t, apperror.IsReferenceNotFound(err))
	assert.Empty(t, h.store.sales)
	assert.Equal(t, int64(10), h.store.products[cola].stock)
}

func TestPostSaleUnknownProduct(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	clientID := h.store.addClient()

	_, err := h.engine.PostSale(ctx, PostSaleRequest{
		ClientID: clientID,
		Lines: []SaleLineRequest{
			{ProductID: id.New(), Quantity: 1, UnitPrice: 5},
		},
	})
	require.True(t, apperror.IsReferenceNotFound(err))

	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, "product", appErr.Details["entity"])
}

func TestPostSaleStorageFailureRollsBack(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	clientID := h.store.addClient()
	cola := h.store.addProduct("Cola", 10)

	h.saleRepo.failSaveLines = errors.New("connection reset")

	_, err := h.engine.PostSale(ctx, PostSaleRequest{
		ClientID: clientID,
		Lines: []SaleLineRequest{
			{ProductID: cola, Quantity: 3, UnitPrice: 5},
		},
	})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodePostingFailed, appErr.Code)
	// Cause is kept for logs, not exposed in the message.
	assert.NotContains(t, appErr.Message, "connection reset")

	assert.Empty(t, h.store.sales)
	assert.Equal(t, int64(10), h.store.products[cola].stock)
}

func TestPostSaleNumberConflictRegenerates(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	clientID := h.store.addClient()
	cola := h.store.addProduct("Cola", 10)

	h.saleRepo.duplicateNumbers = 1

	posted, err := h.engine.PostSale(ctx, PostSaleRequest{
		ClientID: clientID,
		Lines: []SaleLineRequest{
			{ProductID: cola, Quantity: 1, UnitPrice: 5},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, h.saleRepo.createCalls)
	assert.Len(t, h.store.sales, 1)
	assert.Equal(t, int64(9), h.store.products[cola].stock)
	assert.Regexp(t, `^S-\d{8}-\d{5}$`, posted.Number)
}

func TestPostSaleNumberConflictExhaustsRetries(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	clientID := h.store.addClient()
	cola := h.store.addProduct("Cola", 10)

	h.saleRepo.duplicateNumbers = maxNumberAttempts

	_, err := h.engine.PostSale(ctx, PostSaleRequest{
		ClientID: clientID,
		Lines: []SaleLineRequest{
			{ProductID: cola, Quantity: 1, UnitPrice: 5},
		},
	})
	require.Error(t, err)
	assert.Empty(t, h.store.sales)
	assert.Equal(t, int64(10), h.store.products[cola].stock)
}

func TestPostSaleDeclaredTotalIgnored(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	clientID := h.store.addClient()
	cola := h.store.addProduct("Cola", 10)

	posted, err := h.engine.PostSale(ctx, PostSaleRequest{
		ClientID:      clientID,
		DeclaredTotal: 999,
		Lines: []SaleLineRequest{
			{ProductID: cola, Quantity: 2, UnitPrice: 5},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), posted.Total)
}

func TestPostPurchaseIncrementsStock(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	supplierID := h.store.addSupplier()
	cola := h.store.addProduct("Cola", 5)

	posted, err := h.engine.PostPurchase(ctx, PostPurchaseRequest{
		SupplierID: supplierID,
		Notes:      "weekly restock",
		Lines: []PurchaseLineRequest{
			{ProductID: cola, Quantity: 7, UnitCost: 3},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(21), posted.Total)
	assert.Equal(t, "weekly restock", posted.Notes)
	assert.Regexp(t, `^P-\d{8}-\d{5}$`, posted.Number)
	assert.Equal(t, int64(12), h.store.products[cola].stock)
}

func TestPostPurchaseUnknownSupplier(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	cola := h.store.addProduct("Cola", 5)

	_, err := h.engine.PostPurchase(ctx, PostPurchaseRequest{
		SupplierID: id.New(),
		Lines: []PurchaseLineRequest{
			{ProductID: cola, Quantity: 1, UnitCost: 3},
		},
	})
	require.True(t, apperror.IsReferenceNotFound(err))
	assert.Equal(t, int64(5), h.store.products[cola].stock)
}

func TestPostPurchaseStorageFailureRollsBack(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	supplierID := h.store.addSupplier()
	cola := h.store.addProduct("Cola", 5)

	h.purchaseRepo.failSaveLines = errors.New("disk full")

	_, err := h.engine.PostPurchase(ctx, PostPurchaseRequest{
		SupplierID: supplierID,
		Lines: []PurchaseLineRequest{
			{ProductID: cola, Quantity: 7, UnitCost: 3},
		},
	})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodePostingFailed, appErr.Code)
	assert.Empty(t, h.store.purchases)
	assert.Equal(t, int64(5), h.store.products[cola].stock)
}

// Stock conservation across a mixed sequence of postings.
func TestStockConservation(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	clientID := h.store.addClient()
	supplierID := h.store.addSupplier()
	cola := h.store.addProduct("Cola", 100)

	_, err := h.engine.PostSale(ctx, PostSaleRequest{
		ClientID: clientID,
		Lines:    []SaleLineRequest{{ProductID: cola, Quantity: 30, UnitPrice: 5}},
	})
	require.NoError(t, err)

	_, err = h.engine.PostPurchase(ctx, PostPurchaseRequest{
		SupplierID: supplierID,
		Lines:      []PurchaseLineRequest{{ProductID: cola, Quantity: 50, UnitCost: 3}},
	})
	require.NoError(t, err)

	_, err = h.engine.PostSale(ctx, PostSaleRequest{
		ClientID: clientID,
		Lines:    []SaleLineRequest{{ProductID: cola, Quantity: 20, UnitPrice: 5}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), h.store.products[cola].stock) // 100 - 30 + 50 - 20
}

// Two sequential sales against the same product: the second must hit the
// conditional decrement's floor.
func TestSequentialSalesNeverUnderrun(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	clientID := h.store.addClient()
	cola := h.store.addProduct("Cola", 5)

	_, err := h.engine.PostSale(ctx, PostSaleRequest{
		ClientID: clientID,
		Lines:    []SaleLineRequest{{ProductID: cola, Quantity: 3, UnitPrice: 5}},
	})
	require.NoError(t, err)

	_, err = h.engine.PostSale(ctx, PostSaleRequest{
		ClientID: clientID,
		Lines:    []SaleLineRequest{{ProductID: cola, Quantity: 3, UnitPrice: 5}},
	})
	require.True(t, apperror.IsInsufficientStock(err))

	assert.Equal(t, int64(2), h.store.products[cola].stock)
	assert.GreaterOrEqual(t, h.store.products[cola].stock, int64(0))
}

func TestCheckStock(t *testing.T) {
	assert.NoError(t, CheckStock("Cola", 5, 5))
	assert.NoError(t, CheckStock("Cola", 5, 1))

	err := CheckStock("Cola", 2, 3)
	require.True(t, apperror.IsInsufficientStock(err))
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, int64(2), appErr.Details["available"])
}
