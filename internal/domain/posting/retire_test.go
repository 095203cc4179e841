package posting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/id"
)

func TestDeleteTransactionRemovesSaleAndLines(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	clientID := h.store.addClient()
	cola := h.store.addProduct("Cola", 10)

	posted, err := h.engine.PostSale(ctx, PostSaleRequest{
		ClientID: clientID,
		Lines:    []SaleLineRequest{{ProductID: cola, Quantity: 3, UnitPrice: 5}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), h.store.products[cola].stock)

	err = h.engine.DeleteTransaction(ctx, KindSale, posted.ID)
	require.NoError(t, err)

	assert.Empty(t, h.store.sales)
	assert.Empty(t, h.store.saleLines)

	// Stock effects are preserved: deletion does not reverse the decrement.
	assert.Equal(t, int64(7), h.store.products[cola].stock)
}

func TestDeleteTransactionNotFound(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	err := h.engine.DeleteTransaction(ctx, KindSale, id.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteTransactionUnknownKind(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	err := h.engine.DeleteTransaction(ctx, Kind("invoice"), id.New())
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestBulkDeleteTransactionsIgnoresUnknownIDs(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	clientID := h.store.addClient()
	cola := h.store.addProduct("Cola", 100)

	var ids []id.ID
	for i := 0; i < 2; i++ {
		posted, err := h.engine.PostSale(ctx, PostSaleRequest{
			ClientID: clientID,
			Lines:    []SaleLineRequest{{ProductID: cola, Quantity: 1, UnitPrice: 5}},
		})
		require.NoError(t, err)
		ids = append(ids, posted.ID)
	}
	ids = append(ids, id.New()) // never existed

	deleted, err := h.engine.BulkDeleteTransactions(ctx, KindSale, ids)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.Empty(t, h.store.sales)

	// Stock unchanged by retirement.
	assert.Equal(t, int64(98), h.store.products[cola].stock)
}

func TestBulkDeleteTransactionsEmptyInput(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	deleted, err := h.engine.BulkDeleteTransactions(ctx, KindSale, nil)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestBulkDeleteTransactionsPurchases(t *testing.T) {
	h := newEngineHarness()
	ctx := context.Background()

	supplierID := h.store.addSupplier()
	cola := h.store.addProduct("Cola", 0)

	posted, err := h.engine.PostPurchase(ctx, PostPurchaseRequest{
		SupplierID: supplierID,
		Lines:      []PurchaseLineRequest{{ProductID: cola, Quantity: 10, UnitCost: 3}},
	})
	require.NoError(t, err)

	deleted, err := h.engine.BulkDeleteTransactions(ctx, KindPurchase, []id.ID{posted.ID, id.New()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.Empty(t, h.store.purchases)
	assert.Equal(t, int64(10), h.store.products[cola].stock)
}
