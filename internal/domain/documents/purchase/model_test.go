package purchase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/id"
)

func TestAddLineComputesExactSubtotals(t *testing.T) {
	p := NewPurchase(id.New())

	p.AddLine(id.New(), 10, 3)
	p.AddLine(id.New(), 4, 12)

	require.Len(t, p.Lines, 2)
	assert.Equal(t, int64(30), p.Lines[0].Subtotal)
	assert.Equal(t, int64(48), p.Lines[1].Subtotal)
	assert.Equal(t, int64(78), p.Total)
}

func TestValidateRejectsEmptyLines(t *testing.T) {
	p := NewPurchase(id.New())

	err := p.Validate(context.Background())
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeEmptyTransaction, appErr.Code)
}

func TestValidateRejectsNonPositiveCost(t *testing.T) {
	p := NewPurchase(id.New())
	p.Lines = []Line{{LineID: id.New(), LineNo: 1, ProductID: id.New(), Quantity: 1, UnitCost: -2}}

	err := p.Validate(context.Background())
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidQuantityOrPrice, appErr.Code)
}
