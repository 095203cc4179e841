package sale

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/id"
)

func TestAddLineComputesExactSubtotals(t *testing.T) {
	s := NewSale(id.New())

	s.AddLine(id.New(), 3, 5)
	s.AddLine(id.New(), 2, 7)

	require.Len(t, s.Lines, 2)
	assert.Equal(t, int64(15), s.Lines[0].Subtotal)
	assert.Equal(t, int64(14), s.Lines[1].Subtotal)
	assert.Equal(t, int64(29), s.Total)
	assert.Equal(t, 1, s.Lines[0].LineNo)
	assert.Equal(t, 2, s.Lines[1].LineNo)
}

func TestValidateRejectsEmptyLines(t *testing.T) {
	s := NewSale(id.New())

	err := s.Validate(context.Background())
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeEmptyTransaction, appErr.Code)
}

func TestValidateRejectsMissingClient(t *testing.T) {
	s := NewSale(id.Nil())
	s.AddLine(id.New(), 1, 5)

	err := s.Validate(context.Background())
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestValidateRejectsNonPositiveValues(t *testing.T) {
	s := NewSale(id.New())
	s.Lines = []Line{{LineID: id.New(), LineNo: 1, ProductID: id.New(), Quantity: 0, UnitPrice: 5}}

	err := s.Validate(context.Background())
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidQuantityOrPrice, appErr.Code)
}
