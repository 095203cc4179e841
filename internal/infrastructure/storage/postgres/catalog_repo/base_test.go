package catalog_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventapos/internal/core/apperror"
)

func newOrderByRepo() *BaseCatalogRepo[*struct{}] {
	return NewBaseCatalogRepo(
		nil,
		"cat_things",
		"thing",
		[]string{"id", "code", "name", "active"},
		func() *struct{} { return &struct{}{} },
	)
}

func TestParseOrderByDefaultsToName(t *testing.T) {
	repo := newOrderByRepo()

	orderBy, err := repo.parseOrderBy("")
	require.NoError(t, err)
	assert.Equal(t, "name ASC", orderBy)
}

func TestParseOrderByDirections(t *testing.T) {
	repo := newOrderByRepo()

	tests := []struct {
		input string
		want  string
	}{
		{"code", "code ASC"},
		{"+code", "code ASC"},
		{"-code", "code DESC"},
		{"-name", "name DESC"},
	}

	for _, tc := range tests {
		orderBy, err := repo.parseOrderBy(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, orderBy)
	}
}

func TestParseOrderByRejectsUnknownColumn(t *testing.T) {
	repo := newOrderByRepo()

	_, err := repo.parseOrderBy("password; DROP TABLE cat_things")
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}
