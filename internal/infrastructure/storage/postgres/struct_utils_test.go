package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ventapos/internal/core/entity"
	"ventapos/internal/core/id"
)

type mockCatalog struct {
	entity.Catalog
	Phone   *string `db:"phone" json:"phone"`
	Skipped string  `db:"-" json:"skipped"`
	NoTag   string
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockCatalog]()

	expected := []string{"id", "deletion_mark", "version", "code", "name", "active", "phone"}
	for _, col := range expected {
		assert.Contains(t, cols, col)
	}

	assert.NotContains(t, cols, "-")
	assert.NotContains(t, cols, "Skipped")
	assert.NotContains(t, cols, "NoTag")
}

func TestStructToMap(t *testing.T) {
	phone := "555-0101"
	cat := mockCatalog{
		Catalog: entity.Catalog{
			BaseEntity: entity.BaseEntity{
				ID:           id.New(),
				DeletionMark: true,
				Version:      5,
			},
			Code:   "TEST",
			Name:   "Test Name",
			Active: true,
		},
		Phone:   &phone,
		Skipped: "ignored",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "TEST", m["code"])
	assert.Equal(t, "Test Name", m["name"])
	assert.Equal(t, true, m["active"])
	assert.Equal(t, &phone, m["phone"])
	assert.NotContains(t, m, "-")
}

func TestStructToMapPointer(t *testing.T) {
	cat := &mockCatalog{
		Catalog: entity.Catalog{Code: "PTR"},
	}

	m := StructToMap(cat)
	assert.Equal(t, "PTR", m["code"])
}
