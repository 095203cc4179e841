package txnumber

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var numberFormat = regexp.MustCompile(`^[SP]-\d{8}-\d{5}$`)

func TestNumberFormat(t *testing.T) {
	g := New()
	date := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	sale := g.SaleNumber(date)
	require.Regexp(t, numberFormat, sale)
	assert.Equal(t, "S-20260315-", sale[:11])

	purchase := g.PurchaseNumber(date)
	require.Regexp(t, numberFormat, purchase)
	assert.Equal(t, "P-20260315-", purchase[:11])
}

func TestNumberPadsSuffix(t *testing.T) {
	g := NewWithRand(func(n int) int { return 7 })
	date := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "S-20260102-00007", g.SaleNumber(date))
}

func TestNumberUsesUTCDate(t *testing.T) {
	g := NewWithRand(func(n int) int { return 0 })

	// 23:30 in UTC+5 is still the previous day in UTC.
	loc := time.FixedZone("UTC+5", 5*3600)
	date := time.Date(2026, 6, 1, 1, 30, 0, 0, loc)

	assert.Equal(t, "S-20260531-00000", g.SaleNumber(date))
}

// With a five-digit random suffix, 10k draws over a 100k space should stay
// overwhelmingly distinct (expected ~9.5k unique by the birthday bound).
func TestNumberDistribution(t *testing.T) {
	g := New()
	date := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	const n = 10_000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		num := g.SaleNumber(date)
		require.Regexp(t, numberFormat, num)
		seen[num] = struct{}{}
	}

	assert.Greater(t, len(seen), 9_000, "suffix distribution collapsed")
}
