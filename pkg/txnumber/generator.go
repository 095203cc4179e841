// Package txnumber generates human-readable document numbers.
//
// Format: <prefix>-YYYYMMDD-NNNNN, where NNNNN is a zero-padded random
// five-digit suffix. Generation is a pure computation over the clock and a
// random source; uniqueness is enforced downstream by the storage layer's
// unique constraint, with callers regenerating on conflict.
package txnumber

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	// SalePrefix marks outbound (sale) documents.
	SalePrefix = "S"
	// PurchasePrefix marks inbound (purchase) documents.
	PurchasePrefix = "P"

	suffixSpace = 100_000 // five decimal digits
)

// Generator produces document numbers. The zero value is not usable;
// construct with New or NewWithRand.
type Generator struct {
	intN func(n int) int
}

// New returns a Generator backed by the shared math/rand source.
func New() *Generator {
	return &Generator{intN: rand.Intn}
}

// NewWithRand returns a Generator with a caller-supplied random source.
// Used in tests to force suffix collisions.
func NewWithRand(intN func(n int) int) *Generator {
	return &Generator{intN: intN}
}

// Number formats a document number for the given prefix and business date.
func (g *Generator) Number(prefix string, t time.Time) string {
	return fmt.Sprintf("%s-%s-%05d", prefix, t.UTC().Format("20060102"), g.intN(suffixSpace))
}

// SaleNumber generates a sale document number, e.g. "S-20260831-04217".
func (g *Generator) SaleNumber(t time.Time) string {
	return g.Number(SalePrefix, t)
}

// PurchaseNumber generates a purchase document number, e.g. "P-20260831-90233".
func (g *Generator) PurchaseNumber(t time.Time) string {
	return g.Number(PurchasePrefix, t)
}
