// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors. Reserved for derived
// arithmetic (report aggregates, valuations); transactional amounts use Amount.
type Money = decimal.Decimal

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// Amount is a whole-unit monetary value (the pricing domain has no fractional
// cents). Stored as BIGINT; all line subtotal and document total arithmetic
// is exact int64 multiplication and addition.
type Amount = int64

// AmountToMoney lifts a whole-unit amount into decimal space for report math.
func AmountToMoney(a Amount) Money {
	return decimal.NewFromInt(a)
}
