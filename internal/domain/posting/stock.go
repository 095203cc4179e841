package posting

import (
	"ventapos/internal/core/apperror"
)

// CheckStock decides whether a requested quantity can be taken from the
// available stock. Pure function; the authoritative enforcement is the
// store's conditional decrement, which applies the same rule atomically.
func CheckStock(productName string, available, requested int64) error {
	if requested > available {
		return apperror.NewInsufficientStock(productName, requested, available)
	}
	return nil
}
