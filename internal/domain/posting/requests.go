package posting

import (
	"time"

	"ventapos/internal/core/id"
	"ventapos/internal/core/types"
)

// PostSaleRequest describes a sale to be posted.
type PostSaleRequest struct {
	ClientID id.ID `json:"clientId"`

	// Date is the business date; zero value means "now".
	Date time.Time `json:"date,omitempty"`

	Notes string `json:"notes,omitempty"`

	// DeclaredTotal is the total as computed by the caller. Display-only:
	// the engine recomputes the authoritative total from lines and logs a
	// warning on mismatch.
	DeclaredTotal types.Amount `json:"declaredTotal,omitempty"`

	Lines []SaleLineRequest `json:"lines"`
}

// SaleLineRequest describes one sale line.
type SaleLineRequest struct {
	ProductID id.ID        `json:"productId"`
	Quantity  int64        `json:"quantity"`
	UnitPrice types.Amount `json:"unitPrice"`
}

// PostPurchaseRequest describes a purchase to be posted.
type PostPurchaseRequest struct {
	SupplierID id.ID `json:"supplierId"`

	// Date is the business date; zero value means "now".
	Date time.Time `json:"date,omitempty"`

	Notes string `json:"notes,omitempty"`

	Lines []PurchaseLineRequest `json:"lines"`
}

// PurchaseLineRequest describes one purchase line.
type PurchaseLineRequest struct {
	ProductID id.ID        `json:"productId"`
	Quantity  int64        `json:"quantity"`
	UnitCost  types.Amount `json:"unitCost"`
}
