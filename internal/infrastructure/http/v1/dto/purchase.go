package dto

import (
	"time"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/id"
	"ventapos/internal/core/types"
	"ventapos/internal/domain/documents/purchase"
	"ventapos/internal/domain/posting"
)

// PostPurchaseRequest for posting a new purchase.
type PostPurchaseRequest struct {
	SupplierID string                `json:"supplierId" binding:"required"`
	Date       *time.Time            `json:"date"`
	Notes      string                `json:"notes"`
	Lines      []PurchaseLineRequest `json:"lines"`
}

// PurchaseLineRequest describes one requested purchase line.
type PurchaseLineRequest struct {
	ProductID string       `json:"productId" binding:"required"`
	Quantity  int64        `json:"quantity"`
	UnitCost  types.Amount `json:"unitCost"`
}

// ToPostingRequest converts the DTO to a posting request.
func (r PostPurchaseRequest) ToPostingRequest() (posting.PostPurchaseRequest, error) {
	supplierID, err := id.Parse(r.SupplierID)
	if err != nil {
		return posting.PostPurchaseRequest{}, apperror.NewValidation("invalid supplier id format").
			WithDetail("field", "supplierId")
	}

	req := posting.PostPurchaseRequest{
		SupplierID: supplierID,
		Notes:      r.Notes,
		Lines:      make([]posting.PurchaseLineRequest, 0, len(r.Lines)),
	}
	if r.Date != nil {
		req.Date = *r.Date
	}

	for _, line := range r.Lines {
		productID, _ := id.Parse(line.ProductID)
		req.Lines = append(req.Lines, posting.PurchaseLineRequest{
			ProductID: productID,
			Quantity:  line.Quantity,
			UnitCost:  line.UnitCost,
		})
	}

	return req, nil
}

// PurchaseLineResponse contains one purchase line.
type PurchaseLineResponse struct {
	LineID    string       `json:"lineId"`
	LineNo    int          `json:"lineNo"`
	ProductID string       `json:"productId"`
	Quantity  int64        `json:"quantity"`
	UnitCost  types.Amount `json:"unitCost"`
	Subtotal  types.Amount `json:"subtotal"`
}

// PurchaseResponse contains the purchase with its lines.
type PurchaseResponse struct {
	DocumentResponse
	SupplierID string                 `json:"supplierId"`
	Total      types.Amount           `json:"total"`
	Lines      []PurchaseLineResponse `json:"lines,omitempty"`
}

// FromPurchase creates PurchaseResponse from purchase.Purchase.
func FromPurchase(p *purchase.Purchase) PurchaseResponse {
	resp := PurchaseResponse{
		DocumentResponse: FromDocument(p.Document),
		SupplierID:       p.SupplierID.String(),
		Total:            p.Total,
		Lines:            make([]PurchaseLineResponse, 0, len(p.Lines)),
	}

	for _, line := range p.Lines {
		resp.Lines = append(resp.Lines, PurchaseLineResponse{
			LineID:    line.LineID.String(),
			LineNo:    line.LineNo,
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
			UnitCost:  line.UnitCost,
			Subtotal:  line.Subtotal,
		})
	}

	return resp
}
