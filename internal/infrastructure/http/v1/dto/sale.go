package dto

import (
	"time"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/id"
	"ventapos/internal/core/types"
	"ventapos/internal/domain/documents/sale"
	"ventapos/internal/domain/posting"
)

// PostSaleRequest for posting a new sale.
type PostSaleRequest struct {
	ClientID string            `json:"clientId" binding:"required"`
	Date     *time.Time        `json:"date"`
	Notes    string            `json:"notes"`
	Total    types.Amount      `json:"total"`
	Lines    []SaleLineRequest `json:"lines"`
}

// SaleLineRequest describes one requested sale line.
type SaleLineRequest struct {
	ProductID string       `json:"productId" binding:"required"`
	Quantity  int64        `json:"quantity"`
	UnitPrice types.Amount `json:"unitPrice"`
}

// ToPostingRequest converts the DTO to a posting request.
// Malformed ids become zero ids so the engine reports them as validation
// failures with line context instead of a bare parse error.
func (r PostSaleRequest) ToPostingRequest() (posting.PostSaleRequest, error) {
	clientID, err := id.Parse(r.ClientID)
	if err != nil {
		return posting.PostSaleRequest{}, apperror.NewValidation("invalid client id format").
			WithDetail("field", "clientId")
	}

	req := posting.PostSaleRequest{
		ClientID:      clientID,
		Notes:         r.Notes,
		DeclaredTotal: r.Total,
		Lines:         make([]posting.SaleLineRequest, 0, len(r.Lines)),
	}
	if r.Date != nil {
		req.Date = *r.Date
	}

	for _, line := range r.Lines {
		productID, _ := id.Parse(line.ProductID)
		req.Lines = append(req.Lines, posting.SaleLineRequest{
			ProductID: productID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	return req, nil
}

// SaleLineResponse contains one sale line.
type SaleLineResponse struct {
	LineID    string       `json:"lineId"`
	LineNo    int          `json:"lineNo"`
	ProductID string       `json:"productId"`
	Quantity  int64        `json:"quantity"`
	UnitPrice types.Amount `json:"unitPrice"`
	Subtotal  types.Amount `json:"subtotal"`
}

// SaleResponse contains the sale with its lines.
type SaleResponse struct {
	DocumentResponse
	ClientID string             `json:"clientId"`
	Total    types.Amount       `json:"total"`
	Lines    []SaleLineResponse `json:"lines,omitempty"`
}

// FromSale creates SaleResponse from sale.Sale.
func FromSale(s *sale.Sale) SaleResponse {
	resp := SaleResponse{
		DocumentResponse: FromDocument(s.Document),
		ClientID:         s.ClientID.String(),
		Total:            s.Total,
		Lines:            make([]SaleLineResponse, 0, len(s.Lines)),
	}

	for _, line := range s.Lines {
		resp.Lines = append(resp.Lines, SaleLineResponse{
			LineID:    line.LineID.String(),
			LineNo:    line.LineNo,
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  line.Subtotal,
		})
	}

	return resp
}
