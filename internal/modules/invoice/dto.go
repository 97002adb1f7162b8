package invoice

import "hotel/internal/domain"

type GenerateRequest struct {
	PaymentID int64 `json:"pagoId" binding:"required,min=1"`
}

type ListResult struct {
	Items []domain.Invoice `json:"items"`
	Total int64            `json:"total"`
}

// Settings are the issuer details and numbering rules printed on invoices.
type Settings struct {
	TaxRate      float64
	NumberPrefix string
	HotelName    string
	HotelTaxID   string
}
