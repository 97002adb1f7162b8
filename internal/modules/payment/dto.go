package payment

import "hotel/internal/domain"

type CreatePaymentRequest struct {
	ReservationID int64                `json:"reservaId" binding:"required,min=1"`
	Method        domain.PaymentMethod `json:"metodo" binding:"required"`
	Reference     string               `json:"referencia" binding:"omitempty,max=100"`
}

type ListResult struct {
	Items []domain.Payment `json:"items"`
	Total int64            `json:"total"`
}
