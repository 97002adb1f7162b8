package invoice

import "hotel/internal/pkg/errs"

var (
	ErrPaymentNotFound     = errs.New("payment not found")
	ErrPaymentNotCompleted = errs.New("payment is not completed")
	ErrAlreadyInvoiced     = errs.New("payment already has an invoice")
	ErrInvoiceNotFound     = errs.New("invoice not found")
)
