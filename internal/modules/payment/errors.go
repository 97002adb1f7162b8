package payment

import "hotel/internal/pkg/errs"

var (
	ErrValidation          = errs.New("validation error")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationClosed   = errs.New("reservation is cancelled or no-show")
	ErrAlreadyPaid         = errs.New("reservation already has a payment")
	ErrPaymentNotFound     = errs.New("payment not found")
)
