package reservation

import "hotel/internal/pkg/errs"

var (
	ErrValidation          = errs.New("validation error")
	ErrRoomNotFound        = errs.New("room not found")
	ErrRoomNotAvailable    = errs.New("room not available")
	ErrOverlap             = errs.New("dates overlap an active reservation")
	ErrRoomTaken           = errs.New("room was booked concurrently")
	ErrPriceMismatch       = errs.New("total price does not match quote")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidTransition   = errs.New("reservation status transition not allowed")
	ErrForbidden           = errs.New("action not allowed for this user")
	ErrUserNotFound        = errs.New("user no longer exists")
)
