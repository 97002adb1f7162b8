package room

import "hotel/internal/pkg/errs"

var (
	ErrValidation           = errs.New("validation error")
	ErrRoomNotFound         = errs.New("room not found")
	ErrDuplicateNumber      = errs.New("room number already exists")
	ErrInvalidStatusChange  = errs.New("room status change not allowed")
	ErrHasActiveReservation = errs.New("room has active reservations")
)
