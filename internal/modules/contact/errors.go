package contact

import "hotel/internal/pkg/errs"

var (
	ErrValidation      = errs.New("validation error")
	ErrNotFound        = errs.New("contact message not found")
	ErrInvalidStatus   = errs.New("contact status not allowed")
	ErrAlreadyArchived = errs.New("contact message is archived")
)
