package admin

import "hotel/internal/pkg/errs"

var (
	ErrUserNotFound    = errs.New("user not found")
	ErrSelfChange      = errs.New("admins cannot change or delete their own account here")
	ErrUserHasHistory  = errs.New("user has reservations")
	ErrUnknownEntity   = errs.New("unknown activity entity")
	ErrUnknownRoleName = errs.New("unknown role")
)
