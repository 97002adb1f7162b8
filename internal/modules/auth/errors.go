package auth

import "hotel/internal/pkg/errs"

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrEmailAlreadyExists = errs.New("email already exists")
	ErrUserNotFound       = errs.New("user not found")
)
