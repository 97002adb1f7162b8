package notification

import "hotel/internal/pkg/errs"

var ErrNotFound = errs.New("notification not found")
