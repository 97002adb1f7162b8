// Package errs is a thin layer over cockroachdb/errors so that the rest of
// the code base never imports it directly.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Wrap annotates err with msg. A nil err stays nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark tags err so that errors.Is(err, mark) holds while keeping the
// original message and stack. A nil err returns mark itself.
func Mark(err error, mark error) error {
	if err == nil {
		return mark
	}
	return cr.Mark(err, mark)
}

func Is(err, target error) bool {
	return cr.Is(err, target)
}

func As(err error, target any) bool {
	return cr.As(err, target)
}
