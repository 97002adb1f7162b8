package repository

import (
	"strings"

	"hotel/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errs.New("record not found")
	ErrConflict   = errs.New("unique constraint violation")
	ErrReferenced = errs.New("record is still referenced")
	ErrRetryable  = errs.New("transaction can be retried")
)

const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// translate maps driver specific failures onto the package sentinels so that
// services can branch with errs.Is regardless of the SQL dialect.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errs.Is(err, gorm.ErrRecordNotFound) {
		return errs.Mark(err, ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errs.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return errs.Mark(err, ErrConflict)
		case pgForeignKeyViolation:
			return errs.Mark(err, ErrReferenced)
		case pgSerializationFailure, pgDeadlockDetected:
			return errs.Mark(err, ErrRetryable)
		}
		return err
	}

	// mysql and sqlite only expose these through the message
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"), strings.Contains(msg, "Duplicate entry"):
		return errs.Mark(err, ErrConflict)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"), strings.Contains(msg, "a foreign key constraint fails"):
		return errs.Mark(err, ErrReferenced)
	case strings.Contains(msg, "Deadlock found"), strings.Contains(msg, "database is locked"):
		return errs.Mark(err, ErrRetryable)
	}
	return err
}

func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return errs.Is(err, ErrRetryable) || errs.Is(translate(err), ErrRetryable)
}
