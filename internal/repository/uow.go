package repository

import (
	"context"
	"time"

	"hotel/internal/pkg/errs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultMaxAttempts = 3
	defaultBackoff     = 50 * time.Millisecond
)

var ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")

// Tx exposes every repository bound to one open transaction.
type Tx struct {
	db            *gorm.DB
	Users         *UserRepository
	Rooms         *RoomRepository
	Reservations  *ReservationRepository
	Payments      *PaymentRepository
	Invoices      *InvoiceRepository
	Contacts      *ContactRepository
	Notifications *NotificationRepository
	Activities    *ActivityRepository
}

func newTx(db *gorm.DB) *Tx {
	return &Tx{
		db:            db,
		Users:         NewUserRepository(db),
		Rooms:         NewRoomRepository(db),
		Reservations:  NewReservationRepository(db),
		Payments:      NewPaymentRepository(db),
		Invoices:      NewInvoiceRepository(db),
		Contacts:      NewContactRepository(db),
		Notifications: NewNotificationRepository(db),
		Activities:    NewActivityRepository(db),
	}
}

// UnitOfWork runs multi-row writes atomically and retries serialization
// failures and deadlocks with linear backoff.
type UnitOfWork struct {
	db          *gorm.DB
	log         *zap.Logger
	maxAttempts int
	backoff     time.Duration
}

func NewUnitOfWork(db *gorm.DB, log *zap.Logger) *UnitOfWork {
	if log == nil {
		log = zap.NewNop()
	}
	return &UnitOfWork{
		db:          db,
		log:         log,
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
	}
}

func (u *UnitOfWork) DB() *gorm.DB { return u.db }

// Within calls fn inside a transaction. Errors returned by fn roll the
// transaction back and are returned unchanged unless they are retryable.
func (u *UnitOfWork) Within(ctx context.Context, fn func(tx *Tx) error) error {
	var err error
	for attempt := 1; attempt <= u.maxAttempts; attempt++ {
		err = u.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
			return fn(newTx(db))
		})
		if err == nil || !IsRetryable(err) {
			return err
		}
		if attempt == u.maxAttempts {
			break
		}

		wait := time.Duration(attempt) * u.backoff
		u.log.Warn("retrying transaction",
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	u.log.Error("transaction failed after max retries", zap.Int("attempts", u.maxAttempts), zap.Error(err))
	return errs.Mark(err, ErrMaxRetriesExceeded)
}
