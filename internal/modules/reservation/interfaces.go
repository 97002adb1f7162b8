package reservation

import (
	"context"
	"time"

	"hotel/internal/domain"
	"hotel/internal/repository"
)

type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, f repository.ReservationFilter) ([]domain.Reservation, int64, error)
	ListArrivals(ctx context.Context, day time.Time, status domain.ReservationStatus) ([]domain.Reservation, error)
	ListDepartures(ctx context.Context, day time.Time, status domain.ReservationStatus) ([]domain.Reservation, error)
	ListCheckInBefore(ctx context.Context, cutoff time.Time, status domain.ReservationStatus) ([]domain.Reservation, error)
}

type Transactor interface {
	Within(ctx context.Context, fn func(tx *repository.Tx) error) error
}

// NotificationSender stores an in-app notification and pushes it to the user.
type NotificationSender interface {
	Send(ctx context.Context, userID int64, typ domain.NotificationType, title, message string) error
}

// CatalogInvalidator drops the cached room catalog after room status writes.
type CatalogInvalidator interface {
	Invalidate()
}
