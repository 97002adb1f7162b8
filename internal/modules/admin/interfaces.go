package admin

import (
	"context"

	"hotel/internal/domain"
	"hotel/internal/repository"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, f repository.UserFilter) ([]domain.User, int64, error)
	UpdateRole(ctx context.Context, id int64, role domain.UserRole) error
	Count(ctx context.Context) (int64, error)
}

type RoomStats interface {
	CountByStatus(ctx context.Context) (map[domain.RoomStatus]int64, error)
}

type ReservationStats interface {
	CountByStatus(ctx context.Context) (map[domain.ReservationStatus]int64, error)
}

type PaymentStats interface {
	SumCompleted(ctx context.Context) (float64, error)
}

type ContactStats interface {
	CountByStatus(ctx context.Context, status domain.ContactStatus) (int64, error)
}

type ActivityLog interface {
	List(ctx context.Context, f repository.ActivityFilter) ([]domain.Activity, error)
}

type Transactor interface {
	Within(ctx context.Context, fn func(tx *repository.Tx) error) error
}
