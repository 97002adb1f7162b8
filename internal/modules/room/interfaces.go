package room

import (
	"context"
	"time"

	"hotel/internal/domain"
	"hotel/internal/repository"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context, f repository.RoomFilter) ([]domain.Room, error)
	ListAvailable(ctx context.Context, checkIn, checkOut time.Time, guests int) ([]domain.Room, error)
}

// Transactor runs fn inside one database transaction.
type Transactor interface {
	Within(ctx context.Context, fn func(tx *repository.Tx) error) error
}
