package invoice

import (
	"context"

	"hotel/internal/domain"
	"hotel/internal/repository"
)

type InvoiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	List(ctx context.Context, limit, offset int) ([]domain.Invoice, int64, error)
}

type Transactor interface {
	Within(ctx context.Context, fn func(tx *repository.Tx) error) error
}

type NotificationSender interface {
	Send(ctx context.Context, userID int64, typ domain.NotificationType, title, message string) error
}
