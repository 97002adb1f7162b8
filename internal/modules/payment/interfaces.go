package payment

import (
	"context"

	"hotel/internal/domain"
	"hotel/internal/modules/reservation"
	"hotel/internal/repository"
)

type PaymentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	List(ctx context.Context, status domain.PaymentStatus, limit, offset int) ([]domain.Payment, int64, error)
}

type Transactor interface {
	Within(ctx context.Context, fn func(tx *repository.Tx) error) error
}

// TransitionHook runs the post-commit side of a reservation transition
// triggered by a payment.
type TransitionHook interface {
	AfterTransition(ctx context.Context, t *reservation.Transition)
}

type NotificationSender interface {
	Send(ctx context.Context, userID int64, typ domain.NotificationType, title, message string) error
}
