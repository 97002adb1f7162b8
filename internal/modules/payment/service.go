package payment

import (
	"context"
	"fmt"
	"strings"

	"hotel/internal/domain"
	"hotel/internal/events"
	"hotel/internal/metrics"
	"hotel/internal/modules/reservation"
	"hotel/internal/pkg/clock"
	"hotel/internal/pkg/errs"
	"hotel/internal/repository"

	"go.uber.org/zap"
)

type Service struct {
	payments    PaymentRepository
	tx          Transactor
	transitions TransitionHook
	notifier    NotificationSender
	publisher   events.Publisher
	metrics     *metrics.Metrics
	clock       clock.Clock
	log         *zap.Logger
}

func NewService(
	payments PaymentRepository,
	tx Transactor,
	transitions TransitionHook,
	notifier NotificationSender,
	publisher events.Publisher,
	m *metrics.Metrics,
	clk clock.Clock,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Service{
		payments:    payments,
		tx:          tx,
		transitions: transitions,
		notifier:    notifier,
		publisher:   publisher,
		metrics:     m,
		clock:       clk,
		log:         log,
	}
}

// Create records the full payment of a reservation. A PENDIENTE reservation
// is confirmed in the same transaction.
func (s *Service) Create(ctx context.Context, actorID int64, role domain.UserRole, req CreatePaymentRequest) (*domain.Payment, error) {
	if !req.Method.Valid() {
		return nil, errs.Wrapf(ErrValidation, "unknown payment method %q", req.Method)
	}

	var (
		p       *domain.Payment
		guestID int64
		trans   *reservation.Transition
	)
	err := s.tx.Within(ctx, func(tx *repository.Tx) error {
		trans = nil

		res, err := tx.Reservations.GetByIDForUpdate(ctx, req.ReservationID)
		if err != nil {
			if errs.Is(err, repository.ErrNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if !role.IsStaff() && res.UserID != actorID {
			return ErrReservationNotFound
		}
		if res.Status == domain.ReservationCancelled || res.Status == domain.ReservationNoShow {
			return errs.Wrapf(ErrReservationClosed, "reservation %d is %s", res.ID, res.Status)
		}
		guestID = res.UserID

		if res.Paid {
			return ErrAlreadyPaid
		}
		if _, err := tx.Payments.GetByReservationID(ctx, res.ID); err == nil {
			return ErrAlreadyPaid
		} else if !errs.Is(err, repository.ErrNotFound) {
			return err
		}

		p = &domain.Payment{
			ReservationID: res.ID,
			Amount:        res.TotalPrice,
			Method:        req.Method,
			Status:        domain.PaymentCompleted,
			Reference:     strings.TrimSpace(req.Reference),
			PaidAt:        s.clock.Now().UTC(),
		}
		if err := tx.Payments.Create(ctx, p); err != nil {
			if errs.Is(err, repository.ErrConflict) {
				return ErrAlreadyPaid
			}
			return err
		}
		if err := tx.Reservations.MarkPaid(ctx, res.ID); err != nil {
			return err
		}
		res.Paid = true

		if res.Status == domain.ReservationPending {
			trans, err = reservation.ApplyTransition(ctx, tx, res, domain.ReservationConfirmed, actorID, "")
			if err != nil {
				return err
			}
		}

		return tx.Activities.Record(ctx, actorID, domain.ActionPaymentCreated, domain.EntityPayment, p.ID,
			fmt.Sprintf("Pago #%d de %.2f (%s) para reserva #%d", p.ID, p.Amount, p.Method, res.ID))
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("payment completed",
		zap.Int64("payment_id", p.ID),
		zap.Int64("reservation_id", p.ReservationID),
		zap.Float64("amount", p.Amount),
		zap.String("method", string(p.Method)),
	)
	s.metrics.PaymentCompleted(string(p.Method), p.Amount)
	if s.notifier != nil {
		if err := s.notifier.Send(context.WithoutCancel(ctx), guestID, domain.NotifPaymentReceived, "Pago recibido",
			fmt.Sprintf("Recibimos tu pago de %.2f para la reserva #%d.", p.Amount, p.ReservationID)); err != nil {
			s.log.Warn("send notification", zap.Int64("user_id", guestID), zap.Error(err))
		}
	}
	events.PublishAsync(ctx, s.publisher, s.log, events.Event{
		Type:     events.PaymentCompleted,
		EntityID: p.ID,
		ActorID:  actorID,
		Status:   string(p.Status),
		Payload: map[string]any{
			"reservaId": p.ReservationID,
			"monto":     p.Amount,
			"metodo":    p.Method,
		},
	})
	if trans != nil && s.transitions != nil {
		s.transitions.AfterTransition(ctx, trans)
	}

	if full, err := s.payments.GetByID(ctx, p.ID); err == nil {
		return full, nil
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, actorID int64, role domain.UserRole, id int64) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		if errs.Is(err, repository.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if !role.IsStaff() && (p.Reservation == nil || p.Reservation.UserID != actorID) {
		return nil, ErrPaymentNotFound
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, status domain.PaymentStatus, limit, offset int) (*ListResult, error) {
	if status != "" && status != domain.PaymentCompleted && status != domain.PaymentRefunded {
		return nil, errs.Wrapf(ErrValidation, "unknown payment status %q", status)
	}
	items, total, err := s.payments.List(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}
	return &ListResult{Items: items, Total: total}, nil
}
