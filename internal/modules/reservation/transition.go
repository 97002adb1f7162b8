package reservation

import (
	"context"
	"fmt"

	"hotel/internal/domain"
	"hotel/internal/pkg/errs"
	"hotel/internal/repository"
)

// Transition is the committed outcome of a status change, used for the
// notifications, events and metrics that run after commit.
type Transition struct {
	Reservation *domain.Reservation
	From        domain.ReservationStatus
	To          domain.ReservationStatus
	RoomChanged bool
	Refunded    bool
	ActorID     int64
}

// ApplyTransition moves a locked reservation to next inside tx: state
// machine check, compare-and-set on the reservation, the room side effect,
// a refund when a paid reservation is cancelled, and the audit row.
func ApplyTransition(ctx context.Context, tx *repository.Tx, res *domain.Reservation, next domain.ReservationStatus, actorID int64, reason string) (*Transition, error) {
	from := res.Status
	if from.IsTerminal() {
		return nil, errs.Wrapf(ErrInvalidTransition, "reservation %d is already %s", res.ID, from)
	}
	if !from.CanTransitionTo(next) {
		return nil, errs.Wrapf(ErrInvalidTransition, "%s -> %s", from, next)
	}

	room, err := tx.Rooms.GetByIDForUpdate(ctx, res.RoomID)
	if err != nil {
		return nil, errs.Wrap(err, "lock room")
	}

	effect := domain.RoomEffectFor(next)
	if next == domain.ReservationCheckedIn && !effect.Applies(room.Status) {
		return nil, errs.Wrapf(ErrRoomNotAvailable, "room %s is %s", room.Number, room.Status)
	}

	ok, err := tx.Reservations.SetStatus(ctx, res.ID, from, next, repository.TransitionFields{CancellationReason: reason})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.Wrapf(ErrInvalidTransition, "reservation %d changed concurrently", res.ID)
	}

	t := &Transition{From: from, To: next, ActorID: actorID}
	if effect.Applies(room.Status) && room.Status != effect.Target {
		ok, err := tx.Rooms.SetStatus(ctx, room.ID, []domain.RoomStatus{room.Status}, effect.Target)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errs.Mark(errs.Newf("room %d changed concurrently", room.ID), repository.ErrRetryable)
		}
		t.RoomChanged = true
	}

	if next == domain.ReservationCancelled && res.Paid {
		refunded, err := refund(ctx, tx, res.ID, actorID)
		if err != nil {
			return nil, err
		}
		t.Refunded = refunded
	}

	desc := fmt.Sprintf("Reserva #%d: %s -> %s", res.ID, from, next)
	if reason != "" {
		desc += " (" + reason + ")"
	}
	if err := tx.Activities.Record(ctx, actorID, domain.ActionReservationStatus, domain.EntityReservation, res.ID, desc); err != nil {
		return nil, err
	}

	res.Status = next
	if reason != "" {
		res.CancellationReason = reason
	}
	t.Reservation = res
	return t, nil
}

func refund(ctx context.Context, tx *repository.Tx, reservationID, actorID int64) (bool, error) {
	payment, err := tx.Payments.GetByReservationID(ctx, reservationID)
	if err != nil {
		if errs.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if payment.Status != domain.PaymentCompleted {
		return false, nil
	}

	if err := tx.Payments.SetStatus(ctx, payment.ID, domain.PaymentRefunded); err != nil {
		return false, err
	}
	return true, tx.Activities.Record(ctx, actorID, domain.ActionPaymentRefunded, domain.EntityPayment, payment.ID,
		fmt.Sprintf("Pago #%d reembolsado por cancelación de reserva #%d", payment.ID, reservationID))
}
