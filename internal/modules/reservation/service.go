package reservation

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"hotel/internal/domain"
	"hotel/internal/events"
	"hotel/internal/metrics"
	"hotel/internal/pkg/clock"
	"hotel/internal/pkg/errs"
	"hotel/internal/repository"

	"go.uber.org/zap"
)

const expiredReason = "expirada"

type Service struct {
	reservations ReservationRepository
	tx           Transactor
	notifier     NotificationSender
	catalog      CatalogInvalidator
	publisher    events.Publisher
	metrics      *metrics.Metrics
	clock        clock.Clock
	log          *zap.Logger
}

func NewService(
	reservations ReservationRepository,
	tx Transactor,
	notifier NotificationSender,
	catalog CatalogInvalidator,
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
		reservations: reservations,
		tx:           tx,
		notifier:     notifier,
		catalog:      catalog,
		publisher:    publisher,
		metrics:      m,
		clock:        clk,
		log:          log,
	}
}

// Create books a room for the caller. The room row is locked, checked and
// flipped to RESERVADA in the same transaction that inserts the reservation,
// so of two concurrent bookings for one room only one commits.
func (s *Service) Create(ctx context.Context, userID int64, req CreateReservationRequest) (*domain.Reservation, error) {
	in, err := domain.ParseDate(req.CheckIn)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "fechaEntrada"), ErrValidation)
	}
	out, err := domain.ParseDate(req.CheckOut)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "fechaSalida"), ErrValidation)
	}
	if !out.After(in) {
		return nil, errs.Wrap(ErrValidation, "fechaSalida must be after fechaEntrada")
	}
	if in.Before(domain.DateOf(s.clock.Now())) {
		return nil, errs.Wrap(ErrValidation, "fechaEntrada is in the past")
	}
	if req.Guests < 1 {
		return nil, errs.Wrap(ErrValidation, "huespedes must be at least 1")
	}

	res := &domain.Reservation{
		UserID:   userID,
		RoomID:   req.RoomID,
		CheckIn:  in,
		CheckOut: out,
		Guests:   req.Guests,
		Status:   domain.ReservationPending,
		Notes:    strings.TrimSpace(req.Notes),
	}

	var roomNumber string
	err = s.tx.Within(ctx, func(tx *repository.Tx) error {
		room, err := tx.Rooms.GetByIDForUpdate(ctx, req.RoomID)
		if err != nil {
			if errs.Is(err, repository.ErrNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		roomNumber = room.Number

		if req.Guests > room.Capacity {
			return errs.Wrapf(ErrValidation, "room %s holds %d guests", room.Number, room.Capacity)
		}

		effect := domain.RoomEffectFor(domain.ReservationPending)
		if !effect.Applies(room.Status) {
			return errs.Wrapf(ErrRoomNotAvailable, "room %s is %s", room.Number, room.Status)
		}

		overlap, err := tx.Reservations.HasOverlap(ctx, room.ID, in, out, 0)
		if err != nil {
			return err
		}
		if overlap {
			return ErrOverlap
		}

		res.TotalPrice = domain.QuotePrice(room.Price, domain.NightsBetween(in, out))
		if req.TotalPrice != nil && math.Abs(*req.TotalPrice-res.TotalPrice) > 0.005 {
			return errs.Wrapf(ErrPriceMismatch, "expected %.2f, got %.2f", res.TotalPrice, *req.TotalPrice)
		}

		ok, err := tx.Rooms.SetStatus(ctx, room.ID, effect.From, effect.Target)
		if err != nil {
			return err
		}
		if !ok {
			return ErrRoomTaken
		}

		if err := tx.Reservations.Create(ctx, res); err != nil {
			if errs.Is(err, repository.ErrReferenced) {
				return errs.Wrapf(ErrUserNotFound, "user %d", userID)
			}
			return err
		}
		return tx.Activities.Record(ctx, userID, domain.ActionReservationCreated, domain.EntityReservation, res.ID,
			fmt.Sprintf("Reserva #%d creada para habitación %s (%s a %s)", res.ID, room.Number,
				in.Format(domain.DateLayout), out.Format(domain.DateLayout)))
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("reservation created",
		zap.Int64("reservation_id", res.ID),
		zap.Int64("room_id", res.RoomID),
		zap.Int64("user_id", userID),
	)
	s.invalidateCatalog()
	s.notify(ctx, res.UserID, domain.NotifReservationCreated, "Reserva creada",
		fmt.Sprintf("Tu reserva #%d en la habitación %s del %s al %s está pendiente de confirmación.",
			res.ID, roomNumber, in.Format(domain.DateLayout), out.Format(domain.DateLayout)))
	events.PublishAsync(ctx, s.publisher, s.log, events.Event{
		Type:     events.ReservationCreated,
		EntityID: res.ID,
		ActorID:  userID,
		Status:   string(res.Status),
		Payload: map[string]any{
			"roomId":       res.RoomID,
			"fechaEntrada": in.Format(domain.DateLayout),
			"fechaSalida":  out.Format(domain.DateLayout),
			"precioTotal":  res.TotalPrice,
		},
	})
	s.metrics.ReservationTransition("NUEVA", string(res.Status))
	return res, nil
}

// Get returns a reservation to its owner or to staff. Anyone else gets
// not found.
func (s *Service) Get(ctx context.Context, actorID int64, role domain.UserRole, id int64) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errs.Is(err, repository.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if !role.IsStaff() && res.UserID != actorID {
		return nil, ErrReservationNotFound
	}
	return res, nil
}

// List shows guests their own reservations and staff everything.
func (s *Service) List(ctx context.Context, actorID int64, role domain.UserRole, q ListQuery, limit, offset int) (*ListResult, error) {
	if q.Status != "" && !q.Status.Valid() {
		return nil, errs.Wrapf(ErrValidation, "unknown status %q", q.Status)
	}

	f := repository.ReservationFilter{
		RoomID: q.RoomID,
		Status: q.Status,
		Limit:  limit,
		Offset: offset,
	}
	if role.IsStaff() {
		f.UserID = q.UserID
	} else {
		f.UserID = actorID
	}

	items, total, err := s.reservations.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &ListResult{Items: items, Total: total}, nil
}

func (s *Service) Confirm(ctx context.Context, actorID int64, role domain.UserRole, id int64) (*domain.Reservation, error) {
	return s.Transition(ctx, actorID, role, id, domain.ReservationConfirmed, "")
}

func (s *Service) CheckIn(ctx context.Context, actorID int64, role domain.UserRole, id int64) (*domain.Reservation, error) {
	return s.Transition(ctx, actorID, role, id, domain.ReservationCheckedIn, "")
}

func (s *Service) CheckOut(ctx context.Context, actorID int64, role domain.UserRole, id int64) (*domain.Reservation, error) {
	return s.Transition(ctx, actorID, role, id, domain.ReservationCheckedOut, "")
}

func (s *Service) Cancel(ctx context.Context, actorID int64, role domain.UserRole, id int64, reason string) (*domain.Reservation, error) {
	return s.Transition(ctx, actorID, role, id, domain.ReservationCancelled, strings.TrimSpace(reason))
}

func (s *Service) MarkNoShow(ctx context.Context, actorID int64, role domain.UserRole, id int64) (*domain.Reservation, error) {
	return s.Transition(ctx, actorID, role, id, domain.ReservationNoShow, "")
}

// Transition runs one lifecycle step. Guests may only cancel their own
// reservations; every other step is reserved to staff.
func (s *Service) Transition(ctx context.Context, actorID int64, role domain.UserRole, id int64, next domain.ReservationStatus, reason string) (*domain.Reservation, error) {
	var t *Transition
	err := s.tx.Within(ctx, func(tx *repository.Tx) error {
		res, err := tx.Reservations.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errs.Is(err, repository.ErrNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if !role.IsStaff() {
			if res.UserID != actorID {
				return ErrReservationNotFound
			}
			if next != domain.ReservationCancelled {
				return ErrForbidden
			}
		}

		t, err = ApplyTransition(ctx, tx, res, next, actorID, reason)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.AfterTransition(ctx, t)
	return s.reload(ctx, t.Reservation)
}

// AfterTransition fires the post-commit side channels of a transition.
// None of them can fail the caller.
func (s *Service) AfterTransition(ctx context.Context, t *Transition) {
	if t == nil || t.Reservation == nil {
		return
	}
	res := t.Reservation

	s.log.Info("reservation transition",
		zap.Int64("reservation_id", res.ID),
		zap.String("from", string(t.From)),
		zap.String("to", string(t.To)),
		zap.Int64("actor_id", t.ActorID),
		zap.Bool("refunded", t.Refunded),
	)
	if t.RoomChanged {
		s.invalidateCatalog()
	}

	if n, ok := transitionNotices[t.To]; ok {
		s.notify(ctx, res.UserID, n.typ, n.title, fmt.Sprintf(n.message, res.ID))
	}
	events.PublishAsync(ctx, s.publisher, s.log, events.Event{
		Type:     transitionEvents[t.To],
		EntityID: res.ID,
		ActorID:  t.ActorID,
		Status:   string(t.To),
		Payload: map[string]any{
			"from":     t.From,
			"roomId":   res.RoomID,
			"userId":   res.UserID,
			"refunded": t.Refunded,
			"motivo":   res.CancellationReason,
		},
	})
	s.metrics.ReservationTransition(string(t.From), string(t.To))
}

// Sweep marks confirmed reservations whose check-in is more than graceDays
// old as NO_SHOW and expires pending reservations whose check-in has passed.
func (s *Service) Sweep(ctx context.Context, graceDays int) (*SweepResult, error) {
	if graceDays < 0 {
		graceDays = 0
	}
	today := domain.DateOf(s.clock.Now())
	result := &SweepResult{}

	confirmed, err := s.reservations.ListCheckInBefore(ctx, today.AddDate(0, 0, -graceDays), domain.ReservationConfirmed)
	if err != nil {
		return nil, errs.Wrap(err, "list confirmed")
	}
	for _, r := range confirmed {
		result.Processed++
		if _, err := s.Transition(ctx, 0, domain.RoleAdmin, r.ID, domain.ReservationNoShow, ""); err != nil {
			result.Failed++
			s.log.Warn("no-show transition failed", zap.Int64("reservation_id", r.ID), zap.Error(err))
			continue
		}
		result.NoShows++
	}

	pending, err := s.reservations.ListCheckInBefore(ctx, today, domain.ReservationPending)
	if err != nil {
		return result, errs.Wrap(err, "list pending")
	}
	for _, r := range pending {
		result.Processed++
		if _, err := s.Transition(ctx, 0, domain.RoleAdmin, r.ID, domain.ReservationCancelled, expiredReason); err != nil {
			result.Failed++
			s.log.Warn("expire pending failed", zap.Int64("reservation_id", r.ID), zap.Error(err))
			continue
		}
		result.Expired++
	}

	s.log.Info("no-show sweep finished",
		zap.Int("no_shows", result.NoShows),
		zap.Int("expired", result.Expired),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

// Arrivals lists CONFIRMADA reservations checking in on day (today when empty).
func (s *Service) Arrivals(ctx context.Context, day string) ([]domain.Reservation, error) {
	d, err := s.day(day)
	if err != nil {
		return nil, err
	}
	return s.reservations.ListArrivals(ctx, d, domain.ReservationConfirmed)
}

// Departures lists CHECKIN reservations checking out on day (today when empty).
func (s *Service) Departures(ctx context.Context, day string) ([]domain.Reservation, error) {
	d, err := s.day(day)
	if err != nil {
		return nil, err
	}
	return s.reservations.ListDepartures(ctx, d, domain.ReservationCheckedIn)
}

func (s *Service) day(v string) (time.Time, error) {
	if v == "" {
		return domain.DateOf(s.clock.Now()), nil
	}
	d, err := domain.ParseDate(v)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrValidation)
	}
	return d, nil
}

func (s *Service) reload(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	full, err := s.reservations.GetByID(ctx, res.ID)
	if err != nil {
		// the transition is committed; fall back to the row we already hold
		s.log.Warn("reload reservation", zap.Int64("reservation_id", res.ID), zap.Error(err))
		return res, nil
	}
	return full, nil
}

func (s *Service) notify(ctx context.Context, userID int64, typ domain.NotificationType, title, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Send(context.WithoutCancel(ctx), userID, typ, title, message); err != nil {
		s.log.Warn("send notification", zap.Int64("user_id", userID), zap.String("type", string(typ)), zap.Error(err))
	}
}

func (s *Service) invalidateCatalog() {
	if s.catalog != nil {
		s.catalog.Invalidate()
	}
}

type notice struct {
	typ     domain.NotificationType
	title   string
	message string
}

var transitionNotices = map[domain.ReservationStatus]notice{
	domain.ReservationConfirmed:  {domain.NotifReservationConfirmed, "Reserva confirmada", "Tu reserva #%d ha sido confirmada."},
	domain.ReservationCheckedIn:  {domain.NotifReservationCheckIn, "Check-in realizado", "Bienvenido. El check-in de la reserva #%d está registrado."},
	domain.ReservationCheckedOut: {domain.NotifReservationCheckOut, "Check-out realizado", "Gracias por tu estancia. La reserva #%d ha finalizado."},
	domain.ReservationCancelled:  {domain.NotifReservationCancelled, "Reserva cancelada", "La reserva #%d ha sido cancelada."},
	domain.ReservationNoShow:     {domain.NotifReservationNoShow, "Reserva no presentada", "La reserva #%d se marcó como no presentada."},
}

var transitionEvents = map[domain.ReservationStatus]string{
	domain.ReservationConfirmed:  events.ReservationConfirmed,
	domain.ReservationCheckedIn:  events.ReservationCheckIn,
	domain.ReservationCheckedOut: events.ReservationCheckOut,
	domain.ReservationCancelled:  events.ReservationCancelled,
	domain.ReservationNoShow:     events.ReservationNoShow,
}
