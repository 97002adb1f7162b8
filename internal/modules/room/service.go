package room

import (
	"context"
	"fmt"
	"time"

	"hotel/internal/domain"
	"hotel/internal/events"
	"hotel/internal/pkg/cache"
	"hotel/internal/pkg/clock"
	"hotel/internal/pkg/errs"
	"hotel/internal/repository"

	"go.uber.org/zap"
)

const catalogKey = "rooms:catalog:v1"

type Service struct {
	rooms     RoomRepository
	tx        Transactor
	cache     cache.Store
	cacheTTL  time.Duration
	publisher events.Publisher
	clock     clock.Clock
	log       *zap.Logger
}

func NewService(
	rooms RoomRepository,
	tx Transactor,
	store cache.Store,
	cacheTTL time.Duration,
	publisher events.Publisher,
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
		rooms:     rooms,
		tx:        tx,
		cache:     store,
		cacheTTL:  cacheTTL,
		publisher: publisher,
		clock:     clk,
		log:       log,
	}
}

// List serves the public catalog. The full room list is cached under one
// key and filtered in memory.
func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.Room, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	all, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Room, 0, len(all))
	for i := range all {
		if q.matches(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

// Board is the operator view of every room straight from the database.
func (s *Service) Board(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx, repository.RoomFilter{})
}

func (s *Service) catalog(ctx context.Context) ([]domain.Room, error) {
	if s.cache != nil {
		var cached []domain.Room
		if cache.GetJSON(s.cache, catalogKey, &cached) {
			return cached, nil
		}
	}

	rooms, err := s.rooms.List(ctx, repository.RoomFilter{})
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := cache.SetJSON(s.cache, catalogKey, rooms, s.cacheTTL); err != nil {
			s.log.Warn("cache room catalog", zap.Error(err))
		}
	}
	return rooms, nil
}

// Invalidate drops the cached catalog. Every write path that touches a room
// calls it after commit.
func (s *Service) Invalidate() {
	if s.cache != nil {
		s.cache.Delete(catalogKey)
	}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errs.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

// Available lists rooms that can be booked for [checkIn, checkOut).
func (s *Service) Available(ctx context.Context, q AvailabilityQuery) ([]domain.Room, error) {
	in, err := domain.ParseDate(q.CheckIn)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	out, err := domain.ParseDate(q.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	if !out.After(in) {
		return nil, errs.Wrap(ErrValidation, "fechaSalida must be after fechaEntrada")
	}
	return s.rooms.ListAvailable(ctx, in, out, q.Guests)
}

func (s *Service) Create(ctx context.Context, actorID int64, req CreateRoomRequest) (*domain.Room, error) {
	if !req.Type.Valid() {
		return nil, errs.Wrapf(ErrValidation, "unknown room type %q", req.Type)
	}

	room := req.toRoom()
	room.Status = domain.RoomAvailable

	err := s.tx.Within(ctx, func(tx *repository.Tx) error {
		if err := tx.Rooms.Create(ctx, room); err != nil {
			return err
		}
		return tx.Activities.Record(ctx, actorID, domain.ActionRoomCreated, domain.EntityRoom, room.ID,
			fmt.Sprintf("Habitación %s creada", room.Number))
	})
	if err != nil {
		if errs.Is(err, repository.ErrConflict) {
			return nil, ErrDuplicateNumber
		}
		return nil, errs.Wrap(err, "create room")
	}

	s.Invalidate()
	return room, nil
}

func (s *Service) Update(ctx context.Context, actorID, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	if !req.Type.Valid() {
		return nil, errs.Wrapf(ErrValidation, "unknown room type %q", req.Type)
	}

	var updated *domain.Room
	err := s.tx.Within(ctx, func(tx *repository.Tx) error {
		current, err := tx.Rooms.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		next := req.toRoom()
		next.ID = current.ID
		next.Status = current.Status
		next.CreatedAt = current.CreatedAt
		next.UpdatedAt = s.clock.Now().UTC()
		if err := tx.Rooms.Update(ctx, next); err != nil {
			return err
		}
		updated = next

		return tx.Activities.Record(ctx, actorID, domain.ActionRoomUpdated, domain.EntityRoom, id,
			fmt.Sprintf("Habitación %s actualizada", next.Number))
	})
	if err != nil {
		switch {
		case errs.Is(err, repository.ErrNotFound):
			return nil, ErrRoomNotFound
		case errs.Is(err, repository.ErrConflict):
			return nil, ErrDuplicateNumber
		}
		return nil, errs.Wrap(err, "update room")
	}

	s.Invalidate()
	return updated, nil
}

// SetStatus is the manual status change used by staff. Only the
// maintenance toggle is allowed; occupancy follows reservations.
func (s *Service) SetStatus(ctx context.Context, actorID, id int64, next domain.RoomStatus) (*domain.Room, error) {
	if !next.Valid() {
		return nil, errs.Wrapf(ErrValidation, "unknown room status %q", next)
	}

	var room *domain.Room
	var from domain.RoomStatus
	err := s.tx.Within(ctx, func(tx *repository.Tx) error {
		current, err := tx.Rooms.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		from = current.Status
		if !current.Status.CanSetManually(next) {
			return errs.Wrapf(ErrInvalidStatusChange, "%s -> %s", current.Status, next)
		}

		ok, err := tx.Rooms.SetStatus(ctx, id, []domain.RoomStatus{current.Status}, next)
		if err != nil {
			return err
		}
		if !ok {
			return errs.Wrapf(ErrInvalidStatusChange, "room %d changed concurrently", id)
		}
		current.Status = next
		room = current

		return tx.Activities.Record(ctx, actorID, domain.ActionRoomStatus, domain.EntityRoom, id,
			fmt.Sprintf("Habitación %s: %s -> %s", current.Number, from, next))
	})
	if err != nil {
		if errs.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	s.Invalidate()
	events.PublishAsync(ctx, s.publisher, s.log, events.Event{
		Type:     events.RoomStatusChanged,
		EntityID: id,
		ActorID:  actorID,
		Status:   string(next),
		Payload:  map[string]any{"from": from},
	})
	return room, nil
}

// Delete soft deletes a room without active reservations.
func (s *Service) Delete(ctx context.Context, actorID, id int64) error {
	err := s.tx.Within(ctx, func(tx *repository.Tx) error {
		room, err := tx.Rooms.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		active, err := tx.Reservations.CountActiveByRoom(ctx, id)
		if err != nil {
			return err
		}
		if active > 0 {
			return errs.Wrapf(ErrHasActiveReservation, "room %d has %d", id, active)
		}

		if err := tx.Rooms.Delete(ctx, id); err != nil {
			return err
		}
		return tx.Activities.Record(ctx, actorID, domain.ActionRoomDeleted, domain.EntityRoom, id,
			fmt.Sprintf("Habitación %s eliminada", room.Number))
	})
	if err != nil {
		if errs.Is(err, repository.ErrNotFound) {
			return ErrRoomNotFound
		}
		return err
	}

	s.Invalidate()
	return nil
}

func (q ListQuery) validate() error {
	if q.Type != "" && !q.Type.Valid() {
		return errs.Wrapf(ErrValidation, "unknown room type %q", q.Type)
	}
	if q.Status != "" && !q.Status.Valid() {
		return errs.Wrapf(ErrValidation, "unknown room status %q", q.Status)
	}
	return nil
}
