package admin

import (
	"context"
	"fmt"
	"math"

	"hotel/internal/domain"
	"hotel/internal/pkg/errs"
	"hotel/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultActivityLimit = 50

type Service struct {
	users        UserRepository
	rooms        RoomStats
	reservations ReservationStats
	payments     PaymentStats
	contacts     ContactStats
	activities   ActivityLog
	tx           Transactor
	log          *zap.Logger
}

func NewService(
	users UserRepository,
	rooms RoomStats,
	reservations ReservationStats,
	payments PaymentStats,
	contacts ContactStats,
	activities ActivityLog,
	tx Transactor,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		users:        users,
		rooms:        rooms,
		reservations: reservations,
		payments:     payments,
		contacts:     contacts,
		activities:   activities,
		tx:           tx,
		log:          log,
	}
}

// -------------------- Users --------------------

func (s *Service) ListUsers(ctx context.Context, role domain.UserRole, limit, offset int) ([]domain.User, int64, error) {
	if role != "" && !role.Valid() {
		return nil, 0, errs.Wrapf(ErrUnknownRoleName, "rol %q", role)
	}
	return s.users.List(ctx, repository.UserFilter{Role: role, Limit: limit, Offset: offset})
}

func (s *Service) ChangeRole(ctx context.Context, adminID, userID int64, role domain.UserRole) (*domain.User, error) {
	if !role.Valid() {
		return nil, errs.Wrapf(ErrUnknownRoleName, "rol %q", role)
	}
	if adminID == userID {
		return nil, ErrSelfChange
	}

	var previous domain.UserRole
	err := s.tx.Within(ctx, func(tx *repository.Tx) error {
		u, err := tx.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		previous = u.Role
		if previous == role {
			return nil
		}
		if err := tx.Users.UpdateRole(ctx, userID, role); err != nil {
			return err
		}
		return tx.Activities.Record(ctx, adminID, domain.ActionUserRole, domain.EntityUser, userID,
			fmt.Sprintf("Rol de %s cambiado de %s a %s", u.Email, previous, role))
	})
	if err != nil {
		if errs.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	s.log.Info("admin action: role changed",
		zap.Int64("admin_id", adminID), zap.Int64("user_id", userID),
		zap.String("from", string(previous)), zap.String("to", string(role)))
	return s.users.GetByID(ctx, userID)
}

// DeleteUser removes an account with no reservation history.
func (s *Service) DeleteUser(ctx context.Context, adminID, userID int64) error {
	if adminID == userID {
		return ErrSelfChange
	}

	err := s.tx.Within(ctx, func(tx *repository.Tx) error {
		u, err := tx.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		n, err := tx.Reservations.CountByUser(ctx, userID)
		if err != nil {
			return err
		}
		if n > 0 {
			return errs.Wrapf(ErrUserHasHistory, "user %d has %d reservations", userID, n)
		}
		if err := tx.Users.Delete(ctx, userID); err != nil {
			return err
		}
		return tx.Activities.Record(ctx, adminID, domain.ActionUserDeleted, domain.EntityUser, userID,
			fmt.Sprintf("Usuario %s eliminado", u.Email))
	})
	if err != nil {
		if errs.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	s.log.Info("admin action: user deleted", zap.Int64("admin_id", adminID), zap.Int64("user_id", userID))
	return nil
}

// -------------------- Dashboard --------------------

// Statistics gathers the dashboard counters concurrently.
func (s *Service) Statistics(ctx context.Context) (*Statistics, error) {
	var st Statistics
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		st.RoomsByStatus, err = s.rooms.CountByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		st.ReservationsByStatus, err = s.reservations.CountByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		st.Revenue, err = s.payments.SumCompleted(gctx)
		return err
	})
	g.Go(func() (err error) {
		st.Users, err = s.users.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		st.NewContacts, err = s.contacts.CountByStatus(gctx, domain.ContactNew)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errs.Wrap(err, "collect statistics")
	}

	for _, n := range st.RoomsByStatus {
		st.TotalRooms += n
	}
	for _, n := range st.ReservationsByStatus {
		st.TotalReservations += n
	}
	if st.TotalRooms > 0 {
		rate := float64(st.RoomsByStatus[domain.RoomOccupied]) / float64(st.TotalRooms)
		st.OccupancyRate = math.Round(rate*10000) / 10000
	}
	st.Revenue = math.Round(st.Revenue*100) / 100
	return &st, nil
}

func (s *Service) Activities(ctx context.Context, q ActivityQuery) ([]domain.Activity, error) {
	if q.Entity != "" && !knownEntity(q.Entity) {
		return nil, errs.Wrapf(ErrUnknownEntity, "entidad %q", q.Entity)
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	limit = min(limit, 500)
	return s.activities.List(ctx, repository.ActivityFilter{Entity: q.Entity, Limit: limit})
}

func knownEntity(e string) bool {
	switch e {
	case domain.EntityReservation, domain.EntityRoom, domain.EntityPayment,
		domain.EntityInvoice, domain.EntityContact, domain.EntityUser:
		return true
	}
	return false
}
