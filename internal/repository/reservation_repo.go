package repository

import (
	"context"
	"time"

	"hotel/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type ReservationFilter struct {
	UserID int64
	RoomID int64
	Status domain.ReservationStatus
	Limit  int
	Offset int
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(res).Error)
}

// withDetails preloads the room (including soft-deleted ones), the guest and
// the payment.
func withDetails(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Room", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("User").
		Preload("Payment")
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := withDetails(r.db.WithContext(ctx)).First(&res, id).Error; err != nil {
		return nil, translate(err)
	}
	return &res, nil
}

func (r *ReservationRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Reservation, error) {
	var res domain.Reservation
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&res, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &res, nil
}

func (r *ReservationRepository) List(ctx context.Context, f ReservationFilter) ([]domain.Reservation, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Reservation{})
	if f.UserID > 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.RoomID > 0 {
		q = q.Where("room_id = ?", f.RoomID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var list []domain.Reservation
	err := withDetails(paginate(q, f.Limit, f.Offset)).
		Order("check_in DESC, id DESC").
		Find(&list).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return list, total, nil
}

// HasOverlap reports whether an active reservation for the room intersects
// [checkIn, checkOut). excludeID skips one reservation, 0 skips none.
func (r *ReservationRepository) HasOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeID int64) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", domain.ActiveReservationStatuses).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

// TransitionFields are written together with a status change.
type TransitionFields struct {
	CancellationReason string
}

// SetStatus moves the reservation from -> to only if it is still in from.
func (r *ReservationRepository) SetStatus(ctx context.Context, id int64, from, to domain.ReservationStatus, extra TransitionFields) (bool, error) {
	updates := map[string]any{"status": to}
	if extra.CancellationReason != "" {
		updates["cancellation_reason"] = extra.CancellationReason
	}

	res := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *ReservationRepository) MarkPaid(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ?", id).
		Update("paid", true)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ReservationRepository) CountActiveByRoom(ctx context.Context, roomID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("room_id = ? AND status IN ?", roomID, domain.ActiveReservationStatuses).
		Count(&n).Error
	return n, translate(err)
}

func (r *ReservationRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, translate(err)
}

func (r *ReservationRepository) CountByStatus(ctx context.Context) (map[domain.ReservationStatus]int64, error) {
	var rows []struct {
		Status domain.ReservationStatus
		Total  int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}

	out := make(map[domain.ReservationStatus]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Total
	}
	return out, nil
}

// ListArrivals returns reservations in status whose check-in falls on day.
func (r *ReservationRepository) ListArrivals(ctx context.Context, day time.Time, status domain.ReservationStatus) ([]domain.Reservation, error) {
	return r.listOnDay(ctx, "check_in", day, status)
}

// ListDepartures returns reservations in status whose check-out falls on day.
func (r *ReservationRepository) ListDepartures(ctx context.Context, day time.Time, status domain.ReservationStatus) ([]domain.Reservation, error) {
	return r.listOnDay(ctx, "check_out", day, status)
}

func (r *ReservationRepository) listOnDay(ctx context.Context, column string, day time.Time, status domain.ReservationStatus) ([]domain.Reservation, error) {
	start := domain.DateOf(day)
	end := start.AddDate(0, 0, 1)

	var list []domain.Reservation
	err := withDetails(r.db.WithContext(ctx)).
		Where(column+" >= ? AND "+column+" < ?", start, end).
		Where("status = ?", status).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, translate(err)
	}
	return list, nil
}

// ListCheckInBefore returns reservations in status whose check-in is strictly
// before cutoff.
func (r *ReservationRepository) ListCheckInBefore(ctx context.Context, cutoff time.Time, status domain.ReservationStatus) ([]domain.Reservation, error) {
	var list []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("status = ? AND check_in < ?", status, cutoff).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, translate(err)
	}
	return list, nil
}
