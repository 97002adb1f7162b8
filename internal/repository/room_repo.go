package repository

import (
	"context"
	"time"

	"hotel/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type RoomFilter struct {
	Type        domain.RoomType
	Status      domain.RoomStatus
	MinCapacity int
	MaxPrice    float64
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return translate(r.db.WithContext(ctx).Create(room).Error)
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, translate(err)
	}
	return &room, nil
}

// GetByIDForUpdate locks the row until the surrounding transaction ends.
// SQLite ignores the clause and serialises writers instead.
func (r *RoomRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context, f RoomFilter) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Model(&domain.Room{})
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MinCapacity > 0 {
		q = q.Where("capacity >= ?", f.MinCapacity)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price <= ?", f.MaxPrice)
	}

	var rooms []domain.Room
	if err := q.Order("number ASC").Find(&rooms).Error; err != nil {
		return nil, translate(err)
	}
	return rooms, nil
}

// ListAvailable returns DISPONIBLE rooms with enough capacity and no active
// reservation overlapping [checkIn, checkOut).
func (r *RoomRepository) ListAvailable(ctx context.Context, checkIn, checkOut time.Time, guests int) ([]domain.Room, error) {
	busy := r.db.
		Model(&domain.Reservation{}).
		Select("room_id").
		Where("status IN ?", domain.ActiveReservationStatuses).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)

	q := r.db.WithContext(ctx).
		Where("status = ?", domain.RoomAvailable).
		Where("id NOT IN (?)", busy)
	if guests > 0 {
		q = q.Where("capacity >= ?", guests)
	}

	var rooms []domain.Room
	if err := q.Order("price ASC, number ASC").Find(&rooms).Error; err != nil {
		return nil, translate(err)
	}
	return rooms, nil
}

// Update writes descriptive columns. Status is only changed through SetStatus.
func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Room{ID: room.ID}).
		Select("number", "type", "price", "capacity", "amenities", "description", "floor", "updated_at").
		Updates(room)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStatus is a compare-and-set: the row only changes when its current
// status is one of from. It reports whether a row was updated.
func (r *RoomRepository) SetStatus(ctx context.Context, id int64, from []domain.RoomStatus, to domain.RoomStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Room{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Room{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RoomRepository) CountByStatus(ctx context.Context) (map[domain.RoomStatus]int64, error) {
	var rows []struct {
		Status domain.RoomStatus
		Total  int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Room{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}

	out := make(map[domain.RoomStatus]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Total
	}
	return out, nil
}
