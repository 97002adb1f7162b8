package repository

import (
	"context"

	"hotel/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error)
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.WithContext(ctx).
		Preload("Reservation").
		Preload("Reservation.Room", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		First(&p, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PaymentRepository) GetByReservationID(ctx context.Context, reservationID int64) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		First(&p).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PaymentRepository) List(ctx context.Context, status domain.PaymentStatus, limit, offset int) ([]domain.Payment, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Payment{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var list []domain.Payment
	if err := paginate(q, limit, offset).Order("paid_at DESC, id DESC").Find(&list).Error; err != nil {
		return nil, 0, translate(err)
	}
	return list, total, nil
}

func (r *PaymentRepository) SetStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SumCompleted is the revenue figure shown on the admin dashboard.
func (r *PaymentRepository) SumCompleted(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("status = ?", domain.PaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, translate(err)
}
