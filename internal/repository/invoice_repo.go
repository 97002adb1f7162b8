package repository

import (
	"context"

	"hotel/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(inv).Error)
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.WithContext(ctx).
		Preload("Payment").
		Preload("Payment.Reservation").
		Preload("Payment.Reservation.User").
		Preload("Payment.Reservation.Room", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		First(&inv, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &inv, nil
}

func (r *InvoiceRepository) ExistsForPayment(ctx context.Context, paymentID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("payment_id = ?", paymentID).
		Count(&n).Error
	return n > 0, translate(err)
}

// NextSequence returns max(sequence)+1. Two writers may read the same value;
// the unique index on sequence makes the loser fail with ErrConflict.
func (r *InvoiceRepository) NextSequence(ctx context.Context) (int64, error) {
	var last int64
	err := r.db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Select("COALESCE(MAX(sequence), 0)").
		Scan(&last).Error
	if err != nil {
		return 0, translate(err)
	}
	return last + 1, nil
}

func (r *InvoiceRepository) List(ctx context.Context, limit, offset int) ([]domain.Invoice, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Invoice{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var list []domain.Invoice
	if err := paginate(q, limit, offset).Order("sequence DESC").Find(&list).Error; err != nil {
		return nil, 0, translate(err)
	}
	return list, total, nil
}
