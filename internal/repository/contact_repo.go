package repository

import (
	"context"
	"time"

	"hotel/internal/domain"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *ContactRepository) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	var c domain.Contact
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *ContactRepository) List(ctx context.Context, status domain.ContactStatus, limit, offset int) ([]domain.Contact, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Contact{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var list []domain.Contact
	if err := paginate(q, limit, offset).Order("created_at DESC, id DESC").Find(&list).Error; err != nil {
		return nil, 0, translate(err)
	}
	return list, total, nil
}

func (r *ContactRepository) SetStatus(ctx context.Context, id int64, status domain.ContactStatus) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Contact{}).
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

func (r *ContactRepository) SaveReply(ctx context.Context, id int64, reply string, by int64, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Contact{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"reply":      reply,
			"replied_by": by,
			"replied_at": at,
			"status":     domain.ContactReplied,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ContactRepository) CountByStatus(ctx context.Context, status domain.ContactStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Contact{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, translate(err)
}
