package repository

import (
	"context"

	"hotel/internal/domain"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, a *domain.Activity) error {
	return translate(r.db.WithContext(ctx).Create(a).Error)
}

// Record is a shorthand used by services inside transactions.
func (r *ActivityRepository) Record(ctx context.Context, actor int64, action, entity string, entityID int64, description string) error {
	return r.Create(ctx, &domain.Activity{
		UserID:      domain.ActorID(actor),
		Action:      action,
		Entity:      entity,
		EntityID:    entityID,
		Description: description,
	})
}

type ActivityFilter struct {
	Entity   string
	EntityID int64
	Limit    int
}

func (r *ActivityRepository) List(ctx context.Context, f ActivityFilter) ([]domain.Activity, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.EntityID > 0 {
		q = q.Where("entity_id = ?", f.EntityID)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var list []domain.Activity
	if err := q.Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}
