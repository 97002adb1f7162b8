package repository

import (
	"context"

	"hotel/internal/domain"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return translate(r.db.WithContext(ctx).Create(n).Error)
}

func (r *NotificationRepository) GetByUserID(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var list []domain.Notification
	if err := q.Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&n).Error
	return n, translate(err)
}

// MarkAsRead only touches the caller's own notification.
func (r *NotificationRepository) MarkAsRead(ctx context.Context, id, userID int64) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, translate(res.Error)
}
