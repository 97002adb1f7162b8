package repository

import (
	"context"
	"strings"

	"hotel/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type UserFilter struct {
	Role   domain.UserRole
	Limit  int
	Offset int
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = normalizeEmail(u.Email)
	return translate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("email = ?", normalizeEmail(email)).
		First(&u).Error
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("email = ?", normalizeEmail(email)).
		Count(&n).Error
	return n > 0, translate(err)
}

// UpdateProfile writes the editable columns only.
func (r *UserRepository) UpdateProfile(ctx context.Context, u *domain.User) error {
	res := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", u.ID).
		Updates(map[string]any{
			"name":          u.Name,
			"phone":         u.Phone,
			"password_hash": u.PasswordHash,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id int64, role domain.UserRole) error {
	res := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Update("role", role)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.User{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, f UserFilter) ([]domain.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.User{})
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var users []domain.User
	if err := paginate(q, f.Limit, f.Offset).Order("id ASC").Find(&users).Error; err != nil {
		return nil, 0, translate(err)
	}
	return users, total, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&n).Error
	return n, translate(err)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func paginate(q *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	return q
}
