package contact

import (
	"context"

	"hotel/internal/domain"
	"hotel/internal/repository"
)

type ContactRepository interface {
	Create(ctx context.Context, c *domain.Contact) error
	GetByID(ctx context.Context, id int64) (*domain.Contact, error)
	List(ctx context.Context, status domain.ContactStatus, limit, offset int) ([]domain.Contact, int64, error)
	SetStatus(ctx context.Context, id int64, status domain.ContactStatus) error
}

type Transactor interface {
	Within(ctx context.Context, fn func(tx *repository.Tx) error) error
}
