package auth

import (
	"context"

	"hotel/internal/domain"
)

// UserRepository is the slice of the user store the auth service needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, u *domain.User) error
}

type TokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}
