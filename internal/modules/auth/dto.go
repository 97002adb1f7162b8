package auth

import (
	"time"

	"hotel/internal/domain"

	"github.com/jinzhu/copier"
)

type RegisterRequest struct {
	Name     string `json:"nombre" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"telefono" binding:"omitempty,max=30"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest leaves a field untouched when it is omitted.
type UpdateProfileRequest struct {
	Name     *string `json:"nombre" binding:"omitempty,min=2,max=100"`
	Phone    *string `json:"telefono" binding:"omitempty,max=30"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

type UserPublic struct {
	ID        int64           `json:"id"`
	Name      string          `json:"nombre"`
	Email     string          `json:"email"`
	Phone     string          `json:"telefono,omitempty"`
	Role      domain.UserRole `json:"rol"`
	CreatedAt time.Time       `json:"createdAt"`
}

type AuthResponse struct {
	Token     string     `json:"token"`
	ExpiresIn int64      `json:"expiresIn,omitempty"`
	User      UserPublic `json:"usuario"`
}

func ToPublic(u *domain.User) UserPublic {
	var out UserPublic
	_ = copier.Copy(&out, u)
	return out
}

func ToPublicList(users []domain.User) []UserPublic {
	out := make([]UserPublic, 0, len(users))
	for i := range users {
		out = append(out, ToPublic(&users[i]))
	}
	return out
}
