package domain

import "time"

type UserRole string

const (
	RoleGuest    UserRole = "USUARIO"
	RoleOperator UserRole = "OPERADOR"
	RoleAdmin    UserRole = "ADMINISTRADOR"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleGuest, RoleOperator, RoleAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the role can work the back office.
func (r UserRole) IsStaff() bool {
	return r == RoleOperator || r == RoleAdmin
}

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"nombre" gorm:"column:name;not null"`
	Email        string    `json:"email" gorm:"column:email;uniqueIndex;not null" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Phone        string    `json:"telefono,omitempty" gorm:"column:phone"`
	Role         UserRole  `json:"rol" gorm:"column:role;type:varchar(20);index;not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }
