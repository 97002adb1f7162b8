package admin

import (
	"hotel/internal/domain"
	"hotel/internal/modules/auth"
)

type UserListFilter struct {
	Role domain.UserRole `form:"rol"`
}

type UserListResponse struct {
	Users  []auth.UserPublic `json:"usuarios"`
	Total  int64             `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

type UpdateRoleRequest struct {
	Role domain.UserRole `json:"rol" binding:"required"`
}

type ActivityQuery struct {
	Limit  int    `form:"limit"`
	Entity string `form:"entidad"`
}

// Statistics is the admin dashboard snapshot.
type Statistics struct {
	RoomsByStatus        map[domain.RoomStatus]int64        `json:"habitacionesPorEstado"`
	TotalRooms           int64                              `json:"totalHabitaciones"`
	ReservationsByStatus map[domain.ReservationStatus]int64 `json:"reservasPorEstado"`
	TotalReservations    int64                              `json:"totalReservas"`
	OccupancyRate        float64                            `json:"tasaOcupacion"`
	Revenue              float64                            `json:"ingresos"`
	Users                int64                              `json:"usuarios"`
	NewContacts          int64                              `json:"contactosNuevos"`
}
