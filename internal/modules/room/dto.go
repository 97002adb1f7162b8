package room

import (
	"strings"

	"hotel/internal/domain"
)

type CreateRoomRequest struct {
	Number      string          `json:"numero" binding:"required,max=20"`
	Type        domain.RoomType `json:"tipo" binding:"required"`
	Price       float64         `json:"precio" binding:"required,gt=0"`
	Capacity    int             `json:"capacidad" binding:"required,min=1,max=20"`
	Amenities   []string        `json:"amenidades"`
	Description string          `json:"descripcion" binding:"omitempty,max=2000"`
	Floor       int             `json:"piso" binding:"omitempty,min=0"`
}

type UpdateRoomRequest = CreateRoomRequest

type UpdateStatusRequest struct {
	Status domain.RoomStatus `json:"estado" binding:"required"`
}

// ListQuery is bound from the query string of GET /habitaciones.
type ListQuery struct {
	Type        domain.RoomType   `form:"tipo"`
	Status      domain.RoomStatus `form:"estado"`
	MinCapacity int               `form:"capacidad" binding:"omitempty,min=0"`
	MaxPrice    float64           `form:"precioMax" binding:"omitempty,min=0"`
}

type AvailabilityQuery struct {
	CheckIn  string `form:"fechaEntrada" binding:"required"`
	CheckOut string `form:"fechaSalida" binding:"required"`
	Guests   int    `form:"huespedes" binding:"omitempty,min=1"`
}

func (r CreateRoomRequest) toRoom() *domain.Room {
	amenities := make([]string, 0, len(r.Amenities))
	for _, a := range r.Amenities {
		if a = strings.TrimSpace(a); a != "" {
			amenities = append(amenities, a)
		}
	}
	return &domain.Room{
		Number:      strings.TrimSpace(r.Number),
		Type:        r.Type,
		Price:       r.Price,
		Capacity:    r.Capacity,
		Amenities:   amenities,
		Description: strings.TrimSpace(r.Description),
		Floor:       r.Floor,
	}
}

func (q ListQuery) matches(room *domain.Room) bool {
	if q.Type != "" && room.Type != q.Type {
		return false
	}
	if q.Status != "" && room.Status != q.Status {
		return false
	}
	if q.MinCapacity > 0 && room.Capacity < q.MinCapacity {
		return false
	}
	if q.MaxPrice > 0 && room.Price > q.MaxPrice {
		return false
	}
	return true
}
