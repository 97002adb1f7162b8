package domain

import (
	"time"

	"gorm.io/gorm"
)

type RoomType string

const (
	RoomSingle RoomType = "SENCILLA"
	RoomDouble RoomType = "DOBLE"
	RoomSuite  RoomType = "SUITE"
	RoomFamily RoomType = "FAMILIAR"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomSingle, RoomDouble, RoomSuite, RoomFamily:
		return true
	}
	return false
}

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "DISPONIBLE"
	RoomOccupied    RoomStatus = "OCUPADA"
	RoomMaintenance RoomStatus = "MANTENIMIENTO"
	RoomReserved    RoomStatus = "RESERVADA"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance, RoomReserved:
		return true
	}
	return false
}

// CanSetManually reports whether staff may move a room from s to next by
// hand. OCUPADA and RESERVADA are owned by the reservation lifecycle.
func (s RoomStatus) CanSetManually(next RoomStatus) bool {
	switch {
	case s == RoomAvailable && next == RoomMaintenance:
		return true
	case s == RoomMaintenance && next == RoomAvailable:
		return true
	}
	return false
}

type Room struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	Number      string     `json:"numero" gorm:"column:number;size:20;not null"`
	Type        RoomType   `json:"tipo" gorm:"column:type;type:varchar(20);not null"`
	Price       float64    `json:"precio" gorm:"column:price;not null"`
	Capacity    int        `json:"capacidad" gorm:"column:capacity;not null"`
	Status      RoomStatus `json:"estado" gorm:"column:status;type:varchar(20);index;not null"`
	Amenities   []string   `json:"amenidades" gorm:"column:amenities;serializer:json"`
	Description string     `json:"descripcion,omitempty" gorm:"column:description;type:text"`
	Floor       int        `json:"piso,omitempty" gorm:"column:floor"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// soft delete keeps reservation history pointing at a real row
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Room) TableName() string { return "rooms" }
