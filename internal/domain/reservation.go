package domain

import (
	"math"
	"time"
)

type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "PENDIENTE"
	ReservationConfirmed  ReservationStatus = "CONFIRMADA"
	ReservationCheckedIn  ReservationStatus = "CHECKIN"
	ReservationCheckedOut ReservationStatus = "CHECKOUT"
	ReservationCancelled  ReservationStatus = "CANCELADA"
	ReservationNoShow     ReservationStatus = "NO_SHOW"
)

// ActiveReservationStatuses hold a room: they block overlapping bookings and
// room deletion.
var ActiveReservationStatuses = []ReservationStatus{
	ReservationPending,
	ReservationConfirmed,
	ReservationCheckedIn,
}

type Reservation struct {
	ID                 int64             `json:"id" gorm:"primaryKey"`
	UserID             int64             `json:"userId" gorm:"column:user_id;index;not null"`
	RoomID             int64             `json:"roomId" gorm:"column:room_id;index;not null"`
	CheckIn            time.Time         `json:"fechaEntrada" gorm:"column:check_in;index;not null"`
	CheckOut           time.Time         `json:"fechaSalida" gorm:"column:check_out;index;not null"`
	Guests             int               `json:"huespedes" gorm:"column:guests;not null"`
	TotalPrice         float64           `json:"precioTotal" gorm:"column:total_price;not null"`
	Status             ReservationStatus `json:"estado" gorm:"column:status;type:varchar(20);index;not null"`
	Paid               bool              `json:"pagado" gorm:"column:paid;not null;default:false"`
	Notes              string            `json:"notas,omitempty" gorm:"column:notes;type:text"`
	CancellationReason string            `json:"motivoCancelacion,omitempty" gorm:"column:cancellation_reason;type:text"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`

	User    *User    `json:"usuario,omitempty" gorm:"foreignKey:UserID"`
	Room    *Room    `json:"habitacion,omitempty" gorm:"foreignKey:RoomID"`
	Payment *Payment `json:"pago,omitempty" gorm:"foreignKey:ReservationID"`
}

func (Reservation) TableName() string { return "reservations" }

func (r *Reservation) Nights() int {
	return NightsBetween(r.CheckIn, r.CheckOut)
}

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCheckedIn,
		ReservationCheckedOut, ReservationCancelled, ReservationNoShow:
		return true
	}
	return false
}

func (s ReservationStatus) IsActive() bool {
	for _, a := range ActiveReservationStatuses {
		if s == a {
			return true
		}
	}
	return false
}

func (s ReservationStatus) IsTerminal() bool {
	return len(reservationTransitions[s]) == 0
}

var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationPending:   {ReservationConfirmed, ReservationCancelled},
	ReservationConfirmed: {ReservationCheckedIn, ReservationCancelled, ReservationNoShow},
	ReservationCheckedIn: {ReservationCheckedOut},
}

// CanTransitionTo is the single source of truth for the reservation lifecycle.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range reservationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// RoomEffect describes what a reservation event does to its room: the room
// moves to Target, but only when its current status is one of From.
type RoomEffect struct {
	From   []RoomStatus
	Target RoomStatus
}

func (e RoomEffect) Applies(current RoomStatus) bool {
	for _, s := range e.From {
		if s == current {
			return true
		}
	}
	return false
}

// RoomEffectFor returns the room side of a reservation entering status next.
// Creating a reservation is modelled as entering PENDIENTE.
func RoomEffectFor(next ReservationStatus) RoomEffect {
	switch next {
	case ReservationPending:
		return RoomEffect{From: []RoomStatus{RoomAvailable}, Target: RoomReserved}
	case ReservationConfirmed:
		return RoomEffect{From: []RoomStatus{RoomReserved}, Target: RoomReserved}
	case ReservationCheckedIn:
		return RoomEffect{From: []RoomStatus{RoomReserved, RoomAvailable}, Target: RoomOccupied}
	default:
		// CHECKOUT, CANCELADA, NO_SHOW release the room; maintenance is left alone.
		return RoomEffect{From: []RoomStatus{RoomReserved, RoomOccupied}, Target: RoomAvailable}
	}
}

// RoomStatusFor is the room status that follows a reservation entering next.
func RoomStatusFor(next ReservationStatus) RoomStatus {
	return RoomEffectFor(next).Target
}

// NightsBetween counts calendar nights between two dates.
func NightsBetween(in, out time.Time) int {
	d := DateOf(out).Sub(DateOf(in)).Hours() / 24
	return int(math.Round(d))
}

// QuotePrice is nights × nightly price rounded to cents.
func QuotePrice(nightly float64, nights int) float64 {
	return math.Round(nightly*float64(nights)*100) / 100
}
