package domain

import "time"

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "EFECTIVO"
	PaymentCard     PaymentMethod = "TARJETA"
	PaymentTransfer PaymentMethod = "TRANSFERENCIA"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "COMPLETADO"
	PaymentRefunded  PaymentStatus = "REEMBOLSADO"
)

type Payment struct {
	ID            int64         `json:"id" gorm:"primaryKey"`
	ReservationID int64         `json:"reservaId" gorm:"column:reservation_id;uniqueIndex;not null"`
	Amount        float64       `json:"monto" gorm:"column:amount;not null"`
	Method        PaymentMethod `json:"metodo" gorm:"column:method;type:varchar(20);not null"`
	Status        PaymentStatus `json:"estado" gorm:"column:status;type:varchar(20);index;not null"`
	Reference     string        `json:"referencia,omitempty" gorm:"column:reference"`
	PaidAt        time.Time     `json:"fechaPago" gorm:"column:paid_at;not null"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`

	Reservation *Reservation `json:"reserva,omitempty" gorm:"foreignKey:ReservationID"`
}

func (Payment) TableName() string { return "payments" }
