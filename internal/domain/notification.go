package domain

import "time"

type NotificationType string

const (
	NotifReservationCreated   NotificationType = "RESERVA_CREADA"
	NotifReservationConfirmed NotificationType = "RESERVA_CONFIRMADA"
	NotifReservationCheckIn   NotificationType = "RESERVA_CHECKIN"
	NotifReservationCheckOut  NotificationType = "RESERVA_CHECKOUT"
	NotifReservationCancelled NotificationType = "RESERVA_CANCELADA"
	NotifReservationNoShow    NotificationType = "RESERVA_NO_SHOW"
	NotifPaymentReceived      NotificationType = "PAGO_RECIBIDO"
	NotifInvoiceIssued        NotificationType = "FACTURA_EMITIDA"
)

type Notification struct {
	ID        int64            `json:"id" gorm:"primaryKey"`
	UserID    int64            `json:"userId" gorm:"column:user_id;index;not null"`
	Type      NotificationType `json:"tipo" gorm:"column:type;type:varchar(40);not null"`
	Title     string           `json:"titulo" gorm:"column:title;not null"`
	Message   string           `json:"mensaje" gorm:"column:message;type:text"`
	Read      bool             `json:"leida" gorm:"column:is_read;not null;default:false"`
	CreatedAt time.Time        `json:"createdAt" gorm:"index"`
}

func (Notification) TableName() string { return "notifications" }
