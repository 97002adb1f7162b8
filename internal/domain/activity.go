package domain

import "time"

// Audit actions written next to every state change.
const (
	ActionReservationCreated = "RESERVA_CREADA"
	ActionReservationStatus  = "RESERVA_ESTADO"
	ActionRoomCreated        = "HABITACION_CREADA"
	ActionRoomUpdated        = "HABITACION_ACTUALIZADA"
	ActionRoomStatus         = "HABITACION_ESTADO"
	ActionRoomDeleted        = "HABITACION_ELIMINADA"
	ActionPaymentCreated     = "PAGO_REGISTRADO"
	ActionPaymentRefunded    = "PAGO_REEMBOLSADO"
	ActionInvoiceIssued      = "FACTURA_EMITIDA"
	ActionContactReplied     = "CONTACTO_RESPONDIDO"
	ActionUserRole           = "USUARIO_ROL"
	ActionUserDeleted        = "USUARIO_ELIMINADO"
)

const (
	EntityReservation = "reserva"
	EntityRoom        = "habitacion"
	EntityPayment     = "pago"
	EntityInvoice     = "factura"
	EntityContact     = "contacto"
	EntityUser        = "usuario"
)

type Activity struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      *int64    `json:"userId,omitempty" gorm:"column:user_id;index"`
	Action      string    `json:"accion" gorm:"column:action;size:40;not null"`
	Entity      string    `json:"entidad" gorm:"column:entity;size:20;index;not null"`
	EntityID    int64     `json:"entidadId" gorm:"column:entity_id;not null"`
	Description string    `json:"descripcion" gorm:"column:description;type:text"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
}

func (Activity) TableName() string { return "activities" }

// ActorID converts a request user id into the nullable audit column; 0 means system.
func ActorID(userID int64) *int64 {
	if userID == 0 {
		return nil
	}
	return &userID
}
