package reservation

import "hotel/internal/domain"

type CreateReservationRequest struct {
	RoomID     int64    `json:"roomId" binding:"required,min=1"`
	CheckIn    string   `json:"fechaEntrada" binding:"required"`
	CheckOut   string   `json:"fechaSalida" binding:"required"`
	Guests     int      `json:"huespedes" binding:"required,min=1"`
	TotalPrice *float64 `json:"precioTotal" binding:"omitempty,min=0"`
	Notes      string   `json:"notas" binding:"omitempty,max=1000"`
}

type CancelRequest struct {
	Reason string `json:"motivo" binding:"omitempty,max=500"`
}

type ListQuery struct {
	Status domain.ReservationStatus `form:"estado"`
	RoomID int64                    `form:"roomId"`
	UserID int64                    `form:"userId"`
}

type ListResult struct {
	Items []domain.Reservation `json:"items"`
	Total int64                `json:"total"`
}

// SweepResult reports what the no-show sweep changed.
type SweepResult struct {
	NoShows   int `json:"noShows"`
	Expired   int `json:"expiradas"`
	Failed    int `json:"fallidas"`
	Processed int `json:"procesadas"`
}
