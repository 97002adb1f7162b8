package contact

import "hotel/internal/domain"

type CreateContactRequest struct {
	Name    string `json:"nombre" binding:"required" validate:"required,max=120"`
	Email   string `json:"email" binding:"required" validate:"required,email"`
	Phone   string `json:"telefono" validate:"omitempty,max=30"`
	Subject string `json:"asunto" binding:"required" validate:"required,max=200"`
	Message string `json:"mensaje" binding:"required" validate:"required,max=5000"`
}

type UpdateStatusRequest struct {
	Status domain.ContactStatus `json:"estado" binding:"required"`
}

type ReplyRequest struct {
	Reply string `json:"respuesta" binding:"required" validate:"required,max=5000"`
}

type ListResult struct {
	Items []domain.Contact `json:"items"`
	Total int64            `json:"total"`
}
