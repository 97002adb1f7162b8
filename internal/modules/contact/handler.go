package contact

import (
	"net/http"

	"hotel/internal/domain"
	"hotel/internal/middleware"
	"hotel/internal/pkg/errs"
	"hotel/internal/pkg/httpx"
	"hotel/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.POST("/contacto", h.Create)
}

func (h *Handler) RegisterStaffRoutes(staff *gin.RouterGroup) {
	contact := staff.Group("/contacto")
	{
		contact.GET("", h.List)
		contact.PATCH("/:id/estado", h.SetStatus)
		contact.POST("/:id/responder", h.Reply)
	}
}

// Create stores a message from the public contact form.
// @Summary		Enviar mensaje de contacto
// @Tags		Contacto
// @Accept		json
// @Produce		json
// @Param		request	body	CreateContactRequest	true	"nombre, email, telefono, asunto, mensaje"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Error de validación"
// @Router		/contacto [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de contacto inválidos", err.Error())
		return
	}

	msg, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		renderError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, msg, "Mensaje recibido")
}

// @Summary		Listar mensajes de contacto
// @Tags		Contacto
// @Produce		json
// @Param		estado	query	string	false	"NUEVO, LEIDO, RESPONDIDO, ARCHIVADO"
// @Success		200	{object}	map[string]interface{}
// @Security	BearerAuth
// @Router		/contacto [GET]
func (h *Handler) List(c *gin.Context) {
	limit, offset := httpx.Page(c)

	result, err := h.svc.List(c.Request.Context(), domain.ContactStatus(c.Query("estado")), limit, offset)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) SetStatus(c *gin.Context) {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "estado requerido", err.Error())
		return
	}

	msg, err := h.svc.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, msg)
}

// Reply answers a contact message.
// @Summary		Responder mensaje
// @Tags		Contacto
// @Accept		json
// @Produce		json
// @Param		id		path	int				true	"ID del mensaje"
// @Param		request	body	ReplyRequest	true	"respuesta"
// @Success		200	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}
// @Security	BearerAuth
// @Router		/contacto/{id}/responder [POST]
func (h *Handler) Reply(c *gin.Context) {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}
	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "respuesta requerida", err.Error())
		return
	}

	msg, err := h.svc.Reply(c.Request.Context(), middleware.UserID(c), id, req.Reply)
	if err != nil {
		renderError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, msg, "Respuesta registrada")
}

func renderError(c *gin.Context, err error) {
	var verr *ValidationError
	switch {
	case errs.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de contacto inválidos", verr.Fields)
	case errs.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos inválidos")
	case errs.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Solo se permite LEIDO o ARCHIVADO")
	case errs.Is(err, ErrAlreadyArchived):
		response.Error(c, http.StatusBadRequest, "CONTACT_ARCHIVED", "El mensaje está archivado")
	case errs.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Mensaje no encontrado")
	default:
		response.Internal(c, err, "Error interno del servidor")
	}
}
