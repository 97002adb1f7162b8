package room

import (
	"net/http"

	"hotel/internal/middleware"
	"hotel/internal/pkg/errs"
	"hotel/internal/pkg/httpx"
	"hotel/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	rooms := api.Group("/habitaciones")
	{
		rooms.GET("", h.List)
		rooms.GET("/disponibles", h.Available)
		rooms.GET("/:id", h.Get)
	}
}

func (h *Handler) RegisterStaffRoutes(staff *gin.RouterGroup) {
	staff.PATCH("/habitaciones/:id/estado", h.SetStatus)
	staff.GET("/operador/habitaciones", h.Board)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/habitaciones", h.Create)
	admin.PUT("/habitaciones/:id", h.Update)
	admin.DELETE("/habitaciones/:id", h.Delete)
}

// List returns the room catalog.
// @Summary		Listar habitaciones
// @Tags		Habitaciones
// @Produce		json
// @Param		tipo		query	string	false	"SENCILLA, DOBLE, SUITE, FAMILIAR"
// @Param		estado		query	string	false	"DISPONIBLE, OCUPADA, MANTENIMIENTO, RESERVADA"
// @Param		capacidad	query	int		false	"capacidad mínima"
// @Param		precioMax	query	number	false	"precio máximo por noche"
// @Success		200	{object}	map[string]interface{}
// @Router		/habitaciones [GET]
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Filtros inválidos", err.Error())
		return
	}

	rooms, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rooms)
}

// Available lists rooms free for a stay.
// @Summary		Habitaciones disponibles
// @Tags		Habitaciones
// @Produce		json
// @Param		fechaEntrada	query	string	true	"YYYY-MM-DD"
// @Param		fechaSalida		query	string	true	"YYYY-MM-DD"
// @Param		huespedes		query	int		false	"número de huéspedes"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}
// @Router		/habitaciones/disponibles [GET]
func (h *Handler) Available(c *gin.Context) {
	var q AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Fechas requeridas", err.Error())
		return
	}

	rooms, err := h.service.Available(c.Request.Context(), q)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rooms)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}

	room, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, room)
}

func (h *Handler) Board(c *gin.Context) {
	rooms, err := h.service.Board(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rooms)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de habitación inválidos", err.Error())
		return
	}

	room, err := h.service.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, room, "Habitación creada")
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de habitación inválidos", err.Error())
		return
	}

	room, err := h.service.Update(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, room, "Habitación actualizada")
}

// SetStatus toggles maintenance.
// @Summary		Cambiar estado de habitación
// @Tags		Habitaciones
// @Accept		json
// @Produce		json
// @Param		id		path	int					true	"ID de habitación"
// @Param		request	body	UpdateStatusRequest	true	"nuevo estado"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}
// @Security	BearerAuth
// @Router		/habitaciones/{id}/estado [PATCH]
func (h *Handler) SetStatus(c *gin.Context) {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Estado requerido", err.Error())
		return
	}

	room, err := h.service.SetStatus(c.Request.Context(), middleware.UserID(c), id, req.Status)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, room, "Estado actualizado")
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		h.renderError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, gin.H{"id": id}, "Habitación eliminada")
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, ErrValidation):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos inválidos", err.Error())
	case errs.Is(err, ErrInvalidStatusChange):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS_CHANGE", "Cambio de estado no permitido")
	case errs.Is(err, ErrHasActiveReservation):
		response.Error(c, http.StatusBadRequest, "ROOM_HAS_RESERVATIONS", "La habitación tiene reservas activas")
	case errs.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Habitación no encontrada")
	case errs.Is(err, ErrDuplicateNumber):
		response.Error(c, http.StatusConflict, "DUPLICATE_NUMBER", "Ya existe una habitación con ese número")
	default:
		response.Internal(c, err, "Error interno del servidor")
	}
}
