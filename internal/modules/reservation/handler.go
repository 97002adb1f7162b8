package reservation

import (
	"context"
	"net/http"

	"hotel/internal/domain"
	"hotel/internal/middleware"
	"hotel/internal/pkg/errs"
	"hotel/internal/pkg/httpx"
	"hotel/internal/pkg/response"
	"hotel/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	res := protected.Group("/reservas")
	{
		res.POST("", h.Create)
		res.GET("", h.List)
		res.GET("/:id", h.Get)
		res.POST("/:id/cancelar", h.Cancel)
	}
}

func (h *Handler) RegisterStaffRoutes(staff *gin.RouterGroup) {
	res := staff.Group("/reservas")
	{
		res.POST("/:id/confirmar", h.transition(h.service.Confirm, "Reserva confirmada"))
		res.POST("/:id/checkin", h.transition(h.service.CheckIn, "Check-in registrado"))
		res.POST("/:id/checkout", h.transition(h.service.CheckOut, "Check-out registrado"))
		res.POST("/:id/no-show", h.transition(h.service.MarkNoShow, "Reserva marcada como no presentada"))
	}

	op := staff.Group("/operador")
	{
		op.GET("/llegadas", h.Arrivals)
		op.GET("/salidas", h.Departures)
	}
}

// Create books a room for the authenticated user.
// @Summary		Crear reserva
// @Description	Reserva una habitación DISPONIBLE. El precio total se calcula como noches × precio por noche.
// @Tags		Reservas
// @Accept		json
// @Produce		json
// @Param		request	body	CreateReservationRequest	true	"roomId, fechaEntrada, fechaSalida, huespedes"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Datos inválidos o habitación no disponible"
// @Failure		404	{object}	map[string]interface{}	"Habitación no encontrada"
// @Failure		409	{object}	map[string]interface{}	"Fechas ocupadas"
// @Security	BearerAuth
// @Router		/reservas [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de reserva inválidos", err.Error())
		return
	}

	res, err := h.service.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		renderError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, res, "Reserva creada")
}

// List returns the caller's reservations, or every reservation for staff.
// @Summary		Listar reservas
// @Tags		Reservas
// @Produce		json
// @Param		estado	query	string	false	"estado de la reserva"
// @Param		roomId	query	int		false	"habitación"
// @Param		userId	query	int		false	"usuario (solo personal)"
// @Param		limit	query	int		false	"máximo de resultados"
// @Param		offset	query	int		false	"desplazamiento"
// @Success		200	{object}	map[string]interface{}
// @Security	BearerAuth
// @Router		/reservas [GET]
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Filtros inválidos", err.Error())
		return
	}
	limit, offset := httpx.Page(c)
	userID, role := middleware.Actor(c)

	result, err := h.service.List(c.Request.Context(), userID, role, q, limit, offset)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}
	userID, role := middleware.Actor(c)

	res, err := h.service.Get(c.Request.Context(), userID, role, id)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}

	var req CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos inválidos", err.Error())
			return
		}
	}
	userID, role := middleware.Actor(c)

	res, err := h.service.Cancel(c.Request.Context(), userID, role, id, req.Reason)
	if err != nil {
		renderError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, res, "Reserva cancelada")
}

type transitionFunc func(ctx context.Context, actorID int64, role domain.UserRole, id int64) (*domain.Reservation, error)

func (h *Handler) transition(fn transitionFunc, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.ParamID(c, "id")
		if !ok {
			return
		}
		userID, role := middleware.Actor(c)

		res, err := fn(c.Request.Context(), userID, role, id)
		if err != nil {
			renderError(c, err)
			return
		}
		response.SuccessWithMessage(c, http.StatusOK, res, message)
	}
}

func (h *Handler) Arrivals(c *gin.Context) {
	list, err := h.service.Arrivals(c.Request.Context(), c.Query("fecha"))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Departures(c *gin.Context) {
	list, err := h.service.Departures(c.Request.Context(), c.Query("fecha"))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func renderError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, ErrValidation):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de reserva inválidos", err.Error())
	case errs.Is(err, ErrRoomNotAvailable):
		response.Error(c, http.StatusBadRequest, "ROOM_NOT_AVAILABLE", "La habitación no está disponible")
	case errs.Is(err, ErrPriceMismatch):
		response.ErrorWithDetails(c, http.StatusBadRequest, "PRICE_MISMATCH", "El precio total no coincide", err.Error())
	case errs.Is(err, ErrInvalidTransition):
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_TRANSITION", "Cambio de estado no permitido", err.Error())
	case errs.Is(err, ErrUserNotFound), errs.Is(err, repository.ErrReferenced):
		response.Error(c, http.StatusUnauthorized, "USER_NOT_FOUND", "La cuenta ya no existe")
	case errs.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Acción no permitida")
	case errs.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Habitación no encontrada")
	case errs.Is(err, ErrReservationNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reserva no encontrada")
	case errs.Is(err, ErrOverlap), errs.Is(err, ErrRoomTaken), errs.Is(err, repository.ErrMaxRetriesExceeded):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "La habitación ya está reservada para esas fechas")
	default:
		response.Internal(c, err, "Error interno del servidor")
	}
}
