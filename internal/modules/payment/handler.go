package payment

import (
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
	protected.POST("/pagos", h.Create)
	protected.GET("/pagos/:id", h.Get)
}

func (h *Handler) RegisterStaffRoutes(staff *gin.RouterGroup) {
	staff.GET("/pagos", h.List)
}

// Create pays a reservation in full.
// @Summary		Registrar pago
// @Description	Registra el pago completo de una reserva. Una reserva PENDIENTE queda CONFIRMADA.
// @Tags		Pagos
// @Accept		json
// @Produce		json
// @Param		request	body	CreatePaymentRequest	true	"reservaId, metodo, referencia"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Reserva cancelada o ya pagada"
// @Failure		404	{object}	map[string]interface{}	"Reserva no encontrada"
// @Security	BearerAuth
// @Router		/pagos [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de pago inválidos", err.Error())
		return
	}
	userID, role := middleware.Actor(c)

	p, err := h.service.Create(c.Request.Context(), userID, role, req)
	if err != nil {
		renderError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, p, "Pago registrado")
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}
	userID, role := middleware.Actor(c)

	p, err := h.service.Get(c.Request.Context(), userID, role, id)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) List(c *gin.Context) {
	limit, offset := httpx.Page(c)

	result, err := h.service.List(c.Request.Context(), domain.PaymentStatus(c.Query("estado")), limit, offset)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

func renderError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, ErrValidation):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de pago inválidos", err.Error())
	case errs.Is(err, ErrReservationClosed):
		response.Error(c, http.StatusBadRequest, "RESERVATION_CLOSED", "La reserva está cancelada o no presentada")
	case errs.Is(err, ErrAlreadyPaid):
		response.Error(c, http.StatusBadRequest, "ALREADY_PAID", "La reserva ya tiene un pago registrado")
	case errs.Is(err, ErrReservationNotFound):
		response.Error(c, http.StatusNotFound, "RESERVATION_NOT_FOUND", "Reserva no encontrada")
	case errs.Is(err, ErrPaymentNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Pago no encontrado")
	case errs.Is(err, repository.ErrReferenced):
		response.Error(c, http.StatusUnauthorized, "USER_NOT_FOUND", "La cuenta ya no existe")
	default:
		response.Internal(c, err, "Error interno del servidor")
	}
}
