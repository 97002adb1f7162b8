package invoice

import (
	"bytes"
	"net/http"

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
	inv := protected.Group("/facturas")
	{
		inv.POST("", h.Generate)
		inv.GET("/:id", h.Get)
		inv.GET("/:id/pdf", h.PDF)
	}
}

func (h *Handler) RegisterStaffRoutes(staff *gin.RouterGroup) {
	staff.GET("/facturas", h.List)
}

// Generate issues the invoice of a completed payment.
// @Summary		Generar factura
// @Tags		Facturas
// @Accept		json
// @Produce		json
// @Param		request	body	GenerateRequest	true	"pagoId"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Pago no completado o ya facturado"
// @Failure		404	{object}	map[string]interface{}	"Pago no encontrado"
// @Security	BearerAuth
// @Router		/facturas [POST]
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "pagoId requerido", err.Error())
		return
	}
	userID, role := middleware.Actor(c)

	inv, err := h.service.Generate(c.Request.Context(), userID, role, req.PaymentID)
	if err != nil {
		renderError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, inv, "Factura emitida")
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}
	userID, role := middleware.Actor(c)

	inv, err := h.service.Get(c.Request.Context(), userID, role, id)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, inv)
}

func (h *Handler) List(c *gin.Context) {
	limit, offset := httpx.Page(c)

	result, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// PDF streams the printable invoice.
// @Summary		Factura en PDF
// @Tags		Facturas
// @Produce		application/pdf
// @Param		id	path	int	true	"ID de factura"
// @Success		200	{file}	binary
// @Failure		404	{object}	map[string]interface{}
// @Security	BearerAuth
// @Router		/facturas/{id}/pdf [GET]
func (h *Handler) PDF(c *gin.Context) {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}
	userID, role := middleware.Actor(c)

	inv, err := h.service.Get(c.Request.Context(), userID, role, id)
	if err != nil {
		renderError(c, err)
		return
	}

	// render into a buffer so a failure can still produce a JSON error
	var buf bytes.Buffer
	if err := RenderPDF(&buf, inv, h.service.Settings()); err != nil {
		response.Internal(c, err, "No se pudo generar el PDF")
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+inv.Number+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func renderError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, ErrPaymentNotCompleted):
		response.Error(c, http.StatusBadRequest, "PAYMENT_NOT_COMPLETED", "El pago no está completado")
	case errs.Is(err, ErrAlreadyInvoiced):
		response.Error(c, http.StatusBadRequest, "ALREADY_INVOICED", "El pago ya tiene factura")
	case errs.Is(err, ErrPaymentNotFound):
		response.Error(c, http.StatusNotFound, "PAYMENT_NOT_FOUND", "Pago no encontrado")
	case errs.Is(err, ErrInvoiceNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Factura no encontrada")
	case errs.Is(err, repository.ErrReferenced):
		response.Error(c, http.StatusUnauthorized, "USER_NOT_FOUND", "La cuenta ya no existe")
	default:
		response.Internal(c, err, "Error interno del servidor")
	}
}
