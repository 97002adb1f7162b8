package notification

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

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/notificaciones")
	{
		g.GET("", h.List)
		g.GET("/no-leidas", h.Unread)
		g.PATCH("/leer-todas", h.MarkAllAsRead)
		g.PATCH("/:id/leer", h.MarkAsRead)
	}
}

// @Summary		Mis notificaciones
// @Tags		Notificaciones
// @Produce		json
// @Param		limit	query	int	false	"máximo (por defecto 20)"
// @Success		200	{object}	map[string]interface{}
// @Security	BearerAuth
// @Router		/notificaciones [GET]
func (h *Handler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), middleware.UserID(c), httpx.Limit(c))
	if err != nil {
		response.Internal(c, err, "No se pudieron obtener las notificaciones")
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Unread(c *gin.Context) {
	n, err := h.service.UnreadCount(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Internal(c, err, "No se pudo contar")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"noLeidas": n})
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), middleware.UserID(c), id); err != nil {
		if errs.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notificación no encontrada")
			return
		}
		response.Internal(c, err, "No se pudo actualizar")
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, gin.H{"id": id, "leida": true}, "Notificación leída")
}

func (h *Handler) MarkAllAsRead(c *gin.Context) {
	n, err := h.service.MarkAllAsRead(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Internal(c, err, "No se pudo actualizar")
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, gin.H{"actualizadas": n}, "Notificaciones leídas")
}
