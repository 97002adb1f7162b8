package admin

import (
	"net/http"

	"hotel/internal/middleware"
	"hotel/internal/modules/auth"
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

// RegisterRoutes mounts the back office under a group already restricted
// to ADMINISTRADOR.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	g := admin.Group("/admin")
	{
		// Users
		g.GET("/usuarios", h.GetUsers)
		g.PATCH("/usuarios/:id/rol", h.ChangeRole)
		g.DELETE("/usuarios/:id", h.DeleteUser)

		// Dashboard
		g.GET("/estadisticas", h.GetStatistics)
		g.GET("/actividades", h.GetActivities)
	}
}

// -------------------- Users --------------------

// GetUsers lists accounts.
// @Summary		Listar usuarios
// @Tags		Admin
// @Produce		json
// @Param		rol		query	string	false	"USUARIO, OPERADOR, ADMINISTRADOR"
// @Param		limit	query	int		false	"por defecto 20"
// @Param		offset	query	int		false	"desplazamiento"
// @Success		200	{object}	UserListResponse
// @Failure		400	{object}	map[string]interface{}
// @Failure		403	{object}	map[string]interface{}
// @Security	BearerAuth
// @Router		/admin/usuarios [GET]
func (h *Handler) GetUsers(c *gin.Context) {
	var filter UserListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Filtros inválidos", err.Error())
		return
	}
	limit, offset := httpx.Page(c)

	users, total, err := h.service.ListUsers(c.Request.Context(), filter.Role, limit, offset)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, UserListResponse{
		Users:  auth.ToPublicList(users),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// ChangeRole promotes or demotes a user.
// @Summary		Cambiar rol
// @Tags		Admin
// @Accept		json
// @Produce		json
// @Param		id		path	int					true	"ID de usuario"
// @Param		request	body	UpdateRoleRequest	true	"rol"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}
// @Security	BearerAuth
// @Router		/admin/usuarios/{id}/rol [PATCH]
func (h *Handler) ChangeRole(c *gin.Context) {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "rol requerido", err.Error())
		return
	}

	u, err := h.service.ChangeRole(c.Request.Context(), middleware.UserID(c), id, req.Role)
	if err != nil {
		renderError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, auth.ToPublic(u), "Rol actualizado")
}

// @Summary		Eliminar usuario
// @Tags		Admin
// @Param		id	path	int	true	"ID de usuario"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Tiene reservas o es el propio administrador"
// @Failure		404	{object}	map[string]interface{}
// @Security	BearerAuth
// @Router		/admin/usuarios/{id} [DELETE]
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), middleware.UserID(c), id); err != nil {
		renderError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, gin.H{"id": id}, "Usuario eliminado")
}

// -------------------- Dashboard --------------------

// GetStatistics returns the dashboard counters.
// @Summary		Estadísticas
// @Tags		Admin
// @Produce		json
// @Success		200	{object}	Statistics
// @Security	BearerAuth
// @Router		/admin/estadisticas [GET]
func (h *Handler) GetStatistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// @Summary		Registro de actividad
// @Tags		Admin
// @Produce		json
// @Param		limit	query	int		false	"por defecto 50"
// @Param		entidad	query	string	false	"reserva, habitacion, pago, factura, contacto, usuario"
// @Success		200	{object}	map[string]interface{}
// @Security	BearerAuth
// @Router		/admin/actividades [GET]
func (h *Handler) GetActivities(c *gin.Context) {
	var q ActivityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Filtros inválidos", err.Error())
		return
	}

	list, err := h.service.Activities(c.Request.Context(), q)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func renderError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, ErrUnknownRoleName):
		response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "Rol inválido")
	case errs.Is(err, ErrUnknownEntity):
		response.Error(c, http.StatusBadRequest, "INVALID_ENTITY", "Entidad inválida")
	case errs.Is(err, ErrSelfChange):
		response.Error(c, http.StatusBadRequest, "SELF_CHANGE", "No puede modificar su propia cuenta")
	case errs.Is(err, ErrUserHasHistory):
		response.Error(c, http.StatusBadRequest, "USER_HAS_RESERVATIONS", "El usuario tiene reservas registradas")
	case errs.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Usuario no encontrado")
	default:
		response.Internal(c, err, "Error interno del servidor")
	}
}
