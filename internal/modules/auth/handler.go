package auth

import (
	"net/http"

	"hotel/internal/middleware"
	"hotel/internal/pkg/errs"
	"hotel/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/registro", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	me := protected.Group("/auth")
	{
		me.GET("/me", h.GetMe)
		me.PUT("/me", h.UpdateMe)
	}
}

// Register creates a guest account.
// @Summary		Registrar usuario
// @Description	Crea una cuenta con rol USUARIO y devuelve un token JWT.
// @Tags		Autenticación
// @Accept		json
// @Produce		json
// @Param		request	body	RegisterRequest	true	"nombre, email, password, telefono"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}
// @Failure		409	{object}	map[string]interface{}
// @Router		/auth/registro [POST]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de registro inválidos", err.Error())
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, AuthResponse{
		Token: result.Token,
		User:  ToPublic(result.User),
	}, "Usuario registrado")
}

// Login exchanges credentials for a token.
// @Summary		Iniciar sesión
// @Tags		Autenticación
// @Accept		json
// @Produce		json
// @Param		request	body	LoginRequest	true	"email y password"
// @Success		200	{object}	map[string]interface{}
// @Failure		401	{object}	map[string]interface{}
// @Router		/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de acceso inválidos", err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, AuthResponse{
		Token: result.Token,
		User:  ToPublic(result.User),
	})
}

func (h *Handler) GetMe(c *gin.Context) {
	user, err := h.service.Me(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToPublic(user))
}

func (h *Handler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de perfil inválidos", err.Error())
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, ToPublic(user), "Perfil actualizado")
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, ErrEmailAlreadyExists):
		response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "El email ya está registrado")
	case errs.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email o contraseña incorrectos")
	case errs.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Usuario no encontrado")
	default:
		response.Internal(c, err, "Error interno del servidor")
	}
}
