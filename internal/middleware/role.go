package middleware

import (
	"net/http"

	"hotel/internal/domain"
	"hotel/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole lets the request through when the caller has any of roles.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ctxRole)
		if !exists {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Rol no encontrado en el token")
			return
		}

		current := domain.UserRole(role.(string))
		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}

		response.AbortError(c, http.StatusForbidden, "FORBIDDEN", "Acceso denegado: permisos insuficientes")
	}
}

func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}

// StaffOnly admits operators and administrators.
func StaffOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleOperator, domain.RoleAdmin)
}
