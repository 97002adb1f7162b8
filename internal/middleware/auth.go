package middleware

import (
	"net/http"
	"strings"

	"hotel/internal/domain"
	"hotel/internal/pkg/jwt"
	"hotel/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// JWTAuth requires a valid "Authorization: Bearer <token>" header and stores
// user_id and role on the gin context.
func JWTAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortError(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Se requiere autenticación")
			return
		}
		token := bearerToken(header)
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Formato de autorización inválido")
			return
		}

		claims, err := tokens.ValidateToken(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "INVALID_TOKEN", "Token inválido o expirado")
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

func bearerToken(h string) string {
	if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

func UserID(c *gin.Context) int64 {
	return c.GetInt64(ctxUserID)
}

func Role(c *gin.Context) domain.UserRole {
	return domain.UserRole(c.GetString(ctxRole))
}

// Actor bundles the caller identity passed down to services.
func Actor(c *gin.Context) (int64, domain.UserRole) {
	return UserID(c), Role(c)
}
