package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel/internal/domain"
	"hotel/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtService := jwt.New("test-secret-123", time.Hour)
	validToken, _ := jwtService.GenerateToken(42, string(domain.RoleOperator))

	router := gin.New()
	router.Use(JWTAuth(jwtService))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": UserID(c),
			"role":    Role(c),
		})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+validToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), "OPERADOR")
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	jwtService := jwt.New("wrong-secret", time.Hour)

	router := gin.New()
	router.Use(JWTAuth(jwtService))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("This handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid-jwt-here")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestJWTAuth_TokenFromOtherSecret(t *testing.T) {
	issued, _ := jwt.New("secret-a", time.Hour).GenerateToken(1, string(domain.RoleGuest))

	router := gin.New()
	router.Use(JWTAuth(jwt.New("secret-b", time.Hour)))
	router.GET("/protected", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issued)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_NoToken(t *testing.T) {
	router := gin.New()
	router.Use(JWTAuth(jwt.New("secret", time.Hour)))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("Should not reach here")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_HEADER_MISSING")
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestJWTAuth_WrongFormat(t *testing.T) {
	router := gin.New()
	router.Use(JWTAuth(jwt.New("secret", time.Hour)))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("Should not reach here")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dGVzdA==")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_AUTH_FORMAT")
}
