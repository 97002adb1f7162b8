package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel/internal/middleware"
	"hotel/internal/pkg/jwt"
	"hotel/internal/repository"
	"hotel/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	tokens := jwt.New("test-secret", time.Hour)
	svc := NewService(repository.NewUserRepository(db), tokens, nil)
	svc.bcryptCost = bcrypt.MinCost
	h := NewHandler(svc)

	r := gin.New()
	api := r.Group("/api")
	h.RegisterPublicRoutes(api)
	protected := api.Group("")
	protected.Use(middleware.JWTAuth(tokens))
	h.RegisterProtectedRoutes(protected)
	return r
}

func doJSONRequest(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_RegisterLoginMe(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSONRequest(r, http.MethodPost, "/api/auth/registro", "", gin.H{
		"nombre": "Lucia", "email": "lucia@hotel.test", "password": "secret123", "telefono": "555",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")

	w = doJSONRequest(r, http.MethodPost, "/api/auth/registro", "", gin.H{
		"nombre": "Lucia", "email": "LUCIA@hotel.test", "password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSONRequest(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "lucia@hotel.test", "password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSONRequest(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "lucia@hotel.test", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data AuthResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.Token)

	w = doJSONRequest(r, http.MethodGet, "/api/auth/me", body.Data.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rol":"USUARIO"`)

	w = doJSONRequest(r, http.MethodPut, "/api/auth/me", body.Data.Token, gin.H{"nombre": "Lucía M"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Lucía M")
}

func TestHandler_RegisterValidation(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSONRequest(r, http.MethodPost, "/api/auth/registro", "", gin.H{
		"nombre": "Lu", "email": "not-an-email", "password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}
