package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	router := gin.New()
	router.Use(RequestID(log), RequestLogger(log))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/bad", "/boom"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
}

func TestRequestID_PropagatesHeader(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(zap.NewNop()))
	router.GET("/", func(c *gin.Context) {
		assert.NotNil(t, logger.FromContext(c.Request.Context()))
		c.String(http.StatusOK, GetRequestID(c))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get(HeaderRequestID), 36)
}

func TestRecovery_ReturnsEnvelope(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)

	router := gin.New()
	router.Use(Recovery(zap.New(core)))
	router.GET("/", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}
