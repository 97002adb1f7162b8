package middleware

import (
	"hotel/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderRequestID = "X-Request-ID"
	ctxRequestID    = "request_id"
)

// RequestID propagates or generates a request id and attaches a request
// scoped logger to the request context.
func RequestID(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(HeaderRequestID, id)

		reqLog := log.With(zap.String("request_id", id))
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), reqLog))
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestID)
}
