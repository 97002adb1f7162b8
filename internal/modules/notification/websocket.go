package notification

import (
	"net/http"
	"slices"

	"hotel/internal/middleware"
	"hotel/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WSHandler upgrades GET /ws?token=<jwt>. Browsers cannot set headers on a
// websocket handshake, so the token travels in the query string.
type WSHandler struct {
	hub      *Hub
	tokens   middleware.TokenValidator
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func NewWSHandler(hub *Hub, tokens middleware.TokenValidator, allowedOrigins []string, log *zap.Logger) *WSHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &WSHandler{
		hub:    hub,
		tokens: tokens,
		log:    log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

func (h *WSHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/ws", h.Serve)
}

func (h *WSHandler) Serve(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "AUTH_TOKEN_MISSING", "Use ?token=<jwt>")
		return
	}
	claims, err := h.tokens.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Token inválido o expirado")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		h.log.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	h.hub.Serve(conn, claims.UserID)
}
