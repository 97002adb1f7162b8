package notification

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
	sendBuffer = 32
)

const EventNotification = "notificacion"

// Event is what the hub writes to a socket.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type client struct {
	userID int64
	conn   *websocket.Conn
	send   chan []byte
}

// Hub tracks live sockets per user. A user may hold several (one per tab).
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[*client]struct{}
	closed  bool
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		clients: make(map[int64]map[*client]struct{}),
		log:     log,
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	set, ok := h.clients[c.userID]
	if !ok {
		set = make(map[*client]struct{})
		h.clients[c.userID] = set
	}
	set[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.userID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.clients, c.userID)
	}
}

// Push queues evt on every socket of userID and returns how many accepted it.
// A socket whose buffer is full misses this event but stays connected.
func (h *Hub) Push(userID int64, evt Event) int {
	data, err := json.Marshal(evt)
	if err != nil {
		h.log.Warn("marshal ws event", zap.Error(err))
		return 0
	}

	delivered := 0
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		select {
		case c.send <- data:
			delivered++
		default:
			h.log.Warn("websocket buffer full, event dropped",
				zap.Int64("user_id", c.userID), zap.String("type", evt.Type))
		}
	}
	return delivered
}

// Online returns the number of open sockets of userID.
func (h *Hub) Online(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Serve runs the socket until the peer goes away. It blocks.
func (h *Hub) Serve(conn *websocket.Conn, userID int64) {
	c := &client{userID: userID, conn: conn, send: make(chan []byte, sendBuffer)}
	if !h.register(c) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"), time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}
	h.log.Debug("websocket connected", zap.Int64("user_id", userID))

	go h.writePump(c)
	h.readPump(c)
}

// readPump only services control frames; clients never send data we act on.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
		h.log.Debug("websocket disconnected", zap.Int64("user_id", c.userID))
	}()

	c.conn.SetReadLimit(maxMsgSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("websocket read", zap.Int64("user_id", c.userID), zap.Error(err))
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Close disconnects every socket and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for userID, set := range h.clients {
		for c := range set {
			close(c.send)
		}
		delete(h.clients, userID)
	}
}
