// Package broadcast propagates activation events to other windows over
// websockets.
package broadcast

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/openworkbench/themed/internal/logging"
)

// Message is one broadcast envelope.
type Message struct {
	Channel string      `json:"channel"`
	Payload interface{} `json:"payload"`
}

// conn wraps a websocket connection with its own write mutex.
type conn struct {
	id string
	ws *websocket.Conn
	mu sync.Mutex
}

// Hub fans messages out to every connected window.
type Hub struct {
	logger   zerolog.Logger
	upgrader websocket.Upgrader

	mu    sync.RWMutex
	conns map[string]*conn
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		logger: logging.Component("broadcast"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		conns: make(map[string]*conn),
	}
}

// ServeHTTP upgrades the request and keeps the connection registered
// until the peer disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := &conn{id: uuid.New().String(), ws: ws}
	h.mu.Lock()
	h.conns[c.id] = c
	h.mu.Unlock()
	h.logger.Debug().Str("conn", c.id).Msg("window connected")

	defer func() {
		h.remove(c.id)
		ws.Close()
		h.logger.Debug().Str("conn", c.id).Msg("window disconnected")
	}()

	// Drain the read side to notice disconnects.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast sends the message to every connected window. Dead
// connections are dropped on write failure.
func (h *Hub) Broadcast(channel string, payload interface{}) {
	msg := Message{Channel: channel, Payload: payload}

	h.mu.RLock()
	conns := make([]*conn, 0, len(h.conns))
	for _, c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		c.mu.Lock()
		err := c.ws.WriteJSON(msg)
		c.mu.Unlock()
		if err != nil {
			h.logger.Debug().Str("conn", c.id).Err(err).Msg("dropping dead connection")
			h.remove(c.id)
		}
	}
}

// Count returns the number of connected windows.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, id)
}
