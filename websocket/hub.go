package websocket

import (
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/jsarmiento/globetrotter/internal/game"
)

// Hub tracks spectator connections per game session and fans game events
// out to them. It implements game.Notifier.
type Hub struct {
	mu    sync.Mutex
	conns map[string]map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]map[*websocket.Conn]struct{})}
}

func (h *Hub) Register(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conns[sessionID] == nil {
		h.conns[sessionID] = make(map[*websocket.Conn]struct{})
	}
	h.conns[sessionID][conn] = struct{}{}
}

func (h *Hub) Unregister(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if set, ok := h.conns[sessionID]; ok {
		delete(set, conn)
		if len(set) == 0 {
			delete(h.conns, sessionID)
		}
	}
}

// Publish sends msg to every spectator of the session. Writes happen under
// the hub lock; a failed write drops that connection.
func (h *Hub) Publish(sessionID string, msg game.GameMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns[sessionID] {
		if err := conn.WriteJSON(msg); err != nil {
			slog.Warn("spectator write failed", "session", sessionID, "error", err)
			conn.Close()
			delete(h.conns[sessionID], conn)
		}
	}
}
