package websocket

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/jsarmiento/globetrotter/internal/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	hub   *Hub
	games *game.GameService
}

func NewHandler(hub *Hub, games *game.GameService) *Handler {
	return &Handler{hub: hub, games: games}
}

// Serve upgrades a spectator connection for the shared game identified by
// the shareCode query parameter. The client receives a snapshot on connect
// followed by ROUND_RESULT and GAME_ENDED events.
func (h *Handler) Serve(c echo.Context) error {
	shareCode := c.QueryParam("shareCode")
	if shareCode == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "shareCode is required")
	}

	shared, err := h.games.GetSharedGame(shareCode)
	if err != nil {
		return err
	}

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return err
	}

	h.hub.Register(shared.ID, ws)
	slog.Info("spectator connected", "session", shared.ID)

	if err := ws.WriteJSON(game.GameMessage{Type: "GAME_SNAPSHOT", Payload: shared}); err != nil {
		h.hub.Unregister(shared.ID, ws)
		ws.Close()
		return nil
	}

	go h.listen(shared.ID, ws)
	return nil
}

// listen drains the connection until the spectator goes away; clients are
// not expected to send anything.
func (h *Handler) listen(sessionID string, conn *websocket.Conn) {
	defer func() {
		slog.Info("spectator disconnected", "session", sessionID)
		h.hub.Unregister(sessionID, conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
