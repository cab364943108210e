package websocket

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/curricuforge/internal/middleware"
)

// SessionLookup resolves a session ID to its canonical form, or returns the
// error to send when the session does not exist
type SessionLookup func(sessionID string) (string, error)

// Handler for WebSocket connections
type Handler struct {
	hub    *Hub
	lookup SessionLookup
	logger zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, lookup SessionLookup, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		lookup: lookup,
		logger: logger,
	}
}

// HandleConnection godoc
// @Summary Subscribe to session events
// @Description Upgrades the connection to a WebSocket that receives one JSON event per state change of the session (navigation, generation start and finish, edits)
// @Tags sessions, websocket
// @Param id path string true "Session ID"
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/events [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	sessionID, err := h.lookup(c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	// Upgrade HTTP connection to WebSocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("session_id", sessionID).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:       h.hub,
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
		sessionID: sessionID,
		logger:    h.logger,
	}
	if !h.hub.subscribe(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Str("session_id", sessionID).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")
}
