package handler

import (
	"net/http"

	"devblogg/backend/internal/apperr"
	"devblogg/backend/internal/modfeed"
	"devblogg/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten for production!
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeModerationFeed upgrades the connection and streams moderation events
// to a dashboard session. Moderators and admins only.
func (h *Handler) ServeModerationFeed(c *gin.Context) {
	principal := principalFrom(c)
	if !principal.CanModerate() {
		writeError(c, apperr.New(apperr.KindForbidden, "moderator or admin role required"))
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &modfeed.WebSocketClient{
		ID:   principal.UserID + ":" + uuid.New().String(),
		Hub:  h.Hub,
		Conn: conn,
		Send: make(chan models.ModerationEvent, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
