package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shenikar/crisis_coordination_system/internal/broadcast"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// @Summary Upgrade to the realtime channel
// @Description Upgrade the connection to websocket; the server pushes {kind, data} payloads for every mutation
// @Tags Realtime
// @Success 101 "Switching Protocols"
// @Failure 400 {object} map[string]string "Upgrade failed"
// @Router /ws [get]
func (h *Handler) serveWS(c *gin.Context) {
	log := h.logger.WithField("method", "serveWS")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Failed to upgrade websocket connection")
		return
	}

	client := broadcast.NewClient(h.hub, conn, h.logger, h.cfg.WSSendBuffer)
	h.hub.Register(client)
	client.Start()
}
