package broadcast

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Client - одно открытое websocket-соединение канала реального времени
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	logger *logrus.Logger
	send   chan []byte
}

// NewClient оборачивает websocket-соединение; размер буфера send определяет,
// сколько событий может накопиться для медленного потребителя до пропуска
func NewClient(hub *Hub, conn *websocket.Conn, logger *logrus.Logger, sendBuffer int) *Client {
	if sendBuffer < 1 {
		sendBuffer = 32
	}
	return &Client{
		hub:    hub,
		conn:   conn,
		logger: logger,
		send:   make(chan []byte, sendBuffer),
	}
}

// Start запускает горутины чтения и записи соединения
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}

// readPump выбрасывает входящие кадры (канал только server-push) и
// снимает клиента с регистрации при закрытии или ошибке соединения
func (c *Client) readPump() {
	defer func() {
		c.hub.Deregister(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.WithError(err).Debug("Realtime connection closed unexpectedly")
			}
			return
		}
	}
}

// writePump владеет записью в соединение: события из send и периодические ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
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
