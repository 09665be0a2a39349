package broadcast

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Hub владеет реестром открытых websocket-соединений и рассылает
// события каждому из них. Реестр мутируется только внутри цикла Run,
// поэтому доступ к clients не требует блокировок.
type Hub struct {
	logger *logrus.Logger

	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
}

// NewHub создает новый Hub; цикл доставки запускается отдельно через Run
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		logger:     logger,
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
	}
}

// Run обрабатывает регистрацию, отключение и рассылку до отмены контекста
func (h *Hub) Run(ctx context.Context) {
	h.logger.Info("Starting broadcast hub...")
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("Stopping broadcast hub.")
			close(h.done)
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.logger.WithField("clients", len(h.clients)).Info("Client connected to realtime channel")
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.WithField("clients", len(h.clients)).Info("Client disconnected from realtime channel")
			}
		case payload := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- payload:
				default:
					// Медленный или мертвый потребитель не должен задерживать остальных:
					// событие для него молча пропускается, без повтора и без очереди.
					h.logger.Debug("Dropping event for slow realtime client")
				}
			}
		}
	}
}

// Register добавляет соединение в реестр. После остановки цикла
// доставки вызов возвращается сразу, не блокируя горутину соединения
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

// Deregister убирает соединение из реестра; вызывается по сигналу
// закрытия или ошибки самого соединения
func (h *Hub) Deregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Publish сериализует событие один раз и передает его в цикл доставки.
// Ошибки доставки отдельным соединениям не возвращаются вызывающему.
func (h *Hub) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal broadcast event: %w", err)
	}

	select {
	case h.broadcast <- payload:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}
