package broadcast

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// newTestHub поднимает хаб и websocket-сервер, регистрирующий каждое соединение
func newTestHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	hub := NewHub(logger)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		client := NewClient(hub, conn, logger, 8)
		hub.Register(client)
		client.Start()
	}))

	t.Cleanup(func() {
		cancel()
		server.Close()
	})
	return hub, server
}

func dialTestHub(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(payload, &event))
	return event
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	// Подготовка: два открытых соединения
	hub, server := newTestHub(t)
	first := dialTestHub(t, server)
	defer first.Close()
	second := dialTestHub(t, server)
	defer second.Close()

	// Даем хабу зарегистрировать оба соединения
	time.Sleep(100 * time.Millisecond)

	// Действие
	err := hub.Publish(context.Background(), Event{
		Kind: EventMessageCreated,
		Data: map[string]any{"content": "Emergency shelter established"},
	})
	require.NoError(t, err)

	// Проверки: оба соединения получают одинаковое событие
	firstEvent := readEvent(t, first)
	secondEvent := readEvent(t, second)
	assert.Equal(t, EventMessageCreated, firstEvent.Kind)
	assert.Equal(t, firstEvent, secondEvent)
}

func TestHub_ClosedClientDoesNotBlockOthers(t *testing.T) {
	// Подготовка: два соединения, одно закрывается до публикации
	hub, server := newTestHub(t)
	first := dialTestHub(t, server)
	second := dialTestHub(t, server)
	defer second.Close()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, first.Close())
	time.Sleep(100 * time.Millisecond)

	// Действие
	err := hub.Publish(context.Background(), Event{
		Kind: EventIncidentCreated,
		Data: map[string]any{"title": "Flood"},
	})
	require.NoError(t, err)

	// Проверки: живое соединение все равно получает событие
	event := readEvent(t, second)
	assert.Equal(t, EventIncidentCreated, event.Kind)
}

func TestHub_FullBufferDropsSilently(t *testing.T) {
	// Подготовка: медленный потребитель с буфером на одно событие
	// и быстрый с запасом; насосы соединений не запускаются,
	// чтобы буферы никто не вычитывал
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	hub := NewHub(logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	slow := &Client{hub: hub, logger: logger, send: make(chan []byte, 1)}
	fast := &Client{hub: hub, logger: logger, send: make(chan []byte, 8)}
	hub.Register(slow)
	hub.Register(fast)

	// Действие: событий больше, чем вмещает буфер медленного
	for i := 0; i < 3; i++ {
		require.NoError(t, hub.Publish(ctx, Event{
			Kind: EventMessageCreated,
			Data: map[string]any{"seq": i},
		}))
	}
	time.Sleep(100 * time.Millisecond)

	// Проверки: лишние события для медленного пропущены,
	// быстрый получил все без задержки
	assert.Len(t, slow.send, 1)
	assert.Len(t, fast.send, 3)
}

func TestHub_RegisterAfterShutdownDoesNotBlock(t *testing.T) {
	// Подготовка: цикл доставки уже остановлен
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	hub := NewHub(logger)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	cancel()
	time.Sleep(50 * time.Millisecond)

	// Действие: регистрация и снятие с регистрации после остановки
	returned := make(chan struct{})
	go func() {
		client := &Client{hub: hub, logger: logger, send: make(chan []byte, 1)}
		hub.Register(client)
		hub.Deregister(client)
		close(returned)
	}()

	// Проверки: вызовы возвращаются, горутина соединения не зависает
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Register/Deregister blocked after hub shutdown")
	}
}

func TestHub_PublishUnmarshalableData(t *testing.T) {
	// Подготовка
	hub, _ := newTestHub(t)

	// Действие: данные, которые невозможно сериализовать в JSON
	err := hub.Publish(context.Background(), Event{
		Kind: EventIncidentCreated,
		Data: make(chan int),
	})

	// Проверки
	require.Error(t, err)
}
