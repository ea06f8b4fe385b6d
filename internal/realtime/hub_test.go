package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	hub := NewHub(nil, log)
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) domain.Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var e domain.Event
	require.NoError(t, json.Unmarshal(msg, &e))
	return e
}

func TestHub_BroadcastsEvents(t *testing.T) {
	hub, srv := newTestHub(t)
	conn := dial(t, srv, "")
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	err := hub.Deliver(context.Background(), domain.Event{
		Name:       domain.EventBookingCreated,
		CourtID:    "court-a",
		BookingIDs: []string{"b-1"},
	})
	require.NoError(t, err)

	e := readEvent(t, conn)
	assert.Equal(t, domain.EventBookingCreated, e.Name)
	assert.Equal(t, []string{"b-1"}, e.BookingIDs)
}

func TestHub_FiltersByCourt(t *testing.T) {
	hub, srv := newTestHub(t)
	conn := dial(t, srv, "?court_id=court-a")
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Deliver(context.Background(), domain.Event{Name: domain.EventBookingCreated, CourtID: "court-b"}))
	require.NoError(t, hub.Deliver(context.Background(), domain.Event{Name: domain.EventBookingUpdated, CourtID: "court-a"}))

	e := readEvent(t, conn)
	assert.Equal(t, domain.EventBookingUpdated, e.Name)
	assert.Equal(t, "court-a", e.CourtID)
}

func TestHub_DropsDisconnectedClients(t *testing.T) {
	hub, srv := newTestHub(t)
	conn := dial(t, srv, "")
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, 10*time.Millisecond)
}
