package live

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{
		CheckOrigin: func(*http.Request) bool { return true },
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.ServeWS(conn, "user-1")
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func joinRoom(t *testing.T, conn *websocket.Conn, hub *Hub, restaurantID string, wantSize int) {
	t.Helper()
	msg := map[string]string{"type": "join-restaurant", "restaurant_id": restaurantID}
	require.NoError(t, conn.WriteJSON(msg))
	require.Eventually(t, func() bool {
		return hub.RoomSize(restaurantID) == wantSize
	}, 2*time.Second, 10*time.Millisecond)
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	var ev Event
	require.NoError(t, json.Unmarshal(raw, &ev))
	return ev
}

func TestHub_PublishReachesJoinedSession(t *testing.T) {
	hub := NewHub()
	srv := newTestServer(t, hub)

	conn := dial(t, srv)
	joinRoom(t, conn, hub, "restaurant-1", 1)

	delivered := hub.Publish("restaurant-1", EventNewBooking, map[string]string{"bookingID": "b-1"})
	assert.Equal(t, 1, delivered)

	ev := readEvent(t, conn)
	assert.Equal(t, EventNewBooking, ev.Name)
	payload, ok := ev.Payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "b-1", payload["bookingID"])
}

func TestHub_EmptyRoomIsNoOp(t *testing.T) {
	hub := NewHub()

	delivered := hub.Publish("restaurant-empty", EventNewBooking, nil)
	assert.Equal(t, 0, delivered)
}

func TestHub_NoReplayForLateJoiner(t *testing.T) {
	hub := NewHub()
	srv := newTestServer(t, hub)

	// Event fires while nobody is in the room.
	delivered := hub.Publish("restaurant-1", EventNewBooking, map[string]string{"bookingID": "missed"})
	assert.Equal(t, 0, delivered)

	late := dial(t, srv)
	joinRoom(t, late, hub, "restaurant-1", 1)

	// The late joiner only sees events published after it joined.
	hub.Publish("restaurant-1", EventNewBooking, map[string]string{"bookingID": "fresh"})
	ev := readEvent(t, late)
	payload := ev.Payload.(map[string]any)
	assert.Equal(t, "fresh", payload["bookingID"])
}

func TestHub_RoomsAreIsolated(t *testing.T) {
	hub := NewHub()
	srv := newTestServer(t, hub)

	a := dial(t, srv)
	joinRoom(t, a, hub, "restaurant-a", 1)
	b := dial(t, srv)
	joinRoom(t, b, hub, "restaurant-b", 1)

	delivered := hub.Publish("restaurant-a", EventNewBooking, map[string]string{"bookingID": "for-a"})
	assert.Equal(t, 1, delivered)

	ev := readEvent(t, a)
	assert.Equal(t, "for-a", ev.Payload.(map[string]any)["bookingID"])

	// b must see nothing.
	b.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err := b.ReadMessage()
	assert.Error(t, err)
}

func TestHub_LeaveStopsDelivery(t *testing.T) {
	hub := NewHub()
	srv := newTestServer(t, hub)

	conn := dial(t, srv)
	joinRoom(t, conn, hub, "restaurant-1", 1)

	msg := map[string]string{"type": "leave-restaurant", "restaurant_id": "restaurant-1"}
	require.NoError(t, conn.WriteJSON(msg))
	require.Eventually(t, func() bool {
		return hub.RoomSize("restaurant-1") == 0
	}, 2*time.Second, 10*time.Millisecond)

	delivered := hub.Publish("restaurant-1", EventNewBooking, nil)
	assert.Equal(t, 0, delivered)
}

func TestHub_DisconnectCleansRoom(t *testing.T) {
	hub := NewHub()
	srv := newTestServer(t, hub)

	conn := dial(t, srv)
	joinRoom(t, conn, hub, "restaurant-1", 1)

	conn.Close()
	require.Eventually(t, func() bool {
		return hub.RoomSize("restaurant-1") == 0
	}, 2*time.Second, 10*time.Millisecond)
}
