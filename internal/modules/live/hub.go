package live

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

// Event is a real-time event pushed to dashboard sessions.
type Event struct {
	Name    string `json:"event"`
	Payload any    `json:"payload,omitempty"`
}

const EventNewBooking = "new-booking"

// session represents a single connected dashboard client.
type session struct {
	userID string
	conn   *websocket.Conn
	send   chan []byte
	rooms  map[string]bool // joined restaurant IDs
}

// Hub manages all active dashboard connections, grouped into
// restaurant-scoped rooms. Membership is process-local and ephemeral;
// nothing is buffered or replayed for late joiners.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*session]bool
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*session]bool),
	}
}

func (h *Hub) joinRoom(roomID string, s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*session]bool)
	}
	h.rooms[roomID][s] = true
	s.rooms[roomID] = true
}

func (h *Hub) leaveRoom(roomID string, s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if members, ok := h.rooms[roomID]; ok {
		delete(members, s)
		if len(members) == 0 {
			delete(h.rooms, roomID)
		}
	}
	delete(s.rooms, roomID)
}

func (h *Hub) unregister(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for roomID := range s.rooms {
		if members, ok := h.rooms[roomID]; ok {
			delete(members, s)
			if len(members) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}
	close(s.send)
}

// Publish delivers an event to every session currently joined to the
// restaurant's room. At-most-once: sessions with a full send buffer are
// skipped, an empty room is a no-op. Returns the number of sessions the
// event was queued for.
func (h *Hub) Publish(restaurantID, event string, payload any) int {
	data, err := json.Marshal(Event{Name: event, Payload: payload})
	if err != nil {
		return 0
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for s := range h.rooms[restaurantID] {
		select {
		case s.send <- data:
			delivered++
		default:
			// Client too slow — skip
		}
	}
	return delivered
}

// RoomSize reports how many sessions are joined to a restaurant's room.
func (h *Hub) RoomSize(restaurantID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[restaurantID])
}

// ServeWS runs the read/write loops for an upgraded connection. Blocks
// until the client disconnects.
func (h *Hub) ServeWS(conn *websocket.Conn, userID string) {
	s := &session{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 64),
		rooms:  make(map[string]bool),
	}

	go h.writePump(s)
	h.readPump(s)
}

// clientMessage is what dashboard clients send upstream: room membership
// changes and keepalive pings.
type clientMessage struct {
	Type         string `json:"type"`
	RestaurantID string `json:"restaurant_id"`
}

func (h *Hub) readPump(s *session) {
	defer func() {
		h.unregister(s)
		s.conn.Close()
	}()

	s.conn.SetReadLimit(maxMsgSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}

		switch msg.Type {
		case "join-restaurant":
			if msg.RestaurantID != "" {
				h.joinRoom(msg.RestaurantID, s)
			}
		case "leave-restaurant":
			if msg.RestaurantID != "" {
				h.leaveRoom(msg.RestaurantID, s)
			}
		}
	}
}

func (h *Hub) writePump(s *session) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case data, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
