package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // local UI connections
	},
}

// eventsInterval is the state push rate, fast enough that the countdown
// display never appears to skip a second.
const eventsInterval = 250 * time.Millisecond

// EventsHandler pushes game state snapshots to connected WebSocket clients
// so the UI does not need to poll /api/state.
type EventsHandler struct {
	state   func() map[string]any
	log     zerolog.Logger
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewEventsHandler creates an EventsHandler around a state snapshot
// function and starts its broadcast loop.
func NewEventsHandler(state func() map[string]any, log zerolog.Logger) *EventsHandler {
	h := &EventsHandler{
		state:   state,
		log:     log,
		clients: make(map[*websocket.Conn]bool),
	}
	go h.broadcast()
	return h
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep the connection alive by draining client messages.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// broadcast sends the current state to all connected clients on a fixed
// interval.
func (h *EventsHandler) broadcast() {
	ticker := time.NewTicker(eventsInterval)
	defer ticker.Stop()

	for range ticker.C {
		h.mu.RLock()
		empty := len(h.clients) == 0
		h.mu.RUnlock()
		if empty {
			continue
		}

		payload := h.state()
		payload["timestamp"] = time.Now().UnixMilli()

		h.mu.RLock()
		for conn := range h.clients {
			if err := conn.WriteJSON(payload); err != nil {
				h.log.Debug().Err(err).Msg("websocket write")
			}
		}
		h.mu.RUnlock()
	}
}
