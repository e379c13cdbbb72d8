// Package dashboard serves a websocket endpoint that broadcasts telemetry
// snapshots to connected desktop-dashboard clients.
package dashboard

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub tracks connected dashboard clients and fans out telemetry snapshots
// to all of them.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewHub constructs an empty Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// ServeWS upgrades the request to a websocket connection and registers it
// for broadcasts. The connection is read from (and discarded) only to
// detect disconnects; the dashboard protocol is server-to-client only.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("dashboard: websocket upgrade: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[ws] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, ws)
		h.mu.Unlock()
		ws.Close()
	}()

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}
}

// Broadcast marshals snapshot and sends it to every connected client,
// dropping any client whose write fails.
func (h *Hub) Broadcast(snapshot json.Marshaler) {
	payload, err := snapshot.MarshalJSON()
	if err != nil {
		log.Printf("dashboard: marshal telemetry: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("dashboard: write to client: %v", err)
			client.Close()
			delete(h.clients, client)
		}
	}
}
