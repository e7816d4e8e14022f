package transport

import (
	"encoding/json"
	"log"
	"sync"

	"GymSimulator/internal/view"
)

// sendBuffer is how many outbound messages a slow client may lag behind.
const sendBuffer = 64

type serverMessage struct {
	Type     string         `json:"type"`
	Snapshot *view.Snapshot `json:"snapshot,omitempty"`
	Notice   *view.Notice   `json:"notice,omitempty"`
}

type client struct {
	send chan []byte
}

// Hub fans snapshots and notices out to every connected client. It is the
// game's Presenter.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*client]struct{})}
}

// Render broadcasts a snapshot.
func (h *Hub) Render(s view.Snapshot) {
	h.broadcast(serverMessage{Type: "snapshot", Snapshot: &s})
}

// Notify broadcasts a transient notice.
func (h *Hub) Notify(n view.Notice) {
	h.broadcast(serverMessage{Type: "notice", Notice: &n})
}

// Clients is the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) add() *client {
	c := &client{send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	return c
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) broadcast(msg serverMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[ERROR] encode %s message: %v", msg.Type, err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.enqueue(c, data)
	}
}

// sendTo queues msg for a single client.
func (h *Hub) sendTo(c *client, msg serverMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[ERROR] encode %s message: %v", msg.Type, err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		h.enqueue(c, data)
	}
}

func (h *Hub) enqueue(c *client, data []byte) {
	select {
	case c.send <- data:
	default:
		log.Println("[WARN] client send buffer full, dropping message")
	}
}
