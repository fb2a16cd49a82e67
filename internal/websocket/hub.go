package websocket

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub maintains the set of connected operator dashboards and broadcasts
// article lifecycle events to them.
type Hub struct {
	// Registered clients map: ClientID -> Client
	clients map[string]*Client

	// Register requests
	register chan *Client

	// Unregister requests
	unregister chan *Client

	// Outbound broadcasts
	broadcast chan []byte

	// Mutex for thread-safe access to clients map
	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		clients:    make(map[string]*Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if old, ok := h.clients[client.ID]; ok {
				close(old.send)
			}
			h.clients[client.ID] = client
			h.mu.Unlock()
			log.Printf("🖥️ Dashboard connected: %s", client.ID)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.send)
				log.Printf("📴 Dashboard disconnected: %s", client.ID)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.RLock()
			for id, client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Buffer full or client dead; drop it
					log.Printf("⚠️ Dropping slow dashboard: %s", id)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Event is one article lifecycle notification.
type Event struct {
	Type        string `json:"type"`
	ArticleUUID string `json:"article_uuid,omitempty"`
	Code        string `json:"cod_article_las,omitempty"`
}

// BroadcastEvent pushes an event to every connected dashboard.
func (h *Hub) BroadcastEvent(evt Event) {
	msg, err := json.Marshal(evt)
	if err != nil {
		log.Printf("Error marshaling event: %v", err)
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		log.Println("⚠️ Event queue full, dropping broadcast")
	}
}
