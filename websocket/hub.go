package websocket

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"tasknest-server/services"
)

// Hub manages the admin live-feed connections and fans booking events out
// to every connected client.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Info().Uint("user_id", client.UserID).Msg("live feed client connected")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Info().Uint("user_id", client.UserID).Msg("live feed client disconnected")
			}

		case payload := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- payload:
				default:
					// Slow consumer, drop it
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// PublishBookingEvent implements services.EventPublisher. Never blocks; a
// full broadcast buffer drops the event.
func (h *Hub) PublishBookingEvent(event services.BookingEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal booking event")
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		log.Warn().Str("type", event.Type).Msg("booking event dropped, broadcast buffer full")
	}
}
