package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasknest-server/models"
	"tasknest-server/services"
)

func TestHubFansOutBookingEvents(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{hub: hub, UserID: 1, send: make(chan []byte, 4)}
	hub.register <- client

	hub.PublishBookingEvent(services.BookingEvent{
		Type:      services.EventBookingCreated,
		Booking:   &models.Booking{ID: 42, Status: models.BookingPending},
		Timestamp: time.Now().UTC(),
	})

	select {
	case payload := <-client.send:
		var event services.BookingEvent
		require.NoError(t, json.Unmarshal(payload, &event))
		assert.Equal(t, services.EventBookingCreated, event.Type)
		require.NotNil(t, event.Booking)
		assert.Equal(t, uint(42), event.Booking.ID)
	case <-time.After(time.Second):
		t.Fatal("no event delivered to client")
	}

	hub.unregister <- client
	_, open := <-client.send
	assert.False(t, open)
}

func TestPublishBookingEventNeverBlocks(t *testing.T) {
	hub := NewHub()

	// No Run loop draining the buffer; overflow must drop, not block
	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.PublishBookingEvent(services.BookingEvent{Type: services.EventBookingUpdated})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a full buffer")
	}
}
