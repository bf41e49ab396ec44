// Package SSE streams booking events so a browser can refresh its
// appointment lists without polling.
package SSE

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Event is one appointment change pushed to connected clients.
type Event struct {
	Type          string `json:"type"` // "booked" or "cancelled"
	AppointmentID string `json:"appointmentId"`
	DoctorID      string `json:"doctorId"`
}

// Broadcaster fans Events out to every connected SSE client. Clients that
// stop draining within a second are dropped.
type Broadcaster struct {
	clients map[chan Event]bool
	mu      sync.Mutex
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{clients: make(map[chan Event]bool)}
}

func (b *Broadcaster) register(client chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clients[client] = true
}

func (b *Broadcaster) unregister(client chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.clients[client]; ok {
		delete(b.clients, client)
		close(client)
	}
}

// Publish delivers the event to all registered clients.
func (b *Broadcaster) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for client := range b.clients {
		select {
		case client <- event:
		case <-time.After(1 * time.Second):
			delete(b.clients, client)
			close(client)
		}
	}
}

var Events = NewBroadcaster()

// AppointmentBooked announces a fresh booking.
func AppointmentBooked(appointmentID, doctorID string) {
	Events.Publish(Event{Type: "booked", AppointmentID: appointmentID, DoctorID: doctorID})
}

// AppointmentCancelled announces a cancellation.
func AppointmentCancelled(appointmentID, doctorID string) {
	Events.Publish(Event{Type: "cancelled", AppointmentID: appointmentID, DoctorID: doctorID})
}

// RequestSSE holds the connection open and writes each published event as
// one SSE data frame.
func RequestSSE(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("Access-Control-Allow-Origin", "*")

	clientChan := make(chan Event)
	Events.register(clientChan)
	defer Events.unregister(clientChan)

	fmt.Fprintf(c.Writer, "data: %s\n\n", "connected")
	c.Writer.Flush()

	for {
		select {
		case event, ok := <-clientChan:
			if !ok {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				continue
			}
			fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			// Client disconnected
			return
		}
	}
}
