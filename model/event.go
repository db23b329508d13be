package model

import (
	"time"
)

// Event is a read-only snapshot of a backend event. seatsBooked never
// exceeds totalSeats on the server, but the client clamps defensively
// rather than assume it.
type Event struct {
	EventID     string    `json:"eventId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartAt     time.Time `json:"startAt"`
	TotalSeats  int       `json:"totalSeats"`
	SeatsBooked int       `json:"seatsBooked"`
}

// CreateEventRequest is the admin payload for POST /events/create.
type CreateEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartAt     time.Time `json:"startAt"`
	TotalSeats  int       `json:"totalSeats"`
}
