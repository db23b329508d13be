package model

import (
	"time"
)

// BookingRequest is the outbound payload for POST /bookings. It is
// built fresh per submission and never mutated afterwards. UserID comes
// from verified session state, never from a standalone cached value.
type BookingRequest struct {
	EventID string `json:"eventId"`
	Seats   int    `json:"seats"`
	Phone   string `json:"phone,omitempty"`
	UserID  string `json:"userId"`
}

// BookingRecord is the backend's view of a stored booking. The client
// only formats it for display.
type BookingRecord struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	EventID       string    `json:"eventId"`
	Seats         int       `json:"seats"`
	Phone         string    `json:"phone,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	EventTitle    string    `json:"eventTitle,omitempty"`
	EventStartAt  time.Time `json:"eventStartAt,omitempty"`
	EventLocation string    `json:"eventLocation,omitempty"`
}
