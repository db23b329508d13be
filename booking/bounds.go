package booking

import (
	"eventbook-client/model"
)

// MaxSeatsPerBooking caps a single transaction regardless of how many
// seats the event still has.
const MaxSeatsPerBooking = 5

// MinSeatsPerBooking is the smallest selectable seat count.
const MinSeatsPerBooking = 1

// Bounds are the selectable seat limits derived from an event snapshot.
// They are recomputed whenever the snapshot changes.
type Bounds struct {
	Available int
	Max       int
	Min       int
}

// BoundsFor derives bounds from an event. A snapshot reporting more
// booked than total seats clamps to zero availability instead of going
// negative; the server enforces the invariant but the client does not
// assume it.
func BoundsFor(event model.Event) Bounds {
	available := event.TotalSeats - event.SeatsBooked
	if available < 0 {
		available = 0
	}

	max := MaxSeatsPerBooking
	if available < max {
		max = available
	}

	return Bounds{
		Available: available,
		Max:       max,
		Min:       MinSeatsPerBooking,
	}
}

// SoldOut reports whether no seats remain.
func (b Bounds) SoldOut() bool {
	return b.Available == 0
}

// Clamp forces n into [Min, Max]. Clamping an in-range value returns it
// unchanged. When the event is sold out the range is empty; Clamp
// returns Min so the selector always shows a sane value, and submission
// is blocked separately by the sold-out check.
func (b Bounds) Clamp(n int) int {
	if n < b.Min {
		return b.Min
	}
	if b.Max >= b.Min && n > b.Max {
		return b.Max
	}
	if b.Max < b.Min {
		return b.Min
	}
	return n
}
