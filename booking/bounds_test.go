package booking

import (
	"eventbook-client/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsForNeverNegative(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		booked      int
		wantAvail   int
		wantMax     int
	}{
		{"plenty left", 100, 10, 90, 5},
		{"fewer than cap", 10, 8, 2, 2},
		{"exactly the cap", 10, 5, 5, 5},
		{"sold out", 5, 5, 0, 0},
		{"overbooked snapshot", 5, 7, 0, 0},
		{"empty event", 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BoundsFor(model.Event{TotalSeats: tt.total, SeatsBooked: tt.booked})
			assert.Equal(t, tt.wantAvail, b.Available)
			assert.Equal(t, tt.wantMax, b.Max)
			assert.Equal(t, 1, b.Min)
			assert.GreaterOrEqual(t, b.Available, 0)
		})
	}
}

func TestMaxIsCappedAtFive(t *testing.T) {
	for available := 0; available <= 12; available++ {
		b := BoundsFor(model.Event{TotalSeats: available})
		want := available
		if want > MaxSeatsPerBooking {
			want = MaxSeatsPerBooking
		}
		assert.Equal(t, want, b.Max, "available=%d", available)
	}
}

func TestClampIdempotent(t *testing.T) {
	b := BoundsFor(model.Event{TotalSeats: 20})

	for n := -3; n <= 10; n++ {
		once := b.Clamp(n)
		assert.Equal(t, once, b.Clamp(once), "clamp not idempotent for %d", n)
		assert.GreaterOrEqual(t, once, b.Min)
		assert.LessOrEqual(t, once, b.Max)
	}
}

func TestClampInRangeUnchanged(t *testing.T) {
	b := BoundsFor(model.Event{TotalSeats: 20})
	for n := 1; n <= 5; n++ {
		assert.Equal(t, n, b.Clamp(n))
	}
}

func TestClampSoldOutReturnsMin(t *testing.T) {
	b := BoundsFor(model.Event{TotalSeats: 5, SeatsBooked: 5})
	assert.True(t, b.SoldOut())
	assert.Equal(t, 1, b.Clamp(3))
}
