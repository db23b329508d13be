package booking

import (
	"context"
	"errors"
	"eventbook-client/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmitter struct {
	calls []model.BookingRequest
	rec   *model.BookingRecord
	err   error
}

func (f *fakeSubmitter) CreateBooking(_ context.Context, req model.BookingRequest) (*model.BookingRecord, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	rec := f.rec
	if rec == nil {
		rec = &model.BookingRecord{ID: "b1", EventID: req.EventID, UserID: req.UserID, Seats: req.Seats}
	}
	return rec, nil
}

func testEvent(total, booked int) model.Event {
	return model.Event{EventID: "ev1", Title: "Concert", TotalSeats: total, SeatsBooked: booked}
}

func TestIncrementClampsAtMax(t *testing.T) {
	// totalSeats=10, seatsBooked=8 leaves two seats; five increment
	// presses still end at two.
	f := NewForm(testEvent(10, 8))
	for i := 0; i < 5; i++ {
		f.Increment()
	}
	assert.Equal(t, 2, f.Seats())
}

func TestDecrementClampsAtMin(t *testing.T) {
	f := NewForm(testEvent(10, 0))
	f.Decrement()
	f.Decrement()
	assert.Equal(t, 1, f.Seats())
}

func TestSetSeatsRejectsNonNumeric(t *testing.T) {
	f := NewForm(testEvent(10, 0))
	f.SetSeats("3")
	require.Equal(t, 3, f.Seats())

	f.SetSeats("abc")
	assert.Equal(t, 3, f.Seats(), "non-numeric entry must keep the prior value")

	f.SetSeats("")
	assert.Equal(t, 3, f.Seats())

	f.SetSeats("99")
	assert.Equal(t, 5, f.Seats(), "direct entry clamps to the per-booking cap")
}

func TestSetEventReclampsSelection(t *testing.T) {
	f := NewForm(testEvent(10, 0))
	f.SetSeats("5")

	f.SetEvent(testEvent(10, 8))
	assert.Equal(t, 2, f.Seats())
}

func TestSubmitUnauthenticatedMakesNoNetworkCall(t *testing.T) {
	f := NewForm(testEvent(10, 0))
	client := &fakeSubmitter{}

	_, err := f.Submit(context.Background(), client, nil)
	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, client.calls)
	assert.Equal(t, StateIdle, f.State())
}

func TestSubmitSoldOutMakesNoNetworkCall(t *testing.T) {
	f := NewForm(testEvent(5, 5))
	client := &fakeSubmitter{}

	_, err := f.Submit(context.Background(), client, &model.User{UserID: "u1"})
	require.ErrorIs(t, err, ErrSoldOut)
	assert.Empty(t, client.calls)
}

func TestSubmitReclampsBeforeBuildingRequest(t *testing.T) {
	f := NewForm(testEvent(10, 0))
	f.SetSeats("4")

	// The snapshot shrinks underneath the selection.
	f.SetEvent(testEvent(10, 8))

	client := &fakeSubmitter{}
	rec, err := f.Submit(context.Background(), client, &model.User{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, client.calls, 1)
	assert.Equal(t, 2, client.calls[0].Seats)
	assert.Equal(t, 2, rec.Seats)
}

func TestSubmitUsesSessionUserID(t *testing.T) {
	f := NewForm(testEvent(10, 0))
	f.SetPhone("555-0100")

	client := &fakeSubmitter{}
	_, err := f.Submit(context.Background(), client, &model.User{UserID: "session-user"})
	require.NoError(t, err)
	require.Len(t, client.calls, 1)
	assert.Equal(t, "session-user", client.calls[0].UserID)
	assert.Equal(t, "ev1", client.calls[0].EventID)
	assert.Equal(t, "555-0100", client.calls[0].Phone)
}

func TestSubmitFailureKeepsFormValues(t *testing.T) {
	f := NewForm(testEvent(10, 0))
	f.SetSeats("3")
	f.SetPhone("555-0100")

	client := &fakeSubmitter{err: errors.New("backend down")}
	_, err := f.Submit(context.Background(), client, &model.User{UserID: "u1"})
	require.Error(t, err)

	assert.Equal(t, StateFailed, f.State())
	assert.Equal(t, 3, f.Seats())
	assert.Equal(t, "555-0100", f.Phone())

	f.Reset()
	assert.Equal(t, StateIdle, f.State())

	// Retry succeeds.
	client.err = nil
	rec, err := f.Submit(context.Background(), client, &model.User{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, 3, rec.Seats)
}

func TestSubmitSuccessState(t *testing.T) {
	f := NewForm(testEvent(10, 0))
	client := &fakeSubmitter{}

	_, err := f.Submit(context.Background(), client, &model.User{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, f.State())
}

func TestSubmitWhileInFlightIsRejected(t *testing.T) {
	f := NewForm(testEvent(10, 0))
	f.mu.Lock()
	f.state = StateSubmitting
	f.mu.Unlock()

	client := &fakeSubmitter{}
	_, err := f.Submit(context.Background(), client, &model.User{UserID: "u1"})
	require.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.Empty(t, client.calls)
}
