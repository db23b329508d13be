package booking

import (
	"context"
	"errors"
	"eventbook-client/logger"
	"eventbook-client/model"
	"strconv"
	"sync"
)

var (
	// ErrNotAuthenticated means submission was attempted without a
	// session. No network call is made; the caller should redirect to
	// login.
	ErrNotAuthenticated = errors.New("booking: not logged in")

	// ErrSoldOut means the event has no seats left. No network call is
	// made.
	ErrSoldOut = errors.New("booking: no seats available")

	// ErrSubmissionInFlight means a prior submission has not resolved
	// yet.
	ErrSubmissionInFlight = errors.New("booking: submission already in flight")
)

// State tracks one submission attempt.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateSucceeded
	StateFailed
)

// Submitter is the slice of the API client the form needs.
type Submitter interface {
	CreateBooking(ctx context.Context, req model.BookingRequest) (*model.BookingRecord, error)
}

// Form enforces seat-selection bounds over an event snapshot and
// submits a validated booking. Safe for concurrent use: the UI reads it
// on the render goroutine while Submit runs on a command goroutine.
type Form struct {
	mu     sync.Mutex
	event  model.Event
	bounds Bounds
	seats  int
	phone  string
	state  State
}

func NewForm(event model.Event) *Form {
	f := &Form{}
	f.setEventLocked(event)
	f.seats = f.bounds.Min
	return f
}

// SetEvent replaces the snapshot and recomputes bounds; the current
// selection is re-clamped into the new range.
func (f *Form) SetEvent(event model.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setEventLocked(event)
	f.seats = f.bounds.Clamp(f.seats)
}

func (f *Form) setEventLocked(event model.Event) {
	f.event = event
	f.bounds = BoundsFor(event)
}

func (f *Form) Increment() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seats = f.bounds.Clamp(f.seats + 1)
}

func (f *Form) Decrement() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seats = f.bounds.Clamp(f.seats - 1)
}

// SetSeats applies a direct numeric entry. Non-numeric input is
// rejected and the prior value kept.
func (f *Form) SetSeats(input string) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seats = f.bounds.Clamp(n)
}

func (f *Form) SetPhone(phone string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.phone = phone
}

func (f *Form) Seats() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seats
}

func (f *Form) Phone() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phone
}

func (f *Form) Bounds() Bounds {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bounds
}

func (f *Form) Event() model.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.event
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submitting reports whether a submission is in flight, for disabling
// the submit control.
func (f *Form) Submitting() bool {
	return f.State() == StateSubmitting
}

// Submit validates and sends the booking. The user must come from
// verified session state; a nil user aborts before any network call.
// On failure the form keeps its entered values so the user can retry.
func (f *Form) Submit(ctx context.Context, client Submitter, user *model.User) (*model.BookingRecord, error) {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	f.state = StateValidating

	if user == nil || user.UserID == "" {
		f.state = StateIdle
		f.mu.Unlock()
		return nil, ErrNotAuthenticated
	}
	if f.bounds.SoldOut() {
		f.state = StateIdle
		f.mu.Unlock()
		return nil, ErrSoldOut
	}

	// Re-clamp right before building the request rather than trusting
	// whatever the selector last held.
	f.seats = f.bounds.Clamp(f.seats)
	req := model.BookingRequest{
		EventID: f.event.EventID,
		Seats:   f.seats,
		Phone:   f.phone,
		UserID:  user.UserID,
	}
	f.state = StateSubmitting
	f.mu.Unlock()

	record, err := client.CreateBooking(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		logger.Errorf(ctx, "booking: submission failed for event %s: %v", req.EventID, err)
		f.state = StateFailed
		return nil, err
	}
	f.state = StateSucceeded
	return record, nil
}

// Reset returns a failed form to Idle with its values intact, ready for
// a retry.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateFailed || f.state == StateSucceeded {
		f.state = StateIdle
	}
}
