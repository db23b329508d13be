package ui

import (
	"context"
	"eventbook-client/api"
	"eventbook-client/booking"
	"eventbook-client/devserver"
	"eventbook-client/model"
	"eventbook-client/session"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestModel wires a real client and session manager against an
// in-memory backend, the same stack the binary runs.
func newTestModel(t *testing.T) (Model, *session.Manager, *devserver.Store) {
	t.Helper()

	store := devserver.NewStore()
	server := httptest.NewServer(devserver.Router(store, "test-secret", time.Hour))
	t.Cleanup(server.Close)

	client, err := api.New(server.URL, 5*time.Second)
	require.NoError(t, err)

	sess := session.NewManager(client, &session.MemoryCache{})
	return New(client, sess), sess, store
}

func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func pressKey(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	return apply(t, m, msg)
}

func TestGuardShowsPlaceholderWhileChecking(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Checking session")
	assert.NotContains(t, view, "Upcoming events")
	assert.NotContains(t, view, "Log in")
}

func TestGuardRedirectsToLoginWhenNoUser(t *testing.T) {
	m, sess, _ := newTestModel(t)

	// No cookie, so verification resolves to "no user".
	_ = sess.Initialize(context.Background())

	m, cmd := apply(t, m, sessionInitializedMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, ScreenLogin, m.screen)
	assert.Contains(t, m.View(), "Log in")
	assert.NotContains(t, m.View(), "Upcoming events")
}

func TestGuardRendersContentWhenUserPresent(t *testing.T) {
	m, sess, store := newTestModel(t)

	_, err := store.RegisterUser(model.RegisterRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	_, err = sess.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	_, err = store.CreateEvent(model.CreateEventRequest{Title: "Launch Party", StartAt: time.Now().Add(time.Hour), TotalSeats: 10})
	require.NoError(t, err)

	m, cmd := apply(t, m, sessionInitializedMsg{})
	require.Equal(t, ScreenEvents, m.screen)
	require.NotNil(t, cmd, "entering the events screen must load events")

	m, _ = apply(t, m, cmd())
	assert.Contains(t, m.View(), "Launch Party")
	assert.Contains(t, m.View(), "a@b.c")
}

func TestAdminHelpVisibleOnlyForAdmins(t *testing.T) {
	m, sess, store := newTestModel(t)

	_, err := store.SeedAdmin("Admin", "admin@b.c", "pw")
	require.NoError(t, err)
	_, err = sess.Login(context.Background(), "admin@b.c", "pw")
	require.NoError(t, err)

	m, cmd := apply(t, m, sessionInitializedMsg{})
	m, _ = apply(t, m, cmd())

	view := m.View()
	assert.Contains(t, view, "n: new event")
	assert.Contains(t, view, "(admin)")
}

func TestLoginFailureShowsBackendMessage(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = apply(t, m, sessionInitializedMsg{})

	m, _ = apply(t, m, loginResultMsg{err: &api.Error{
		StatusCode: http.StatusUnauthorized,
		Message:    "Wrong email or password",
	}})
	assert.Equal(t, ScreenLogin, m.screen)
	assert.Contains(t, m.View(), "Wrong email or password")
}

func TestSeatStepperClampsAtBounds(t *testing.T) {
	m, _, _ := newTestModel(t)

	event := model.Event{EventID: "ev1", Title: "Gig", TotalSeats: 10, SeatsBooked: 8, StartAt: time.Now()}
	m, _ = apply(t, m, eventLoadedMsg{event: &event})
	require.Equal(t, ScreenBooking, m.screen)

	for i := 0; i < 5; i++ {
		m, _ = pressKey(t, m, "+")
	}
	assert.Equal(t, 2, m.bookingScreen.form.Seats())
	assert.Contains(t, m.View(), "Available: 2 · Max per booking: 2")

	for i := 0; i < 5; i++ {
		m, _ = pressKey(t, m, "-")
	}
	assert.Equal(t, 1, m.bookingScreen.form.Seats())
}

func TestSeatDigitEntryClamps(t *testing.T) {
	m, _, _ := newTestModel(t)

	event := model.Event{EventID: "ev1", Title: "Gig", TotalSeats: 50, StartAt: time.Now()}
	m, _ = apply(t, m, eventLoadedMsg{event: &event})

	m, _ = pressKey(t, m, "9")
	assert.Equal(t, 5, m.bookingScreen.form.Seats(), "digit entry clamps to the per-booking cap")

	m, _ = pressKey(t, m, "3")
	assert.Equal(t, 3, m.bookingScreen.form.Seats())

	m, _ = pressKey(t, m, "x")
	assert.Equal(t, 3, m.bookingScreen.form.Seats(), "non-numeric entry keeps the prior value")
}

func TestSoldOutEventBlocksSubmission(t *testing.T) {
	m, _, _ := newTestModel(t)

	event := model.Event{EventID: "ev1", Title: "Gig", TotalSeats: 5, SeatsBooked: 5, StartAt: time.Now()}
	m, _ = apply(t, m, eventLoadedMsg{event: &event})
	assert.Contains(t, m.View(), "Sold out")

	m, _ = pressKey(t, m, "enter")
	assert.Contains(t, m.View(), "No seats available for this event")
	assert.False(t, m.bookingScreen.form.Submitting(), "no submission starts for a sold-out event")
}

func TestBookingUnauthenticatedRedirectsToLogin(t *testing.T) {
	m, _, _ := newTestModel(t)

	event := model.Event{EventID: "ev1", Title: "Gig", TotalSeats: 10, StartAt: time.Now()}
	m, _ = apply(t, m, eventLoadedMsg{event: &event})

	m, _ = apply(t, m, bookingResultMsg{err: booking.ErrNotAuthenticated})
	assert.Equal(t, ScreenLogin, m.screen)
	assert.Contains(t, m.View(), "Please log in before booking tickets")
}

func TestBookingFailureKeepsFormOnScreen(t *testing.T) {
	m, _, _ := newTestModel(t)

	event := model.Event{EventID: "ev1", Title: "Gig", TotalSeats: 10, StartAt: time.Now()}
	m, _ = apply(t, m, eventLoadedMsg{event: &event})
	m, _ = pressKey(t, m, "+")
	require.Equal(t, 2, m.bookingScreen.form.Seats())

	m, _ = apply(t, m, bookingResultMsg{err: &api.Error{
		StatusCode: http.StatusConflict,
		Message:    "not enough seats available",
	}})
	assert.Equal(t, ScreenBooking, m.screen)
	assert.Equal(t, 2, m.bookingScreen.form.Seats(), "entered values survive a failed submission")
	assert.Contains(t, m.View(), "not enough seats available")
}

func TestBookingSuccessNavigatesToBookings(t *testing.T) {
	m, sess, store := newTestModel(t)

	_, err := store.RegisterUser(model.RegisterRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	_, err = sess.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	event := model.Event{EventID: "ev1", Title: "Gig", TotalSeats: 10, StartAt: time.Now()}
	m, _ = apply(t, m, eventLoadedMsg{event: &event})

	m, cmd := apply(t, m, bookingResultMsg{record: &model.BookingRecord{ID: "b1", Seats: 2}})
	assert.Equal(t, ScreenBookings, m.screen)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Loading your bookings")
}

func TestLogoutReturnsToLogin(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = apply(t, m, logoutMsg{})
	assert.Equal(t, ScreenLogin, m.screen)
	assert.Contains(t, m.View(), "Logged out")
}
