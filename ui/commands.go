package ui

import (
	"context"
	"eventbook-client/api"
	"eventbook-client/booking"
	"eventbook-client/model"
	"eventbook-client/session"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// noticeFadeDelay is how long a status-bar notice stays visible.
const noticeFadeDelay = 3 * time.Second

func initSessionCmd(ctx context.Context, sess *session.Manager) tea.Cmd {
	return func() tea.Msg {
		return sessionInitializedMsg{err: sess.Initialize(ctx)}
	}
}

func loginCmd(ctx context.Context, sess *session.Manager, email, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := sess.Login(ctx, email, password)
		return loginResultMsg{user: user, err: err}
	}
}

func registerCmd(ctx context.Context, sess *session.Manager, req model.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		user, err := sess.Register(ctx, req)
		return registerResultMsg{user: user, err: err}
	}
}

func logoutCmd(ctx context.Context, sess *session.Manager) tea.Cmd {
	return func() tea.Msg {
		sess.Logout(ctx)
		return logoutMsg{}
	}
}

func loadEventsCmd(ctx context.Context, client *api.Client) tea.Cmd {
	return func() tea.Msg {
		events, err := client.Events(ctx)
		return eventsLoadedMsg{events: events, err: err}
	}
}

func loadEventCmd(ctx context.Context, client *api.Client, eventID string) tea.Cmd {
	return func() tea.Msg {
		event, err := client.Event(ctx, eventID)
		return eventLoadedMsg{event: event, err: err}
	}
}

func loadBookingsCmd(ctx context.Context, client *api.Client, userID string) tea.Cmd {
	return func() tea.Msg {
		records, err := client.UserBookings(ctx, userID)
		return bookingsLoadedMsg{records: records, err: err}
	}
}

func submitBookingCmd(ctx context.Context, form *booking.Form, client booking.Submitter, user *model.User) tea.Cmd {
	return func() tea.Msg {
		record, err := form.Submit(ctx, client, user)
		return bookingResultMsg{record: record, err: err}
	}
}

func createEventCmd(ctx context.Context, client *api.Client, req model.CreateEventRequest) tea.Cmd {
	return func() tea.Msg {
		return eventCreatedMsg{err: client.CreateEvent(ctx, req)}
	}
}

func deleteEventCmd(ctx context.Context, client *api.Client, eventID string) tea.Cmd {
	return func() tea.Msg {
		return eventDeletedMsg{err: client.DeleteEvent(ctx, eventID)}
	}
}

func noticeFadeCmd() tea.Cmd {
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{}
	})
}
