package ui

import (
	"eventbook-client/model"
)

// sessionInitializedMsg is sent when the startup session verification
// resolves. The outcome lives in the session manager; err is only the
// transport failure, which the guard treats the same as "no user".
type sessionInitializedMsg struct {
	err error
}

type loginResultMsg struct {
	user *model.User
	err  error
}

type registerResultMsg struct {
	user *model.User
	err  error
}

// logoutMsg is sent after logout completes. Local state is already
// cleared by then regardless of what the backend said.
type logoutMsg struct{}

type eventsLoadedMsg struct {
	events []model.Event
	err    error
}

// eventLoadedMsg carries a fresh event snapshot for the booking screen,
// so seat bounds are computed from current data rather than a stale
// list row.
type eventLoadedMsg struct {
	event *model.Event
	err   error
}

type bookingsLoadedMsg struct {
	records []model.BookingRecord
	err     error
}

type bookingResultMsg struct {
	record *model.BookingRecord
	err    error
}

type eventCreatedMsg struct {
	err error
}

type eventDeletedMsg struct {
	err error
}

// noticeFadeMsg clears the transient status-bar notice.
type noticeFadeMsg struct{}
