package ui

import (
	"eventbook-client/booking"
	"eventbook-client/model"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// EventsModel is the event list. Admin-only actions (create, delete)
// are checked against the session at keypress time, not cached.
type EventsModel struct {
	events  []model.Event
	cursor  int
	loading bool
}

func (em *EventsModel) setEvents(events []model.Event) {
	em.events = events
	if em.cursor >= len(events) {
		em.cursor = len(events) - 1
	}
	if em.cursor < 0 {
		em.cursor = 0
	}
}

func (em *EventsModel) selected() *model.Event {
	if len(em.events) == 0 || em.cursor >= len(em.events) {
		return nil
	}
	return &em.events[em.cursor]
}

func (m Model) updateEvents(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.opCancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.events.cursor > 0 {
			m.events.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.events.cursor < len(m.events.events)-1 {
			m.events.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if event := m.events.selected(); event != nil {
			return m.gotoBooking(event.EventID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m.gotoEvents()

	case key.Matches(msg, m.keys.MyBookings):
		return m.gotoBookings()

	case key.Matches(msg, m.keys.Logout):
		ctx := m.newOp()
		return m, logoutCmd(ctx, m.sess)

	case key.Matches(msg, m.keys.NewEvent):
		if !m.sess.IsAdmin() {
			return m, nil
		}
		m.create = NewCreateModel()
		m.screen = ScreenCreateEvent
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if !m.sess.IsAdmin() {
			return m, nil
		}
		event := m.events.selected()
		if event == nil {
			return m, nil
		}
		ctx := m.newOp()
		return m, deleteEventCmd(ctx, m.client, event.EventID)
	}
	return m, nil
}

func (em EventsModel) View(theme Theme, spinner string, isAdmin bool) string {
	if em.loading {
		return theme.Faint.Render(spinner + " Loading events…")
	}
	if len(em.events) == 0 {
		return theme.Faint.Render("No upcoming events.")
	}

	var b strings.Builder
	b.WriteString(theme.Header.Render("Upcoming events"))
	b.WriteString("\n\n")
	for i, event := range em.events {
		bounds := booking.BoundsFor(event)
		line := fmt.Sprintf("%-32s %-16s %s", truncate(event.Title, 32), event.StartAt.Format("Jan 2 15:04"), event.Location)
		var avail string
		if bounds.SoldOut() {
			avail = theme.SoldOut.Render("sold out")
		} else {
			avail = theme.Faint.Render(fmt.Sprintf("%d seats left", bounds.Available))
		}

		if i == em.cursor {
			b.WriteString(theme.Selected.Render("> "+line) + " " + avail + "\n")
		} else {
			b.WriteString(theme.Normal.Render("  "+line) + " " + avail + "\n")
		}
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
