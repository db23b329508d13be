package ui

import (
	"eventbook-client/booking"
	"eventbook-client/model"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// BookingModel is the event detail plus seat selection. The seat count
// lives in the booking form, which clamps every change; this screen is
// only keys and rendering.
type BookingModel struct {
	form       *booking.Form
	phone      textinput.Model
	phoneFocus bool
}

func NewBookingModel(event model.Event) BookingModel {
	phone := textinput.New()
	phone.Placeholder = "phone (optional)"
	phone.CharLimit = 32
	return BookingModel{
		form:  booking.NewForm(event),
		phone: phone,
	}
}

func (m Model) updateBooking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	bm := &m.bookingScreen

	// While a submission is in flight only ctrl+c gets through; the
	// busy flag also stops a second enter from double-submitting.
	if bm.form.Submitting() {
		return m, nil
	}

	if bm.phoneFocus {
		switch msg.String() {
		case "tab", "esc":
			bm.phoneFocus = false
			bm.phone.Blur()
			return m, nil
		case "enter":
			bm.form.SetPhone(strings.TrimSpace(bm.phone.Value()))
			return m.submitBooking()
		}
		var cmd tea.Cmd
		bm.phone, cmd = bm.phone.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		return m.gotoEvents()

	case key.Matches(msg, m.keys.Increment):
		bm.form.Increment()
		return m, nil

	case key.Matches(msg, m.keys.Decrement):
		bm.form.Decrement()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		bm.phoneFocus = true
		bm.phone.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		bm.form.SetPhone(strings.TrimSpace(bm.phone.Value()))
		return m.submitBooking()
	}

	// Direct numeric entry: a digit key selects that seat count,
	// clamped into range. Anything else is ignored.
	if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		bm.form.SetSeats(s)
	}
	return m, nil
}

func (m Model) submitBooking() (tea.Model, tea.Cmd) {
	bounds := m.bookingScreen.form.Bounds()
	if bounds.SoldOut() {
		// Blocked before any network call; the backend never sees it.
		return m, m.setNotice(noticeError, "No seats available for this event")
	}
	ctx := m.newOp()
	return m, submitBookingCmd(ctx, m.bookingScreen.form, m.client, m.sess.Current())
}

func (bm BookingModel) View(theme Theme, spinner string) string {
	event := bm.form.Event()
	bounds := bm.form.Bounds()

	var b strings.Builder
	b.WriteString(theme.Header.Render(event.Title))
	b.WriteString("\n")
	if event.Description != "" {
		b.WriteString(theme.Faint.Render(event.Description) + "\n")
	}
	b.WriteString(theme.Normal.Render(fmt.Sprintf("%s · %s", event.StartAt.Format("Mon Jan 2 15:04"), event.Location)))
	b.WriteString("\n\n")

	if bounds.SoldOut() {
		b.WriteString(theme.SoldOut.Render("Sold out") + "\n")
		return b.String()
	}

	b.WriteString(theme.Normal.Render(fmt.Sprintf("Seats:  - [ %d ] +", bm.form.Seats())))
	b.WriteString("\n")
	b.WriteString(theme.Faint.Render(fmt.Sprintf("Available: %d · Max per booking: %d", bounds.Available, bounds.Max)))
	b.WriteString("\n\n")
	b.WriteString("  " + bm.phone.View() + "\n\n")

	if bm.form.Submitting() {
		b.WriteString(theme.Faint.Render(spinner + " Booking…"))
	} else {
		b.WriteString(theme.Success.Render("Enter: confirm booking"))
	}
	return b.String()
}
