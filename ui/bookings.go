package ui

import (
	"eventbook-client/model"
	"fmt"
	"strings"
)

// BookingsModel renders the session user's bookings. Pure display; the
// backend produces every field.
type BookingsModel struct {
	records []model.BookingRecord
	loading bool
}

func (bm BookingsModel) View(theme Theme, spinner string) string {
	if bm.loading {
		return theme.Faint.Render(spinner + " Loading your bookings…")
	}
	if len(bm.records) == 0 {
		return theme.Faint.Render("You have no bookings yet.")
	}

	var b strings.Builder
	b.WriteString(theme.Header.Render("My bookings"))
	b.WriteString("\n\n")
	for _, record := range bm.records {
		title := record.EventTitle
		if title == "" {
			title = record.EventID
		}
		b.WriteString(theme.Normal.Render(fmt.Sprintf("  %-32s %d seat(s)", truncate(title, 32), record.Seats)))
		b.WriteString("\n")
		details := make([]string, 0, 3)
		if record.EventLocation != "" {
			details = append(details, record.EventLocation)
		}
		if !record.EventStartAt.IsZero() {
			details = append(details, record.EventStartAt.Format("Mon Jan 2 15:04"))
		}
		details = append(details, "booked "+record.CreatedAt.Format("Jan 2 15:04"))
		b.WriteString(theme.Faint.Render("    " + strings.Join(details, " · ")))
		b.WriteString("\n")
	}
	return b.String()
}
