package ui

import (
	"context"
	"errors"
	"eventbook-client/api"
	appcontext "eventbook-client/context"
	"eventbook-client/booking"
	"eventbook-client/session"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifies which view is active.
type Screen int

const (
	// ScreenChecking is the route-guard state: session verification has
	// not resolved yet, so nothing guarded may render.
	ScreenChecking Screen = iota
	ScreenLogin
	ScreenRegister
	ScreenEvents
	ScreenBooking
	ScreenBookings
	ScreenCreateEvent
)

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeWarning
	noticeError
)

// Model is the top-level bubbletea model. It owns navigation, the
// route guard, and the transient status-bar notice; each screen is a
// sub-model that handles its own keys and rendering.
type Model struct {
	client *api.Client
	sess   *session.Manager
	keys   KeyMap
	theme  Theme

	screen Screen
	width  int
	height int
	spin   spinner.Model

	notice     string
	noticeTone noticeKind

	login         LoginModel
	registerForm  RegisterModel
	events        EventsModel
	bookingScreen BookingModel
	bookings      BookingsModel
	create        CreateModel

	// opCtx is the context for the active screen's in-flight work;
	// navigating away cancels it so a late response cannot touch the
	// new screen's state.
	opCtx    context.Context
	opCancel context.CancelFunc
}

func New(client *api.Client, sess *session.Manager) Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := Model{
		client: client,
		sess:   sess,
		keys:   DefaultKeyMap,
		theme:  DefaultTheme,
		screen: ScreenChecking,
		spin:   spin,
		login:  NewLoginModel(),
	}
	m.opCtx, m.opCancel = context.WithCancel(appcontext.NewContext(""))
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, initSessionCmd(m.opCtx, m.sess))
}

// newOp cancels the previous screen's in-flight work and starts a
// fresh operation context with its own correlation id.
func (m *Model) newOp() context.Context {
	if m.opCancel != nil {
		m.opCancel()
	}
	m.opCtx, m.opCancel = context.WithCancel(appcontext.NewContext(""))
	return m.opCtx
}

func (m *Model) setNotice(tone noticeKind, text string) tea.Cmd {
	m.notice = text
	m.noticeTone = tone
	return noticeFadeCmd()
}

// redirectToLogin implements the guard's failure path: no user means
// the login screen, with no guarded content flash in between.
func (m *Model) redirectToLogin() {
	m.screen = ScreenLogin
	m.login = NewLoginModel()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case noticeFadeMsg:
		m.notice = ""
		return m, nil

	case sessionInitializedMsg:
		if m.screen != ScreenChecking {
			// The user already navigated (e.g. logged in explicitly
			// while verification was slow); the session manager has
			// serialized the two operations, nothing to do here.
			return m, nil
		}
		if m.sess.Current() == nil {
			m.redirectToLogin()
			return m, nil
		}
		return m.gotoEvents()

	case loginResultMsg:
		if msg.err != nil {
			return m, m.setNotice(noticeError, api.UserMessage(msg.err))
		}
		model, cmd := m.gotoEvents()
		notice := model.setNotice(noticeSuccess, fmt.Sprintf("Logged in as %s", msg.user.Email))
		return model, tea.Batch(cmd, notice)

	case registerResultMsg:
		if msg.err != nil {
			return m, m.setNotice(noticeError, api.UserMessage(msg.err))
		}
		model, cmd := m.gotoEvents()
		notice := model.setNotice(noticeSuccess, "Account created")
		return model, tea.Batch(cmd, notice)

	case logoutMsg:
		m.redirectToLogin()
		return m, m.setNotice(noticeInfo, "Logged out")

	case eventsLoadedMsg:
		m.events.loading = false
		if msg.err != nil {
			return m, m.setNotice(noticeError, api.UserMessage(msg.err))
		}
		m.events.setEvents(msg.events)
		return m, nil

	case eventLoadedMsg:
		if msg.err != nil {
			m.screen = ScreenEvents
			return m, m.setNotice(noticeError, api.UserMessage(msg.err))
		}
		m.bookingScreen = NewBookingModel(*msg.event)
		m.screen = ScreenBooking
		return m, nil

	case bookingsLoadedMsg:
		m.bookings.loading = false
		if msg.err != nil {
			return m, m.setNotice(noticeError, api.UserMessage(msg.err))
		}
		m.bookings.records = msg.records
		return m, nil

	case bookingResultMsg:
		return m.handleBookingResult(msg)

	case eventCreatedMsg:
		if msg.err != nil {
			return m, m.setNotice(noticeError, api.UserMessage(msg.err))
		}
		model, cmd := m.gotoEvents()
		notice := model.setNotice(noticeSuccess, "Event created")
		return model, tea.Batch(cmd, notice)

	case eventDeletedMsg:
		if msg.err != nil {
			return m, m.setNotice(noticeError, api.UserMessage(msg.err))
		}
		model, cmd := m.gotoEvents()
		notice := model.setNotice(noticeSuccess, "Event deleted")
		return model, tea.Batch(cmd, notice)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleBookingResult(msg bookingResultMsg) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(msg.err, booking.ErrNotAuthenticated):
		// Authorization failures redirect rather than surface an
		// error screen; the redirect is the signal.
		m.redirectToLogin()
		return m, m.setNotice(noticeWarning, "Please log in before booking tickets")

	case errors.Is(msg.err, booking.ErrSoldOut):
		return m, m.setNotice(noticeError, "No seats available for this event")

	case msg.err != nil:
		m.bookingScreen.form.Reset()
		return m, m.setNotice(noticeError, api.UserMessage(msg.err))
	}

	model, cmd := m.gotoBookings()
	notice := model.setNotice(noticeSuccess, fmt.Sprintf("Booking successful! %d seat(s) reserved", msg.record.Seats))
	return model, tea.Batch(cmd, notice)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even with an input focused.
	if msg.String() == "ctrl+c" {
		m.opCancel()
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenChecking:
		return m, nil

	case ScreenLogin:
		return m.updateLogin(msg)

	case ScreenRegister:
		return m.updateRegister(msg)

	case ScreenEvents:
		return m.updateEvents(msg)

	case ScreenBooking:
		return m.updateBooking(msg)

	case ScreenBookings:
		if key.Matches(msg, m.keys.Back) {
			return m.gotoEvents()
		}
		if key.Matches(msg, m.keys.Refresh) {
			return m.gotoBookings()
		}
		if key.Matches(msg, m.keys.Quit) {
			m.opCancel()
			return m, tea.Quit
		}
		return m, nil

	case ScreenCreateEvent:
		return m.updateCreate(msg)
	}
	return m, nil
}

// Navigation. Each goto cancels the prior screen's context.

func (m Model) gotoEvents() (Model, tea.Cmd) {
	ctx := m.newOp()
	m.screen = ScreenEvents
	m.events.loading = true
	return m, loadEventsCmd(ctx, m.client)
}

func (m Model) gotoBookings() (Model, tea.Cmd) {
	user := m.sess.Current()
	if user == nil {
		m.redirectToLogin()
		return m, nil
	}
	ctx := m.newOp()
	m.screen = ScreenBookings
	m.bookings = BookingsModel{loading: true}
	return m, loadBookingsCmd(ctx, m.client, user.UserID)
}

func (m Model) gotoBooking(eventID string) (Model, tea.Cmd) {
	ctx := m.newOp()
	return m, loadEventCmd(ctx, m.client, eventID)
}

func (m Model) View() string {
	var body string
	switch m.screen {
	case ScreenChecking:
		// Route guard: a neutral placeholder and nothing else until the
		// session state is known.
		body = m.theme.Faint.Render(fmt.Sprintf("%s Checking session…", m.spin.View()))

	case ScreenLogin:
		body = m.login.View(m.theme)

	case ScreenRegister:
		body = m.registerForm.View(m.theme)

	case ScreenEvents:
		body = m.events.View(m.theme, m.spin.View(), m.sess.IsAdmin())

	case ScreenBooking:
		body = m.bookingScreen.View(m.theme, m.spin.View())

	case ScreenBookings:
		body = m.bookings.View(m.theme, m.spin.View())

	case ScreenCreateEvent:
		body = m.create.View(m.theme)
	}

	sections := []string{m.headerView(), body, m.statusView()}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) headerView() string {
	title := m.theme.Title.Render("eventbook")
	if user := m.sess.Current(); user != nil {
		who := user.Email
		if user.IsAdmin() {
			who += " (admin)"
		}
		return title + "  " + m.theme.Faint.Render(who)
	}
	return title
}

func (m Model) statusView() string {
	if m.notice == "" {
		return m.theme.Help.Render(m.helpLine())
	}
	switch m.noticeTone {
	case noticeSuccess:
		return m.theme.Success.Render(m.notice)
	case noticeWarning:
		return m.theme.Warning.Render(m.notice)
	case noticeError:
		return m.theme.Error.Render(m.notice)
	default:
		return m.theme.Faint.Render(m.notice)
	}
}

func (m Model) helpLine() string {
	switch m.screen {
	case ScreenLogin:
		return "Enter: log in · Ctrl+N: create account · Ctrl+C: quit"
	case ScreenRegister:
		return "Enter: register · Esc: back to login · Ctrl+C: quit"
	case ScreenEvents:
		help := []string{"j/k: move", "Enter: book", "m: my bookings", "r: refresh", "l: log out", "q: quit"}
		if m.sess.IsAdmin() {
			help = append(help, "n: new event", "d: delete")
		}
		return strings.Join(help, " · ")
	case ScreenBooking:
		return "+/-: seats · Tab: phone · Enter: confirm · Esc: back"
	case ScreenBookings:
		return "Esc: back · r: refresh · q: quit"
	case ScreenCreateEvent:
		return "Tab: next field · Enter: create · Esc: back"
	}
	return ""
}
