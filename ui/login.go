package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the login screen: email and password inputs. Entered
// values survive a failed attempt so the user can correct and retry.
type LoginModel struct {
	email    textinput.Model
	password textinput.Model
	focus    int
}

func NewLoginModel() LoginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword

	return LoginModel{email: email, password: password}
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+n":
		m.registerForm = NewRegisterModel()
		m.screen = ScreenRegister
		return m, nil

	case "tab", "shift+tab", "down", "up":
		m.login.focus = (m.login.focus + 1) % 2
		if m.login.focus == 0 {
			m.login.email.Focus()
			m.login.password.Blur()
		} else {
			m.login.email.Blur()
			m.login.password.Focus()
		}
		return m, nil

	case "enter":
		email := strings.TrimSpace(m.login.email.Value())
		password := m.login.password.Value()
		if email == "" || password == "" {
			return m, m.setNotice(noticeWarning, "Email and password are required")
		}
		ctx := m.newOp()
		return m, loginCmd(ctx, m.sess, email, password)
	}

	var cmd tea.Cmd
	if m.login.focus == 0 {
		m.login.email, cmd = m.login.email.Update(msg)
	} else {
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return m, cmd
}

func (lm LoginModel) View(theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.Header.Render("Log in"))
	b.WriteString("\n\n")
	b.WriteString("  " + lm.email.View() + "\n")
	b.WriteString("  " + lm.password.View() + "\n")
	return b.String()
}
