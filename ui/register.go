package ui

import (
	"eventbook-client/model"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel is the account-creation screen. A successful
// registration chains straight into login, so there is no separate
// "now log in" step.
type RegisterModel struct {
	inputs []textinput.Model
	focus  int
}

const (
	registerFieldName = iota
	registerFieldEmail
	registerFieldPassword
	registerFieldPhone
)

func NewRegisterModel() RegisterModel {
	placeholders := []string{"name", "email", "password", "phone (optional)"}
	inputs := make([]textinput.Model, len(placeholders))
	for i, placeholder := range placeholders {
		input := textinput.New()
		input.Placeholder = placeholder
		input.CharLimit = 120
		inputs[i] = input
	}
	inputs[registerFieldPassword].EchoMode = textinput.EchoPassword
	inputs[registerFieldName].Focus()
	return RegisterModel{inputs: inputs}
}

func (rm *RegisterModel) setFocus(i int) {
	rm.focus = (i + len(rm.inputs)) % len(rm.inputs)
	for j := range rm.inputs {
		if j == rm.focus {
			rm.inputs[j].Focus()
		} else {
			rm.inputs[j].Blur()
		}
	}
}

func (m Model) updateRegister(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.redirectToLogin()
		return m, nil

	case "tab", "down":
		m.registerForm.setFocus(m.registerForm.focus + 1)
		return m, nil

	case "shift+tab", "up":
		m.registerForm.setFocus(m.registerForm.focus - 1)
		return m, nil

	case "enter":
		req := model.RegisterRequest{
			Name:     strings.TrimSpace(m.registerForm.inputs[registerFieldName].Value()),
			Email:    strings.TrimSpace(m.registerForm.inputs[registerFieldEmail].Value()),
			Password: m.registerForm.inputs[registerFieldPassword].Value(),
			Phone:    strings.TrimSpace(m.registerForm.inputs[registerFieldPhone].Value()),
		}
		if req.Email == "" || req.Password == "" {
			return m, m.setNotice(noticeWarning, "Email and password are required")
		}
		ctx := m.newOp()
		return m, registerCmd(ctx, m.sess, req)
	}

	var cmd tea.Cmd
	m.registerForm.inputs[m.registerForm.focus], cmd = m.registerForm.inputs[m.registerForm.focus].Update(msg)
	return m, cmd
}

func (rm RegisterModel) View(theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.Header.Render("Create account"))
	b.WriteString("\n\n")
	for _, input := range rm.inputs {
		b.WriteString("  " + input.View() + "\n")
	}
	return b.String()
}
