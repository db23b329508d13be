package ui

import (
	"eventbook-client/model"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// startAtLayout is the expected format for the event start field.
const startAtLayout = "2006-01-02 15:04"

// CreateModel is the admin event-creation form.
type CreateModel struct {
	inputs []textinput.Model
	focus  int
}

const (
	createFieldTitle = iota
	createFieldDescription
	createFieldLocation
	createFieldStartAt
	createFieldTotalSeats
)

func NewCreateModel() CreateModel {
	placeholders := []string{"title", "description", "location", "start (YYYY-MM-DD HH:MM)", "total seats"}
	inputs := make([]textinput.Model, len(placeholders))
	for i, placeholder := range placeholders {
		input := textinput.New()
		input.Placeholder = placeholder
		input.CharLimit = 200
		inputs[i] = input
	}
	inputs[createFieldTitle].Focus()
	return CreateModel{inputs: inputs}
}

func (cm *CreateModel) setFocus(i int) {
	cm.focus = (i + len(cm.inputs)) % len(cm.inputs)
	for j := range cm.inputs {
		if j == cm.focus {
			cm.inputs[j].Focus()
		} else {
			cm.inputs[j].Blur()
		}
	}
}

func (m Model) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.gotoEvents()

	case "tab", "down":
		m.create.setFocus(m.create.focus + 1)
		return m, nil

	case "shift+tab", "up":
		m.create.setFocus(m.create.focus - 1)
		return m, nil

	case "enter":
		req, err := m.create.buildRequest()
		if err != nil {
			return m, m.setNotice(noticeWarning, err.Error())
		}
		ctx := m.newOp()
		return m, createEventCmd(ctx, m.client, req)
	}

	var cmd tea.Cmd
	m.create.inputs[m.create.focus], cmd = m.create.inputs[m.create.focus].Update(msg)
	return m, cmd
}

func (cm CreateModel) buildRequest() (model.CreateEventRequest, error) {
	var req model.CreateEventRequest

	req.Title = strings.TrimSpace(cm.inputs[createFieldTitle].Value())
	if req.Title == "" {
		return req, errInvalid("Title is required")
	}
	req.Description = strings.TrimSpace(cm.inputs[createFieldDescription].Value())
	req.Location = strings.TrimSpace(cm.inputs[createFieldLocation].Value())

	startAt, err := time.ParseInLocation(startAtLayout, strings.TrimSpace(cm.inputs[createFieldStartAt].Value()), time.Local)
	if err != nil {
		return req, errInvalid("Start must look like 2026-09-01 19:30")
	}
	req.StartAt = startAt

	totalSeats, err := strconv.Atoi(strings.TrimSpace(cm.inputs[createFieldTotalSeats].Value()))
	if err != nil || totalSeats < 0 {
		return req, errInvalid("Total seats must be a non-negative number")
	}
	req.TotalSeats = totalSeats

	return req, nil
}

type errInvalid string

func (e errInvalid) Error() string { return string(e) }

func (cm CreateModel) View(theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.Header.Render("New event"))
	b.WriteString("\n\n")
	for _, input := range cm.inputs {
		b.WriteString("  " + input.View() + "\n")
	}
	return b.String()
}
