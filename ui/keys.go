package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings shared across screens. Text-entry
// screens route printable keys to their inputs; only the control-key
// bindings apply there.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding

	Refresh    key.Binding
	MyBookings key.Binding
	NewEvent   key.Binding
	Delete     key.Binding
	Logout     key.Binding

	Increment key.Binding
	Decrement key.Binding

	NextField key.Binding
	Quit      key.Binding
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	MyBookings: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "my bookings"),
	),
	NewEvent: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new event"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete event"),
	),
	Logout: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "log out"),
	),
	Increment: key.NewBinding(
		key.WithKeys("+", "=", "right"),
		key.WithHelp("+", "more seats"),
	),
	Decrement: key.NewBinding(
		key.WithKeys("-", "left"),
		key.WithHelp("-", "fewer seats"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next field"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
