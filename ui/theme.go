package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the lipgloss styles shared across screens. ANSI 256-color
// codes for broad terminal compatibility.
type Theme struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Normal   lipgloss.Style
	Faint    lipgloss.Style
	Selected lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Help     lipgloss.Style
	SoldOut  lipgloss.Style
}

var DefaultTheme = Theme{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
	Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
	Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	Faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("117")),
	Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
	Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	SoldOut:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
}
