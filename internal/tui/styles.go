package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))

	ownAuthorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	otherAuthorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	timestampStyle   = lipgloss.NewStyle().Faint(true)
	statusStyle      = lipgloss.NewStyle().Faint(true).Italic(true)
)
