package tui

import "github.com/charmbracelet/lipgloss"

// Colors matching the td monitor palette.
var (
	primaryColor = lipgloss.Color("212")
	successColor = lipgloss.Color("42")
	warningColor = lipgloss.Color("214")
	errorColor   = lipgloss.Color("196")
	mutedColor   = lipgloss.Color("241")
	cyanColor    = lipgloss.Color("45")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	statusKeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	statusOnStyle = lipgloss.NewStyle().
			Foreground(successColor)

	statusOffStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	lockedStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	feedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	modalBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 2)

	buttonFocusedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(primaryColor).
				Bold(true).
				Padding(0, 2)

	hintStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	frameStyle = lipgloss.NewStyle().
			Foreground(cyanColor)
)
