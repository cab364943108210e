package cli

import "github.com/charmbracelet/lipgloss"

// Color palette for terminal reports.
var (
	colorPrimary = lipgloss.Color("#2c7be5")
	colorMuted   = lipgloss.Color("#95a5a6")
	colorSuccess = lipgloss.Color("#2ecc71")
	colorWarning = lipgloss.Color("#f39c12")
	colorError   = lipgloss.Color("#e74c3c")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	subtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)
