package main

import "github.com/charmbracelet/lipgloss"

// Centralized style definitions for the TUI.
var (
	// Display panel styles.
	displayBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	displayStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")) // red

	// Button grid styles.
	buttonStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Foreground(lipgloss.Color("7"))

	// Status bar styles.
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// accentButton builds the highlight style for the configured accent color,
// used for the pending-operator button.
func accentButton(accent string) lipgloss.Style {
	return buttonStyle.BorderForeground(lipgloss.Color(accent)).Foreground(lipgloss.Color(accent))
}
