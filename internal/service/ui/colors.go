package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle ANSI 6 (Cyan) for headings
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle ANSI 2 (Green) for usage lines and the prompt
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (Bright Black) for secondary text
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (Yellow) for flags
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// ErrorStyle ANSI 1 (Red) for failed command results
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	// StatusStyle for the bottom status bar of the full-screen UI
	StatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Reverse(true).Padding(0, 1)
)
