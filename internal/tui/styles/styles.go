// Package styles defines shared lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	errorColor     = lipgloss.Color("#AF5F5F") // Muted terracotta for errors

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// SubtleStyle for hints/help text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// SelectedStyle for selected items in lists
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// StatusBarStyle for bottom status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// ColumnStyle for board columns
	ColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(secondaryColor).
			Padding(0, 1)

	// ColumnTitleStyle for board column headings
	ColumnTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor)

	// CardStyle for task cards
	CardStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// SelectedCardStyle for the task card under the cursor
	SelectedCardStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor).
				Padding(0, 1)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)

// PhaseLabel renders a phase or sub-phase label in its assigned color.
func PhaseLabel(label, hexColor string) string {
	if hexColor == "" {
		return SubtleStyle.Render(label)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor)).Render(label)
}
