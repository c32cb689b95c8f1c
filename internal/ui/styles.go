package ui

import "github.com/charmbracelet/lipgloss"

// Color palette: default terminal foreground for primary text, a teal
// accent for names and paths, gray for secondary information. Status is
// conveyed with unicode symbols, not color.
var (
	// Accent styles note names, paths and other interactive elements.
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#2DD4BF"))

	// Muted styles secondary info like titles, hints and timestamps.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold is used for emphasis and section headers.
	Bold = lipgloss.NewStyle().Bold(true)
)
