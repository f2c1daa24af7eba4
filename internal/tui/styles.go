// Package tui provides a live terminal view of a running machine.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"turingsim/internal/render"
)

// Styles contains all styles for the watch TUI.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Status   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
	Border   lipgloss.Style
}

// DefaultStyles returns the default watch TUI styles, sharing the tape
// renderer's color palette.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(render.ColorState)),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(render.ColorHead)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(render.ColorMuted)),
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(render.ColorHead)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(render.ColorMuted)),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(render.ColorMuted)).
			Padding(0, 1),
	}
}
