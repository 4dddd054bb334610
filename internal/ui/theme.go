// Package ui renders terminal output around the setup pipeline: the
// banner, per-step progress, and the closing summary. Every component has a
// plain-text fallback for headless or no-color runs.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors is the Blitz palette.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Muted     string
}

// Theme controls how UI components are styled.
type Theme struct {
	NoColor bool
	Colors  Colors
}

// NewTheme returns the default theme. With noColor every component falls
// back to plain text.
func NewTheme(noColor bool) *Theme {
	return &Theme{
		NoColor: noColor,
		Colors: Colors{
			Primary:   "#61DAFB",
			Secondary: "#A78BFA",
			Success:   "#10B981",
			Error:     "#EF4444",
			Muted:     "#6B7280",
		},
	}
}

func (t *Theme) style(color string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if t.NoColor {
		return s
	}
	return s.Foreground(lipgloss.Color(color))
}
