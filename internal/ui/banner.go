package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// PrintBanner writes the welcome banner for version.
func PrintBanner(w io.Writer, theme *Theme, version string) {
	line := fmt.Sprintf("Welcome to React Native Blitz v%s", version)
	if theme.NoColor {
		_, _ = fmt.Fprintln(w, line)
		return
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Colors.Primary)).
		Padding(0, 2).
		Bold(true).
		Foreground(lipgloss.Color(theme.Colors.Primary))
	_, _ = fmt.Fprintln(w, box.Render(line))
}
