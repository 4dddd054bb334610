package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyValue is one row of a success card.
type KeyValue struct {
	Key   string
	Value string
}

// RenderSuccessCard renders title and rows with aligned keys, inside a
// rounded border unless the theme is colorless.
func RenderSuccessCard(theme *Theme, title string, rows ...KeyValue) string {
	width := 0
	for _, r := range rows {
		width = max(width, len(r.Key))
	}

	var b strings.Builder
	b.WriteString(theme.style(theme.Colors.Success).Bold(!theme.NoColor).Render("✓ " + title))
	for _, r := range rows {
		key := theme.style(theme.Colors.Muted).Render(fmt.Sprintf("%-*s", width, r.Key))
		fmt.Fprintf(&b, "\n  %s  %s", key, r.Value)
	}

	if theme.NoColor {
		return b.String()
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Colors.Success)).
		Padding(0, 1).
		Render(b.String())
}
