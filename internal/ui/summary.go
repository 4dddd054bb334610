package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// summaryWordWrap is the wrap width for the rendered summary.
const summaryWordWrap = 80

// RenderNextSteps renders the post-setup markdown for the terminal. With
// NoColor the markdown is returned unchanged.
func RenderNextSteps(theme *Theme, markdown []byte) (string, error) {
	if theme.NoColor {
		return string(markdown), nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(summaryWordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(string(markdown))
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// PrintNextSteps renders markdown and writes it to w, falling back to the
// raw text when rendering fails.
func PrintNextSteps(w io.Writer, theme *Theme, markdown []byte) {
	out, err := RenderNextSteps(theme, markdown)
	if err != nil {
		out = string(markdown)
	}
	_, _ = fmt.Fprint(w, out)
}
