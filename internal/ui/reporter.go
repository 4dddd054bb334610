package ui

import (
	"fmt"
	"io"
)

// StepReporter shows a spinner while a step runs and a check or cross when
// it ends. It satisfies the setup pipeline's Reporter.
type StepReporter struct {
	progress *Progress
	theme    *Theme
	writer   io.Writer
	active   Spinner
}

// NewStepReporter creates a StepReporter writing to w.
func NewStepReporter(theme *Theme, hm *HeadlessManager, w io.Writer) *StepReporter {
	return &StepReporter{
		progress: NewProgress(theme, hm, w),
		theme:    theme,
		writer:   w,
	}
}

// StepStart starts a spinner for title, stopping any previous one.
func (r *StepReporter) StepStart(title string) {
	r.stop()
	r.active = r.progress.Spinner(title)
}

// StepDone stops the spinner and prints the outcome.
func (r *StepReporter) StepDone(title string, err error) {
	r.stop()
	if err != nil {
		_, _ = fmt.Fprintln(r.writer, r.theme.style(r.theme.Colors.Error).Render("✗ "+title))
		return
	}
	_, _ = fmt.Fprintln(r.writer, r.theme.style(r.theme.Colors.Success).Render("✓ "+title))
}

// Notice prints msg on its own line.
func (r *StepReporter) Notice(msg string) {
	r.stop()
	_, _ = fmt.Fprintln(r.writer, msg)
}

func (r *StepReporter) stop() {
	if r.active != nil {
		r.active.Stop()
		r.active = nil
	}
}
