// Package shelltest provides a recording shell.Runner for tests.
package shelltest

import (
	"context"
	"sync"

	"github.com/earlbalai/rn-blitz/internal/shell"
)

// Recorder records every command it is asked to run. OnRun, when set, is
// called for each command and its error is returned to the caller; it can
// simulate side effects such as the generator creating a project.
type Recorder struct {
	mu       sync.Mutex
	Commands []shell.Command
	OnRun    func(cmd shell.Command) error
}

// Compile-time interface compliance check.
var _ shell.Runner = (*Recorder)(nil)

// Run records cmd and invokes OnRun.
func (r *Recorder) Run(_ context.Context, cmd shell.Command) error {
	r.mu.Lock()
	r.Commands = append(r.Commands, cmd)
	hook := r.OnRun
	r.mu.Unlock()

	if hook != nil {
		return hook(cmd)
	}
	return nil
}

// Lines returns the recorded commands rendered as command lines.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.Commands))
	for i, c := range r.Commands {
		out[i] = c.String()
	}
	return out
}

// ExitRecorder captures exit codes passed to a FatalRunner.
type ExitRecorder struct {
	Codes []int
}

// Exit records code instead of terminating the process.
func (e *ExitRecorder) Exit(code int) {
	e.Codes = append(e.Codes, code)
}
