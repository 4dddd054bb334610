package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// FatalRunner terminates the process when a wrapped command fails. A failed
// generator or install leaves the project in an unknown state, so later
// steps must never run after it.
type FatalRunner struct {
	next   Runner
	exit   func(code int)
	errOut io.Writer
	logger *slog.Logger
}

// FatalOption configures a FatalRunner.
type FatalOption func(*FatalRunner)

// WithExitFunc replaces os.Exit. Tests use it to observe the exit status.
func WithExitFunc(fn func(code int)) FatalOption {
	return func(r *FatalRunner) {
		r.exit = fn
	}
}

// WithErrorOutput sets where the failure message is printed.
func WithErrorOutput(w io.Writer) FatalOption {
	return func(r *FatalRunner) {
		r.errOut = w
	}
}

// NewFatalRunner wraps next.
func NewFatalRunner(next Runner, logger *slog.Logger, opts ...FatalOption) *FatalRunner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := &FatalRunner{
		next:   next,
		exit:   os.Exit,
		errOut: os.Stderr,
		logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run delegates to the wrapped runner and exits with status 1 on failure.
// The returned error is only observable when the exit function returns.
func (r *FatalRunner) Run(ctx context.Context, c Command) error {
	err := r.next.Run(ctx, c)
	if err == nil {
		return nil
	}

	r.logger.Error("external command failed", "cmd", c.String(), "dir", c.Dir, "error", err)
	_, _ = fmt.Fprintf(r.errOut, "Error executing command: %s: %v\n", c.String(), err)
	r.exit(1)

	return fmt.Errorf("%w: %w", ErrCommandFailed, err)
}
