// Package shell runs external commands attached to the calling terminal.
// The generator and dependency installers own the terminal for their
// duration, so nothing is captured; only the exit status is inspected.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Sentinel errors for command execution.
var (
	// ErrEmptyCommand is returned when a Command has no program name.
	ErrEmptyCommand = errors.New("shell: empty command")

	// ErrCommandFailed marks a failure reported through FatalRunner.
	ErrCommandFailed = errors.New("shell: external command failed")
)

// Command is a single external program invocation.
type Command struct {
	Name string   // Program to execute, resolved through PATH.
	Args []string // Arguments passed verbatim, no shell expansion.
	Dir  string   // Working directory; empty means the current directory.
}

// WithDir returns a copy of c that runs in dir.
func (c Command) WithDir(dir string) Command {
	c.Dir = dir
	return c
}

// String renders the command line for display and logging.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, a := range c.Args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = strconv.Quote(a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// Runner executes commands synchronously.
type Runner interface {
	// Run blocks until cmd exits. A non-zero exit is reported as *ExitError.
	Run(ctx context.Context, cmd Command) error
}

// ExitError reports a command that ran but exited with a non-zero status.
type ExitError struct {
	Command Command
	Code    int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command.String(), e.Code)
}

// Compile-time interface compliance check.
var _ Runner = (*ExecRunner)(nil)

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	logger *slog.Logger
}

// NewExecRunner creates an ExecRunner bound to the process standard streams.
func NewExecRunner(logger *slog.Logger) *ExecRunner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logger: logger,
	}
}

// Run executes cmd with inherited standard streams and waits for it.
func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	if c.Name == "" {
		return ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	r.logger.Debug("running command", "cmd", c.String(), "dir", c.Dir)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Command: c, Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("run %s: %w", c.Name, err)
	}

	r.logger.Debug("command finished", "cmd", c.Name)
	return nil
}

// RunAll runs cmds in order and stops at the first failure, so the chain
// behaves as one step.
func RunAll(ctx context.Context, r Runner, cmds ...Command) error {
	for _, c := range cmds {
		if err := r.Run(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
