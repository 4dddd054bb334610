// Package cli provides the Cobra command tree and dependency wiring for
// the blitz CLI. This file holds the composition root.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/earlbalai/rn-blitz/internal/cli/wizard"
	"github.com/earlbalai/rn-blitz/internal/config"
	"github.com/earlbalai/rn-blitz/internal/shell"
	"github.com/earlbalai/rn-blitz/internal/template"
	"github.com/earlbalai/rn-blitz/internal/ui"
)

// Dependencies holds the services used by CLI commands. It is the only
// place where concrete types are instantiated and wired together.
type Dependencies struct {
	Config     *config.Config
	ConfigFile string
	Logger     *slog.Logger
	Theme      *ui.Theme
	Headless   *ui.HeadlessManager
	Asker      wizard.Asker
	Runner     shell.Runner
	Deployer   template.Deployer
	Renderer   template.Renderer

	// WorkDir is where projects are created. Empty means the current
	// directory.
	WorkDir string
}

// deps is the global dependencies instance, built by InitDependencies
// before any command runs.
var deps *Dependencies

// GetDeps returns the current Dependencies instance.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// ensureDependencies is the root PersistentPreRunE.
func ensureDependencies(cmd *cobra.Command, _ []string) error {
	if deps != nil {
		return nil
	}
	return InitDependencies(cmd)
}

// InitDependencies loads configuration and wires the setup pipeline's
// collaborators for cmd. Flags must already be parsed.
func InitDependencies(cmd *cobra.Command) error {
	loader := config.NewLoader()
	cfg, err := loader.Load(getStringFlag(cmd, "config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, getBoolFlag(cmd, "verbose"))

	hm := ui.NewHeadlessManager()
	if getBoolFlag(cmd, "non-interactive") {
		hm.ForceHeadless(true)
	}
	theme := ui.NewTheme(cfg.NoColor || hm.IsHeadless())

	var asker wizard.Asker = wizard.HeadlessAsker{}
	if !hm.IsHeadless() {
		asker = wizard.NewHuhAsker(cfg.NoColor)
	}

	fsys, err := template.EmbeddedTemplates()
	if err != nil {
		return fmt.Errorf("load embedded templates: %w", err)
	}

	runner := shell.NewFatalRunner(
		shell.NewExecRunner(logger),
		logger,
		shell.WithErrorOutput(cmd.ErrOrStderr()),
	)

	deps = &Dependencies{
		Config:     cfg,
		ConfigFile: loader.ConfigFileUsed(),
		Logger:     logger,
		Theme:      theme,
		Headless:   hm,
		Asker:      asker,
		Runner:     runner,
		Deployer:   template.NewDeployer(fsys),
		Renderer:   template.NewRenderer(fsys),
	}
	logger.Debug("dependencies initialized",
		"config_file", deps.ConfigFile,
		"headless", hm.IsHeadless(),
	)
	return nil
}

// newLogger builds a slog logger backed by a charmbracelet/log handler.
// Verbose output switches to debug level with timestamps.
func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: verbose,
	})
	return slog.New(handler)
}
