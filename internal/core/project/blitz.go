package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/earlbalai/rn-blitz/internal/defs"
	"github.com/earlbalai/rn-blitz/internal/manifest"
	"github.com/earlbalai/rn-blitz/internal/pkgmgr"
	"github.com/earlbalai/rn-blitz/internal/shell"
	"github.com/earlbalai/rn-blitz/internal/template"
)

// lintExtensions is the extension list passed to eslint.
const lintExtensions = ".js,.jsx,.ts,.tsx"

// BlitzScripts returns the scripts that replace package.json's "scripts"
// when the template is applied.
func BlitzScripts(pm pkgmgr.PackageManager) []manifest.Entry {
	return []manifest.Entry{
		{Key: "android", Value: "react-native run-android"},
		{Key: "ios", Value: "react-native run-ios"},
		{Key: "start", Value: "react-native start"},
		{Key: "tsc", Value: "tsc"},
		{Key: "test", Value: "jest"},
		{Key: "test:watch", Value: "jest --watch"},
		{Key: "lint", Value: "eslint src --ext " + lintExtensions},
		{Key: "lint:fix", Value: pm.RunScript("lint -- --fix")},
	}
}

// TemplateResult lists what TemplateApplier.Apply changed.
type TemplateResult struct {
	Files    []string
	Commands []string
}

// TemplateApplier restructures a freshly generated app: App.tsx moves
// under src/, the theme files are added, scripts are replaced, and the
// style dependency is installed followed by a lint auto-fix.
type TemplateApplier struct {
	deployer   template.Deployer
	runner     shell.Runner
	dependency string
	reporter   Reporter
	logger     *slog.Logger
}

// TemplateOption configures a TemplateApplier.
type TemplateOption func(*TemplateApplier)

// WithDependency overrides the runtime dependency installed by Apply.
func WithDependency(pkg string) TemplateOption {
	return func(a *TemplateApplier) {
		if pkg != "" {
			a.dependency = pkg
		}
	}
}

// WithTemplateReporter sets the progress reporter.
func WithTemplateReporter(r Reporter) TemplateOption {
	return func(a *TemplateApplier) {
		if r != nil {
			a.reporter = r
		}
	}
}

// NewTemplateApplier creates a TemplateApplier.
func NewTemplateApplier(deployer template.Deployer, runner shell.Runner, logger *slog.Logger, opts ...TemplateOption) *TemplateApplier {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	a := &TemplateApplier{
		deployer:   deployer,
		runner:     runner,
		dependency: DefaultTemplateDependency,
		reporter:   nopReporter{},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Apply restructures dir for pm. The install and lint-fix commands run as
// one step: the first failure stops the chain.
func (a *TemplateApplier) Apply(ctx context.Context, dir string, pm pkgmgr.PackageManager) (*TemplateResult, error) {
	result := &TemplateResult{}

	const title = "Applying React Native Blitz template"
	a.reporter.StepStart(title)
	err := a.restructure(ctx, dir, pm, result)
	a.reporter.StepDone(title, err)
	if err != nil {
		return result, err
	}

	a.reporter.Notice("Setting up unistyles...")
	cmds := []shell.Command{
		pm.InstallCommand(a.dependency).WithDir(dir),
		pm.ExecCommand("eslint", ".", "--ext", lintExtensions, "--fix").WithDir(dir),
	}
	for _, c := range cmds {
		result.Commands = append(result.Commands, c.String())
	}
	if err := shell.RunAll(ctx, a.runner, cmds...); err != nil {
		return result, fmt.Errorf("set up %s: %w", a.dependency, err)
	}
	return result, nil
}

func (a *TemplateApplier) restructure(ctx context.Context, dir string, pm pkgmgr.PackageManager, result *TemplateResult) error {
	srcDir := filepath.Join(dir, defs.SrcDir)
	from := filepath.Join(dir, defs.AppTSX)
	to := filepath.Join(srcDir, defs.AppTSX)

	if _, err := os.Stat(from); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s not found", ErrGeneratorLayout, defs.AppTSX)
		}
		return fmt.Errorf("stat %s: %w", defs.AppTSX, err)
	}

	if err := os.MkdirAll(srcDir, defs.DirPerm); err != nil {
		return fmt.Errorf("create %s: %w", defs.SrcDir, err)
	}
	if err := os.Rename(from, to); err != nil {
		return fmt.Errorf("move %s: %w", defs.AppTSX, err)
	}
	a.logger.Debug("moved root component", "from", from, "to", to)

	written, err := a.deployer.Deploy(ctx, dir, template.SetBlitz)
	result.Files = append(result.Files, written...)
	if err != nil {
		return fmt.Errorf("write template files: %w", err)
	}

	err = manifest.Update(filepath.Join(dir, defs.PackageJSON), func(doc *manifest.Document) error {
		manifest.ReplaceScripts(doc, BlitzScripts(pm))
		return nil
	})
	if err != nil {
		return fmt.Errorf("update package scripts: %w", err)
	}
	result.Files = append(result.Files, defs.PackageJSON)
	a.reporter.Notice("Updated package.json with new scripts.")

	return nil
}
