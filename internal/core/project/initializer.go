package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/earlbalai/rn-blitz/internal/pkgmgr"
	"github.com/earlbalai/rn-blitz/internal/shell"
	"github.com/earlbalai/rn-blitz/internal/template"
)

// Prompter collects the answers the pipeline needs, in the order it asks
// for them. Implementations return an error when the user cancels.
type Prompter interface {
	ProjectName(ctx context.Context) (string, error)
	PackageManager(ctx context.Context, def pkgmgr.PackageManager) (pkgmgr.PackageManager, error)
	SetupChoices(ctx context.Context) (SetupChoices, error)
	UseTemplate(ctx context.Context) (bool, error)
}

// Initializer runs the full project setup pipeline.
type Initializer interface {
	// Init resolves the project name, runs the generator, applies the
	// selected configuration and template, and installs dependencies.
	Init(ctx context.Context, opts InitOptions) (*InitResult, error)
}

// projectInitializer is the concrete implementation of Initializer.
type projectInitializer struct {
	prompter     Prompter
	runner       shell.Runner
	configurator *Configurator
	templates    *TemplateApplier
	reporter     Reporter
	logger       *slog.Logger
}

// Compile-time interface compliance check.
var _ Initializer = (*projectInitializer)(nil)

// Dependencies groups the collaborators of NewInitializer.
type Dependencies struct {
	Prompter Prompter
	Runner   shell.Runner
	Deployer template.Deployer
	Reporter Reporter
	Logger   *slog.Logger

	// TemplateDependency overrides DefaultTemplateDependency.
	TemplateDependency string
}

// NewInitializer creates an Initializer with the given dependencies.
func NewInitializer(deps Dependencies) Initializer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	reporter := deps.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &projectInitializer{
		prompter:     deps.Prompter,
		runner:       deps.Runner,
		configurator: NewConfigurator(deps.Deployer, reporter, logger),
		templates: NewTemplateApplier(deps.Deployer, deps.Runner, logger,
			WithDependency(deps.TemplateDependency),
			WithTemplateReporter(reporter),
		),
		reporter: reporter,
		logger:   logger,
	}
}

// Init runs the pipeline. External command failures are returned as-is; a
// FatalRunner terminates the process before they get here.
func (i *projectInitializer) Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	// Step 1: project name
	name := opts.ProjectName
	if name == "" {
		var err error
		if name, err = i.prompter.ProjectName(ctx); err != nil {
			return nil, err
		}
	}
	target, err := NewTarget(opts.WorkDir, name)
	if err != nil {
		return nil, err
	}

	// Step 2: package manager
	pm := opts.PackageManager
	if pm == "" {
		def := opts.DefaultPackageManager
		if def == "" {
			def = pkgmgr.Default
		}
		if pm, err = i.prompter.PackageManager(ctx, def); err != nil {
			return nil, err
		}
	}

	result := &InitResult{Target: target, PackageManager: pm}

	i.logger.Info("initializing React Native project",
		"name", target.Name,
		"dir", target.Dir,
		"package_manager", pm,
	)

	// Step 3: generator
	gen := opts.Generator
	if gen.Package == "" {
		gen = DefaultGenerator
	}
	genCmd := pm.InitCommand(gen.Package, gen.Version, target.Name).WithDir(opts.WorkDir)
	if err := i.runner.Run(ctx, genCmd); err != nil {
		return result, fmt.Errorf("run generator: %w", err)
	}

	// Step 4: setup choices
	choices, err := i.prompter.SetupChoices(ctx)
	if err != nil {
		return result, err
	}
	result.Choices = choices

	// Step 5: configuration
	configured, err := i.configurator.Apply(ctx, choices, target.Dir, pm)
	if configured != nil {
		result.Files = append(result.Files, configured.Files...)
	}
	if err != nil {
		return result, fmt.Errorf("configure project: %w", err)
	}

	// Step 6: template
	useTemplate, err := i.prompter.UseTemplate(ctx)
	if err != nil {
		return result, err
	}
	if useTemplate {
		applied, err := i.templates.Apply(ctx, target.Dir, pm)
		if applied != nil {
			result.Files = append(result.Files, applied.Files...)
		}
		if err != nil {
			return result, fmt.Errorf("apply template: %w", err)
		}
		result.TemplateApplied = true
	} else {
		i.reporter.Notice("Skipping React Native Blitz template setup.")
	}

	// Step 7: install
	if opts.SkipInstall {
		i.logger.Debug("skipping dependency install")
		return result, nil
	}
	if err := i.runner.Run(ctx, pm.InstallCommand().WithDir(target.Dir)); err != nil {
		return result, fmt.Errorf("install dependencies: %w", err)
	}

	return result, nil
}
