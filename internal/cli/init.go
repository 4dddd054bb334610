package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/earlbalai/rn-blitz/internal/cli/wizard"
	"github.com/earlbalai/rn-blitz/internal/core/project"
	"github.com/earlbalai/rn-blitz/internal/pkgmgr"
	"github.com/earlbalai/rn-blitz/internal/template"
	"github.com/earlbalai/rn-blitz/internal/ui"
	"github.com/earlbalai/rn-blitz/pkg/version"
)

// Messages printed when setup stops early. The process still exits 0.
const (
	msgCancelled    = "Operation cancelled."
	msgNameRequired = "Please specify the project name."
	msgSetupFailed  = "Error occurred during project setup:"
	msgCompleted    = "Project setup completed successfully!\nPlease be sure to run pod install in the ios directory if you are developing for iOS as well"
)

var initCmd = &cobra.Command{
	Use:   "init [project-name]",
	Short: "Create and set up a new React Native project",
	Long: `Create a new React Native project with the official generator, then apply
the selected configuration:

  --lint       ESLint and Prettier configuration plus recommended devDependencies
  --vscode     .vscode/settings.json with format-on-save
  --template   Blitz template (src/ layout, unistyles themes, extra scripts)

Questions not answered by flags are asked interactively. With
--non-interactive, or when stdin is not a terminal, unanswered questions
take their defaults.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: validateSetupFlags,
	RunE:    runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	addSetupFlags(initCmd)
}

// addSetupFlags registers the flags shared by the root and init commands.
func addSetupFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("package-manager", "p", "", "Package manager: npm, yarn, pnpm, or bun")
	cmd.Flags().Bool("lint", false, "Use the recommended ESLint and Prettier configuration")
	cmd.Flags().Bool("vscode", false, "Set up VSCode settings")
	cmd.Flags().Bool("template", false, "Apply the React Native Blitz template")
	cmd.Flags().Bool("non-interactive", false, "Never prompt; unanswered questions use defaults")
	cmd.Flags().Bool("skip-install", false, "Skip the final dependency install")
}

// validateSetupFlags validates flag values before execution.
func validateSetupFlags(cmd *cobra.Command, _ []string) error {
	if pm := getStringFlag(cmd, "package-manager"); pm != "" {
		if _, err := pkgmgr.Parse(pm); err != nil {
			return fmt.Errorf("invalid --package-manager value %q: must be one of: %s",
				pm, strings.Join(pkgmgr.Names(), ", "))
		}
	}
	return nil
}

// runInit runs the setup pipeline. Setup errors are reported here and never
// returned, so the process exits 0; failed external commands exit 1 from
// the runner.
func runInit(cmd *cobra.Command, args []string) error {
	if deps == nil {
		return errors.New("dependencies not initialized")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	ui.PrintBanner(out, deps.Theme, strings.TrimPrefix(version.GetVersion(), "v"))

	opts, err := buildInitOptions(cmd, args)
	if err != nil {
		return err
	}

	initializer := project.NewInitializer(project.Dependencies{
		Prompter: wizard.NewPrompter(deps.Asker, wizard.Presets{
			Lint:     optionalBoolFlag(cmd, "lint"),
			VSCode:   optionalBoolFlag(cmd, "vscode"),
			Template: optionalBoolFlag(cmd, "template"),
		}),
		Runner:             deps.Runner,
		Deployer:           deps.Deployer,
		Reporter:           ui.NewStepReporter(deps.Theme, deps.Headless, out),
		Logger:             deps.Logger,
		TemplateDependency: deps.Config.Template.Dependency,
	})

	result, err := initializer.Init(ctx, opts)
	if err != nil {
		deps.Logger.Debug("project setup stopped", "error", err)
		reportSetupError(cmd.ErrOrStderr(), err)
		return nil
	}

	printSummary(out, result)
	return nil
}

// buildInitOptions merges arguments, flags and configuration.
func buildInitOptions(cmd *cobra.Command, args []string) (project.InitOptions, error) {
	cfg := deps.Config

	workDir := deps.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return project.InitOptions{}, fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	opts := project.InitOptions{
		WorkDir: workDir,
		Generator: project.Generator{
			Package: cfg.Generator.Package,
			Version: cfg.Generator.Version,
		},
		SkipInstall: getBoolFlag(cmd, "skip-install"),
	}
	if len(args) > 0 {
		opts.ProjectName = args[0]
	}

	if flag := getStringFlag(cmd, "package-manager"); flag != "" {
		pm, err := pkgmgr.Parse(flag)
		if err != nil {
			return project.InitOptions{}, err
		}
		opts.PackageManager = pm
	}
	if cfg.PackageManager != "" {
		pm, err := pkgmgr.Parse(cfg.PackageManager)
		if err != nil {
			return project.InitOptions{}, err
		}
		opts.DefaultPackageManager = pm
	}

	return opts, nil
}

// reportSetupError prints the message for err.
func reportSetupError(w io.Writer, err error) {
	switch {
	case errors.Is(err, wizard.ErrCancelled):
		_, _ = fmt.Fprintln(w, msgCancelled)
	case errors.Is(err, project.ErrProjectNameRequired):
		_, _ = fmt.Fprintln(w, msgNameRequired)
	default:
		_, _ = fmt.Fprintln(w, msgSetupFailed, err)
	}
}

// printSummary prints the success card and the next steps.
func printSummary(w io.Writer, result *project.InitResult) {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, ui.RenderSuccessCard(deps.Theme, "Project created",
		ui.KeyValue{Key: "Project", Value: result.Target.Dir},
		ui.KeyValue{Key: "Package manager", Value: result.PackageManager.String()},
		ui.KeyValue{Key: "Files", Value: fmt.Sprintf("%d written", len(result.Files))},
	))

	data := template.NewNextStepsContext(result.Target.Name, result.PackageManager,
		template.WithTemplate(result.TemplateApplied))
	md, err := deps.Renderer.Render(template.NextStepsTemplate, data)
	if err != nil {
		deps.Logger.Warn("render next steps", "error", err)
		_, _ = fmt.Fprintln(w, msgCompleted)
		return
	}
	ui.PrintNextSteps(w, deps.Theme, md)
}
