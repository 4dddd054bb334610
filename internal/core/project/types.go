package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/earlbalai/rn-blitz/internal/pkgmgr"
)

// SetupChoices holds the yes/no configuration answers.
type SetupChoices struct {
	UseRecommendedLinting bool
	SetupVSCodeSettings   bool
}

// Target is the directory a project is generated into.
type Target struct {
	Name string // Project name passed to the generator.
	Dir  string // Absolute path of <workDir>/<Name>.
}

// NewTarget resolves name against workDir. The name is used verbatim once
// it passes ValidateName.
func NewTarget(workDir, name string) (Target, error) {
	if err := ValidateName(name); err != nil {
		return Target{}, err
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return Target{}, fmt.Errorf("resolve working directory: %w", err)
	}
	return Target{Name: name, Dir: filepath.Join(abs, name)}, nil
}

// ValidateName rejects names that are empty or would not produce a single
// child directory of the working directory.
func ValidateName(name string) error {
	switch {
	case name == "":
		return ErrProjectNameRequired
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidProjectName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q must not contain path separators", ErrInvalidProjectName, name)
	case strings.HasPrefix(name, "-"):
		return fmt.Errorf("%w: %q must not start with '-'", ErrInvalidProjectName, name)
	case strings.TrimSpace(name) != name || strings.ContainsAny(name, " \t\r\n"):
		return fmt.Errorf("%w: %q must not contain whitespace", ErrInvalidProjectName, name)
	}
	return nil
}

// Generator identifies the remote package that scaffolds the app.
type Generator struct {
	Package string // e.g. "react-native"
	Version string // e.g. "latest"
}

// DefaultGenerator is the React Native community initializer.
var DefaultGenerator = Generator{Package: "react-native", Version: "latest"}

// DefaultTemplateDependency is installed when the Blitz template is applied.
const DefaultTemplateDependency = "react-native-unistyles"

// InitOptions configures a project setup run.
type InitOptions struct {
	WorkDir     string // Directory the project is created in.
	ProjectName string // Empty means ask.

	// PackageManager skips the prompt when set.
	PackageManager pkgmgr.PackageManager
	// DefaultPackageManager preselects the prompt. Empty means npm.
	DefaultPackageManager pkgmgr.PackageManager

	Generator   Generator // Zero value means DefaultGenerator.
	SkipInstall bool      // Skip the final "<pm> install".
}

// InitResult summarizes a completed run.
type InitResult struct {
	Target          Target
	PackageManager  pkgmgr.PackageManager
	Choices         SetupChoices
	TemplateApplied bool
	Files           []string // Files written, relative to Target.Dir.
}

// Reporter receives progress notifications from the pipeline.
type Reporter interface {
	// StepStart marks the beginning of a file-writing step.
	StepStart(title string)
	// StepDone marks its end. err is nil on success.
	StepDone(title string, err error)
	// Notice prints an informational line.
	Notice(msg string)
}

type nopReporter struct{}

func (nopReporter) StepStart(string)       {}
func (nopReporter) StepDone(string, error) {}
func (nopReporter) Notice(string)          {}
