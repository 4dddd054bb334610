package project

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earlbalai/rn-blitz/internal/pkgmgr"
	"github.com/earlbalai/rn-blitz/internal/shell"
	"github.com/earlbalai/rn-blitz/internal/shell/shelltest"
	"github.com/earlbalai/rn-blitz/internal/template"
)

// --- Test doubles ---

type fakePrompter struct {
	name        string
	pm          pkgmgr.PackageManager
	choices     SetupChoices
	useTemplate bool
	err         error

	asked      []string
	defaultPM  pkgmgr.PackageManager
	errOnStage string
}

func (f *fakePrompter) fail(stage string) error {
	f.asked = append(f.asked, stage)
	if f.errOnStage == stage {
		return f.err
	}
	return nil
}

func (f *fakePrompter) ProjectName(context.Context) (string, error) {
	if err := f.fail("name"); err != nil {
		return "", err
	}
	return f.name, nil
}

func (f *fakePrompter) PackageManager(_ context.Context, def pkgmgr.PackageManager) (pkgmgr.PackageManager, error) {
	f.defaultPM = def
	if err := f.fail("package_manager"); err != nil {
		return "", err
	}
	if f.pm == "" {
		return def, nil
	}
	return f.pm, nil
}

func (f *fakePrompter) SetupChoices(context.Context) (SetupChoices, error) {
	if err := f.fail("setup"); err != nil {
		return SetupChoices{}, err
	}
	return f.choices, nil
}

func (f *fakePrompter) UseTemplate(context.Context) (bool, error) {
	if err := f.fail("template"); err != nil {
		return false, err
	}
	return f.useTemplate, nil
}

type recordingReporter struct {
	notices []string
	steps   []string
}

func (r *recordingReporter) StepStart(title string) { r.steps = append(r.steps, title) }
func (r *recordingReporter) StepDone(string, error) {}
func (r *recordingReporter) Notice(msg string)      { r.notices = append(r.notices, msg) }

// generatorRecorder simulates the React Native generator by creating the
// project directory with a manifest and root component.
func generatorRecorder(t *testing.T, workDir string) *shelltest.Recorder {
	t.Helper()
	return &shelltest.Recorder{
		OnRun: func(cmd shell.Command) error {
			if len(cmd.Args) < 2 || cmd.Args[len(cmd.Args)-2] != "init" {
				return nil
			}
			dir := filepath.Join(workDir, cmd.Args[len(cmd.Args)-1])
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			seedGeneratedProject(t, dir)
			return nil
		},
	}
}

func newTestInitializer(t *testing.T, p Prompter, r shell.Runner, rep Reporter) Initializer {
	t.Helper()
	fsys, err := template.EmbeddedTemplates()
	require.NoError(t, err)
	return NewInitializer(Dependencies{
		Prompter: p,
		Runner:   r,
		Deployer: template.NewDeployer(fsys),
		Reporter: rep,
	})
}

// --- Initializer tests ---

func TestInit_FullPipelineWithTemplate(t *testing.T) {
	workDir := t.TempDir()
	rec := generatorRecorder(t, workDir)
	prompter := &fakePrompter{
		pm:          pkgmgr.PNPM,
		choices:     SetupChoices{UseRecommendedLinting: true, SetupVSCodeSettings: true},
		useTemplate: true,
	}

	result, err := newTestInitializer(t, prompter, rec, nil).Init(context.Background(), InitOptions{
		WorkDir:     workDir,
		ProjectName: "AwesomeApp",
	})
	require.NoError(t, err)

	projectDir := filepath.Join(workDir, "AwesomeApp")
	assert.Equal(t, projectDir, result.Target.Dir)
	assert.Equal(t, pkgmgr.PNPM, result.PackageManager)
	assert.True(t, result.TemplateApplied)

	assert.Equal(t, []string{
		"pnpm dlx react-native@latest init AwesomeApp",
		"pnpm install react-native-unistyles",
		"pnpm exec eslint . --ext .js,.jsx,.ts,.tsx --fix",
		"pnpm install",
	}, rec.Lines())
	assert.Equal(t, workDir, rec.Commands[0].Dir)
	for _, c := range rec.Commands[1:] {
		assert.Equal(t, projectDir, c.Dir)
	}

	assert.Equal(t, []string{"package_manager", "setup", "template"}, prompter.asked)

	for _, f := range []string{".eslintrc.js", ".prettierrc.js", ".vscode/settings.json", "src/App.tsx", "index.js"} {
		assert.FileExists(t, filepath.Join(projectDir, filepath.FromSlash(f)))
	}
}

func TestInit_NameArgumentSkipsPrompt(t *testing.T) {
	workDir := t.TempDir()
	prompter := &fakePrompter{}

	_, err := newTestInitializer(t, prompter, generatorRecorder(t, workDir), nil).Init(context.Background(), InitOptions{
		WorkDir:     workDir,
		ProjectName: "my_app",
	})
	require.NoError(t, err)

	assert.NotContains(t, prompter.asked, "name")
	assert.DirExists(t, filepath.Join(workDir, "my_app"))
}

func TestInit_MissingNamePromptsOnce(t *testing.T) {
	workDir := t.TempDir()
	prompter := &fakePrompter{name: "Prompted"}

	result, err := newTestInitializer(t, prompter, generatorRecorder(t, workDir), nil).Init(context.Background(), InitOptions{
		WorkDir: workDir,
	})
	require.NoError(t, err)

	assert.Equal(t, "Prompted", result.Target.Name)
	count := 0
	for _, stage := range prompter.asked {
		if stage == "name" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestInit_EmptyNameAborts(t *testing.T) {
	workDir := t.TempDir()
	rec := &shelltest.Recorder{}
	prompter := &fakePrompter{name: ""}

	_, err := newTestInitializer(t, prompter, rec, nil).Init(context.Background(), InitOptions{WorkDir: workDir})
	require.ErrorIs(t, err, ErrProjectNameRequired)

	assert.Empty(t, rec.Commands)
	assert.Equal(t, []string{"name"}, prompter.asked)
}

func TestInit_CancellationPropagates(t *testing.T) {
	errCancelled := errors.New("cancelled")
	workDir := t.TempDir()
	rec := generatorRecorder(t, workDir)
	prompter := &fakePrompter{err: errCancelled, errOnStage: "setup"}

	_, err := newTestInitializer(t, prompter, rec, nil).Init(context.Background(), InitOptions{
		WorkDir:     workDir,
		ProjectName: "App",
	})
	require.ErrorIs(t, err, errCancelled)

	// The generator already ran; nothing after the prompt did.
	assert.Len(t, rec.Commands, 1)
	assert.NoFileExists(t, filepath.Join(workDir, "App", ".eslintrc.js"))
}

func TestInit_PackageManagerFlagSkipsPrompt(t *testing.T) {
	workDir := t.TempDir()
	rec := generatorRecorder(t, workDir)
	prompter := &fakePrompter{}

	_, err := newTestInitializer(t, prompter, rec, nil).Init(context.Background(), InitOptions{
		WorkDir:        workDir,
		ProjectName:    "App",
		PackageManager: pkgmgr.Bun,
	})
	require.NoError(t, err)

	assert.NotContains(t, prompter.asked, "package_manager")
	assert.Equal(t, "bunx react-native@latest init App", rec.Lines()[0])
	assert.Equal(t, "bun install", rec.Lines()[1])
}

func TestInit_DefaultPackageManagerPreselected(t *testing.T) {
	workDir := t.TempDir()
	prompter := &fakePrompter{}

	_, err := newTestInitializer(t, prompter, generatorRecorder(t, workDir), nil).Init(context.Background(), InitOptions{
		WorkDir:               workDir,
		ProjectName:           "App",
		DefaultPackageManager: pkgmgr.Yarn,
	})
	require.NoError(t, err)
	assert.Equal(t, pkgmgr.Yarn, prompter.defaultPM)

	workDir = t.TempDir()
	prompter = &fakePrompter{}
	_, err = newTestInitializer(t, prompter, generatorRecorder(t, workDir), nil).Init(context.Background(), InitOptions{
		WorkDir:     workDir,
		ProjectName: "App",
	})
	require.NoError(t, err)
	assert.Equal(t, pkgmgr.NPM, prompter.defaultPM)
}

func TestInit_DeclineTemplateLeavesProjectAlone(t *testing.T) {
	workDir := t.TempDir()
	rec := generatorRecorder(t, workDir)
	rep := &recordingReporter{}
	prompter := &fakePrompter{useTemplate: false}

	result, err := newTestInitializer(t, prompter, rec, rep).Init(context.Background(), InitOptions{
		WorkDir:     workDir,
		ProjectName: "App",
	})
	require.NoError(t, err)
	assert.False(t, result.TemplateApplied)

	projectDir := filepath.Join(workDir, "App")
	assert.NoDirExists(t, filepath.Join(projectDir, "src"))
	assert.FileExists(t, filepath.Join(projectDir, "App.tsx"))

	scripts := readScripts(t, projectDir)
	assert.Equal(t, map[string]string{"start": "react-native start"}, scripts)

	assert.Contains(t, rep.notices, "Skipping React Native Blitz template setup.")
	assert.Equal(t, []string{"npx react-native@latest init App", "npm install"}, rec.Lines())
}

func TestInit_SkipInstall(t *testing.T) {
	workDir := t.TempDir()
	rec := generatorRecorder(t, workDir)

	_, err := newTestInitializer(t, &fakePrompter{}, rec, nil).Init(context.Background(), InitOptions{
		WorkDir:     workDir,
		ProjectName: "App",
		SkipInstall: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"npx react-native@latest init App"}, rec.Lines())
}

func TestInit_GeneratorFailureStopsPipeline(t *testing.T) {
	workDir := t.TempDir()
	exits := &shelltest.ExitRecorder{}
	failing := &shelltest.Recorder{
		OnRun: func(shell.Command) error { return &shell.ExitError{Code: 1} },
	}
	runner := shell.NewFatalRunner(failing, nil, shell.WithExitFunc(exits.Exit), shell.WithErrorOutput(io.Discard))
	prompter := &fakePrompter{choices: SetupChoices{UseRecommendedLinting: true}}

	_, err := newTestInitializer(t, prompter, runner, nil).Init(context.Background(), InitOptions{
		WorkDir:     workDir,
		ProjectName: "App",
	})
	require.ErrorIs(t, err, shell.ErrCommandFailed)

	assert.Equal(t, []int{1}, exits.Codes)
	assert.Len(t, failing.Commands, 1)
	assert.NotContains(t, prompter.asked, "setup")
	assert.NoDirExists(t, filepath.Join(workDir, "App"))
}

func TestInit_CustomGenerator(t *testing.T) {
	workDir := t.TempDir()
	rec := generatorRecorder(t, workDir)

	_, err := newTestInitializer(t, &fakePrompter{}, rec, nil).Init(context.Background(), InitOptions{
		WorkDir:     workDir,
		ProjectName: "App",
		Generator:   Generator{Package: "react-native", Version: "0.73.6"},
		SkipInstall: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"npx react-native@0.73.6 init App"}, rec.Lines())
}

func readScripts(t *testing.T, dir string) map[string]string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	require.NoError(t, err)

	var pkg struct {
		Scripts map[string]string `json:"scripts"`
	}
	require.NoError(t, json.Unmarshal(data, &pkg))
	return pkg.Scripts
}
