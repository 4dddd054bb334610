package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earlbalai/rn-blitz/internal/cli/wizard"
	"github.com/earlbalai/rn-blitz/internal/config"
	"github.com/earlbalai/rn-blitz/internal/shell"
	"github.com/earlbalai/rn-blitz/internal/shell/shelltest"
	"github.com/earlbalai/rn-blitz/internal/template"
	"github.com/earlbalai/rn-blitz/internal/ui"
)

const testManifest = `{
  "name": "AwesomeApp",
  "version": "0.0.1",
  "scripts": {
    "start": "react-native start"
  },
  "devDependencies": {
    "foo": "1.0.0"
  }
}
`

// generatorRecorder simulates the generator creating <workDir>/<name>.
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
			if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(testManifest), 0o644); err != nil {
				return err
			}
			return os.WriteFile(filepath.Join(dir, "App.tsx"), []byte("export default function App() {}\n"), 0o644)
		},
	}
}

// cancellingAsker cancels on the first question.
type cancellingAsker struct{}

func (cancellingAsker) Ask(_ context.Context, _ wizard.Question) (string, error) {
	return "", wizard.ErrCancelled
}

func testDeps(t *testing.T, workDir string, runner shell.Runner) *Dependencies {
	t.Helper()
	fsys, err := template.EmbeddedTemplates()
	require.NoError(t, err)

	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)

	return &Dependencies{
		Config:   config.NewDefaultConfig(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Theme:    ui.NewTheme(true),
		Headless: hm,
		Asker:    wizard.HeadlessAsker{},
		Runner:   runner,
		Deployer: template.NewDeployer(fsys),
		Renderer: template.NewRenderer(fsys),
		WorkDir:  workDir,
	}
}

// resetFlags restores flag defaults; cobra keeps flag state between
// Execute calls on the same command tree.
func resetFlags(cmds ...*cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	for _, c := range cmds {
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
	}
}

func executeCommand(t *testing.T, d *Dependencies, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd, initCmd, configCmd, versionCmd)
	SetDeps(d)
	t.Cleanup(func() { SetDeps(nil) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_Registration(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"init", "version", "config"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
	assert.Equal(t, "blitz [project-name]", rootCmd.Use)
	assert.Equal(t, "init [project-name]", initCmd.Use)
}

func TestSetupFlags(t *testing.T) {
	for _, cmd := range []*cobra.Command{rootCmd, initCmd} {
		for _, name := range []string{"package-manager", "lint", "vscode", "template", "non-interactive", "skip-install"} {
			assert.NotNil(t, cmd.Flags().Lookup(name), "%s should have --%s", cmd.Name(), name)
		}
	}
	assert.Equal(t, "p", rootCmd.Flags().Lookup("package-manager").Shorthand)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestRun_FullSetup(t *testing.T) {
	workDir := t.TempDir()
	rec := generatorRecorder(t, workDir)

	stdout, stderr, err := executeCommand(t, testDeps(t, workDir, rec),
		"AwesomeApp", "-p", "yarn", "--lint", "--vscode", "--template")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	assert.Equal(t, []string{
		"yarn dlx react-native@latest init AwesomeApp",
		"yarn add react-native-unistyles",
		"yarn eslint . --ext .js,.jsx,.ts,.tsx --fix",
		"yarn install",
	}, rec.Lines())

	projectDir := filepath.Join(workDir, "AwesomeApp")
	assert.FileExists(t, filepath.Join(projectDir, ".eslintrc.js"))
	assert.FileExists(t, filepath.Join(projectDir, ".vscode", "settings.json"))
	assert.FileExists(t, filepath.Join(projectDir, "src", "App.tsx"))
	assert.NoFileExists(t, filepath.Join(projectDir, "App.tsx"))

	assert.Contains(t, stdout, "Welcome to React Native Blitz v")
	assert.Contains(t, stdout, "Project setup completed successfully!")
	assert.Contains(t, stdout, "cd AwesomeApp")
	assert.Contains(t, stdout, "yarn run lint:fix")
	assert.Contains(t, stdout, "pod install")

	pkg, err := os.ReadFile(filepath.Join(projectDir, "package.json"))
	require.NoError(t, err)
	assert.Contains(t, string(pkg), `"lint:fix": "yarn run lint -- --fix"`)
}

func TestRun_InitSubcommandHeadlessDefaults(t *testing.T) {
	workDir := t.TempDir()
	rec := generatorRecorder(t, workDir)

	stdout, _, err := executeCommand(t, testDeps(t, workDir, rec), "init", "MyApp", "--skip-install")
	require.NoError(t, err)

	// Headless confirms default to false: no configuration, no template.
	assert.Equal(t, []string{"npx react-native@latest init MyApp"}, rec.Lines())
	assert.NoFileExists(t, filepath.Join(workDir, "MyApp", ".eslintrc.js"))
	assert.Contains(t, stdout, "Skipping React Native Blitz template setup.")
}

func TestRun_ConfiguredPackageManagerIsDefault(t *testing.T) {
	workDir := t.TempDir()
	rec := generatorRecorder(t, workDir)
	d := testDeps(t, workDir, rec)
	d.Config.PackageManager = "pnpm"
	d.Config.Generator.Version = "0.73.6"

	_, _, err := executeCommand(t, d, "App", "--skip-install")
	require.NoError(t, err)
	assert.Equal(t, []string{"pnpm dlx react-native@0.73.6 init App"}, rec.Lines())
}

func TestRun_MissingNameExitsCleanly(t *testing.T) {
	rec := &shelltest.Recorder{}

	_, stderr, err := executeCommand(t, testDeps(t, t.TempDir(), rec))
	require.NoError(t, err)
	assert.Equal(t, msgNameRequired+"\n", stderr)
	assert.Empty(t, rec.Commands)
}

func TestRun_CancelledExitsCleanly(t *testing.T) {
	rec := &shelltest.Recorder{}
	d := testDeps(t, t.TempDir(), rec)
	d.Asker = cancellingAsker{}

	_, stderr, err := executeCommand(t, d, "App")
	require.NoError(t, err)
	assert.Equal(t, msgCancelled+"\n", stderr)
	assert.Empty(t, rec.Commands)
}

func TestRun_SetupErrorIsReported(t *testing.T) {
	workDir := t.TempDir()
	// Generator "succeeds" without creating anything, so the template
	// cannot find the root component.
	rec := &shelltest.Recorder{}

	_, stderr, err := executeCommand(t, testDeps(t, workDir, rec), "Ghost", "--template")
	require.NoError(t, err)
	assert.Contains(t, stderr, msgSetupFailed)
}

func TestRun_InvalidPackageManagerFlag(t *testing.T) {
	rec := &shelltest.Recorder{}

	_, _, err := executeCommand(t, testDeps(t, t.TempDir(), rec), "App", "-p", "cargo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid --package-manager value "cargo"`)
	assert.Empty(t, rec.Commands)
}

func TestRun_TooManyArgs(t *testing.T) {
	_, _, err := executeCommand(t, testDeps(t, t.TempDir(), &shelltest.Recorder{}), "a", "b")
	require.Error(t, err)
}

func TestReportSetupError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"cancelled", wizard.ErrCancelled, "Operation cancelled.\n"},
		{"wrapped_cancelled", errors.Join(errors.New("ctx"), wizard.ErrCancelled), "Operation cancelled.\n"},
		{"generic", errors.New("boom"), "Error occurred during project setup: boom\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportSetupError(&buf, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestConfigCmd(t *testing.T) {
	d := testDeps(t, t.TempDir(), &shelltest.Recorder{})
	d.ConfigFile = "/tmp/blitz.yaml"

	stdout, _, err := executeCommand(t, d, "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "# /tmp/blitz.yaml\n")
	assert.Contains(t, stdout, "package_manager: npm")
	assert.Contains(t, stdout, "dependency: react-native-unistyles")
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := executeCommand(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "React Native Blitz")
}

func TestInitDependencies(t *testing.T) {
	t.Cleanup(func() { SetDeps(nil) })
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("package_manager: bun\n"), 0o644))

	cmd := &cobra.Command{}
	cmd.Flags().String("config", cfgFile, "")
	cmd.Flags().Bool("non-interactive", true, "")
	cmd.SetErr(io.Discard)

	require.NoError(t, InitDependencies(cmd))
	d := GetDeps()
	require.NotNil(t, d)
	assert.Equal(t, "bun", d.Config.PackageManager)
	assert.Equal(t, cfgFile, d.ConfigFile)
	assert.True(t, d.Headless.IsHeadless())
	assert.True(t, d.Theme.NoColor)
	assert.IsType(t, wizard.HeadlessAsker{}, d.Asker)
}

func TestInitDependencies_InvalidConfig(t *testing.T) {
	t.Cleanup(func() { SetDeps(nil) })
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("package_manager: cargo\n"), 0o644))

	cmd := &cobra.Command{}
	cmd.Flags().String("config", cfgFile, "")

	err := InitDependencies(cmd)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Nil(t, GetDeps())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn", false)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	newLogger(&buf, "warn", true).Debug("debug line")
	assert.Contains(t, buf.String(), "debug line")
}
