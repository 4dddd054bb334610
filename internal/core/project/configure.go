package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/earlbalai/rn-blitz/internal/defs"
	"github.com/earlbalai/rn-blitz/internal/manifest"
	"github.com/earlbalai/rn-blitz/internal/pkgmgr"
	"github.com/earlbalai/rn-blitz/internal/template"
)

// recommendedDevDependencies are merged into every generated project.
var recommendedDevDependencies = []manifest.Entry{
	{Key: "@babel/core", Value: "^7.20.0"},
	{Key: "@babel/preset-env", Value: "^7.20.0"},
	{Key: "@babel/runtime", Value: "^7.20.0"},
	{Key: "@react-native/babel-preset", Value: "0.73.21"},
	{Key: "@react-native/eslint-config", Value: "0.73.2"},
	{Key: "@react-native/metro-config", Value: "0.73.5"},
	{Key: "@react-native/typescript-config", Value: "0.73.1"},
	{Key: "@types/jest", Value: "^29.2.1"},
	{Key: "@types/react", Value: "^18.2.6"},
	{Key: "@types/react-test-renderer", Value: "^18.0.0"},
	{Key: "@typescript-eslint/eslint-plugin", Value: "^7.0.1"},
	{Key: "@typescript-eslint/parser", Value: "^7.0.1"},
	{Key: "babel-jest", Value: "^29.6.3"},
	{Key: "eslint", Value: "^8.56.0"},
	{Key: "eslint-plugin-jest", Value: "^27.6.0"},
	{Key: "jest", Value: "^29.6.3"},
	{Key: "prettier", Value: "2.8.8"},
	{Key: "react-test-renderer", Value: "18.2.0"},
	{Key: "typescript", Value: "^5.3.2"},
}

// RecommendedDevDependencies returns a copy of the devDependencies merged
// into package.json, in write order.
func RecommendedDevDependencies() []manifest.Entry {
	out := make([]manifest.Entry, len(recommendedDevDependencies))
	copy(out, recommendedDevDependencies)
	return out
}

// ConfigureResult lists what Configurator.Apply wrote.
type ConfigureResult struct {
	Files []string
}

// Configurator writes the lint, formatter and editor configuration and
// patches the manifest.
type Configurator struct {
	deployer template.Deployer
	reporter Reporter
	logger   *slog.Logger
}

// NewConfigurator creates a Configurator that deploys file sets through
// deployer. A nil reporter or logger disables that output.
func NewConfigurator(deployer template.Deployer, reporter Reporter, logger *slog.Logger) *Configurator {
	if reporter == nil {
		reporter = nopReporter{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Configurator{deployer: deployer, reporter: reporter, logger: logger}
}

// Apply writes the configuration selected by choices into dir and merges
// the recommended devDependencies into dir/package.json. A missing or
// malformed manifest is an error. Files written before a failure are left
// in place.
func (c *Configurator) Apply(ctx context.Context, choices SetupChoices, dir string, pm pkgmgr.PackageManager) (*ConfigureResult, error) {
	c.logger.Debug("applying project configuration",
		"dir", dir,
		"linting", choices.UseRecommendedLinting,
		"vscode", choices.SetupVSCodeSettings,
		"package_manager", pm,
	)

	result := &ConfigureResult{}

	if choices.UseRecommendedLinting {
		if err := c.deploy(ctx, dir, template.SetLint, "Writing lint and formatter config", result); err != nil {
			return result, fmt.Errorf("write lint config: %w", err)
		}
	}

	if choices.SetupVSCodeSettings {
		if err := c.deploy(ctx, dir, template.SetVSCode, "Writing VSCode settings", result); err != nil {
			return result, fmt.Errorf("write vscode settings: %w", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	const title = "Updating package.json devDependencies"
	c.reporter.StepStart(title)
	err := manifest.Update(filepath.Join(dir, defs.PackageJSON), func(doc *manifest.Document) error {
		return manifest.MergeDevDependencies(doc, recommendedDevDependencies)
	})
	c.reporter.StepDone(title, err)
	if err != nil {
		return result, fmt.Errorf("update package manifest: %w", err)
	}
	result.Files = append(result.Files, defs.PackageJSON)

	return result, nil
}

func (c *Configurator) deploy(ctx context.Context, dir, set, title string, result *ConfigureResult) error {
	c.reporter.StepStart(title)
	written, err := c.deployer.Deploy(ctx, dir, set)
	c.reporter.StepDone(title, err)
	result.Files = append(result.Files, written...)
	if err != nil {
		return err
	}
	c.logger.Debug("deployed file set", "set", set, "files", written)
	return nil
}
