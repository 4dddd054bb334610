package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/earlbalai/rn-blitz/internal/pkgmgr"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for correctness. Every problem is
// reported, not just the first.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if cfg.PackageManager != "" {
		if _, err := pkgmgr.Parse(cfg.PackageManager); err != nil {
			errs = append(errs, ValidationError{
				Field:   KeyPackageManager,
				Message: fmt.Sprintf("must be one of: %s", strings.Join(pkgmgr.Names(), ", ")),
				Value:   cfg.PackageManager,
			})
		}
	}

	if strings.TrimSpace(cfg.Generator.Package) == "" {
		errs = append(errs, ValidationError{
			Field:   KeyGeneratorPackage,
			Message: "must not be empty",
		})
	}

	if strings.TrimSpace(cfg.Template.Dependency) == "" {
		errs = append(errs, ValidationError{
			Field:   KeyTemplateDependency,
			Message: "must not be empty",
		})
	}

	if cfg.LogLevel != "" && !slices.Contains(validLogLevels, strings.ToLower(cfg.LogLevel)) {
		errs = append(errs, ValidationError{
			Field:   KeyLogLevel,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
			Value:   cfg.LogLevel,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
