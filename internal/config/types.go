package config

// Config is the effective rn-blitz configuration.
type Config struct {
	// PackageManager preselects the package manager prompt and answers it
	// in headless mode.
	PackageManager string          `mapstructure:"package_manager" yaml:"package_manager"`
	Generator      GeneratorConfig `mapstructure:"generator" yaml:"generator"`
	Template       TemplateConfig  `mapstructure:"template" yaml:"template"`
	NoColor        bool            `mapstructure:"no_color" yaml:"no_color"`
	LogLevel       string          `mapstructure:"log_level" yaml:"log_level"`
}

// GeneratorConfig selects the remote project generator.
type GeneratorConfig struct {
	Package string `mapstructure:"package" yaml:"package"`
	Version string `mapstructure:"version" yaml:"version"`
}

// TemplateConfig configures the Blitz template.
type TemplateConfig struct {
	// Dependency is installed when the template is applied.
	Dependency string `mapstructure:"dependency" yaml:"dependency"`
}
