package config

import "github.com/spf13/viper"

// Default values.
const (
	DefaultPackageManager     = "npm"
	DefaultGeneratorPackage   = "react-native"
	DefaultGeneratorVersion   = "latest"
	DefaultTemplateDependency = "react-native-unistyles"
	DefaultLogLevel           = "warn"
)

// Configuration keys.
const (
	KeyPackageManager     = "package_manager"
	KeyGeneratorPackage   = "generator.package"
	KeyGeneratorVersion   = "generator.version"
	KeyTemplateDependency = "template.dependency"
	KeyNoColor            = "no_color"
	KeyLogLevel           = "log_level"
)

// NewDefaultConfig returns the configuration used when nothing is set.
func NewDefaultConfig() *Config {
	return &Config{
		PackageManager: DefaultPackageManager,
		Generator: GeneratorConfig{
			Package: DefaultGeneratorPackage,
			Version: DefaultGeneratorVersion,
		},
		Template: TemplateConfig{
			Dependency: DefaultTemplateDependency,
		},
		LogLevel: DefaultLogLevel,
	}
}

// setDefaults registers every key with viper so environment variables are
// picked up by Unmarshal.
func setDefaults(v *viper.Viper) {
	d := NewDefaultConfig()
	v.SetDefault(KeyPackageManager, d.PackageManager)
	v.SetDefault(KeyGeneratorPackage, d.Generator.Package)
	v.SetDefault(KeyGeneratorVersion, d.Generator.Version)
	v.SetDefault(KeyTemplateDependency, d.Template.Dependency)
	v.SetDefault(KeyNoColor, d.NoColor)
	v.SetDefault(KeyLogLevel, d.LogLevel)
}
