package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/earlbalai/rn-blitz/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "blitz [project-name]",
	Short: "React Native Blitz: scaffold a React Native app with recommended tooling",
	Long: `React Native Blitz creates a new React Native project and optionally applies
recommended linting, formatter and editor settings, and the Blitz template
(src/ layout with react-native-unistyles themes).

Usage patterns:
  blitz <project-name>        Create ./<project-name>/ and set it up
  blitz                       Ask for the project name first
  blitz init <project-name>   Same as "blitz <project-name>"

Examples:
  blitz AwesomeApp -p pnpm --lint --vscode --template
  blitz AwesomeApp --non-interactive --skip-install`,
	Args:              cobra.MaximumNArgs(1),
	Version:           version.GetVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: ensureDependencies,
	RunE:              runInit,
}

// Execute runs the root command. A returned error means a usage or
// configuration problem; setup failures are reported and swallowed.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("%s\n", version.GetFullVersion()))

	rootCmd.PersistentFlags().String("config", "", "Config file (default: $XDG_CONFIG_HOME/rn-blitz/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	addSetupFlags(rootCmd)
	rootCmd.PreRunE = validateSetupFlags
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// optionalBoolFlag returns nil unless the flag was set explicitly.
func optionalBoolFlag(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v := getBoolFlag(cmd, name)
	return &v
}
