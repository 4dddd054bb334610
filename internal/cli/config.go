package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration blitz would use, after merging defaults, the
config file and BLITZ_* environment variables (e.g. BLITZ_PACKAGE_MANAGER,
BLITZ_GENERATOR_VERSION).`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return errors.New("dependencies not initialized")
	}

	data, err := yaml.Marshal(deps.Config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	out := cmd.OutOrStdout()
	if deps.ConfigFile != "" {
		_, _ = fmt.Fprintf(out, "# %s\n", deps.ConfigFile)
	}
	_, err = out.Write(data)
	return err
}
