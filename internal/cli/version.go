package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/earlbalai/rn-blitz/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the blitz version",
	Args:  cobra.NoArgs,
	// Version never needs configuration.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), version.GetFullVersion())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
