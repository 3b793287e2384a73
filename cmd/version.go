package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const appVersion = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the smc version",
	Args:  cobra.NoArgs,
	// Skip config loading so version works without a home directory.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "smc v%s\n", appVersion)
	},
}
