package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionShort bool

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), buildVersion)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "skilldock version %s (commit: %s, built: %s)\n",
			buildVersion, buildCommit, buildDate)
		return nil
	},
}
