package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skilldock/skilldock/internal/catalog"
	"github.com/skilldock/skilldock/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the cached skills catalog",
}

var catalogUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Clone or refresh the cached catalog checkout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repoDir := config.CatalogRepoDir()
		if err := catalog.Update(repoDir); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Catalog updated at %s\n", green("✓"), repoDir)
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogUpdateCmd)
	rootCmd.AddCommand(catalogCmd)
}
