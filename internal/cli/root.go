package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skilldock/skilldock/internal/catalog"
	"github.com/skilldock/skilldock/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var sourceFlag string

var rootCmd = &cobra.Command{
	Use:   "skilldock",
	Short: "Distribute reusable skills into model directories",
	Long: `skilldock resolves skill dependencies and installs skill directories into
model target directories as cascading symlinks (or full copies), with
all-or-nothing rollback and idempotent re-runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		// Stale-catalog nudge, skipped for commands that manage the catalog.
		if cmd.Name() == "update" || cmd.Name() == "catalog" {
			return
		}
		repoDir := config.CatalogRepoDir()
		if _, err := os.Stat(repoDir); err == nil && catalog.IsStale(repoDir, catalog.DefaultMaxAge) {
			fmt.Fprintln(os.Stderr, "Catalog is more than 7 days old. Run 'skilldock catalog update'.")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "Skills source root (overrides configured skills_root)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
