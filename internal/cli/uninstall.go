package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skilldock/skilldock/internal/config"
	"github.com/skilldock/skilldock/internal/installer"
)

var (
	uninstallModelDir string
	uninstallDryRun   bool
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <skill>...",
	Short: "Remove installed skills from a model directory",
	Long: `Remove each skill's entry under <model-dir>/skills/. Removing a skill is
not reversible: no backup is kept, so a rollback cannot restore it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUninstall,
}

func init() {
	uninstallCmd.Flags().StringVar(&uninstallModelDir, "model", "", "Target model directory (required)")
	uninstallCmd.Flags().BoolVar(&uninstallDryRun, "dry-run", false, "Log intended actions without touching the filesystem")
	_ = uninstallCmd.MarkFlagRequired("model")
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	src, err := buildSource()
	if err != nil {
		return err
	}

	inst := installer.New(src, config.StagingDir(), installer.WithDryRun(uninstallDryRun))
	log := installer.NewLog()

	for _, name := range args {
		if err := inst.Uninstall(ctx, name, uninstallModelDir, log); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "%s Removed %d skills.\n", green("✓"), log.Len())
	return nil
}
