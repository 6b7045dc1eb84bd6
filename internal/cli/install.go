package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skilldock/skilldock/internal/config"
	"github.com/skilldock/skilldock/internal/installer"
	"github.com/skilldock/skilldock/internal/resolver"
)

var (
	installModelDir string
	installExternal bool
	installDryRun   bool
	installYes      bool
)

var installCmd = &cobra.Command{
	Use:   "install <skill>...",
	Short: "Install skills and their dependencies into a model directory",
	Long: `Resolve the dependency graph for the requested skills (plus the configured
always-include baseline), compute a dependency-first order, and install each
skill into <model-dir>/skills/. Local mode links through the shared staging
area; --external copies instead. The batch is all-or-nothing: any failure
rolls back every mutation it made.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installModelDir, "model", "", "Target model directory (required)")
	installCmd.Flags().BoolVar(&installExternal, "external", false, "Copy skills instead of symlinking")
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "Log intended actions without touching the filesystem")
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "Skip confirmation prompt")
	_ = installCmd.MarkFlagRequired("model")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	src, err := buildSource()
	if err != nil {
		return err
	}

	graph := resolver.BuildGraph(ctx, src, args, config.AlwaysInclude())
	for _, miss := range graph.Missing() {
		if miss.RequiredBy == "" {
			fmt.Fprintf(out, "%s skill %s: %s\n", yellow("warning:"), miss.Name, miss.Reason)
		} else {
			fmt.Fprintf(out, "%s dependency %s of %s: %s\n", yellow("warning:"), miss.Name, miss.RequiredBy, miss.Reason)
		}
	}
	if graph.Len() == 0 {
		fmt.Fprintln(out, "Nothing to install.")
		return nil
	}

	order, err := resolver.InstallationOrder(graph)
	if err != nil {
		return err
	}

	printPlan(out, graph, args, order)

	if !installYes && !installDryRun {
		fmt.Fprint(out, "? Proceed with installation? (Y/n) ")
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
			if answer != "" && answer != "y" && answer != "yes" {
				fmt.Fprintln(out, "Installation cancelled.")
				return nil
			}
		}
	}

	mode := installer.ModeLocal
	if installExternal {
		mode = installer.ModeExternal
	}

	inst := installer.New(src, config.StagingDir(), installer.WithDryRun(installDryRun))
	res, err := inst.InstallAll(ctx, order, installModelDir, mode)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s Installed %d skills.", green("✓"), res.Installed)
	if res.Skipped > 0 {
		fmt.Fprintf(out, " %d already current (skipped).", res.Skipped)
	}
	fmt.Fprintln(out)
	return nil
}
