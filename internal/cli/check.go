package cli

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/skilldock/skilldock/internal/resolver"
)

var checkPackages []string

var checkCmd = &cobra.Command{
	Use:   "check <skill>",
	Short: "Check a skill's declared package ranges against installed versions",
	Long: `Evaluate each package version range a skill declares against a version you
supply with --package name=version. Ranges support ^, ~, >=, >, <=, <, * and
latest; compound ranges must be split into separate constraints.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringArrayVar(&checkPackages, "package", nil, "Installed package version as name=version (repeatable)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	name := args[0]

	src, err := buildSource()
	if err != nil {
		return err
	}

	md, err := src.SkillMetadata(name)
	if err != nil {
		return err
	}
	if len(md.Packages) == 0 {
		fmt.Fprintf(out, "%s declares no package constraints.\n", name)
		return nil
	}

	installed := make(map[string]string, len(checkPackages))
	for _, spec := range checkPackages {
		parts := strings.SplitN(spec, "=", 2)
		if len(parts) != 2 {
			return errors.Errorf("invalid --package %q: expected name=version", spec)
		}
		installed[parts[0]] = parts[1]
	}

	unsatisfied := 0
	for pkg, required := range md.Packages {
		current, ok := installed[pkg]
		if !ok {
			fmt.Fprintf(out, "  %s %s %s (no installed version supplied)\n", yellow("?"), pkg, required)
			continue
		}
		ok, err := resolver.Satisfies(current, required)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintf(out, "  %s %s %s satisfies %s\n", green("✓"), pkg, current, required)
		} else {
			fmt.Fprintf(out, "  %s %s %s does not satisfy %s\n", red("✗"), pkg, current, required)
			unsatisfied++
		}
	}

	if unsatisfied > 0 {
		return errors.Errorf("%d package constraints unsatisfied", unsatisfied)
	}
	return nil
}
