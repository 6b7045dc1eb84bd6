package cli

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/skilldock/skilldock/internal/metadata"
)

var validateCmd = &cobra.Command{
	Use:   "validate <skill>",
	Short: "Validate a skill's frontmatter against the schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	name := args[0]

	src, err := buildSource()
	if err != nil {
		return err
	}
	if !src.Exists(name) {
		return errors.Errorf("skill %q not found in the source", name)
	}

	skillFile := filepath.Join(src.SkillPath(name), metadata.SkillFileName)
	result, err := metadata.ValidateFile(skillFile)
	if err != nil {
		return err
	}

	if result.Valid {
		fmt.Fprintf(out, "%s %s is valid\n", green("✓"), name)
		return nil
	}

	fmt.Fprintf(out, "%s %s has %d issues:\n", red("✗"), name, len(result.Issues))
	for _, issue := range result.Issues {
		loc := issue.Path
		if loc == "" {
			loc = "(root)"
		}
		fmt.Fprintf(out, "  %s: %s [%s]\n", loc, issue.Message, issue.Keyword)
	}
	return errors.Errorf("%s failed schema validation", name)
}
