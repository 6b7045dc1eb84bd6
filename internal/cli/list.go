package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var listYAML bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills available in the source",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Output in YAML format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents one available skill for display.
type listEntry struct {
	Name         string   `yaml:"name"`
	Version      string   `yaml:"version"`
	Description  string   `yaml:"description"`
	Dependencies []string `yaml:"dependencies,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	src, err := buildSource()
	if err != nil {
		return err
	}

	names, err := src.ListSkills()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(out, "No skills found in the source.")
		return nil
	}

	entries := make([]listEntry, 0, len(names))
	for _, name := range names {
		md, err := src.SkillMetadata(name)
		if err != nil {
			continue // ListSkills already filtered, but the tree can change underneath us
		}
		entries = append(entries, listEntry{
			Name:         md.Name,
			Version:      md.Version,
			Description:  md.Description,
			Dependencies: md.Dependencies,
		})
	}

	if listYAML {
		data, err := yaml.Marshal(entries)
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(data))
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVERSION\tDESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Version, e.Description)
	}
	return tw.Flush()
}
