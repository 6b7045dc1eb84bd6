package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skilldock/skilldock/internal/config"
	"github.com/skilldock/skilldock/internal/resolver"
)

var planCmd = &cobra.Command{
	Use:   "plan <skill>...",
	Short: "Show the dependency tree and installation order without installing",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	src, err := buildSource()
	if err != nil {
		return err
	}

	graph := resolver.BuildGraph(ctx, src, args, config.AlwaysInclude())
	order, err := resolver.InstallationOrder(graph)
	if err != nil {
		return err
	}

	printPlan(out, graph, args, order)
	return nil
}

// printPlan renders the dependency tree for each requested root, the missing
// report, and the computed installation order.
func printPlan(w io.Writer, graph *resolver.Graph, roots []string, order []string) {
	fmt.Fprintln(w, "Resolving dependencies...")
	fmt.Fprintln(w)

	seen := make(map[string]bool)
	for _, root := range roots {
		printRoot(w, graph, root, seen)
	}
	fmt.Fprintln(w)

	if len(order) > 0 {
		fmt.Fprintf(w, "  Install order: %s (%d skills)\n", strings.Join(order, ", "), len(order))
	}
	if count := len(graph.Missing()); count > 0 {
		fmt.Fprintf(w, "  %s %d skills could not be resolved and will be dropped\n", yellow("!"), count)
	}
	fmt.Fprintln(w)
}

// printRoot prints one requested skill in bold, then its subtree.
func printRoot(w io.Writer, graph *resolver.Graph, name string, seen map[string]bool) {
	fmt.Fprintf(w, "  %s\n", bold(nodeLabel(graph, name, seen)))

	node := graph.Node(name)
	if node == nil || seen[name] {
		return
	}
	seen[name] = true

	for i, dep := range node.Dependencies {
		printTree(w, graph, dep, "", i == len(node.Dependencies)-1, seen)
	}
}

// printTree prints one subtree with box-drawing connectors.
func printTree(w io.Writer, graph *resolver.Graph, name, prefix string, isLast bool, seen map[string]bool) {
	connector := "├── "
	childPrefix := prefix + "│   "
	if isLast {
		connector = "└── "
		childPrefix = prefix + "    "
	}

	fmt.Fprintf(w, "  %s%s%s\n", prefix, connector, nodeLabel(graph, name, seen))

	node := graph.Node(name)
	if node == nil || seen[name] {
		return
	}
	seen[name] = true

	for i, dep := range node.Dependencies {
		printTree(w, graph, dep, childPrefix, i == len(node.Dependencies)-1, seen)
	}
}

func nodeLabel(graph *resolver.Graph, name string, seen map[string]bool) string {
	node := graph.Node(name)
	switch {
	case node == nil:
		return name + " " + red("(missing)")
	case seen[name]:
		return name + " (deduped)"
	}
	label := name + " " + node.Version
	if node.Origin == resolver.OriginAlwaysIncluded {
		label += " (always included)"
	}
	return label
}
