package resolver

import "strings"

// Cycle is an ordered loop of skill names. Nodes holds the loop without the
// closing repeat; String re-closes it for display.
type Cycle struct {
	Nodes []string
}

// Key returns the canonical joined-string form used for de-duplication:
// the cycle rotated so its lexicographically smallest name leads. Distinct
// DFS paths that describe the same loop collapse to one key.
func (c Cycle) Key() string {
	if len(c.Nodes) == 0 {
		return ""
	}
	min := 0
	for i, name := range c.Nodes {
		if name < c.Nodes[min] {
			min = i
		}
	}
	rotated := make([]string, 0, len(c.Nodes))
	rotated = append(rotated, c.Nodes[min:]...)
	rotated = append(rotated, c.Nodes[:min]...)
	return strings.Join(rotated, " -> ")
}

// String formats the cycle as a closed loop, e.g. "a -> b -> a".
func (c Cycle) String() string {
	if len(c.Nodes) == 0 {
		return ""
	}
	return strings.Join(c.Nodes, " -> ") + " -> " + c.Nodes[0]
}

// DetectCycles runs a DFS over the graph with an explicit recursion-stack
// set. Edges pointing at names absent from the graph were soft-dropped
// during construction and are skipped, never treated as cycle candidates.
func DetectCycles(g *Graph) []Cycle {
	visited := make(map[string]bool, g.Len())
	onStack := make(map[string]bool, g.Len())
	seen := make(map[string]bool)
	var stack []string
	var cycles []Cycle

	var dfs func(name string)
	dfs = func(name string) {
		visited[name] = true
		onStack[name] = true
		stack = append(stack, name)

		for _, dep := range g.nodes[name].Dependencies {
			if _, ok := g.nodes[dep]; !ok {
				continue // dangling edge
			}
			if !visited[dep] {
				dfs(dep)
				continue
			}
			if !onStack[dep] {
				continue
			}
			// The cycle is the sub-path from dep's first occurrence on the
			// stack to the current node.
			start := 0
			for i, n := range stack {
				if n == dep {
					start = i
					break
				}
			}
			cycle := Cycle{Nodes: append([]string(nil), stack[start:]...)}
			if key := cycle.Key(); !seen[key] {
				seen[key] = true
				cycles = append(cycles, cycle)
			}
		}

		stack = stack[:len(stack)-1]
		onStack[name] = false
	}

	for _, name := range g.Names() {
		if !visited[name] {
			dfs(name)
		}
	}
	return cycles
}
