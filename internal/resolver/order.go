package resolver

import (
	"fmt"
	"strings"
)

// CycleError is raised when computing an installation order for a graph
// containing cycles. This is the one place a structural defect in the graph
// is fatal; BuildGraph stays lenient about missing nodes.
type CycleError struct {
	Cycles []Cycle
}

func (e *CycleError) Error() string {
	if len(e.Cycles) == 0 {
		return "dependency cycle detected"
	}
	formatted := make([]string, len(e.Cycles))
	for i, c := range e.Cycles {
		formatted[i] = c.String()
	}
	return fmt.Sprintf("dependency cycle(s) detected: %s", strings.Join(formatted, "; "))
}

// InstallationOrder returns the graph's nodes ordered so that a skill's
// dependencies always precede the skill itself. It fails with *CycleError
// when any cycle exists.
//
// The in-degree here counts how many other nodes require a given one, so
// the edge direction is inverted relative to a textbook topological sort. Kahn's
// algorithm then emits least-depended-upon nodes first and pushes core
// dependencies to the end; the final reversal converts that into the
// dependencies-first contract.
func InstallationOrder(g *Graph) ([]string, error) {
	if cycles := DetectCycles(g); len(cycles) > 0 {
		return nil, &CycleError{Cycles: cycles}
	}

	inDegree := make(map[string]int, g.Len())
	for name := range g.nodes {
		inDegree[name] = 0
	}
	for _, node := range g.nodes {
		for _, dep := range node.Dependencies {
			if _, ok := g.nodes[dep]; ok {
				inDegree[dep]++
			}
		}
	}

	// Seed with every node nothing depends on; sorted seeding keeps the
	// order stable for a fixed input.
	var queue []string
	for _, name := range g.Names() {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	sorted := make([]string, 0, g.Len())
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		sorted = append(sorted, name)

		for _, dep := range g.nodes[name].Dependencies {
			if _, ok := g.nodes[dep]; !ok {
				continue
			}
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	// DetectCycles ran above, so this only fires if the two disagree.
	if len(sorted) < g.Len() {
		return nil, &CycleError{}
	}

	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}
	return sorted, nil
}
