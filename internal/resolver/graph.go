package resolver

import (
	"context"
	"sort"

	"github.com/skilldock/skilldock/internal/logger"
	"github.com/skilldock/skilldock/internal/source"
)

// Origin records why a node entered the graph.
type Origin string

const (
	// OriginRequested marks skills the caller explicitly asked for.
	OriginRequested Origin = "requested"
	// OriginAlwaysIncluded marks the fixed baseline set pulled into every
	// resolution pass regardless of request.
	OriginAlwaysIncluded Origin = "always-included"
	// OriginTransitive marks skills pulled in only because another node
	// depends on them.
	OriginTransitive Origin = "transitive"
)

// Node is one skill participating in a resolution pass.
type Node struct {
	Name         string
	Version      string
	Dependencies []string
	Origin       Origin
}

// MissingDependency is a skill name that was requested or depended upon but
// could not be included in the graph.
type MissingDependency struct {
	Name       string
	RequiredBy string // empty when requested or always-included directly
	Reason     string
}

// Graph maps skill names to their nodes. Names absent from the map are
// missing and are enumerated by Missing(); they are never silently treated
// as satisfied.
type Graph struct {
	nodes   map[string]*Node
	missing []MissingDependency
}

// BuildGraph visits the union of requested and always-included names and
// recursively pulls in their declared dependencies. A skill the source does
// not know is not fatal here: it is logged, recorded in the missing report,
// and dropped, leaving a dangling edge on whichever node declared it.
func BuildGraph(ctx context.Context, src source.Source, requested, alwaysIncluded []string) *Graph {
	g := &Graph{nodes: make(map[string]*Node)}
	for _, name := range requested {
		g.visit(ctx, src, name, "", OriginRequested)
	}
	for _, name := range alwaysIncluded {
		g.visit(ctx, src, name, "", OriginAlwaysIncluded)
	}
	return g
}

func (g *Graph) visit(ctx context.Context, src source.Source, name, requiredBy string, origin Origin) {
	// Already in the graph: diamond dependency, nothing to reprocess.
	if _, ok := g.nodes[name]; ok {
		return
	}

	log := logger.G(ctx).WithField("skill", name)

	if !src.Exists(name) {
		log.WithField("required_by", requiredBy).Warn("skill not found in source, dropping")
		g.missing = append(g.missing, MissingDependency{
			Name: name, RequiredBy: requiredBy, Reason: "not found in source",
		})
		return
	}

	md, err := src.SkillMetadata(name)
	if err != nil {
		log.WithError(err).Warn("skill metadata unusable, dropping")
		g.missing = append(g.missing, MissingDependency{
			Name: name, RequiredBy: requiredBy, Reason: err.Error(),
		})
		return
	}

	g.nodes[name] = &Node{
		Name:         name,
		Version:      md.Version,
		Dependencies: md.Dependencies,
		Origin:       origin,
	}

	for _, dep := range md.Dependencies {
		g.visit(ctx, src, dep, name, OriginTransitive)
	}
}

// Node returns the named node, or nil when absent.
func (g *Graph) Node(name string) *Node {
	return g.nodes[name]
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Names returns all node names, sorted for deterministic iteration.
func (g *Graph) Names() []string {
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Missing returns the report of every name that was requested or depended
// upon but absent from the graph.
func (g *Graph) Missing() []MissingDependency {
	return g.missing
}
