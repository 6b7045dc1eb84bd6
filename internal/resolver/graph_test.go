package resolver

import (
	"context"
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skilldock/skilldock/internal/metadata"
)

// fakeSource is an in-memory Source for resolver tests.
type fakeSource struct {
	skills map[string]*metadata.SkillMetadata
}

func newFakeSource(skills ...*metadata.SkillMetadata) *fakeSource {
	f := &fakeSource{skills: make(map[string]*metadata.SkillMetadata)}
	for _, md := range skills {
		f.skills[md.Name] = md
	}
	return f
}

func skill(name, version string, deps ...string) *metadata.SkillMetadata {
	return &metadata.SkillMetadata{
		Name:         name,
		Description:  name + " skill",
		Version:      version,
		Dependencies: deps,
	}
}

func (f *fakeSource) Exists(name string) bool {
	_, ok := f.skills[name]
	return ok
}

func (f *fakeSource) SkillPath(name string) string {
	return "/src/skills/" + name
}

func (f *fakeSource) ListSkills() ([]string, error) {
	names := make([]string, 0, len(f.skills))
	for name := range f.skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeSource) SkillMetadata(name string) (*metadata.SkillMetadata, error) {
	md, ok := f.skills[name]
	if !ok {
		return nil, errors.Errorf("skill %q not found", name)
	}
	return md, nil
}

func TestBuildGraphOrigins(t *testing.T) {
	src := newFakeSource(
		skill("react", "1.0.0", "javascript"),
		skill("javascript", "1.0.0"),
		skill("baseline", "1.0.0"),
	)

	g := BuildGraph(context.Background(), src, []string{"react"}, []string{"baseline"})
	require.Equal(t, 3, g.Len())

	assert.Equal(t, OriginRequested, g.Node("react").Origin)
	assert.Equal(t, OriginTransitive, g.Node("javascript").Origin)
	assert.Equal(t, OriginAlwaysIncluded, g.Node("baseline").Origin)
	assert.Empty(t, g.Missing())
}

func TestBuildGraphDiamond(t *testing.T) {
	// a -> b, a -> c, b -> d, c -> d: d is visited once and the graph holds
	// exactly four nodes.
	src := newFakeSource(
		skill("a", "1.0.0", "b", "c"),
		skill("b", "1.0.0", "d"),
		skill("c", "1.0.0", "d"),
		skill("d", "1.0.0"),
	)

	g := BuildGraph(context.Background(), src, []string{"a"}, nil)
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, OriginTransitive, g.Node("d").Origin)
}

func TestBuildGraphMissingDependencyIsReported(t *testing.T) {
	src := newFakeSource(skill("a", "1.0.0", "ghost"))

	g := BuildGraph(context.Background(), src, []string{"a"}, nil)

	// Missing skill is dropped, not fatal, and never silently satisfied.
	require.Equal(t, 1, g.Len())
	require.Len(t, g.Missing(), 1)
	assert.Equal(t, "ghost", g.Missing()[0].Name)
	assert.Equal(t, "a", g.Missing()[0].RequiredBy)

	// The dangling edge stays on the declaring node.
	assert.Contains(t, g.Node("a").Dependencies, "ghost")
}

func TestBuildGraphMissingRequestedSkill(t *testing.T) {
	src := newFakeSource()

	g := BuildGraph(context.Background(), src, []string{"ghost"}, nil)
	assert.Equal(t, 0, g.Len())
	require.Len(t, g.Missing(), 1)
	assert.Empty(t, g.Missing()[0].RequiredBy)
}

func TestBuildGraphEveryDependencyAccountedFor(t *testing.T) {
	src := newFakeSource(
		skill("a", "1.0.0", "b", "ghost"),
		skill("b", "1.0.0"),
	)

	g := BuildGraph(context.Background(), src, []string{"a"}, nil)

	missing := make(map[string]bool)
	for _, m := range g.Missing() {
		missing[m.Name] = true
	}
	for _, name := range g.Names() {
		for _, dep := range g.Node(name).Dependencies {
			if g.Node(dep) == nil {
				assert.True(t, missing[dep], "dependency %q neither in graph nor in missing report", dep)
			}
		}
	}
}
