package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexOf(t *testing.T, order []string, name string) int {
	t.Helper()
	for i, n := range order {
		if n == name {
			return i
		}
	}
	t.Fatalf("%q not in order %v", name, order)
	return -1
}

func TestInstallationOrderDependenciesFirst(t *testing.T) {
	src := newFakeSource(
		skill("react", "1.0.0", "javascript", "typescript"),
		skill("javascript", "1.0.0"),
		skill("typescript", "1.0.0"),
	)

	g := BuildGraph(context.Background(), src, []string{"react"}, nil)
	order, err := InstallationOrder(g)
	require.NoError(t, err)
	require.Len(t, order, 3)

	// Both dependencies before react; relative order between same-level
	// dependencies is unspecified but must be stable for a fixed input.
	assert.Equal(t, "react", order[2])
	again, err := InstallationOrder(g)
	require.NoError(t, err)
	assert.Equal(t, order, again)
}

func TestInstallationOrderChain(t *testing.T) {
	src := newFakeSource(
		skill("a", "1.0.0", "b"),
		skill("b", "1.0.0", "c"),
		skill("c", "1.0.0"),
	)

	g := BuildGraph(context.Background(), src, []string{"a"}, nil)
	order, err := InstallationOrder(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, order)
}

func TestInstallationOrderDiamond(t *testing.T) {
	src := newFakeSource(
		skill("a", "1.0.0", "b", "c"),
		skill("b", "1.0.0", "d"),
		skill("c", "1.0.0", "d"),
		skill("d", "1.0.0"),
	)

	g := BuildGraph(context.Background(), src, []string{"a"}, nil)
	order, err := InstallationOrder(g)
	require.NoError(t, err)
	require.Len(t, order, 4)

	assert.Less(t, indexOf(t, order, "d"), indexOf(t, order, "b"))
	assert.Less(t, indexOf(t, order, "d"), indexOf(t, order, "c"))
	assert.Equal(t, "a", order[3])
}

func TestInstallationOrderCycleIsFatal(t *testing.T) {
	src := newFakeSource(
		skill("a", "1.0.0", "b"),
		skill("b", "1.0.0", "a"),
	)

	g := BuildGraph(context.Background(), src, []string{"a"}, nil)
	_, err := InstallationOrder(g)

	var cycleErr *CycleError
	require.ErrorAs(t, err, &cycleErr)
	require.Len(t, cycleErr.Cycles, 1)
	assert.Contains(t, err.Error(), "cycle")
}

func TestInstallationOrderIgnoresDanglingEdges(t *testing.T) {
	src := newFakeSource(
		skill("a", "1.0.0", "b", "ghost"),
		skill("b", "1.0.0"),
	)

	g := BuildGraph(context.Background(), src, []string{"a"}, nil)
	order, err := InstallationOrder(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, order)
}

func TestInstallationOrderEmptyGraph(t *testing.T) {
	g := BuildGraph(context.Background(), newFakeSource(), nil, nil)
	order, err := InstallationOrder(g)
	require.NoError(t, err)
	assert.Empty(t, order)
}
