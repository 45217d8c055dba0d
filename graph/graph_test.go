package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trigrid/graph"
)

func TestNew_Errors(t *testing.T) {
	_, err := graph.New(-1)
	require.ErrorIs(t, err, graph.ErrBadNodeCount)

	g, err := graph.New(0)
	require.NoError(t, err)
	require.Equal(t, 0, g.NodeCount())
	require.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge(t *testing.T) {
	g, err := graph.New(4)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 2))
	require.True(t, g.HasEdge(0, 2))
	require.True(t, g.HasEdge(2, 0), "edges are undirected")
	require.Equal(t, 1, g.EdgeCount())

	// Idempotent.
	require.NoError(t, g.AddEdge(2, 0))
	require.Equal(t, 1, g.EdgeCount())

	require.ErrorIs(t, g.AddEdge(1, 1), graph.ErrSelfLoop)
	require.ErrorIs(t, g.AddEdge(0, 4), graph.ErrNodeRange)
	require.ErrorIs(t, g.AddEdge(-1, 0), graph.ErrNodeRange)
	require.Equal(t, 1, g.EdgeCount())
}

func TestRemoveEdge(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	require.NoError(t, g.RemoveEdge(1, 0))
	require.False(t, g.HasEdge(0, 1))
	require.Equal(t, 0, g.EdgeCount())

	// Removing an absent edge is a no-op.
	require.NoError(t, g.RemoveEdge(0, 1))
	require.Equal(t, 0, g.EdgeCount())

	require.ErrorIs(t, g.RemoveEdge(0, 3), graph.ErrNodeRange)
}

func TestNeighborsAndDegree(t *testing.T) {
	g, err := graph.New(5)
	require.NoError(t, err)
	for _, v := range []int{4, 1, 3} {
		require.NoError(t, g.AddEdge(2, v))
	}

	nb, err := g.Neighbors(2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 4}, nb)

	d, err := g.Degree(2)
	require.NoError(t, err)
	require.Equal(t, 3, d)

	d, err = g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, 0, d)

	_, err = g.Neighbors(5)
	require.ErrorIs(t, err, graph.ErrNodeRange)
	_, err = g.Degree(-1)
	require.ErrorIs(t, err, graph.ErrNodeRange)
}

func TestEdges(t *testing.T) {
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(3, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(0, 1))

	require.Equal(t, []graph.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 3}}, g.Edges())
}

func TestClone(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	c := g.Clone()
	require.NoError(t, c.AddEdge(1, 2))

	require.False(t, g.HasEdge(1, 2), "clone mutation must not leak back")
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 2, c.EdgeCount())
}
