package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/koenig/builder"
	"github.com/katalvlaran/koenig/graph"
)

func TestRing_TooSmall(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 2} {
		_, err := builder.Ring(n)
		assert.ErrorIs(t, err, builder.ErrTooFewNodes, n)
	}
}

func TestRing_Shape(t *testing.T) {
	adj, err := builder.Ring(6)
	require.NoError(t, err)

	require.Len(t, adj, 6)
	assert.Equal(t, []string{"6", "2"}, adj["1"])
	assert.Equal(t, []string{"5", "1"}, adj["6"])

	g, err := graph.NormalizeAdjacency(adj)
	require.NoError(t, err)
	assert.Equal(t, 6, g.NumEdges())
}

func TestComplete_TooSmall(t *testing.T) {
	_, err := builder.Complete(1)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestComplete_Shape(t *testing.T) {
	adj, err := builder.Complete(5)
	require.NoError(t, err)

	require.Len(t, adj, 5)
	for n, peers := range adj {
		assert.Len(t, peers, 4, n)
		assert.NotContains(t, peers, n)
	}

	g, err := graph.NormalizeAdjacency(adj)
	require.NoError(t, err)
	assert.Equal(t, 10, g.NumEdges()) // C(5,2)
}

func TestSquare_IsFourRing(t *testing.T) {
	want, err := builder.Ring(4)
	require.NoError(t, err)
	assert.Equal(t, want, builder.Square())
}

func TestKonigsberg_SevenBridgesFourRegions(t *testing.T) {
	m := builder.Konigsberg()
	require.NoError(t, graph.ValidateMap(m))

	assert.Len(t, m.PathsToNodes, 7)
	assert.Len(t, m.NodesToPaths, 4)

	// The two parallel pairs.
	assert.Equal(t, m.PathsToNodes["2"], m.PathsToNodes["3"]) // A-C twice
	assert.Equal(t, m.PathsToNodes["4"], m.PathsToNodes["5"]) // A-B twice

	g, err := graph.Normalize(m)
	require.NoError(t, err)
	nA, _ := g.NodeIDOf("A")
	assert.Len(t, g.IncidentEdges(nA), 5)
}
