package gen_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foldgraph/core"
	"github.com/katalvlaran/foldgraph/engine"
	"github.com/katalvlaran/foldgraph/gen"
)

// buildCSR assembles a CSR from (src, dst, weight) triples.
func buildCSR(t *testing.T, n uint32, edges [][3]uint32) *core.CSR {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], e[2]))
	}

	return core.NewCSR(g)
}

// exampleDAG is the 6-node directed graph used across the module's
// examples; every edge is forward, so it doubles as a DAG fixture.
// Shortest distances from node 0: [0, 2, 3, 3, 4, 4].
func exampleDAG(t *testing.T) *core.CSR {
	t.Helper()

	return buildCSR(t, 6, [][3]uint32{
		{0, 1, 2}, {0, 3, 3}, {1, 2, 1}, {1, 4, 2}, {2, 5, 1}, {3, 4, 1}, {4, 5, 3},
	})
}

// requireParses feeds generated text through the engine's parser.
func requireParses(t *testing.T, src string) {
	t.Helper()
	a, err := engine.NewArena()
	require.NoError(t, err)
	defer a.Release()
	require.NoError(t, a.Parse("generated", []byte(src)))
	require.True(t, a.Defined("main"))
}

// evalMain parses and normalizes a generated program to one number.
func evalMain(t *testing.T, src string) uint32 {
	t.Helper()
	a, err := engine.NewArena()
	require.NoError(t, err)
	defer a.Release()
	require.NoError(t, a.Parse("generated", []byte(src)))
	term, err := a.Normalize("main")
	require.NoError(t, err)
	require.Equal(t, engine.KindNum, term.Kind)

	return term.Val
}

func TestTrieDepth(t *testing.T) {
	tests := map[uint32]uint32{
		1: 1, 4: 1, 5: 2, 16: 2, 17: 3, 64: 3, 65: 4, 1000: 5, 262144: 9,
	}
	for n, want := range tests {
		assert.Equal(t, want, gen.TrieDepth(n), "n=%d", n)
	}
}

// TestTrieOps_RoundTripAndMinUpdate drives the trie definition family
// directly: insert two keys, lower one through min-update, fail to
// lower the other, and read everything back (missing key included).
func TestTrieOps_RoundTripAndMinUpdate(t *testing.T) {
	base, err := gen.ShortestPath(exampleDAG(t), 0)
	require.NoError(t, err)

	a, err := engine.NewArena()
	require.NoError(t, err)
	defer a.Release()
	require.NoError(t, a.Parse("generated", []byte(base)))

	probe := `@t1 = @q4_set(9, 3, @DEPTH, @q4_set(5, 7, @DEPTH, #QE{}))
@probe =
  λ{#P: λu1. λc1.
    λ{#P: λu2. λc2.
      [@q4_get(5, @DEPTH, u2), @q4_get(9, @DEPTH, u2), @q4_get(6, @DEPTH, u2), c1, c2]
    }(@q4_min_update_f(9, 8, @DEPTH, u1))
  }(@q4_min_update_f(5, 4, @DEPTH, @t1))
`
	require.NoError(t, a.Parse("probe", []byte(probe)))

	var buf bytes.Buffer
	a.SetOutput(&buf)
	count, err := a.Collapse("probe", 0)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.Equal(t, "4\n3\n999999\n1\n0\n", buf.String())
}

func TestShortestPath_HybridTemplate(t *testing.T) {
	src, err := gen.ShortestPath(exampleDAG(t), 0)
	require.NoError(t, err)

	// The hybrid template reads the graph through primitives and keeps
	// the changed-flag round loop.
	assert.Contains(t, src, "%graph_deg")
	assert.Contains(t, src, "%graph_target")
	assert.Contains(t, src, "%graph_weight")
	assert.Contains(t, src, "@q4_min_update_f")
	assert.Contains(t, src, "@bf_loop")
	assert.Contains(t, src, "@bf = @bf_loop(5, #S{@init_dist, 1})")
	requireParses(t, src)
}

func TestShortestPath_InlineTemplate(t *testing.T) {
	src, err := gen.ShortestPath(exampleDAG(t), 0, gen.WithInlineEdges())
	require.NoError(t, err)

	assert.Contains(t, src, "#E3{0,1,2}")
	assert.Contains(t, src, "@repeat(@relax_round, @init_dist, 5)")
	assert.NotContains(t, src, "%graph_")
	requireParses(t, src)
}

func TestShortestPath_Validation(t *testing.T) {
	c := exampleDAG(t)

	_, err := gen.ShortestPath(nil, 0)
	assert.ErrorIs(t, err, gen.ErrNilCSR)

	_, err = gen.ShortestPath(c, 6)
	assert.ErrorIs(t, err, gen.ErrNodeOutOfRange)

	_, err = gen.ShortestPath(c, 0, gen.WithChunkThreshold(0))
	assert.ErrorIs(t, err, gen.ErrOptionViolation)
}

func TestEdgeList_Chunking(t *testing.T) {
	edges := make([][3]uint32, 0, 30)
	for i := 0; i < 30; i++ {
		u := uint32(i % 5)
		edges = append(edges, [3]uint32{u, (u + 1) % 5, 1})
	}
	c := buildCSR(t, 5, edges)

	small, err := gen.ShortestPath(c, 0, gen.WithInlineEdges())
	require.NoError(t, err)
	assert.Contains(t, small, "@edges = [")
	assert.NotContains(t, small, "@edges_0")

	chunked, err := gen.ShortestPath(c, 0, gen.WithInlineEdges(), gen.WithChunkThreshold(10))
	require.NoError(t, err)
	assert.Contains(t, chunked, "@append")
	assert.Contains(t, chunked, "@edges_0")
	requireParses(t, chunked)
}

func TestShortestPathDAG_Programs(t *testing.T) {
	t.Run("three nodes", func(t *testing.T) {
		c := buildCSR(t, 3, [][3]uint32{{0, 1, 2}, {1, 2, 3}, {0, 2, 10}})
		src, err := gen.ShortestPathDAG(c, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, uint32(5), evalMain(t, src))
	})

	t.Run("example graph", func(t *testing.T) {
		src, err := gen.ShortestPathDAG(exampleDAG(t), 0, 5)
		require.NoError(t, err)
		assert.Equal(t, uint32(4), evalMain(t, src))
	})

	t.Run("source equals target", func(t *testing.T) {
		src, err := gen.ShortestPathDAG(exampleDAG(t), 3, 3)
		require.NoError(t, err)
		assert.Equal(t, uint32(0), evalMain(t, src))
	})

	t.Run("unreachable target", func(t *testing.T) {
		c := buildCSR(t, 3, [][3]uint32{{1, 2, 7}})
		src, err := gen.ShortestPathDAG(c, 0, 2)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, evalMain(t, src), gen.Inf)
	})
}

func TestShortestPathDAG_Validation(t *testing.T) {
	t.Run("backward edge", func(t *testing.T) {
		c := buildCSR(t, 3, [][3]uint32{{0, 1, 1}, {2, 1, 1}})
		_, err := gen.ShortestPathDAG(c, 0, 2)
		assert.ErrorIs(t, err, gen.ErrNotDAG)
	})

	t.Run("edge into source", func(t *testing.T) {
		c := buildCSR(t, 3, [][3]uint32{{0, 1, 1}, {1, 0, 1}, {1, 2, 1}})
		_, err := gen.ShortestPathDAG(c, 0, 2)
		assert.ErrorIs(t, err, gen.ErrNotDAG)
	})

	t.Run("node range", func(t *testing.T) {
		c := buildCSR(t, 3, nil)
		_, err := gen.ShortestPathDAG(c, 0, 3)
		assert.ErrorIs(t, err, gen.ErrNodeOutOfRange)
	})

	t.Run("binding cap", func(t *testing.T) {
		over, err := core.NewGraph(gen.MaxBindNodes + 1)
		require.NoError(t, err)
		_, err = gen.ShortestPathDAG(core.NewCSR(over), 0, 1)
		assert.ErrorIs(t, err, gen.ErrTooManyNodes)

		at, err := core.NewGraph(gen.MaxBindNodes)
		require.NoError(t, err)
		src, err := gen.ShortestPathDAG(core.NewCSR(at), 0, 1)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(src, "@min"))
	})
}

func TestMSTBoruvka(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddBiedge(0, 1, 4))
	require.NoError(t, g.AddBiedge(0, 2, 1))
	require.NoError(t, g.AddBiedge(1, 2, 2))
	require.NoError(t, g.AddBiedge(1, 3, 5))
	require.NoError(t, g.AddBiedge(2, 3, 3))

	src, err := gen.MSTBoruvka(core.NewCSR(g), 2)
	require.NoError(t, err)
	assert.Contains(t, src, "@main = @run(2, @comp, @edges, 4, 0)")
	assert.Equal(t, uint32(6), evalMain(t, src))
}

func TestSuggestedRounds(t *testing.T) {
	tests := map[uint32]uint32{1: 1, 2: 2, 4: 3, 5: 4, 1000: 11}
	for n, want := range tests {
		assert.Equal(t, want, gen.SuggestedRounds(n), "n=%d", n)
	}
}

func TestReachable_Program(t *testing.T) {
	src, err := gen.Reachable(exampleDAG(t), 0, 5, 10)
	require.NoError(t, err)
	assert.Contains(t, src, "@main = @bfs([0], [5], 0, 10)")
	requireParses(t, src)

	_, err = gen.Reachable(exampleDAG(t), 0, 9, 10)
	assert.ErrorIs(t, err, gen.ErrNodeOutOfRange)
}

func TestClosure_Program(t *testing.T) {
	c := buildCSR(t, 2, [][3]uint32{{0, 1, 1}})
	src, err := gen.Closure(c, 6)
	require.NoError(t, err)

	a, err := engine.NewArena()
	require.NoError(t, err)
	defer a.Release()

	var buf bytes.Buffer
	a.SetOutput(&buf)
	require.NoError(t, a.Parse("closure", []byte(src)))
	count, err := a.Collapse("main", 0)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.Equal(t, "1\n1\n0\n1\n", buf.String())
}
