package solve_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foldgraph/bridge"
	"github.com/katalvlaran/foldgraph/core"
	"github.com/katalvlaran/foldgraph/gen"
	"github.com/katalvlaran/foldgraph/solve"
)

// mustBridge allocates a shared bridge and closes it on cleanup.
func mustBridge(t testing.TB) *bridge.Bridge {
	t.Helper()
	b, err := bridge.New()
	require.NoError(t, err)
	t.Cleanup(b.Close)

	return b
}

// lcg is the deterministic generator both random-graph builders share,
// so fixtures are reproducible across runs and platforms.
type lcg struct{ s uint32 }

func (r *lcg) next() uint32 {
	r.s = (r.s*1103515245 + 12345) & 0x7fffffff

	return r.s
}

// lcgGraph builds a connected random digraph: a forward chain for
// connectivity plus random extra edges in both directions, seeded from
// the node count.
func lcgGraph(t testing.TB, n, epn uint32) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	r := &lcg{s: 42 + n}

	for i := uint32(0); i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1, r.next()%10+1))
	}

	target := n * epn
	added := n - 1
	for a, attempts := uint32(0), n*(epn-1)*2; a < attempts && added < target; a++ {
		u := r.next() % n
		v := r.next() % n
		if u == v {
			continue
		}
		require.NoError(t, g.AddEdge(u, v, r.next()%20+1))
		added++
	}

	return g
}

// lcgDAG builds a connected random DAG: the same chain plus
// forward-only extra edges, so index order is topological.
func lcgDAG(t testing.TB, n, epn uint32) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	r := &lcg{s: 42 + n}

	for i := uint32(0); i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1, r.next()%10+1))
	}

	target := n * epn
	added := n - 1
	for a, attempts := uint32(0), n*(epn-1)*3; a < attempts && added < target; a++ {
		u := r.next() % n
		v := r.next() % n
		if u >= v {
			continue
		}
		require.NoError(t, g.AddEdge(u, v, r.next()%20+1))
		added++
	}

	return g
}

// bfReference relaxes edges natively until a fixed point.
func bfReference(g *core.Graph, source uint32) []uint32 {
	n := g.NodeCount()
	dist := make([]uint32, n)
	for i := range dist {
		dist[i] = gen.Inf
	}
	dist[source] = 0

	edges := g.Edges()
	for round := uint32(0); round+1 < n; round++ {
		changed := false
		for _, e := range edges {
			if dist[e.Src] == gen.Inf {
				continue
			}
			if nd := dist[e.Src] + e.Weight; nd < dist[e.Dst] {
				dist[e.Dst] = nd
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

// dagReference runs the DP natively in reverse index order.
func dagReference(g *core.Graph, source, target uint32) uint32 {
	n := g.NodeCount()
	dist := make([]uint32, n)
	for i := range dist {
		dist[i] = gen.Inf
	}
	dist[target] = 0

	adj := make([][]core.Edge, n)
	for _, e := range g.Edges() {
		adj[e.Src] = append(adj[e.Src], e)
	}
	for i := int64(n) - 1; i >= 0; i-- {
		u := uint32(i)
		if u == target {
			continue
		}
		for _, e := range adj[u] {
			if nd := e.Weight + dist[e.Dst]; nd < dist[u] {
				dist[u] = nd
			}
		}
	}

	return dist[source]
}

// exampleGraph is the 6-node directed fixture; distances from node 0
// are [0, 2, 3, 3, 4, 4].
func exampleGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(6)
	require.NoError(t, err)
	for _, e := range [][3]uint32{
		{0, 1, 2}, {0, 3, 3}, {1, 2, 1}, {1, 4, 2}, {2, 5, 1}, {3, 4, 1}, {4, 5, 3},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1], e[2]))
	}

	return g
}

func TestShortestPath_MatchesReference(t *testing.T) {
	b := mustBridge(t)
	for _, n := range []uint32{2, 10, 100, 1000} {
		for _, epn := range []uint32{1, 4, 8} {
			t.Run(fmt.Sprintf("V=%d/epn=%d", n, epn), func(t *testing.T) {
				g := lcgGraph(t, n, epn)
				got, err := solve.ShortestPath(b, g, 0)
				require.NoError(t, err)
				assert.Equal(t, bfReference(g, 0), got)
			})
		}
	}
}

// TestShortestPath_InlineMatches pins the self-contained template to
// the same results on smaller instances.
func TestShortestPath_InlineMatches(t *testing.T) {
	b := mustBridge(t)
	for _, n := range []uint32{2, 10, 100} {
		t.Run(fmt.Sprintf("V=%d", n), func(t *testing.T) {
			g := lcgGraph(t, n, 4)
			got, err := solve.ShortestPath(b, g, 0, solve.WithInlineEdges())
			require.NoError(t, err)
			assert.Equal(t, bfReference(g, 0), got)
		})
	}
}

func TestShortestPathDAG_MatchesReference(t *testing.T) {
	b := mustBridge(t)
	for _, n := range []uint32{2, 10, 100, 1000} {
		for _, epn := range []uint32{1, 4, 8} {
			t.Run(fmt.Sprintf("V=%d/epn=%d", n, epn), func(t *testing.T) {
				g := lcgDAG(t, n, epn)
				got, err := solve.ShortestPathDAG(b, g, 0, n-1)
				require.NoError(t, err)
				assert.Equal(t, dagReference(g, 0, n-1), got)
			})
		}
	}
}

func TestShortestPathDAG_EdgeCases(t *testing.T) {
	b := mustBridge(t)

	t.Run("source equals target", func(t *testing.T) {
		dist, err := solve.ShortestPathDAG(b, exampleGraph(t), 2, 2)
		require.NoError(t, err)
		assert.Zero(t, dist)
	})

	t.Run("unreachable target", func(t *testing.T) {
		g, err := core.NewGraph(3)
		require.NoError(t, err)
		require.NoError(t, g.AddEdge(1, 2, 7))
		_, err = solve.ShortestPathDAG(b, g, 0, 2)
		assert.ErrorIs(t, err, solve.ErrNoPath)
	})

	t.Run("backward edge rejected", func(t *testing.T) {
		g, err := core.NewGraph(3)
		require.NoError(t, err)
		require.NoError(t, g.AddEdge(0, 1, 1))
		require.NoError(t, g.AddEdge(2, 1, 1))
		_, err = solve.ShortestPathDAG(b, g, 0, 2)
		assert.ErrorIs(t, err, gen.ErrNotDAG)
	})

	t.Run("binding cap fails fast", func(t *testing.T) {
		g, err := core.NewGraph(gen.MaxBindNodes + 1)
		require.NoError(t, err)
		_, err = solve.ShortestPathDAG(b, g, 0, 1)
		assert.ErrorIs(t, err, gen.ErrTooManyNodes)
	})
}

func TestMSTBoruvka_Fixture(t *testing.T) {
	b := mustBridge(t)
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddBiedge(0, 1, 4))
	require.NoError(t, g.AddBiedge(0, 2, 1))
	require.NoError(t, g.AddBiedge(1, 2, 2))
	require.NoError(t, g.AddBiedge(1, 3, 5))
	require.NoError(t, g.AddBiedge(2, 3, 3))

	weight, err := solve.MSTBoruvka(b, g, 2)
	require.NoError(t, err)
	assert.Equal(t, uint32(6), weight)

	// Extra rounds find no crossing edges and change nothing.
	weight, err = solve.MSTBoruvka(b, g, gen.SuggestedRounds(4))
	require.NoError(t, err)
	assert.Equal(t, uint32(6), weight)
}

func TestReachable(t *testing.T) {
	b := mustBridge(t)

	t.Run("undirected chain distance", func(t *testing.T) {
		g, err := core.NewGraph(4)
		require.NoError(t, err)
		require.NoError(t, g.AddBiedge(0, 1, 1))
		require.NoError(t, g.AddBiedge(1, 2, 1))
		require.NoError(t, g.AddBiedge(2, 3, 1))

		dist, err := solve.Reachable(b, g, 0, 3, 10)
		require.NoError(t, err)
		assert.Equal(t, uint32(3), dist)

		// A depth bound below the distance exhausts the search.
		_, err = solve.Reachable(b, g, 0, 3, 1)
		assert.ErrorIs(t, err, solve.ErrNoPath)
	})

	t.Run("directed asymmetry", func(t *testing.T) {
		g, err := core.NewGraph(2)
		require.NoError(t, err)
		require.NoError(t, g.AddEdge(0, 1, 1))

		dist, err := solve.Reachable(b, g, 0, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, uint32(1), dist)

		_, err = solve.Reachable(b, g, 1, 0, 10)
		assert.ErrorIs(t, err, solve.ErrNoPath)
	})

	t.Run("source equals target", func(t *testing.T) {
		g, err := core.NewGraph(2)
		require.NoError(t, err)
		dist, err := solve.Reachable(b, g, 1, 1, 0)
		require.NoError(t, err)
		assert.Zero(t, dist)
	})
}

// closureReference computes plain reachability (depth-unbounded) per
// node via native BFS; valid when depthLimit >= n.
func closureReference(g *core.Graph) []uint8 {
	n := g.NodeCount()
	adj := make([][]uint32, n)
	for _, e := range g.Edges() {
		adj[e.Src] = append(adj[e.Src], e.Dst)
	}

	matrix := make([]uint8, int(n)*int(n))
	for s := uint32(0); s < n; s++ {
		seen := make([]bool, n)
		queue := []uint32{s}
		seen[s] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		for j := uint32(0); j < n; j++ {
			if seen[j] {
				matrix[s*n+j] = 1
			}
		}
	}

	return matrix
}

func TestClosure_MatchesReferenceAndRepeats(t *testing.T) {
	b := mustBridge(t)
	g := exampleGraph(t)

	first, err := solve.Closure(b, g, 6)
	require.NoError(t, err)
	assert.Equal(t, closureReference(g), first)

	// Same bridge, fresh reset inside the call: identical answer.
	second, err := solve.Closure(b, g, 6)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidation(t *testing.T) {
	b := mustBridge(t)
	g := exampleGraph(t)

	_, err := solve.ShortestPath(nil, g, 0)
	assert.ErrorIs(t, err, solve.ErrNilBridge)

	_, err = solve.ShortestPath(b, nil, 0)
	assert.ErrorIs(t, err, solve.ErrNilGraph)

	_, err = solve.ShortestPath(b, g, 6)
	assert.ErrorIs(t, err, solve.ErrNodeOutOfRange)

	_, err = solve.Reachable(b, g, 0, 17, 5)
	assert.ErrorIs(t, err, solve.ErrNodeOutOfRange)

	closed, err := bridge.New()
	require.NoError(t, err)
	closed.Close()
	_, err = solve.ShortestPath(closed, g, 0)
	assert.ErrorIs(t, err, bridge.ErrClosed)
}

func TestWithContext_Cancelled(t *testing.T) {
	b := mustBridge(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solve.ShortestPath(b, exampleGraph(t), 0, solve.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
