package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foldgraph/bridge"
	"github.com/katalvlaran/foldgraph/core"
	"github.com/katalvlaran/foldgraph/gen"
)

// mustBridge allocates a bridge for a test and closes it on cleanup.
func mustBridge(t *testing.T, opts ...bridge.Option) *bridge.Bridge {
	t.Helper()
	b, err := bridge.New(opts...)
	require.NoError(t, err)
	t.Cleanup(b.Close)

	return b
}

func TestNew_ThreadResolution(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv("FOLDGRAPH_THREADS", "3")
		b := mustBridge(t)
		assert.Equal(t, 3, b.Threads())
	})

	t.Run("option beats env", func(t *testing.T) {
		t.Setenv("FOLDGRAPH_THREADS", "3")
		b := mustBridge(t, bridge.WithThreads(2))
		assert.Equal(t, 2, b.Threads())
	})

	t.Run("garbage env ignored", func(t *testing.T) {
		t.Setenv("FOLDGRAPH_THREADS", "lots")
		b := mustBridge(t)
		assert.Greater(t, b.Threads(), 0)
	})

	t.Run("option violations", func(t *testing.T) {
		_, err := bridge.New(bridge.WithThreads(0))
		assert.ErrorIs(t, err, bridge.ErrOptionViolation)
		_, err = bridge.New(bridge.WithCollapseLimit(-1))
		assert.ErrorIs(t, err, bridge.ErrOptionViolation)
		_, err = bridge.New(bridge.WithHeapCapacity(0))
		assert.ErrorIs(t, err, bridge.ErrOptionViolation)
	})
}

// TestRun_NormalizeTruncation checks the truncation contract: the count
// reports every produced value even when out is too small.
func TestRun_NormalizeTruncation(t *testing.T) {
	b := mustBridge(t)

	out := make([]uint32, 2)
	count, err := b.Run(`@main = [10, 20, 30]`, bridge.ModeNormalize, out)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, []uint32{10, 20}, out)

	// Scalar result, ample capacity.
	require.NoError(t, b.Reset())
	out = make([]uint32, 4)
	count, err = b.Run(`@main = 7`, bridge.ModeNormalize, out)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, uint32(7), out[0])
}

// TestRun_CollapseCapped checks that collapse-mode counts are capped at
// capacity and that capture does not leak into later runs.
func TestRun_CollapseCapped(t *testing.T) {
	b := mustBridge(t)

	out := make([]uint32, 2)
	count, err := b.Run(`@main = [4, 5, 6]`, bridge.ModeCollapse, out)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []uint32{4, 5}, out)

	require.NoError(t, b.Reset())
	out = make([]uint32, 8)
	count, err = b.Run(`@main = [1, [2, 3]]`, bridge.ModeCollapse, out)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, []uint32{1, 2, 3}, out[:count])
}

func TestRun_Errors(t *testing.T) {
	b := mustBridge(t)
	out := make([]uint32, 1)

	t.Run("entry undefined", func(t *testing.T) {
		_, err := b.Run(`@helper = 1`, bridge.ModeNormalize, out)
		assert.ErrorIs(t, err, bridge.ErrEntryUndefined)
	})

	t.Run("parse failure", func(t *testing.T) {
		require.NoError(t, b.Reset())
		_, err := b.Run(`@main = `, bridge.ModeNormalize, out)
		assert.ErrorIs(t, err, bridge.ErrEngine)
	})

	t.Run("evaluation failure", func(t *testing.T) {
		require.NoError(t, b.Reset())
		_, err := b.Run(`@main = 1 / 0`, bridge.ModeCollapse, out)
		assert.ErrorIs(t, err, bridge.ErrEngine)

		// The capture writer was restored; the bridge still runs.
		require.NoError(t, b.Reset())
		count, err := b.Run(`@main = [9]`, bridge.ModeCollapse, out)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Equal(t, uint32(9), out[0])
	})

	t.Run("bad mode", func(t *testing.T) {
		require.NoError(t, b.Reset())
		_, err := b.Run(`@main = 1`, bridge.Mode(9), out)
		assert.ErrorIs(t, err, bridge.ErrBadMode)
	})
}

// TestReset_DropsDefinitions checks that no symbol survives a reset and
// the bridge is immediately reusable.
func TestReset_DropsDefinitions(t *testing.T) {
	b := mustBridge(t)
	out := make([]uint32, 1)

	_, err := b.Run(`@main = 1`, bridge.ModeNormalize, out)
	require.NoError(t, err)

	require.NoError(t, b.Reset())
	_, err = b.Run(`@other = 2`, bridge.ModeNormalize, out)
	assert.ErrorIs(t, err, bridge.ErrEntryUndefined)

	require.NoError(t, b.Reset())
	count, err := b.Run(`@main = 3`, bridge.ModeNormalize, out)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, uint32(3), out[0])
}

func TestClose_IsTerminal(t *testing.T) {
	b, err := bridge.New()
	require.NoError(t, err)
	b.Close()
	b.Close() // idempotent

	assert.ErrorIs(t, b.Reset(), bridge.ErrClosed)
	_, err = b.Run(`@main = 1`, bridge.ModeNormalize, nil)
	assert.ErrorIs(t, err, bridge.ErrClosed)
	assert.ErrorIs(t, b.BindGraph(&core.CSR{}), bridge.ErrClosed)
	assert.Zero(t, b.Threads())
}

// TestBindGraph_HybridProgram runs the primitive-backed Bellman-Ford
// template end to end on the 6-node example graph.
func TestBindGraph_HybridProgram(t *testing.T) {
	g, err := core.NewGraph(6)
	require.NoError(t, err)
	for _, e := range [][3]uint32{
		{0, 1, 2}, {0, 3, 3}, {1, 2, 1}, {1, 4, 2}, {2, 5, 1}, {3, 4, 1}, {4, 5, 3},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1], e[2]))
	}
	csr := core.NewCSR(g)

	src, err := gen.ShortestPath(csr, 0)
	require.NoError(t, err)

	b := mustBridge(t)
	require.NoError(t, b.BindGraph(csr))

	out := make([]uint32, 6)
	count, err := b.Run(src, bridge.ModeNormalize, out)
	require.NoError(t, err)
	assert.Equal(t, 6, count)
	assert.Equal(t, []uint32{0, 2, 3, 3, 4, 4}, out)
}

func TestBindGraph_Validation(t *testing.T) {
	b := mustBridge(t)
	assert.ErrorIs(t, b.BindGraph(nil), bridge.ErrNilCSR)

	// An unbound hybrid program fails at evaluation, not parse.
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	src, err := gen.ShortestPath(core.NewCSR(g), 0)
	require.NoError(t, err)

	out := make([]uint32, 2)
	_, err = b.Run(src, bridge.ModeNormalize, out)
	assert.ErrorIs(t, err, bridge.ErrEngine)
}
