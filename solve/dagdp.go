package solve

import (
	"github.com/katalvlaran/foldgraph/bridge"
	"github.com/katalvlaran/foldgraph/core"
	"github.com/katalvlaran/foldgraph/gen"
)

// ShortestPathDAG computes the source-to-target distance through the
// fully unrolled DP program. The graph's edges must respect the forward
// binding order (see gen.ShortestPathDAG); gen.ErrNotDAG and the
// generation caps pass through unchanged. An unreachable target is
// ErrNoPath.
func ShortestPathDAG(b *bridge.Bridge, g *core.Graph, source, target uint32, opts ...Option) (uint32, error) {
	if err := validate(b, g, source, target); err != nil {
		return 0, err
	}
	if source == target {
		return 0, nil
	}
	o := buildOptions(opts)

	csr := core.NewCSR(g)
	src, err := gen.ShortestPathDAG(csr, source, target)
	if err != nil {
		return 0, err
	}

	dist, err := runScalar(o.ctx, b, csr, src)
	if err != nil {
		return 0, err
	}

	return mapNoPath(dist, gen.Inf)
}
