package solve

import (
	"github.com/katalvlaran/foldgraph/bridge"
	"github.com/katalvlaran/foldgraph/core"
	"github.com/katalvlaran/foldgraph/gen"
)

// Reachable reports the bidirectional-search meeting distance from
// source to target, exploring at most maxDepth alternating expansions.
// Equal endpoints are distance 0 without touching the engine. A search
// that exhausts its bound is ErrNoPath.
func Reachable(b *bridge.Bridge, g *core.Graph, source, target, maxDepth uint32, opts ...Option) (uint32, error) {
	if err := validate(b, g, source, target); err != nil {
		return 0, err
	}
	if source == target {
		return 0, nil
	}
	o := buildOptions(opts)

	csr := core.NewCSR(g)
	src, err := gen.Reachable(csr, source, target, maxDepth)
	if err != nil {
		return 0, err
	}

	dist, err := runScalar(o.ctx, b, csr, src)
	if err != nil {
		return 0, err
	}

	return mapNoPath(dist, gen.NoPath)
}
