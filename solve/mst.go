package solve

import (
	"github.com/katalvlaran/foldgraph/bridge"
	"github.com/katalvlaran/foldgraph/core"
	"github.com/katalvlaran/foldgraph/gen"
)

// MSTBoruvka computes the total minimum-spanning-tree weight of g,
// which is expected to be undirected (every edge added via AddBiedge)
// with all weights below gen.NoPath. The round count is the caller's
// contract: too few rounds leave components unmerged and undercount the
// weight. gen.SuggestedRounds(n) always suffices.
func MSTBoruvka(b *bridge.Bridge, g *core.Graph, rounds uint32, opts ...Option) (uint32, error) {
	if err := validate(b, g); err != nil {
		return 0, err
	}
	o := buildOptions(opts)

	csr := core.NewCSR(g)
	src, err := gen.MSTBoruvka(csr, rounds)
	if err != nil {
		return 0, err
	}

	return runScalar(o.ctx, b, csr, src)
}
