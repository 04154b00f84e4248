package solve

import (
	"fmt"

	"github.com/katalvlaran/foldgraph/bridge"
	"github.com/katalvlaran/foldgraph/core"
	"github.com/katalvlaran/foldgraph/gen"
)

// ShortestPath computes single-source shortest distances for every node
// of g. The result slice has one entry per node; unreachable nodes hold
// gen.Inf. By default the graph is read through bound primitives;
// WithInlineEdges embeds it in the program text instead.
func ShortestPath(b *bridge.Bridge, g *core.Graph, source uint32, opts ...Option) ([]uint32, error) {
	if err := validate(b, g, source); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	csr := core.NewCSR(g)
	var genOpts []gen.Option
	if o.inline {
		genOpts = append(genOpts, gen.WithInlineEdges())
	}
	program, err := gen.ShortestPath(csr, source, genOpts...)
	if err != nil {
		return nil, err
	}

	out := make([]uint32, g.NodeCount())
	count, err := run(o.ctx, b, csr, program, bridge.ModeNormalize, !o.inline, out)
	if err != nil {
		return nil, err
	}
	if count != len(out) {
		return nil, fmt.Errorf("%w: want %d distances, got %d", ErrBadResult, len(out), count)
	}

	return out, nil
}
