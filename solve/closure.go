package solve

import (
	"fmt"

	"github.com/katalvlaran/foldgraph/bridge"
	"github.com/katalvlaran/foldgraph/core"
	"github.com/katalvlaran/foldgraph/gen"
)

// Closure computes the depth-bounded transitive closure of g and
// returns it as an n*n row-major matrix: entry i*n+j is 1 when j is
// reachable from i within depthLimit steps (every node reaches
// itself). The program's flat result list is harvested in collapse
// mode, one value per printed line.
func Closure(b *bridge.Bridge, g *core.Graph, depthLimit uint32, opts ...Option) ([]uint8, error) {
	if err := validate(b, g); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	csr := core.NewCSR(g)
	src, err := gen.Closure(csr, depthLimit)
	if err != nil {
		return nil, err
	}

	n := int(g.NodeCount())
	out := make([]uint32, n*n)
	count, err := run(o.ctx, b, csr, src, bridge.ModeCollapse, false, out)
	if err != nil {
		return nil, err
	}
	if count != len(out) {
		return nil, fmt.Errorf("%w: want %d entries, got %d", ErrBadResult, len(out), count)
	}

	matrix := make([]uint8, len(out))
	for i, v := range out {
		if v != 0 {
			matrix[i] = 1
		}
	}

	return matrix, nil
}
