package solve

import (
	"context"
	"fmt"

	"github.com/katalvlaran/foldgraph/bridge"
	"github.com/katalvlaran/foldgraph/core"
)

// validate performs the parameter checks shared by every entry point.
// Nothing is mutated before validation passes.
func validate(b *bridge.Bridge, g *core.Graph, nodes ...uint32) error {
	if b == nil {
		return ErrNilBridge
	}
	if g == nil {
		return ErrNilGraph
	}
	for _, node := range nodes {
		if node >= g.NodeCount() {
			return fmt.Errorf("%w: node %d (graph has %d nodes)", ErrNodeOutOfRange, node, g.NodeCount())
		}
	}

	return nil
}

// run executes one generated program: reset, optional primitive
// binding, evaluate, extract. The returned count follows the bridge's
// truncation contract.
func run(ctx context.Context, b *bridge.Bridge, csr *core.CSR, source string, mode bridge.Mode, bind bool, out []uint32) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := b.Reset(); err != nil {
		return 0, err
	}
	if bind {
		if err := b.BindGraph(csr); err != nil {
			return 0, err
		}
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	return b.Run(source, mode, out)
}

// runScalar runs a program whose result is a single number.
func runScalar(ctx context.Context, b *bridge.Bridge, csr *core.CSR, source string) (uint32, error) {
	out := make([]uint32, 1)
	count, err := run(ctx, b, csr, source, bridge.ModeNormalize, false, out)
	if err != nil {
		return 0, err
	}
	if count < 1 {
		return 0, fmt.Errorf("%w: want one value, got %d", ErrBadResult, count)
	}

	return out[0], nil
}

// mapNoPath converts a sentinel-valued distance into ErrNoPath.
func mapNoPath(dist, sentinel uint32) (uint32, error) {
	if dist >= sentinel {
		return 0, fmt.Errorf("%w: distance sentinel %d", ErrNoPath, dist)
	}

	return dist, nil
}
