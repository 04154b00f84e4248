package bridge

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/foldgraph/core"
	"github.com/katalvlaran/foldgraph/engine"
)

// BindGraph installs the graph-reading primitives over c:
//
//	%graph_deg(u)        out-degree of u
//	%graph_target(u, i)  destination of u's i-th edge
//	%graph_weight(u, i)  weight of u's i-th edge
//
// The CSR is captured by reference and must stay unmodified until the
// next Reset or rebind. Bindings are cleared by Reset.
func (b *Bridge) BindGraph(c *core.CSR) error {
	if b.closed {
		return ErrClosed
	}
	if c == nil {
		return ErrNilCSR
	}

	if err := b.arena.RegisterPrim("graph_deg", func(args []engine.Value) (engine.Value, error) {
		u, err := nodeArg(c, args, 0, 1)
		if err != nil {
			return nil, err
		}

		return engine.Num(c.Degree(u)), nil
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrEngine, err)
	}

	if err := b.arena.RegisterPrim("graph_target", func(args []engine.Value) (engine.Value, error) {
		u, i, err := edgeArgs(c, args)
		if err != nil {
			return nil, err
		}

		return engine.Num(c.Target(u, i)), nil
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrEngine, err)
	}

	if err := b.arena.RegisterPrim("graph_weight", func(args []engine.Value) (engine.Value, error) {
		u, i, err := edgeArgs(c, args)
		if err != nil {
			return nil, err
		}

		return engine.Num(c.Weight(u, i)), nil
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrEngine, err)
	}

	return nil
}

// nodeArg checks arity and unwraps args[idx] as a valid node index.
func nodeArg(c *core.CSR, args []engine.Value, idx, want int) (uint32, error) {
	if len(args) != want {
		return 0, fmt.Errorf("want %d arguments, got %d", want, len(args))
	}
	u, ok := engine.NumOf(args[idx])
	if !ok {
		return 0, errors.New("node index must be numeric")
	}
	if u >= c.Nodes {
		return 0, fmt.Errorf("node %d out of range (graph has %d nodes)", u, c.Nodes)
	}

	return u, nil
}

// edgeArgs unwraps (node, edge-offset) argument pairs.
func edgeArgs(c *core.CSR, args []engine.Value) (uint32, uint32, error) {
	u, err := nodeArg(c, args, 0, 2)
	if err != nil {
		return 0, 0, err
	}
	i, ok := engine.NumOf(args[1])
	if !ok {
		return 0, 0, errors.New("edge offset must be numeric")
	}
	if i >= c.Degree(u) {
		return 0, 0, fmt.Errorf("edge offset %d out of range for node %d", i, u)
	}

	return u, i, nil
}
