package gen

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/foldgraph/core"
)

// ShortestPathDAG generates the fully unrolled shortest-path DP: one
// shared let binding per node, target outermost, remaining nodes in
// descending index order, and the source's own minimization as the
// final body. The program's single result is dist(source, target), or a
// value >= Inf when the target is unreachable.
//
// The binding order is only sound when every edge points at an
// already-bound name: each edge (u, v) must satisfy v > u or v ==
// target, no edge may enter the source, and edges leaving the target
// are ignored. Graphs whose natural index order is topological (all
// edges forward) always qualify.
func ShortestPathDAG(c *core.CSR, source, target uint32) (string, error) {
	if err := checkCSR(c); err != nil {
		return "", err
	}
	if err := checkNode(c, source, "source"); err != nil {
		return "", err
	}
	if err := checkNode(c, target, "target"); err != nil {
		return "", err
	}
	n := c.Nodes
	if n > MaxBindNodes {
		return "", fmt.Errorf("%w: %d nodes need %d live bindings (cap %d)", ErrTooManyNodes, n, n, MaxBindNodes)
	}
	if n > MaxNameNodes {
		return "", fmt.Errorf("%w: %d nodes exceed the 4-character name encoding (cap %d)", ErrTooManyNodes, n, MaxNameNodes)
	}
	if err := checkBindingOrder(c, source, target); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("@min = λ&a. λ&b. λ{0: b; λn. a}(a < b)\n")
	fmt.Fprintf(&b, "@INF = %d\n", Inf)
	b.WriteString("@main =\n")

	if source == target {
		b.WriteString("  0\n")

		return b.String(), nil
	}

	// Target binding is outermost so every other node can reach it.
	fmt.Fprintf(&b, "  ! &%s = 0;\n", nodeName(target))

	for i := int64(n) - 1; i >= 0; i-- {
		u := uint32(i)
		if u == source || u == target {
			continue
		}
		fmt.Fprintf(&b, "  ! &%s = ", nodeName(u))
		writeNodeMin(&b, c, u)
		b.WriteString(";\n")
	}

	b.WriteString("  ")
	writeNodeMin(&b, c, source)
	b.WriteString("\n")

	return b.String(), nil
}

// checkBindingOrder rejects edges the unrolled binding chain cannot
// scope: backward edges (other than into the target) and edges into the
// source, whose name is never bound.
func checkBindingOrder(c *core.CSR, source, target uint32) error {
	for u := uint32(0); u < c.Nodes; u++ {
		if u == target {
			continue
		}
		for i, deg := uint32(0), c.Degree(u); i < deg; i++ {
			v := c.Target(u, i)
			if v == source {
				return fmt.Errorf("%w: edge %d->%d enters the source", ErrNotDAG, u, v)
			}
			if u != source && v != target && v <= u {
				return fmt.Errorf("%w: edge %d->%d is not forward", ErrNotDAG, u, v)
			}
		}
	}

	return nil
}

// writeNodeMin emits the minimization over u's outgoing edges:
// @INF for a sink, w + name for degree one, nested @min otherwise.
func writeNodeMin(b *strings.Builder, c *core.CSR, u uint32) {
	deg := c.Degree(u)
	switch deg {
	case 0:
		b.WriteString("@INF")
	case 1:
		fmt.Fprintf(b, "%d + %s", c.Weight(u, 0), nodeName(c.Target(u, 0)))
	default:
		for i := uint32(0); i < deg-1; i++ {
			fmt.Fprintf(b, "@min(%d + %s, ", c.Weight(u, i), nodeName(c.Target(u, i)))
		}
		fmt.Fprintf(b, "%d + %s", c.Weight(u, deg-1), nodeName(c.Target(u, deg-1)))
		for i := uint32(0); i < deg-1; i++ {
			b.WriteString(")")
		}
	}
}
