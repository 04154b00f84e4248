package gen

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/foldgraph/core"
)

// Inline edge lists above the threshold are split into fixed-size chunk
// definitions joined by right-associated @append calls, keeping each
// list literal within comfortable parser territory.
const (
	edgeChunkThreshold = 3500
	edgeChunkSize      = 2000
	edgesPerLine       = 8
)

// appendDef joins two lists; emitted only alongside chunked edge lists.
const appendDef = `@append = λ{
  []: λb. b;
  <>: λh. λt. λb. h <> @append(t, b)
}
`

// writeAdjacency emits @adj, a match-lambda from node index to neighbor
// list, with an empty-list default for out-of-range indices. Weighted
// entries use #E{dst, w}, unweighted a bare index.
func writeAdjacency(b *strings.Builder, c *core.CSR, weighted bool) {
	b.WriteString("@adj = λ{\n")
	for u := uint32(0); u < c.Nodes; u++ {
		fmt.Fprintf(b, "  %d: [", u)
		for i, deg := uint32(0), c.Degree(u); i < deg; i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			if weighted {
				fmt.Fprintf(b, "#E{%d, %d}", c.Target(u, i), c.Weight(u, i))
			} else {
				fmt.Fprintf(b, "%d", c.Target(u, i))
			}
		}
		b.WriteString("];\n")
	}
	b.WriteString("  λn. []\n}\n")
}

// writeEdgeList emits @edges as #E3{src, dst, w} triples in CSR order.
// Below the threshold it is one list literal; above, chunk definitions
// @edges_0.. joined by nested @append (which is emitted too).
func writeEdgeList(b *strings.Builder, c *core.CSR, threshold int) {
	total := len(c.ColIdx)
	if total <= threshold {
		b.WriteString("@edges = [")
		writeEdgeRange(b, c, 0, total)
		b.WriteString("]\n")

		return
	}

	b.WriteString(appendDef)
	numChunks := (total + edgeChunkSize - 1) / edgeChunkSize
	for chunk := 0; chunk < numChunks; chunk++ {
		start := chunk * edgeChunkSize
		end := start + edgeChunkSize
		if end > total {
			end = total
		}
		fmt.Fprintf(b, "@edges_%d = [", chunk)
		writeEdgeRange(b, c, start, end)
		b.WriteString("]\n")
	}

	expr := fmt.Sprintf("@edges_%d", numChunks-1)
	for chunk := numChunks - 2; chunk >= 0; chunk-- {
		expr = fmt.Sprintf("@append(@edges_%d, %s)", chunk, expr)
	}
	fmt.Fprintf(b, "@edges = %s\n", expr)
}

// writeEdgeRange writes edges [start, end) of the flattened CSR as list
// elements, a few per line.
func writeEdgeRange(b *strings.Builder, c *core.CSR, start, end int) {
	u := uint32(0)
	for i := start; i < end; i++ {
		for int(c.RowPtr[u+1]) <= i {
			u++
		}
		if i > start {
			if (i-start)%edgesPerLine == 0 {
				b.WriteString(",\n  ")
			} else {
				b.WriteString(", ")
			}
		}
		fmt.Fprintf(b, "#E3{%d,%d,%d}", u, c.ColIdx[i], c.Weights[i])
	}
}
