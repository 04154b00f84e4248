package core

// CSR is a compressed sparse row index over a graph's edges, grouped by
// source node via counting sort. It is built once per algorithm invocation
// and read-only thereafter; edges of node u occupy the half-open range
// ColIdx[RowPtr[u]:RowPtr[u+1]], with parallel weights in Weights.
//
// Counting sort is stable, so within one node the insertion order of edges
// is preserved.
type CSR struct {
	// Nodes is n; RowPtr has n+1 entries and RowPtr[n] == len(ColIdx).
	Nodes   uint32
	RowPtr  []uint32
	ColIdx  []uint32
	Weights []uint32
}

// NewCSR builds a CSR index from g in O(V+E).
func NewCSR(g *Graph) *CSR {
	n := g.nodes
	ne := uint32(len(g.edges))

	// Count out-degrees shifted by one, then prefix-sum into row pointers.
	rp := make([]uint32, n+1)
	for i := range g.edges {
		rp[g.edges[i].Src+1]++
	}
	for u := uint32(1); u <= n; u++ {
		rp[u] += rp[u-1]
	}

	ci := make([]uint32, ne)
	wt := make([]uint32, ne)
	pos := make([]uint32, n+1)
	copy(pos, rp)
	for i := range g.edges {
		p := pos[g.edges[i].Src]
		pos[g.edges[i].Src]++
		ci[p] = g.edges[i].Dst
		wt[p] = g.edges[i].Weight
	}

	return &CSR{Nodes: n, RowPtr: rp, ColIdx: ci, Weights: wt}
}

// Degree returns the out-degree of node u.
func (c *CSR) Degree(u uint32) uint32 {
	return c.RowPtr[u+1] - c.RowPtr[u]
}

// Target returns the destination of the i-th outgoing edge of u.
func (c *CSR) Target(u, i uint32) uint32 {
	return c.ColIdx[c.RowPtr[u]+i]
}

// Weight returns the weight of the i-th outgoing edge of u.
func (c *CSR) Weight(u, i uint32) uint32 {
	return c.Weights[c.RowPtr[u]+i]
}
