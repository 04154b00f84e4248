// Package core provides the native graph store shared by all foldgraph
// generators and runners.
//
// A Graph is an ordered set of nodes 0..n-1 plus a multiset of directed
// weighted edges (Src, Dst, Weight). Undirected use adds both directions
// via AddBiedge. Node indices and weights are uint32 because the generated
// programs compute in the engine's unsigned 32-bit numeric domain.
//
// Bulk edge data stays in native memory: generators either inline edges as
// program text (small graphs) or leave them here and let generated programs
// reach them through primitive calls bound to a CSR index (large graphs).
//
// A CSR is built by counting sort on the source node, once per algorithm
// invocation, and is read-only thereafter:
//
//	RowPtr[n+1] monotonic, RowPtr[n] == E
//	edges of node u occupy ColIdx[RowPtr[u]:RowPtr[u+1]]
//
// Concurrency: a Graph is owned exclusively by its caller and must be
// treated as immutable once an algorithm begins; there is no internal
// locking. Mutating a graph mid-run requires rebuilding it.
//
// Errors (sentinel):
//
//	– ErrNoNodes        if a graph is created with zero nodes.
//	– ErrNodeOutOfRange if an edge endpoint is >= the node count.
package core
