// Package gen emits term-rewriting programs for graph algorithms.
//
// Every generator is a pure function from a graph in CSR form (plus
// algorithm parameters) to program text consumed by engine.Parse. No
// generator touches an arena; running the text is the bridge's job.
//
// Generators:
//
//   - ShortestPath: Bellman-Ford over a persistent radix-4 trie of
//     distances. The default template reads the graph through the
//     %graph_deg / %graph_target / %graph_weight primitives and stops
//     early when a full relaxation round changes nothing; the
//     WithInlineEdges variant embeds the edge list in the program text
//     and runs a fixed n-1 rounds.
//   - ShortestPathDAG: the whole DP unrolled into nested let bindings,
//     one per node, in reverse binding order. Needs edges compatible
//     with that order (see ErrNotDAG) and is capped by MaxBindNodes
//     and MaxNameNodes.
//   - MSTBoruvka: component-label contraction over an inlined edge
//     list, running a caller-supplied number of rounds (see
//     SuggestedRounds).
//   - Reachable: bidirectional breadth-first search with alternating
//     frontiers and the NoPath sentinel.
//   - Closure: depth-bounded transitive closure, one reachability probe
//     per ordered node pair.
//
// Distances use the Inf sentinel (999999); the reachability and MST
// templates use the smaller NoPath sentinel (999) and assume individual
// weights stay below it.
package gen
