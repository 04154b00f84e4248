// Package solve exposes the five graph-algorithm entry points, each
// tying the generators, the bridge and the engine into one call:
// validate, reset, generate, run, extract.
//
//   - ShortestPath: single-source distances via Bellman-Ford on the
//     engine; unreachable nodes report gen.Inf.
//   - ShortestPathDAG: one source-to-target distance via the fully
//     unrolled DP; needs edges compatible with the binding order.
//   - MSTBoruvka: total minimum-spanning-tree weight after a caller-
//     supplied number of contraction rounds (gen.SuggestedRounds).
//   - Reachable: bounded bidirectional search distance between two
//     nodes.
//   - Closure: the depth-bounded transitive-closure matrix, flattened
//     row-major.
//
// Every call resets the bridge first, so callers interleave algorithms
// on one bridge freely. Unreachable results surface as ErrNoPath where
// the output is a single distance; the distance-list and matrix shapes
// report per-entry sentinels instead.
//
// A context supplied through WithContext is consulted between pipeline
// phases only; evaluation itself cannot be interrupted, so a hostile
// program still hangs the caller.
package solve
