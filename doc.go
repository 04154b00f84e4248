// Package foldgraph solves graph problems by compiling them into tiny
// functional programs and evaluating those programs on an embedded
// term-rewriting engine.
//
// 🚀 What is foldgraph?
//
//	A library that turns a graph plus a question into a textual program,
//	runs it, and harvests numeric answers:
//		• Core primitives: bounded graphs with uint32 nodes & weighted edges, CSR views
//		• Program generators: shortest path (hybrid & inline), DAG DP,
//		  Borůvka MST, bidirectional reachability, transitive closure
//		• An arena-backed evaluator: parser, strict reducer, collapse printer
//		• A lifecycle bridge: reset/reuse, graph-reading primitives, result extraction
//
// ✨ Why choose foldgraph?
//
//   - Deterministic – same graph, same program text, same answer
//   - Reusable – one engine instance serves many graphs via cheap resets
//   - Inspectable – every solver is plain text you can print and read
//   - Minimal deps – testify for tests, nothing else
//
// Under the hood, everything is organized under five subpackages:
//
//	core/   — Graph and CSR types, validation, edge iteration
//	engine/ — arena, lexer/parser, evaluator, primitive registry
//	gen/    — program text generators for each supported problem
//	bridge/ — engine lifecycle, graph binding, normalize/collapse harvesting
//	solve/  — one-call entry points tying the pipeline together
//
// Quick ASCII example:
//
//	    0 ──2── 1 ──1── 2
//	    │       │       │
//	    3       2       1
//	    │       │       │
//	    3 ──1── 4 ──3── 5
//
//	solve.ShortestPath from node 0 yields [0 2 3 3 4 4].
//
// Dive into the solve package examples for end-to-end usage, or into
// gen if you want the generated program text itself.
//
//	go get github.com/katalvlaran/foldgraph
package foldgraph
