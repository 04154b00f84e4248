// Package bridge drives one engine arena through the allocate-once /
// fast-reset / teardown lifecycle and turns generated programs into
// numeric results.
//
// A Bridge owns exactly one engine.Arena and is single-threaded: one
// logical run at a time, no internal locking. The lifecycle is
//
//	New -> (Reset | BindGraph | Run)* -> Close
//
// Reset clears every definition and cached term while keeping the
// arena's allocations; Close is terminal. Run parses a generated
// program into the arena, requires the entry symbol main, evaluates in
// one of two modes and harvests uint32 results into the caller's slice:
//
//   - ModeNormalize flattens the normal form depth-first (numeric leaf,
//     head before tail, constructor children in order). The returned
//     count is the number of values produced and may exceed len(out);
//     extra values are dropped, never an error.
//   - ModeCollapse captures the engine's printed output, one candidate
//     per line, parses each line as an unsigned integer and skips lines
//     that are not one. The previous output writer is restored even
//     when evaluation fails. The returned count is capped at len(out).
//
// BindGraph installs the %graph_deg, %graph_target and %graph_weight
// primitives over a CSR so hybrid programs can read the graph without
// inlining it. Primitive bindings do not survive Reset; rebind after
// each reset.
//
// There is no cancellation: a non-terminating program hangs the caller.
package bridge
