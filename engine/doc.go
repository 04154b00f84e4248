// Package engine is the execution-engine boundary of foldgraph.
//
// The rest of the module treats the term-rewriting engine as a collaborator
// consumed through exactly four operations on an explicit Arena:
//
//  1. NewArena    — one-time allocation of the symbol table, term heap and
//     primitive table (plus parser/evaluator bookkeeping).
//  2. Reset       — fast in-place reset between independent runs: logical
//     contents are cleared, allocations are kept. After Reset, no symbol
//     defined by an earlier run resolves.
//  3. Parse       — populate the symbol table with the `@name = expr`
//     definitions of one generated program.
//  4. Normalize / Collapse — evaluate a named entry symbol, either to a
//     single canonical Term or by printing each numeric result on its own
//     line to the arena's output channel (collapse mode, bounded).
//
// Everything behind that surface — the parser, the strict evaluator, the
// term representation — is replaceable without touching the bridge or the
// generators.
//
// The term language is the one the gen package emits: lambda abstraction
// (λx. and the shared-binding form λ&x.), match-lambdas over numeric
// literals, list shapes and constructor tags with a trailing default arm,
// let bindings (! &x = e; body), numeric literals, tagged constructors
// (#Tag{…}), list literals, infix cons (h <> t), calls f(a, b), references
// @name, primitive calls %name(…), and the operators + - * / % < == >.
// All numbers are unsigned 32-bit; arithmetic wraps.
//
// An Arena is not safe for concurrent use; exactly one parse or evaluation
// may be in flight at a time.
package engine
