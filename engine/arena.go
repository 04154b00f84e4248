package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel errors for arena lifecycle and evaluation.
var (
	// ErrOptionViolation is returned by NewArena for an invalid Option.
	ErrOptionViolation = errors.New("engine: invalid option supplied")

	// ErrReleased is returned when an arena is used after Release.
	ErrReleased = errors.New("engine: arena released")

	// ErrParse wraps all source-parsing failures.
	ErrParse = errors.New("engine: parse error")

	// ErrBindLimit is returned when a program needs more simultaneously
	// live binders than the parser can hold.
	ErrBindLimit = errors.New("engine: binder limit exceeded")

	// ErrUndefinedSymbol is returned when evaluation is requested for a
	// symbol with no definition in the symbol table.
	ErrUndefinedSymbol = errors.New("engine: undefined symbol")

	// ErrUnknownPrimitive is returned when a program calls a primitive
	// absent from the primitive table.
	ErrUnknownPrimitive = errors.New("engine: unknown primitive")

	// ErrEval wraps evaluation failures (non-applicable value, failed
	// match, division by zero).
	ErrEval = errors.New("engine: evaluation error")
)

// MaxParseBinds caps the number of simultaneously live binders (lambda
// parameters and let bindings) during parsing. Programs that unroll one
// binding per graph node are limited to this many nodes.
const MaxParseBinds = 131072

// freshLabBase seeds the parser's fresh-label counter for shared (&)
// bindings on every reset.
const freshLabBase = 0x800000

// defaultHeapCapacity sizes the term heap of a fresh arena, in terms.
const defaultHeapCapacity = 1 << 16

// PrimFunc is a primitive installed in the arena's primitive table and
// callable from programs as %name(args). Arguments arrive fully evaluated.
type PrimFunc func(args []Value) (Value, error)

// Arena owns the engine state reused across many short-lived programs:
// the symbol table (interned names plus definition book), the term heap,
// the primitive table, and parser/evaluator bookkeeping. It is created
// once, Reset between runs, and Released at shutdown; there is never any
// package-level state.
type Arena struct {
	// symbol table; vals caches each definition's evaluated value so
	// repeated references share one evaluation per reset
	names []string
	ids   map[string]uint32
	book  []expr
	vals  []Value

	// term heap for normal forms
	heap []Term

	// constructor tag interning
	tags   []string
	tagIDs map[string]uint16

	// primitive table
	prims map[string]PrimFunc

	// parser bookkeeping
	binds     []string
	freshLab  uint32
	seenFiles []string

	// evaluator bookkeeping
	iters uint64
	stack []Value

	out      io.Writer
	threads  int
	released bool
}

// Option configures NewArena.
type Option func(*options)

type options struct {
	threads int
	heapCap int
	out     io.Writer
	err     error
}

// WithThreads sets the evaluation thread count handed to the engine.
// The count is fixed at allocation time and never revisited per run.
// n <= 0 is an option violation.
func WithThreads(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: thread count must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.threads = n
	}
}

// WithHeapCapacity sets the initial term-heap capacity in terms.
func WithHeapCapacity(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: heap capacity must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.heapCap = n
	}
}

// WithOutput redirects the arena's textual output channel (used by
// collapse-mode evaluation). Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// NewArena allocates the symbol table, term heap and primitive table, and
// registers the built-in primitives. Call once; use Reset between runs.
func NewArena(opts ...Option) (*Arena, error) {
	o := options{threads: 1, heapCap: defaultHeapCapacity, out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	a := &Arena{
		ids:      make(map[string]uint32),
		heap:     make([]Term, 0, o.heapCap),
		tagIDs:   make(map[string]uint16),
		prims:    make(map[string]PrimFunc),
		freshLab: freshLabBase,
		out:      o.out,
		threads:  o.threads,
	}
	a.initTags()
	a.initPrims()

	return a, nil
}

// Reset clears the arena's logical contents without giving up its
// allocations: the symbol table is emptied (no previously defined symbol
// resolves afterwards), the term heap is truncated in place, parser
// bookkeeping (binder stack, fresh-label counter, seen files) and
// evaluator bookkeeping (iteration counter, evaluation stack) return to
// their initial state, and the primitive table is cleared and re-seeded
// with the built-ins. Reset is idempotent and callable any number of
// times. It never changes which arenas are allocated, only their logical
// contents.
func (a *Arena) Reset() error {
	if a.released {
		return ErrReleased
	}

	a.names = a.names[:0]
	clear(a.ids)
	a.book = a.book[:0]
	a.vals = a.vals[:0]

	a.heap = a.heap[:0]

	a.tags = a.tags[:0]
	clear(a.tagIDs)
	a.initTags()

	a.binds = a.binds[:0]
	a.freshLab = freshLabBase
	a.seenFiles = a.seenFiles[:0]

	a.iters = 0
	a.stack = a.stack[:0]

	clear(a.prims)
	a.initPrims()

	return nil
}

// Release frees all arena state. The arena is unusable afterwards; every
// operation returns ErrReleased. Release is the terminal transition.
func (a *Arena) Release() {
	a.released = true
	a.names = nil
	a.ids = nil
	a.book = nil
	a.vals = nil
	a.heap = nil
	a.tags = nil
	a.tagIDs = nil
	a.prims = nil
	a.binds = nil
	a.seenFiles = nil
	a.stack = nil
}

// Defined reports whether name currently resolves to a defined symbol.
func (a *Arena) Defined(name string) bool {
	if a.released {
		return false
	}
	id, ok := a.ids[name]
	if !ok {
		return false
	}

	return a.book[id] != nil
}

// RegisterPrim installs (or replaces) a primitive under the given name.
// Registrations do not survive Reset; callers re-install after each reset.
func (a *Arena) RegisterPrim(name string, fn PrimFunc) error {
	if a.released {
		return ErrReleased
	}
	a.prims[name] = fn

	return nil
}

// SetOutput swaps the arena's textual output channel and returns the
// previous one, so a caller can capture collapse-mode output in a scoped
// acquire/restore fashion.
func (a *Arena) SetOutput(w io.Writer) io.Writer {
	prev := a.out
	if w != nil {
		a.out = w
	}

	return prev
}

// Iterations returns the number of evaluator steps taken since the last
// Reset. Diagnostic only.
func (a *Arena) Iterations() uint64 { return a.iters }

// Threads returns the thread count fixed at allocation time.
func (a *Arena) Threads() int { return a.threads }

// initTags seeds the reserved list tags.
func (a *Arena) initTags() {
	a.tags = append(a.tags, "Nil", "Cons")
	a.tagIDs["Nil"] = tagNil
	a.tagIDs["Cons"] = tagCons
}

// symbol interns name and returns its id, growing the book as needed.
func (a *Arena) symbol(name string) uint32 {
	if id, ok := a.ids[name]; ok {
		return id
	}
	id := uint32(len(a.names))
	a.names = append(a.names, name)
	a.book = append(a.book, nil)
	a.vals = append(a.vals, nil)
	a.ids[name] = id

	return id
}

// define binds a symbol id to its parsed body; redefinition overwrites
// and drops any cached value.
func (a *Arena) define(name string, body expr) {
	id := a.symbol(name)
	a.book[id] = body
	a.vals[id] = nil
}
