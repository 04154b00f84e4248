package bridge

import (
	"errors"
	"fmt"
)

// Mode selects how Run evaluates the entry symbol.
type Mode uint8

const (
	// ModeNormalize evaluates main to normal form and flattens the
	// result term's numeric leaves.
	ModeNormalize Mode = iota

	// ModeCollapse captures the engine's printed output and harvests
	// one unsigned integer per line.
	ModeCollapse
)

// Sentinel errors for the bridge lifecycle and run pipeline.
var (
	// ErrOptionViolation is returned by New for an invalid Option.
	ErrOptionViolation = errors.New("bridge: invalid option supplied")

	// ErrClosed is returned when a closed bridge is used; Close is
	// terminal.
	ErrClosed = errors.New("bridge: bridge closed")

	// ErrEntryUndefined is returned by Run when the program parsed but
	// defines no main symbol.
	ErrEntryUndefined = errors.New("bridge: entry symbol main undefined")

	// ErrEngine wraps any engine-side failure (parse or evaluation);
	// the engine's internal diagnostics are not modeled further.
	ErrEngine = errors.New("bridge: engine failure")

	// ErrNilCSR is returned by BindGraph for a nil graph.
	ErrNilCSR = errors.New("bridge: nil CSR")

	// ErrBadMode is returned by Run for an unknown Mode value.
	ErrBadMode = errors.New("bridge: unknown run mode")
)

// Option configures New.
type Option func(*options)

type options struct {
	threads       int
	heapCap       int
	collapseLimit int
	err           error
}

// WithThreads fixes the engine thread count, overriding the
// FOLDGRAPH_THREADS environment variable and the GOMAXPROCS default.
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

// WithHeapCapacity sets the arena's initial term-heap capacity.
func WithHeapCapacity(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: heap capacity must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.heapCap = n
	}
}

// WithCollapseLimit bounds how many lines a collapse-mode evaluation
// may print; 0 means unlimited. n < 0 is an option violation.
func WithCollapseLimit(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: collapse limit must not be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.collapseLimit = n
	}
}
