package solve

import (
	"context"
	"errors"
)

// Sentinel errors for parameter validation and result mapping.
var (
	// ErrNilBridge is returned when the bridge argument is nil.
	ErrNilBridge = errors.New("solve: nil bridge")

	// ErrNilGraph is returned when the graph argument is nil.
	ErrNilGraph = errors.New("solve: nil graph")

	// ErrNodeOutOfRange is returned when a node parameter is >= the
	// graph's node count.
	ErrNodeOutOfRange = errors.New("solve: node index out of range")

	// ErrNoPath reports the domain no-result: the target is not
	// reachable within the algorithm's bounds. Distinct from failures.
	ErrNoPath = errors.New("solve: no path")

	// ErrBadResult is returned when a run produces a result of an
	// unexpected shape (wrong value count for the algorithm).
	ErrBadResult = errors.New("solve: unexpected result shape")
)

// Option tunes one solve call.
type Option func(*options)

type options struct {
	ctx    context.Context
	inline bool
}

// WithContext installs a context consulted between pipeline phases
// (before reset, after generation, before extraction). Evaluation is
// uninterruptible.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithInlineEdges makes ShortestPath embed the edge list in the program
// instead of binding graph primitives.
func WithInlineEdges() Option {
	return func(o *options) {
		o.inline = true
	}
}

func buildOptions(opts []Option) options {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
