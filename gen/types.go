package gen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/foldgraph/core"
)

// Numeric sentinels baked into generated programs.
const (
	// Inf marks an unknown distance in the trie-backed and DAG templates.
	Inf uint32 = 999999

	// NoPath is the smaller sentinel of the reachability and MST
	// templates, which assume individual edge weights below it.
	NoPath uint32 = 999
)

// Generation caps. A DAG program needs one live binder per node, and
// node names are three digits of a 64-symbol alphabet behind a fixed
// prefix, so both limits fail fast before any text is produced.
const (
	// MaxBindNodes is the engine's simultaneous-binder capacity.
	MaxBindNodes = 131072

	// MaxNameNodes is the largest node count the 4-character name
	// encoding can keep collision-free.
	MaxNameNodes = 262144
)

// Sentinel errors returned by generators.
var (
	// ErrNilCSR is returned when the CSR argument is nil or has no nodes.
	ErrNilCSR = errors.New("gen: nil or empty CSR")

	// ErrNodeOutOfRange is returned when a node parameter is >= the
	// graph's node count.
	ErrNodeOutOfRange = errors.New("gen: node index out of range")

	// ErrTooManyNodes is returned when the node count exceeds a
	// generation cap; no partial program is produced.
	ErrTooManyNodes = errors.New("gen: node count exceeds generation cap")

	// ErrNotDAG is returned by ShortestPathDAG when an edge violates
	// the forward binding order the unrolled DP relies on.
	ErrNotDAG = errors.New("gen: graph violates forward-edge order")

	// ErrOptionViolation is returned when an Option carries an invalid
	// value.
	ErrOptionViolation = errors.New("gen: invalid option supplied")
)

// Option tunes a generator.
type Option func(*options)

type options struct {
	inline         bool
	chunkThreshold int
	err            error
}

// WithInlineEdges switches ShortestPath to the self-contained template:
// the edge list is embedded in the program text and no graph primitives
// are required, at the cost of fixed n-1 relaxation rounds.
func WithInlineEdges() Option {
	return func(o *options) {
		o.inline = true
	}
}

// WithChunkThreshold overrides the edge count above which inline edge
// lists are split into chunked definitions joined by @append. n <= 0 is
// an option violation.
func WithChunkThreshold(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: chunk threshold must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.chunkThreshold = n
	}
}

func buildOptions(opts []Option) (options, error) {
	o := options{chunkThreshold: edgeChunkThreshold}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return options{}, o.err
	}

	return o, nil
}

// checkCSR validates the graph argument shared by every generator.
func checkCSR(c *core.CSR) error {
	if c == nil || c.Nodes == 0 {
		return ErrNilCSR
	}

	return nil
}

// checkNode validates one node parameter against the graph.
func checkNode(c *core.CSR, node uint32, what string) error {
	if node >= c.Nodes {
		return fmt.Errorf("%w: %s %d (graph has %d nodes)", ErrNodeOutOfRange, what, node, c.Nodes)
	}

	return nil
}
