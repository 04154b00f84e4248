package bridge

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/katalvlaran/foldgraph/engine"
)

// threadsEnv overrides the default engine thread count when set to a
// positive integer.
const threadsEnv = "FOLDGRAPH_THREADS"

// entrySymbol is the definition every runnable program must provide.
const entrySymbol = "main"

// Bridge owns one engine arena across many runs.
type Bridge struct {
	arena         *engine.Arena
	collapseLimit int
	closed        bool
}

// New allocates the engine arena. The thread count is resolved once:
// WithThreads beats FOLDGRAPH_THREADS beats GOMAXPROCS.
func New(opts ...Option) (*Bridge, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.threads == 0 {
		o.threads = threadsFromEnv()
	}

	engineOpts := []engine.Option{engine.WithThreads(o.threads)}
	if o.heapCap > 0 {
		engineOpts = append(engineOpts, engine.WithHeapCapacity(o.heapCap))
	}
	arena, err := engine.NewArena(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngine, err)
	}

	return &Bridge{arena: arena, collapseLimit: o.collapseLimit}, nil
}

func threadsFromEnv() int {
	if s := os.Getenv(threadsEnv); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}

	return runtime.GOMAXPROCS(0)
}

// Threads reports the engine thread count resolved at New.
func (b *Bridge) Threads() int {
	if b.closed {
		return 0
	}

	return b.arena.Threads()
}

// Reset clears the arena's definitions, heap contents and primitive
// bindings while keeping its allocations. Idempotent.
func (b *Bridge) Reset() error {
	if b.closed {
		return ErrClosed
	}
	if err := b.arena.Reset(); err != nil {
		return fmt.Errorf("%w: %v", ErrEngine, err)
	}

	return nil
}

// Close releases the arena. Terminal; every later call fails with
// ErrClosed. Closing twice is harmless.
func (b *Bridge) Close() {
	if b.closed {
		return
	}
	b.arena.Release()
	b.closed = true
}

// Run parses one generated program into the arena, evaluates its main
// symbol in the given mode and fills out with the numeric results.
//
// In ModeNormalize the returned count is the number of values the
// result flattens to, which may exceed len(out); the overflow is
// dropped. In ModeCollapse the count is capped at len(out). The source
// is copied before parsing; the caller's string is never retained.
func (b *Bridge) Run(source string, mode Mode, out []uint32) (int, error) {
	if b.closed {
		return 0, ErrClosed
	}

	// The parser scans its buffer in place.
	src := []byte(source)
	if err := b.arena.Parse("generated", src); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEngine, err)
	}
	if !b.arena.Defined(entrySymbol) {
		return 0, ErrEntryUndefined
	}

	switch mode {
	case ModeNormalize:
		term, err := b.arena.Normalize(entrySymbol)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrEngine, err)
		}

		return b.flatten(term, out, 0), nil

	case ModeCollapse:
		return b.collapse(out)

	default:
		return 0, fmt.Errorf("%w: %d", ErrBadMode, mode)
	}
}

// flatten walks a normal form depth-first, writing numeric leaves while
// capacity lasts but counting all of them. Nullary constructors
// contribute nothing; functional leaves are skipped.
func (b *Bridge) flatten(t engine.Term, out []uint32, pos int) int {
	switch t.Kind {
	case engine.KindNum:
		if pos < len(out) {
			out[pos] = t.Val
		}

		return pos + 1

	case engine.KindCtr:
		for i := 0; i < int(t.Ari); i++ {
			pos = b.flatten(b.arena.Kid(t, i), out, pos)
		}

		return pos

	default:
		return pos
	}
}

// collapse evaluates main with the arena's output swapped to a capture
// buffer, then harvests one unsigned integer per printed line. The
// previous writer is restored unconditionally.
func (b *Bridge) collapse(out []uint32) (int, error) {
	var buf bytes.Buffer
	prev := b.arena.SetOutput(&buf)
	_, err := b.arena.Collapse(entrySymbol, b.collapseLimit)
	b.arena.SetOutput(prev)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEngine, err)
	}

	n := 0
	sc := bufio.NewScanner(&buf)
	for sc.Scan() && n < len(out) {
		v, perr := strconv.ParseUint(strings.TrimSpace(sc.Text()), 10, 32)
		if perr != nil {
			continue
		}
		out[n] = uint32(v)
		n++
	}

	return n, nil
}
