package engine

import "errors"

// initPrims seeds the primitive table with the built-ins that every
// program may rely on. Graph-shaped primitives are installed per run by
// callers through RegisterPrim.
func (a *Arena) initPrims() {
	// compact hints that a structure should be deduplicated in place.
	// Sharing is an engine-side optimization; the value is unchanged.
	a.prims["compact"] = func(args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, errors.New("want exactly one argument")
		}

		return args[0], nil
	}
}
