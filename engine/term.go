package engine

// Kind discriminates the shapes a normal-form Term can take.
type Kind uint8

const (
	// KindNum is a numeric leaf; Val holds the value.
	KindNum Kind = iota

	// KindCtr is a tagged constructor; Ari children live contiguously in
	// the arena heap starting at Val.
	KindCtr

	// KindFun is an opaque functional value (a lambda or match-lambda that
	// survived to the result). It carries no extractable payload.
	KindFun
)

// Term is one node of a normal form stored in an arena's term heap.
// Constructor children are addressed by heap location, so a Term is only
// meaningful together with the Arena that produced it and only until the
// next Reset.
type Term struct {
	Kind Kind
	Ari  uint8
	Tag  uint16
	Val  uint32
}

// Kid returns the i-th child of a KindCtr term.
func (a *Arena) Kid(t Term, i int) Term {
	return a.heap[int(t.Val)+i]
}

// Reserved constructor tags. Nil and Cons back the list sugar ([] and <>)
// and are re-registered on every Reset; user tags are interned after them.
const (
	tagNil  uint16 = 0
	tagCons uint16 = 1
)

// tag interns a constructor tag name and returns its id.
func (a *Arena) tag(name string) uint16 {
	if id, ok := a.tagIDs[name]; ok {
		return id
	}
	id := uint16(len(a.tags))
	a.tags = append(a.tags, name)
	a.tagIDs[name] = id

	return id
}

// TagName returns the interned name of a constructor tag, for diagnostics.
func (a *Arena) TagName(tag uint16) string {
	if int(tag) < len(a.tags) {
		return a.tags[tag]
	}

	return "?"
}
