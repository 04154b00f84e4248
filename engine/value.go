package engine

// Value is a fully evaluated engine value as seen by primitives. Concrete
// shapes are engine-internal; primitives construct numbers with Num and
// inspect arguments with NumOf.
type Value interface {
	isValue()
}

// numValue is an unsigned 32-bit number.
type numValue uint32

// ctrValue is a tagged constructor with evaluated children.
type ctrValue struct {
	tag  uint16
	kids []Value
}

// cloValue is a lambda closed over its environment.
type cloValue struct {
	param string
	body  expr
	env   *env
}

// matValue is a match-lambda closed over its environment; it dispatches
// when applied to a scrutinee.
type matValue struct {
	m   *matExpr
	env *env
}

func (numValue) isValue()  {}
func (ctrValue) isValue()  {}
func (cloValue) isValue()  {}
func (matValue) isValue()  {}

// Num wraps an unsigned 32-bit number as a Value.
func Num(v uint32) Value { return numValue(v) }

// NumOf unwraps a numeric Value; ok is false for any other shape.
func NumOf(v Value) (uint32, bool) {
	n, ok := v.(numValue)

	return uint32(n), ok
}

// env is the evaluator's lexical environment, a persistent linked list so
// closures can share tails structurally.
type env struct {
	name string
	val  Value
	next *env
}

func (e *env) lookup(name string) (Value, bool) {
	for cur := e; cur != nil; cur = cur.next {
		if cur.name == name {
			return cur.val, true
		}
	}

	return nil, false
}
