package engine

// Parsed expression forms. Variables are resolved by name against the
// evaluator's environment; the parser guarantees every varExpr is inside
// the scope of a matching binder.
type expr interface {
	isExpr()
}

// numExpr is a numeric literal.
type numExpr uint32

// refExpr references a top-level definition by symbol id.
type refExpr uint32

// varExpr references a bound variable.
type varExpr struct {
	name string
}

// lamExpr is a single-parameter lambda; multi-parameter lambdas are
// curried chains.
type lamExpr struct {
	param string
	body  expr
}

// appExpr applies fn to args left to right, one at a time.
type appExpr struct {
	fn   expr
	args []expr
}

// letExpr binds the strictly evaluated val under name for body.
type letExpr struct {
	name string
	val  expr
	body expr
}

// ctrExpr builds a tagged constructor. List literals and infix cons parse
// into ctrExpr with the reserved Cons/Nil tags.
type ctrExpr struct {
	tag  uint16
	args []expr
}

// opCode enumerates the infix operators.
type opCode uint8

const (
	opAdd opCode = iota
	opSub
	opMul
	opDiv
	opMod
	opLt
	opGt
	opEq
)

// opExpr is a binary numeric operation; comparisons yield 1 or 0.
type opExpr struct {
	op  opCode
	lhs expr
	rhs expr
}

// primExpr calls a table-resolved primitive with evaluated arguments.
type primExpr struct {
	name string
	args []expr
}

// matExpr is a match-lambda: numeric-literal arms, constructor arms
// (including the reserved list tags), and an optional trailing default
// arm that is applied to the scrutinee.
type matExpr struct {
	nums  []numArm
	ctrs  []ctrArm
	deflt expr
}

type numArm struct {
	lit  uint32
	body expr
}

// ctrArm's body is applied to the constructor's children in order.
type ctrArm struct {
	tag  uint16
	body expr
}

func (numExpr) isExpr()   {}
func (refExpr) isExpr()   {}
func (varExpr) isExpr()   {}
func (lamExpr) isExpr()   {}
func (appExpr) isExpr()   {}
func (letExpr) isExpr()   {}
func (ctrExpr) isExpr()   {}
func (opExpr) isExpr()    {}
func (primExpr) isExpr()  {}
func (*matExpr) isExpr()  {}
