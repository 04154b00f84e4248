package engine

import (
	"fmt"
)

// Normalize evaluates the named symbol to normal form, stores the result
// in the arena's term heap and returns the root term. The term stays
// valid until the next Reset.
func (a *Arena) Normalize(name string) (Term, error) {
	if a.released {
		return Term{}, ErrReleased
	}
	id, ok := a.ids[name]
	if !ok || a.book[id] == nil {
		return Term{}, fmt.Errorf("%w: @%s", ErrUndefinedSymbol, name)
	}
	v, err := a.eval(refExpr(id), nil)
	if err != nil {
		return Term{}, err
	}

	return a.store(v), nil
}

// Collapse evaluates the named symbol and writes every numeric leaf of
// the result to the arena's output channel, one per line, in structural
// order. At most limit lines are written; limit <= 0 means unlimited.
// The count of lines written is returned.
func (a *Arena) Collapse(name string, limit int) (int, error) {
	if a.released {
		return 0, ErrReleased
	}
	id, ok := a.ids[name]
	if !ok || a.book[id] == nil {
		return 0, fmt.Errorf("%w: @%s", ErrUndefinedSymbol, name)
	}
	v, err := a.eval(refExpr(id), nil)
	if err != nil {
		return 0, err
	}

	var n int
	if err = a.flatten(v, limit, &n); err != nil {
		return n, err
	}

	return n, nil
}

// flatten walks a value depth-first and prints its numeric leaves.
// Functional leaves are skipped silently, as are constructor shells.
func (a *Arena) flatten(v Value, limit int, n *int) error {
	if limit > 0 && *n >= limit {
		return nil
	}
	switch x := v.(type) {
	case numValue:
		if _, err := fmt.Fprintln(a.out, uint32(x)); err != nil {
			return fmt.Errorf("%w: writing output: %v", ErrEval, err)
		}
		*n++
	case ctrValue:
		for _, kid := range x.kids {
			if err := a.flatten(kid, limit, n); err != nil {
				return err
			}
			if limit > 0 && *n >= limit {
				return nil
			}
		}
	}

	return nil
}

// store writes a normal form into the term heap. Constructor children
// occupy a contiguous block so extraction can index them directly.
func (a *Arena) store(v Value) Term {
	switch x := v.(type) {
	case numValue:
		return Term{Kind: KindNum, Val: uint32(x)}
	case ctrValue:
		base := len(a.heap)
		a.heap = append(a.heap, make([]Term, len(x.kids))...)
		for i, kid := range x.kids {
			a.heap[base+i] = a.store(kid)
		}

		return Term{Kind: KindCtr, Ari: uint8(len(x.kids)), Tag: x.tag, Val: uint32(base)}
	default:
		return Term{Kind: KindFun}
	}
}

// eval reduces an expression to a value under the given environment.
// Evaluation is strict: let values, constructor fields, operator and
// primitive operands, and application arguments are all evaluated before
// use. Every step bumps the arena's iteration counter.
func (a *Arena) eval(e expr, en *env) (Value, error) {
	a.iters++
	switch x := e.(type) {
	case numExpr:
		return numValue(x), nil

	case refExpr:
		if v := a.vals[x]; v != nil {
			return v, nil
		}
		body := a.book[x]
		if body == nil {
			return nil, fmt.Errorf("%w: @%s", ErrUndefinedSymbol, a.names[x])
		}

		// Definitions are closed, so their values are cached; recursive
		// references re-enter the body until the outermost call finishes.
		v, err := a.eval(body, nil)
		if err != nil {
			return nil, err
		}
		a.vals[x] = v

		return v, nil

	case varExpr:
		v, ok := en.lookup(x.name)
		if !ok {
			return nil, fmt.Errorf("%w: unbound variable %q", ErrEval, x.name)
		}

		return v, nil

	case lamExpr:
		return cloValue{param: x.param, body: x.body, env: en}, nil

	case *matExpr:
		return matValue{m: x, env: en}, nil

	case letExpr:
		v, err := a.eval(x.val, en)
		if err != nil {
			return nil, err
		}

		return a.eval(x.body, &env{name: x.name, val: v, next: en})

	case ctrExpr:
		kids := make([]Value, len(x.args))
		for i, arg := range x.args {
			v, err := a.eval(arg, en)
			if err != nil {
				return nil, err
			}
			kids[i] = v
		}

		return ctrValue{tag: x.tag, kids: kids}, nil

	case opExpr:
		return a.evalOp(x, en)

	case primExpr:
		fn, ok := a.prims[x.name]
		if !ok {
			return nil, fmt.Errorf("%w: %%%s", ErrUnknownPrimitive, x.name)
		}
		args := make([]Value, len(x.args))
		for i, arg := range x.args {
			v, err := a.eval(arg, en)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		out, err := fn(args)
		if err != nil {
			return nil, fmt.Errorf("%w: %%%s: %v", ErrEval, x.name, err)
		}

		return out, nil

	case appExpr:
		fn, err := a.eval(x.fn, en)
		if err != nil {
			return nil, err
		}
		// Arguments are staged on the arena's shared stack so nested
		// applications reuse one allocation; each frame restores its base.
		base := len(a.stack)
		for _, arg := range x.args {
			v, err2 := a.eval(arg, en)
			if err2 != nil {
				a.stack = a.stack[:base]

				return nil, err2
			}
			a.stack = append(a.stack, v)
		}
		for i := base; i < len(a.stack); i++ {
			fn, err = a.apply(fn, a.stack[i])
			if err != nil {
				a.stack = a.stack[:base]

				return nil, err
			}
		}
		a.stack = a.stack[:base]

		return fn, nil

	default:
		return nil, fmt.Errorf("%w: unknown expression form", ErrEval)
	}
}

// apply applies a function value to one argument.
func (a *Arena) apply(fn, arg Value) (Value, error) {
	a.iters++
	switch f := fn.(type) {
	case cloValue:
		return a.eval(f.body, &env{name: f.param, val: arg, next: f.env})
	case matValue:
		return a.dispatch(f, arg)
	default:
		return nil, fmt.Errorf("%w: applying a non-function value", ErrEval)
	}
}

// dispatch resolves a match-lambda against its scrutinee. Constructor arm
// bodies are applied to the constructor's children in order; the default
// arm is applied to the scrutinee itself.
func (a *Arena) dispatch(f matValue, scrut Value) (Value, error) {
	switch s := scrut.(type) {
	case numValue:
		for _, arm := range f.m.nums {
			if uint32(s) == arm.lit {
				return a.eval(arm.body, f.env)
			}
		}

		return a.dispatchDefault(f, scrut)

	case ctrValue:
		for _, arm := range f.m.ctrs {
			if arm.tag != s.tag {
				continue
			}
			v, err := a.eval(arm.body, f.env)
			if err != nil {
				return nil, err
			}
			for _, kid := range s.kids {
				v, err = a.apply(v, kid)
				if err != nil {
					return nil, err
				}
			}

			return v, nil
		}

		return a.dispatchDefault(f, scrut)

	default:
		return nil, fmt.Errorf("%w: match on a non-matchable value", ErrEval)
	}
}

func (a *Arena) dispatchDefault(f matValue, scrut Value) (Value, error) {
	if f.m.deflt == nil {
		return nil, fmt.Errorf("%w: no match arm for scrutinee", ErrEval)
	}
	d, err := a.eval(f.m.deflt, f.env)
	if err != nil {
		return nil, err
	}

	return a.apply(d, scrut)
}

// evalOp evaluates a binary numeric operation. Arithmetic wraps modulo
// 2^32; comparisons yield 1 or 0.
func (a *Arena) evalOp(x opExpr, en *env) (Value, error) {
	lv, err := a.eval(x.lhs, en)
	if err != nil {
		return nil, err
	}
	rv, err := a.eval(x.rhs, en)
	if err != nil {
		return nil, err
	}
	l, lok := NumOf(lv)
	r, rok := NumOf(rv)
	if !lok || !rok {
		return nil, fmt.Errorf("%w: operator applied to non-numeric operands", ErrEval)
	}

	switch x.op {
	case opAdd:
		return numValue(l + r), nil
	case opSub:
		return numValue(l - r), nil
	case opMul:
		return numValue(l * r), nil
	case opDiv:
		if r == 0 {
			return nil, fmt.Errorf("%w: division by zero", ErrEval)
		}

		return numValue(l / r), nil
	case opMod:
		if r == 0 {
			return nil, fmt.Errorf("%w: modulo by zero", ErrEval)
		}

		return numValue(l % r), nil
	case opLt:
		return boolNum(l < r), nil
	case opGt:
		return boolNum(l > r), nil
	case opEq:
		return boolNum(l == r), nil
	default:
		return nil, fmt.Errorf("%w: unknown operator", ErrEval)
	}
}

func boolNum(b bool) numValue {
	if b {
		return 1
	}

	return 0
}
