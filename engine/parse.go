package engine

import (
	"fmt"
)

// token kinds produced by the lexer.
type token uint8

const (
	tEOF token = iota
	tNum
	tIdent
	tAtName   // @name
	tPrimName // %name
	tHashName // #Tag
	tLambda   // λ
	tDot
	tComma
	tSemi
	tColon
	tBang
	tAmp
	tAssign // =
	tEqEq   // ==
	tLt
	tGt
	tPlus
	tMinus
	tStar
	tSlash
	tMod
	tCons // <>
	tLParen
	tRParen
	tLBrace
	tRBrace
	tLBrack
	tRBrack
)

// parser consumes one program's source. The parser requires exclusive
// access to src and scans it in place; callers pass a private copy.
type parser struct {
	a    *Arena
	file string
	src  []byte
	pos  int
	line int
	col  int

	tok     token
	lit     string
	num     uint32
	tokLine int
	tokCol  int
}

// Parse scans src and populates the symbol table with every top-level
// `@name = expr` definition found. Later definitions of the same name
// overwrite earlier ones. The entry symbol is not special-cased here;
// callers check Defined("main") after parsing.
func (a *Arena) Parse(file string, src []byte) error {
	if a.released {
		return ErrReleased
	}
	a.seenFiles = append(a.seenFiles, file)

	p := &parser{a: a, file: file, src: src, line: 1, col: 1}
	if err := p.next(); err != nil {
		return err
	}
	for p.tok != tEOF {
		if err := p.parseDef(); err != nil {
			return err
		}
	}

	return nil
}

func (p *parser) errf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)

	return fmt.Errorf("%w: %s:%d:%d: %s", ErrParse, p.file, p.tokLine, p.tokCol, msg)
}

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentChar(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

// advance consumes one byte, tracking line and column.
func (p *parser) advance() {
	if p.src[p.pos] == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	p.pos++
}

// next scans the next token.
func (p *parser) next() error {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.advance()
		default:
			goto scan
		}
	}
scan:
	p.tokLine, p.tokCol = p.line, p.col
	if p.pos >= len(p.src) {
		p.tok = tEOF

		return nil
	}

	b := p.src[p.pos]
	switch {
	case b == 0xCE && p.pos+1 < len(p.src) && p.src[p.pos+1] == 0xBB: // λ
		p.advance()
		p.advance()
		p.tok = tLambda
	case isIdentStart(b):
		p.tok = tIdent
		p.lit = p.scanIdent()
	case b >= '0' && b <= '9':
		p.tok = tNum

		return p.scanNum()
	case b == '@':
		p.advance()
		if p.pos >= len(p.src) || !isIdentStart(p.src[p.pos]) {
			return p.errf("expected name after '@'")
		}
		p.tok = tAtName
		p.lit = p.scanIdent()
	case b == '%':
		p.advance()
		if p.pos < len(p.src) && isIdentStart(p.src[p.pos]) {
			p.tok = tPrimName
			p.lit = p.scanIdent()
		} else {
			p.tok = tMod
		}
	case b == '#':
		p.advance()
		if p.pos >= len(p.src) || !isIdentStart(p.src[p.pos]) {
			return p.errf("expected tag after '#'")
		}
		p.tok = tHashName
		p.lit = p.scanIdent()
	case b == '<':
		p.advance()
		if p.pos < len(p.src) && p.src[p.pos] == '>' {
			p.advance()
			p.tok = tCons
		} else {
			p.tok = tLt
		}
	case b == '=':
		p.advance()
		if p.pos < len(p.src) && p.src[p.pos] == '=' {
			p.advance()
			p.tok = tEqEq
		} else {
			p.tok = tAssign
		}
	default:
		single := map[byte]token{
			'.': tDot, ',': tComma, ';': tSemi, ':': tColon, '!': tBang,
			'&': tAmp, '>': tGt, '+': tPlus, '-': tMinus, '*': tStar,
			'/': tSlash, '(': tLParen, ')': tRParen, '{': tLBrace,
			'}': tRBrace, '[': tLBrack, ']': tRBrack,
		}
		tok, ok := single[b]
		if !ok {
			return p.errf("unexpected byte %q", b)
		}
		p.advance()
		p.tok = tok
	}

	return nil
}

func (p *parser) scanIdent() string {
	start := p.pos
	for p.pos < len(p.src) && isIdentChar(p.src[p.pos]) {
		p.advance()
	}

	return string(p.src[start:p.pos])
}

func (p *parser) scanNum() error {
	var v uint64
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		v = v*10 + uint64(p.src[p.pos]-'0')
		if v > 0xFFFFFFFF {
			return p.errf("numeric literal exceeds 32 bits")
		}
		p.advance()
	}
	p.num = uint32(v)

	return nil
}

// expect consumes the given token or fails.
func (p *parser) expect(tok token, what string) error {
	if p.tok != tok {
		return p.errf("expected %s", what)
	}

	return p.next()
}

// pushBind enters a binder scope, enforcing the parser's binder capacity.
func (p *parser) pushBind(name string) error {
	if len(p.a.binds) >= MaxParseBinds {
		return fmt.Errorf("%w: more than %d live binders", ErrBindLimit, MaxParseBinds)
	}
	p.a.binds = append(p.a.binds, name)

	return nil
}

func (p *parser) popBind() {
	p.a.binds = p.a.binds[:len(p.a.binds)-1]
}

func (p *parser) bound(name string) bool {
	for i := len(p.a.binds) - 1; i >= 0; i-- {
		if p.a.binds[i] == name {
			return true
		}
	}

	return false
}

// parseDef parses one `@name = expr` top-level definition.
func (p *parser) parseDef() error {
	if p.tok != tAtName {
		return p.errf("expected top-level definition")
	}
	name := p.lit
	if err := p.next(); err != nil {
		return err
	}
	if err := p.expect(tAssign, "'=' after definition name"); err != nil {
		return err
	}
	body, err := p.parseExpr()
	if err != nil {
		return err
	}
	p.a.define(name, body)

	return nil
}

// parseExpr parses a full expression. Precedence, loosest first:
// cons (<>, right-assoc), comparison (< == >), additive, multiplicative,
// postfix application, atoms.
func (p *parser) parseExpr() (expr, error) {
	lhs, err := p.parseCmp()
	if err != nil {
		return nil, err
	}
	if p.tok == tCons {
		if err = p.next(); err != nil {
			return nil, err
		}
		rhs, err2 := p.parseExpr()
		if err2 != nil {
			return nil, err2
		}

		return ctrExpr{tag: tagCons, args: []expr{lhs, rhs}}, nil
	}

	return lhs, nil
}

func (p *parser) parseCmp() (expr, error) {
	lhs, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	for {
		var op opCode
		switch p.tok {
		case tLt:
			op = opLt
		case tGt:
			op = opGt
		case tEqEq:
			op = opEq
		default:
			return lhs, nil
		}
		if err = p.next(); err != nil {
			return nil, err
		}
		rhs, err2 := p.parseAdd()
		if err2 != nil {
			return nil, err2
		}
		lhs = opExpr{op: op, lhs: lhs, rhs: rhs}
	}
}

func (p *parser) parseAdd() (expr, error) {
	lhs, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for {
		var op opCode
		switch p.tok {
		case tPlus:
			op = opAdd
		case tMinus:
			op = opSub
		default:
			return lhs, nil
		}
		if err = p.next(); err != nil {
			return nil, err
		}
		rhs, err2 := p.parseMul()
		if err2 != nil {
			return nil, err2
		}
		lhs = opExpr{op: op, lhs: lhs, rhs: rhs}
	}
}

func (p *parser) parseMul() (expr, error) {
	lhs, err := p.parseCall()
	if err != nil {
		return nil, err
	}
	for {
		var op opCode
		switch p.tok {
		case tStar:
			op = opMul
		case tSlash:
			op = opDiv
		case tMod:
			op = opMod
		default:
			return lhs, nil
		}
		if err = p.next(); err != nil {
			return nil, err
		}
		rhs, err2 := p.parseCall()
		if err2 != nil {
			return nil, err2
		}
		lhs = opExpr{op: op, lhs: lhs, rhs: rhs}
	}
}

// parseCall parses an atom followed by any number of (args) applications.
func (p *parser) parseCall() (expr, error) {
	e, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.tok == tLParen {
		args, err2 := p.parseArgs()
		if err2 != nil {
			return nil, err2
		}
		e = appExpr{fn: e, args: args}
	}

	return e, nil
}

// parseArgs parses '(' expr {',' expr} ')'.
func (p *parser) parseArgs() ([]expr, error) {
	if err := p.expect(tLParen, "'('"); err != nil {
		return nil, err
	}
	var args []expr
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.tok == tComma {
			if err = p.next(); err != nil {
				return nil, err
			}

			continue
		}

		break
	}
	if err := p.expect(tRParen, "')'"); err != nil {
		return nil, err
	}

	return args, nil
}

func (p *parser) parseAtom() (expr, error) {
	switch p.tok {
	case tNum:
		v := p.num
		if err := p.next(); err != nil {
			return nil, err
		}

		return numExpr(v), nil

	case tAtName:
		id := p.a.symbol(p.lit)
		if err := p.next(); err != nil {
			return nil, err
		}

		return refExpr(id), nil

	case tIdent:
		name := p.lit
		if !p.bound(name) {
			return nil, p.errf("unbound variable %q", name)
		}
		if err := p.next(); err != nil {
			return nil, err
		}

		return varExpr{name: name}, nil

	case tPrimName:
		name := p.lit
		if err := p.next(); err != nil {
			return nil, err
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}

		return primExpr{name: name, args: args}, nil

	case tHashName:
		tag := p.a.tag(p.lit)
		if err := p.next(); err != nil {
			return nil, err
		}
		var args []expr
		if p.tok == tLBrace {
			if err := p.next(); err != nil {
				return nil, err
			}
			for p.tok != tRBrace {
				arg, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.tok == tComma {
					if err = p.next(); err != nil {
						return nil, err
					}
				}
			}
			if err := p.next(); err != nil { // consume '}'
				return nil, err
			}
		}
		if len(args) > 255 {
			return nil, p.errf("constructor has more than 255 fields")
		}

		return ctrExpr{tag: tag, args: args}, nil

	case tLambda:
		return p.parseLambda()

	case tBang:
		return p.parseLet()

	case tLBrack:
		return p.parseList()

	case tLParen:
		if err := p.next(); err != nil {
			return nil, err
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err = p.expect(tRParen, "')'"); err != nil {
			return nil, err
		}

		return e, nil

	default:
		return nil, p.errf("unexpected token in expression")
	}
}

// parseLambda parses λx. body, λ&x. body, or a match-lambda λ{…}.
func (p *parser) parseLambda() (expr, error) {
	if err := p.next(); err != nil { // consume λ
		return nil, err
	}
	if p.tok == tLBrace {
		return p.parseMatch()
	}
	if p.tok == tAmp {
		// Shared binding: the engine tracks a fresh dup label per & binder.
		p.a.freshLab++
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	if p.tok != tIdent {
		return nil, p.errf("expected parameter name after λ")
	}
	param := p.lit
	if err := p.next(); err != nil {
		return nil, err
	}
	if err := p.expect(tDot, "'.' after lambda parameter"); err != nil {
		return nil, err
	}
	if err := p.pushBind(param); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	p.popBind()
	if err != nil {
		return nil, err
	}

	return lamExpr{param: param, body: body}, nil
}

// parseLet parses `! x = val; body` and `! &x = val; body`.
func (p *parser) parseLet() (expr, error) {
	if err := p.next(); err != nil { // consume '!'
		return nil, err
	}
	if p.tok == tAmp {
		p.a.freshLab++
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	if p.tok != tIdent {
		return nil, p.errf("expected binding name after '!'")
	}
	name := p.lit
	if err := p.next(); err != nil {
		return nil, err
	}
	if err := p.expect(tAssign, "'=' in binding"); err != nil {
		return nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err = p.expect(tSemi, "';' after binding"); err != nil {
		return nil, err
	}
	if err = p.pushBind(name); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	p.popBind()
	if err != nil {
		return nil, err
	}

	return letExpr{name: name, val: val, body: body}, nil
}

// parseList parses a list literal into a cons chain ending in Nil.
func (p *parser) parseList() (expr, error) {
	if err := p.next(); err != nil { // consume '['
		return nil, err
	}
	var items []expr
	for p.tok != tRBrack {
		item, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.tok == tComma {
			if err = p.next(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.next(); err != nil { // consume ']'
		return nil, err
	}

	list := expr(ctrExpr{tag: tagNil})
	for i := len(items) - 1; i >= 0; i-- {
		list = ctrExpr{tag: tagCons, args: []expr{items[i], list}}
	}

	return list, nil
}

// parseMatch parses the arms of a match-lambda. Arms are separated by ';';
// a default arm (any expression, conventionally a lambda applied to the
// scrutinee) must come last.
func (p *parser) parseMatch() (expr, error) {
	if err := p.next(); err != nil { // consume '{'
		return nil, err
	}
	m := &matExpr{}
	for {
		switch p.tok {
		case tNum:
			lit := p.num
			if err := p.next(); err != nil {
				return nil, err
			}
			if err := p.expect(tColon, "':' after numeric arm"); err != nil {
				return nil, err
			}
			body, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			m.nums = append(m.nums, numArm{lit: lit, body: body})

		case tLBrack:
			if err := p.next(); err != nil {
				return nil, err
			}
			if err := p.expect(tRBrack, "']' in empty-list arm"); err != nil {
				return nil, err
			}
			if err := p.expect(tColon, "':' after list arm"); err != nil {
				return nil, err
			}
			body, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			m.ctrs = append(m.ctrs, ctrArm{tag: tagNil, body: body})

		case tCons:
			if err := p.next(); err != nil {
				return nil, err
			}
			if err := p.expect(tColon, "':' after cons arm"); err != nil {
				return nil, err
			}
			body, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			m.ctrs = append(m.ctrs, ctrArm{tag: tagCons, body: body})

		case tHashName:
			tag := p.a.tag(p.lit)
			if err := p.next(); err != nil {
				return nil, err
			}
			if err := p.expect(tColon, "':' after constructor arm"); err != nil {
				return nil, err
			}
			body, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			m.ctrs = append(m.ctrs, ctrArm{tag: tag, body: body})

		case tRBrace:
			if err := p.next(); err != nil {
				return nil, err
			}

			return m, nil

		default:
			// Default arm: an expression applied to the scrutinee.
			body, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			m.deflt = body
			if err = p.expect(tRBrace, "'}' after default arm"); err != nil {
				return nil, err
			}

			return m, nil
		}

		if p.tok == tSemi {
			if err := p.next(); err != nil {
				return nil, err
			}
		}
	}
}
