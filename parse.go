package termcalc

// Expr   = Term
// Term   = Unary | Term ('+'|'-') Term | Term ('*'|'/'|'%') Term | Term ('^'|'r') Term
// Unary  = '-' Term | Primary
// Call   = ident '(' ')' | ident '(' Expr { ',' Expr } ')'
// Primary = num | const | Call | '(' Expr ')'
//
// Precedence low to high: + - then * / % then unary - then ^ r (right
// associative) then primary, so -2^2 parses as -(2^2) while -2*3 parses as
// (-2)*3. There is no implicit multiplication; a primary token directly
// following a complete term is an error.

import "unicode/utf8"

type parser struct {
	toks []Token
	pos  int
	// end is the column just past the last token, for reporting an input
	// that stops mid-expression.
	end int
}

// Parse builds the expression tree for a token sequence. Errors are
// *UnexpectedTokenError, *UnexpectedEndError, *CallError, or
// *UnknownNameError, all implementing InputError. Argument counts of
// recognized functions are validated here; unrecognized function names parse
// successfully and fail during evaluation instead.
func Parse(toks []Token) (*Node, error) {
	p := &parser{toks: toks, end: 1}
	if len(toks) > 0 {
		last := toks[len(toks)-1]
		p.end = last.Pos + utf8.RuneCountInString(last.Text)
	}
	n, err := p.term(exprprec)
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, &UnexpectedTokenError{Col: tok.Pos, Token: tok.Text}
	}
	return n, nil
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// term parses a full subexpression, consuming operators as long as they bind
// more tightly than until. It stops, without consuming, at a close
// parenthesis, a comma, or the end of the tokens.
func (p *parser) term(until operator) (*Node, error) {
	n, err := p.lhs(until)
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok {
			return n, nil
		}
		switch tok.Kind {
		case TokenOp:
			prec := binop(tok.Text)
			if !prec.moreBinding(until) {
				return n, nil
			}
			p.pos++
			rhs, err := p.term(prec)
			if err != nil {
				return nil, err
			}
			n = &Node{kind: prec.op, left: n, right: rhs}
		case TokenClose, TokenComma:
			// End of subexpression; the caller decides whether it is legal.
			return n, nil
		default:
			// A number, name, or open parenthesis directly after a complete
			// term. There is no implicit multiplication.
			return nil, &UnexpectedTokenError{Col: tok.Pos, Token: tok.Text}
		}
	}
}

// lhs parses the first component of a term: a literal, a constant, a unary
// minus, a parenthesized subexpression, or a function call.
func (p *parser) lhs(until operator) (*Node, error) {
	tok, ok := p.next()
	if !ok {
		return nil, &UnexpectedEndError{Col: p.end}
	}
	switch tok.Kind {
	case TokenNum:
		return &Node{kind: nodeNum, val: tok.Val}, nil
	case TokenIdent:
		if nx, ok := p.peek(); ok && nx.Kind == TokenOpen {
			p.pos++
			return p.call(tok)
		}
		// A bare name must be a recognized constant. Unknown function names
		// are deferred to evaluation, but only in call position.
		if _, ok := constants[tok.Text]; !ok {
			return nil, &UnknownNameError{Col: tok.Pos, Name: tok.Text}
		}
		return &Node{kind: nodeConst, name: tok.Text}, nil
	case TokenOp:
		if tok.Text != "-" {
			return nil, &UnexpectedTokenError{Col: tok.Pos, Token: tok.Text}
		}
		prec := unaryprec
		if !prec.moreBinding(until) {
			// x^-y parses as x^(-y). Just use the enclosing operator's
			// precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := p.term(prec)
		if err != nil {
			return nil, err
		}
		return &Node{kind: nodeNeg, left: rhs}, nil
	case TokenOpen:
		n, err := p.term(exprprec)
		if err != nil {
			return nil, err
		}
		end, ok := p.next()
		if !ok {
			return nil, &UnexpectedEndError{Col: p.end}
		}
		if end.Kind != TokenClose {
			return nil, &UnexpectedTokenError{Col: end.Pos, Token: end.Text}
		}
		return n, nil
	default:
		return nil, &UnexpectedTokenError{Col: tok.Pos, Token: tok.Text}
	}
}

// call parses the parenthesized argument list of a function call. The open
// parenthesis is already consumed; name is the identifier token.
func (p *parser) call(name Token) (*Node, error) {
	fn := globalfuncs[name.Text]
	var args []*Node
	if tok, ok := p.peek(); ok && tok.Kind == TokenClose {
		p.pos++
	} else {
		for {
			a, err := p.term(exprprec)
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			end, ok := p.next()
			if !ok {
				return nil, &UnexpectedEndError{Col: p.end}
			}
			if end.Kind == TokenClose {
				break
			}
			// term stops only at close parens and commas.
			if end.Kind != TokenComma {
				panic("termcalc: term ended on " + end.String())
			}
		}
	}
	if fn != nil && !fn.CanCall(len(args)) {
		return nil, &CallError{Col: name.Pos, Func: name.Text, Want: fn.Arity(), Got: len(args)}
	}
	return &Node{kind: nodeCall, name: name.Text, fn: fn, args: args}, nil
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets the binary operator for a token string. Every operator in
// Operators is binary.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	case "%":
		return operator{5, false, nodeMod}
	case "^":
		return operator{15, true, nodePow}
	case "r":
		return operator{15, true, nodeRoot}
	default:
		return operator{}
	}
}

var (
	// unaryprec is the precedence of unary minus: tighter than
	// multiplication, looser than exponentiation.
	unaryprec = operator{10, true, nodeNeg}
	// exprprec is the precedence required to parse an entire subexpression.
	exprprec = operator{-128, true, nodeNone}
)
