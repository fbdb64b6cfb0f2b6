package termcalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// TokenKind identifies the lexical class of a Token.
type TokenKind int

const (
	TokenNone TokenKind = iota
	// TokenNum is a decimal or scientific-notation numeric literal.
	TokenNum
	// TokenIdent is a function or constant name.
	TokenIdent
	// TokenOp is one of the operators + - * / % ^ r.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
	// TokenComma separates function arguments.
	TokenComma
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenIdent:
		return "Ident"
	case TokenOp:
		return "Op"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	case TokenComma:
		return "Comma"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is a single lexical unit of an expression. Val is meaningful only
// when Kind is TokenNum. Pos is the 1-based rune column of the token's first
// character.
type Token struct {
	Kind TokenKind
	Text string
	Val  float64
	Pos  int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// Operators contains the characters which are considered to be operators.
// Note that r, the root operator, is also a letter; a run of letters lexes as
// an operator exactly when it is the single letter r, so that identifiers
// like round still work.
const Operators = "+-*/%^r"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// Tokenize converts an expression to its token sequence. If the input
// contains a character that can begin no token, or a malformed numeric
// literal, the result is nil and a *LexError.
func Tokenize(src string) ([]Token, error) {
	l := lex(strings.NewReader(src))
	var toks []Token
	for {
		tok, err := l.next()
		if errors.Is(err, io.EOF) {
			return toks, nil
		}
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of the input, the
// result is a zero token with io.EOF.
func (l *lexer) next() (Token, error) {
	if l.eof {
		return Token{}, io.EOF
	}
	defer l.buf.Reset()
	tok := Token{Pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.eof = true
				return Token{}, io.EOF
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			tok.Pos++
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			l.scanNum()
			tok.Text = l.buf.String()
			v, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				return tok, &LexError{Text: tok.Text, Kind: "number", Col: tok.Pos}
			}
			tok.Kind = TokenNum
			tok.Val = v
			return tok, nil
		case unicode.IsLetter(r):
			l.unreadRune()
			l.scanIdent()
			tok.Text = l.buf.String()
			// A lone r is the root operator, not an identifier.
			if tok.Text == "r" {
				tok.Kind = TokenOp
			} else {
				tok.Kind = TokenIdent
			}
			return tok, nil
		case r == '(':
			tok.Text = "("
			tok.Kind = TokenOpen
			return tok, nil
		case r == ')':
			tok.Text = ")"
			tok.Kind = TokenClose
			return tok, nil
		case r == ',':
			tok.Text = ","
			tok.Kind = TokenComma
			return tok, nil
		default:
			if strings.ContainsRune(Operators, r) {
				tok.Text = string(r)
				tok.Kind = TokenOp
				return tok, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, &LexError{Text: l.buf.String(), Col: tok.Pos}
		}
	}
}

// scanNum accumulates a numeric literal: digits, at most one dot, and an
// optional exponent with an optional sign. Signs elsewhere belong to the
// parser. The accumulated text may still be malformed, e.g. "1e"; the caller
// validates it.
func (l *lexer) scanNum() {
	var dot, exp, expStart bool
	for {
		r, err := l.readRune()
		if err != nil {
			return
		}
		switch {
		case '0' <= r && r <= '9':
			expStart = false
		case r == '.':
			if dot || exp {
				l.unreadRune()
				return
			}
			dot = true
		case r == 'e', r == 'E':
			if exp {
				l.unreadRune()
				return
			}
			exp = true
			expStart = true
		case r == '+', r == '-':
			// A sign is part of the number only immediately after the
			// exponent marker.
			if !expStart {
				l.unreadRune()
				return
			}
			expStart = false
		default:
			l.unreadRune()
			return
		}
		l.buf.WriteRune(r)
	}
}

// scanIdent accumulates a maximal run of letters.
func (l *lexer) scanIdent() {
	for {
		r, err := l.readRune()
		if err != nil {
			return
		}
		if !unicode.IsLetter(r) {
			l.unreadRune()
			return
		}
		l.buf.WriteRune(r)
	}
}

// LexError indicates a character that can begin no token, or a malformed
// numeric literal. It implements InputError.
type LexError struct {
	// Text is the text scanned up to and including the offending rune.
	Text string
	// Kind is the type of token being scanned, currently "number" or the
	// empty string if no token kind had been decided.
	Kind string
	// Col is the 1-based rune column at which the token began.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "invalid character "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}
