package termcalc

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, src string) *Node {
	t.Helper()
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("%q failed to tokenize: %v", src, err)
	}
	n, err := Parse(toks)
	if err != nil {
		t.Fatalf("%q failed to parse: %v", src, err)
	}
	return n
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "1"},
		{"const", "pi", "pi"},
		{"add", "1+2", "(1 + 2)"},
		{"sub-left-assoc", "1-2-3", "((1 - 2) - 3)"},
		{"precedence", "2+2*3", "(2 + (2 * 3))"},
		{"mod", "10 % 3", "(10 % 3)"},
		{"pow-right-assoc", "4^3^2", "(4 ^ (3 ^ 2))"},
		{"root", "8 r 3", "(8 r 3)"},
		{"root-right-assoc", "2 r 2 r 2", "(2 r (2 r 2))"},
		{"neg-pow", "-2^2", "(-(2 ^ 2))"},
		{"neg-mul", "-2*3", "((-2) * 3)"},
		{"pow-neg", "2^-3", "(2 ^ (-3))"},
		{"parens", "(1+2)*3", "((1 + 2) * 3)"},
		{"nested-parens", "((((7))))", "7"},
		{"call", "sin(pi/2)", "sin((pi / 2))"},
		{"call-two-args", "perm(5,2)", "perm(5, 2)"},
		{"call-variadic", "mean(1, 2, 3, 4)", "mean(1, 2, 3, 4)"},
		{"call-nested", "sqrt(abs(-4))", "sqrt(abs((-4)))"},
		{"call-unknown", "fooz(1)", "fooz(1)"},
		{"scientific", "1.5e2", "150"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n := mustParse(t, c.src)
			if got := n.String(); got != c.want {
				t.Errorf("parsing %q: want %s, got %s", c.src, c.want, got)
			}
		})
	}
}

// TestParseRoundTrip checks that the canonical rendering of a parsed
// expression parses back to an equivalent tree.
func TestParseRoundTrip(t *testing.T) {
	srcs := []string{
		"2+2*3",
		"-2^2",
		"8 r 3 - 10 % 3",
		"sin(pi/2) + cos(0)",
		"stdev(10, 12, 23, 23, 16)",
		"comb(8, 3) * -1.5e-2",
	}
	for _, src := range srcs {
		n := mustParse(t, src)
		s := n.String()
		m := mustParse(t, s)
		if s2 := m.String(); s2 != s {
			t.Errorf("round trip of %q: rendered %q, reparsed to %q", src, s, s2)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
		col  int
	}{
		{"empty", "", &UnexpectedEndError{}, 1},
		{"dangling-op", "1 +", &UnexpectedEndError{}, 4},
		{"unmatched-open", "2 * (3 + 4", &UnexpectedEndError{}, 11},
		{"unmatched-close", "(1))", &UnexpectedTokenError{}, 4},
		{"adjacent-terms", "1 2", &UnexpectedTokenError{}, 3},
		{"no-implicit-mul", "2(3)", &UnexpectedTokenError{}, 2},
		{"no-implicit-mul-ident", "2pi", &UnexpectedTokenError{}, 2},
		{"empty-parens", "()", &UnexpectedTokenError{}, 2},
		{"missing-operand", "1 + * 2", &UnexpectedTokenError{}, 5},
		{"unary-plus", "+1", &UnexpectedTokenError{}, 1},
		{"stray-comma", "1 , 2", &UnexpectedTokenError{}, 3},
		{"trailing-comma", "sin(1,)", &UnexpectedTokenError{}, 7},
		{"bare-name", "x", &UnknownNameError{}, 1},
		{"bare-function", "sin", &UnknownNameError{}, 1},
		{"arity-high", "sin(1, 2)", &CallError{}, 1},
		{"arity-zero", "sin()", &CallError{}, 1},
		{"arity-low", "perm(5)", &CallError{}, 1},
		{"arity-variadic", "stdev(1)", &CallError{}, 1},
		{"arity-variadic-zero", "mean()", &CallError{}, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err != nil {
				t.Fatalf("%q failed to tokenize: %v", c.src, err)
			}
			n, err := Parse(toks)
			if err == nil {
				t.Fatalf("%q parsed to %v, want error", c.src, n)
			}
			switch c.err.(type) {
			case *UnexpectedTokenError:
				e := new(UnexpectedTokenError)
				if !errors.As(err, &e) {
					t.Fatalf("%q: error %v is %T, want %T", c.src, err, err, c.err)
				}
			case *UnexpectedEndError:
				e := new(UnexpectedEndError)
				if !errors.As(err, &e) {
					t.Fatalf("%q: error %v is %T, want %T", c.src, err, err, c.err)
				}
			case *CallError:
				e := new(CallError)
				if !errors.As(err, &e) {
					t.Fatalf("%q: error %v is %T, want %T", c.src, err, err, c.err)
				}
			case *UnknownNameError:
				e := new(UnknownNameError)
				if !errors.As(err, &e) {
					t.Fatalf("%q: error %v is %T, want %T", c.src, err, err, c.err)
				}
			}
			ie, ok := err.(InputError)
			if !ok {
				t.Fatalf("%q: error %v does not carry a position", c.src, err)
			}
			if ie.Pos() != c.col {
				t.Errorf("%q: error at column %d, want %d: %v", c.src, ie.Pos(), c.col, err)
			}
		})
	}
}

func TestParseArityMessage(t *testing.T) {
	cases := []struct {
		src  string
		want string
		got  int
	}{
		{"sin(1, 2)", "1", 2},
		{"perm(5)", "2", 1},
		{"stdev(1)", "at least 2", 1},
		{"mean()", "at least 1", 0},
	}
	for _, c := range cases {
		toks, err := Tokenize(c.src)
		if err != nil {
			t.Fatalf("%q failed to tokenize: %v", c.src, err)
		}
		_, err = Parse(toks)
		ce, ok := err.(*CallError)
		if !ok {
			t.Fatalf("%q: error %v is %T, not *CallError", c.src, err, err)
		}
		if ce.Want != c.want || ce.Got != c.got {
			t.Errorf("%q: arity error wants %q/got %d, expected %q/%d", c.src, ce.Want, ce.Got, c.want, c.got)
		}
	}
}

func TestOpPrecsExist(t *testing.T) {
	for _, r := range Operators {
		if binop(string(r)).op == nodeNone {
			t.Errorf("no binary operator for %c", r)
		}
	}
}

func TestUnaryPrecBetweenMulAndPow(t *testing.T) {
	if p := binop("*").prec; p >= unaryprec.prec {
		t.Errorf("* has prec %d, unary minus has %d; unary must bind tighter", p, unaryprec.prec)
	}
	if p := binop("^").prec; p <= unaryprec.prec {
		t.Errorf("^ has prec %d, unary minus has %d; ^ must bind tighter", p, unaryprec.prec)
	}
}
