// Package termcalc implements a scientific calculator over float64 values.
//
// An expression is tokenized, parsed into an immutable tree, and evaluated
// in three independent steps:
//
//	toks, err := termcalc.Tokenize("sin(pi/2) + 8 r 3")
//	n, err := termcalc.Parse(toks)
//	v, err := n.Eval()
//
// or all at once with EvalString. The grammar has the usual binary
// operators plus % (floating-point remainder), ^ (exponentiation), and r
// (n-th root), unary minus, the constants pi and e, and a fixed set of
// scientific, combinatoric, and statistical functions. Note the
// asymmetry in the trigonometric set: sin, cos, and tan take radians
// while asin, acos, and atan return degrees.
//
// All failures are typed error values: tokenizing and parsing errors carry
// the input column (InputError), evaluation errors carry the operation and
// offending value. Known-undefined operations are errors, never silent NaN.
package termcalc
