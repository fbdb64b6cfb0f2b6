package termcalc

import "strconv"

// UnexpectedTokenError is an error indicating a token the grammar does not
// allow at its position: a missing operand, an unmatched parenthesis,
// adjacent terms with no operator, or trailing tokens after a complete
// expression. It implements InputError.
type UnexpectedTokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the token's text.
	Token string
}

func (err *UnexpectedTokenError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Token))
}

func (err *UnexpectedTokenError) Pos() int {
	return err.Col
}

// UnexpectedEndError is an error indicating an input that stops
// mid-expression, e.g. after an operator or inside an unclosed parenthesis.
// It implements InputError.
type UnexpectedEndError struct {
	// Col is the position just past the last token.
	Col int
}

func (err *UnexpectedEndError) Error() string {
	return errpos(err.Col, "unexpected end of expression")
}

func (err *UnexpectedEndError) Pos() int {
	return err.Col
}

// CallError is an error indicating a recognized function called with the
// wrong number of arguments. It implements InputError.
type CallError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name that was called.
	Func string
	// Want describes the accepted argument count.
	Want string
	// Got is the number of arguments the call supplied.
	Got int
}

func (err *CallError) Error() string {
	return errpos(err.Col, err.Func+" takes "+err.Want+" argument(s), got "+strconv.Itoa(err.Got))
}

func (err *CallError) Pos() int {
	return err.Col
}

// UnknownNameError is an error indicating a bare identifier that is not a
// recognized constant. Function names must be followed by a parenthesized
// argument list. It implements InputError.
type UnknownNameError struct {
	// Col is the position of the identifier.
	Col int
	// Name is the identifier.
	Name string
}

func (err *UnknownNameError) Error() string {
	return errpos(err.Col, "unknown name "+strconv.Quote(err.Name)+" (functions require parentheses)")
}

func (err *UnknownNameError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every tokenizing or
// parsing error implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the input that caused the
	// error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*UnexpectedTokenError)(nil)
	_ InputError = (*UnexpectedEndError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*UnknownNameError)(nil)
)
