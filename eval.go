package termcalc

import (
	"math"
	"strconv"
)

// constants are the named values the parser accepts as bare identifiers.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// Step is one recorded operation of a traced evaluation.
type Step struct {
	// Op is the operation with its already-evaluated operands, e.g. "2 + 3".
	Op string
	// Value is the operation's result.
	Value float64
}

// Trace collects the steps of an evaluation in the order they are applied.
// A nil *Trace collects nothing.
type Trace struct {
	Steps []Step
}

func (t *Trace) add(op string, v float64) {
	if t == nil {
		return
	}
	t.Steps = append(t.Steps, Step{Op: op, Value: v})
}

// Eval computes the value of the expression. Evaluation is a pure recursive
// walk; evaluating the same tree twice yields the same result. Errors are
// *DivisionByZeroError, *DomainError, *UnknownFunctionError, or
// *UnknownConstantError.
func (n *Node) Eval() (float64, error) {
	return n.eval(nil)
}

// EvalWithTrace computes the value of the expression, recording every applied
// operation in tr.
func (n *Node) EvalWithTrace(tr *Trace) (float64, error) {
	return n.eval(tr)
}

func (n *Node) eval(tr *Trace) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeConst:
		v, ok := constants[n.name]
		if !ok {
			// The parser rejects unknown bare names, so this is unreachable
			// for parsed trees.
			return 0, &UnknownConstantError{Name: n.name}
		}
		tr.add(n.name, v)
		return v, nil
	case nodeNeg:
		v, err := n.left.eval(tr)
		if err != nil {
			return 0, err
		}
		tr.add("-"+ftoa(v), -v)
		return -v, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow, nodeRoot:
		l, err := n.left.eval(tr)
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval(tr)
		if err != nil {
			return 0, err
		}
		v, err := binary(n.kind, l, r)
		if err != nil {
			return 0, err
		}
		tr.add(ftoa(l)+" "+opText(n.kind)+" "+ftoa(r), v)
		return v, nil
	case nodeCall:
		if n.fn == nil {
			return 0, &UnknownFunctionError{Name: n.name}
		}
		args := make([]float64, len(n.args))
		for i, a := range n.args {
			v, err := a.eval(tr)
			if err != nil {
				return 0, err
			}
			args[i] = v
		}
		v, err := n.fn.Call(args)
		if err != nil {
			return 0, err
		}
		tr.add(callText(n.name, args), v)
		return v, nil
	default:
		panic("termcalc: invalid node kind " + n.kind.String())
	}
}

func binary(kind nodeKind, l, r float64) (float64, error) {
	switch kind {
	case nodeAdd:
		return l + r, nil
	case nodeSub:
		return l - r, nil
	case nodeMul:
		return l * r, nil
	case nodeDiv:
		if r == 0 {
			return 0, &DivisionByZeroError{Op: "/"}
		}
		return l / r, nil
	case nodeMod:
		if r == 0 {
			return 0, &DivisionByZeroError{Op: "%"}
		}
		return math.Mod(l, r), nil
	case nodePow:
		v := math.Pow(l, r)
		if math.IsNaN(v) && !math.IsNaN(l) && !math.IsNaN(r) {
			return 0, &DomainError{Func: "^", X: l}
		}
		return v, nil
	case nodeRoot:
		return root(l, r)
	default:
		panic("termcalc: no binary operation for node kind " + kind.String())
	}
}

// root computes the r-th root of l. Odd integer roots of negative numbers
// are defined and negative; any other root of a negative number, and roots
// of degree zero, are domain errors.
func root(l, r float64) (float64, error) {
	if r == 0 {
		return 0, &DomainError{Func: "r", X: r}
	}
	if l < 0 {
		if !isOddInt(r) {
			return 0, &DomainError{Func: "r", X: l}
		}
		return -math.Pow(-l, 1/r), nil
	}
	return math.Pow(l, 1/r), nil
}

// intEps is the tolerance within which an argument counts as an integer.
const intEps = 1e-9

func isInt(x float64) bool {
	return math.Abs(x-math.Round(x)) < intEps
}

func isOddInt(x float64) bool {
	return isInt(x) && math.Mod(math.Abs(math.Round(x)), 2) == 1
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func callText(name string, args []float64) string {
	s := name + "("
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		s += ftoa(a)
	}
	return s + ")"
}

// EvalString is a shortcut to tokenize, parse, and evaluate an expression.
func EvalString(src string) (float64, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return 0, err
	}
	n, err := Parse(toks)
	if err != nil {
		return 0, err
	}
	return n.Eval()
}

// DivisionByZeroError is an error from dividing by zero. Op distinguishes
// division from modulo.
type DivisionByZeroError struct {
	Op string
}

func (err *DivisionByZeroError) Error() string {
	if err.Op == "%" {
		return "modulo by zero"
	}
	return "division by zero"
}

// UnknownFunctionError is an error from calling a function name that is not
// in the recognized set.
type UnknownFunctionError struct {
	Name string
}

func (err *UnknownFunctionError) Error() string {
	return "unknown function: " + strconv.Quote(err.Name)
}

// UnknownConstantError is an error from evaluating a constant name with no
// defined value. The parser rejects such names, so it is defensive.
type UnknownConstantError struct {
	Name string
}

func (err *UnknownConstantError) Error() string {
	return "unknown constant: " + strconv.Quote(err.Name)
}
