package termcalc

import (
	"math"
	"sort"
	"strconv"
)

// Func is a function from reals to reals. The parser uses CanCall to
// validate argument counts, so Call is only ever invoked with a length for
// which CanCall returned true.
type Func interface {
	// Call evaluates the function on already-evaluated arguments.
	Call(args []float64) (float64, error)

	// CanCall returns whether the function can be called with n arguments.
	CanCall(n int) bool

	// Arity describes the accepted argument count, e.g. "1" or "at least 2".
	Arity() string
}

var globalfuncs = map[string]Func{
	// trigonometric; arguments in radians, but the inverses return degrees
	"sin":  monadic{func(x float64) (float64, error) { return math.Sin(x), nil }},
	"cos":  monadic{func(x float64) (float64, error) { return math.Cos(x), nil }},
	"tan":  monadic{func(x float64) (float64, error) { return math.Tan(x), nil }},
	"asin": monadic{asin},
	"acos": monadic{acos},
	"atan": monadic{func(x float64) (float64, error) { return degrees(math.Atan(x)), nil }},

	// hyperbolic
	"sinh":  monadic{func(x float64) (float64, error) { return math.Sinh(x), nil }},
	"cosh":  monadic{func(x float64) (float64, error) { return math.Cosh(x), nil }},
	"tanh":  monadic{func(x float64) (float64, error) { return math.Tanh(x), nil }},
	"asinh": monadic{func(x float64) (float64, error) { return math.Asinh(x), nil }},
	"acosh": monadic{acosh},
	"atanh": monadic{atanh},

	// exponential
	"ln":  monadic{logE},
	"log": monadic{log10},
	"exp": monadic{func(x float64) (float64, error) { return math.Exp(x), nil }},

	// basic
	"abs":   monadic{func(x float64) (float64, error) { return math.Abs(x), nil }},
	"floor": monadic{func(x float64) (float64, error) { return math.Floor(x), nil }},
	"ceil":  monadic{func(x float64) (float64, error) { return math.Ceil(x), nil }},
	"round": monadic{func(x float64) (float64, error) { return math.Round(x), nil }},
	"sqrt":  monadic{sqrt},

	// combinatorics
	"fact":      monadic{factorial("fact")},
	"factorial": monadic{factorial("factorial")},
	"perm":      dyadic{perm("perm")},
	"npr":       dyadic{perm("npr")},
	"comb":      dyadic{comb("comb")},
	"ncr":       dyadic{comb("ncr")},

	// statistical
	"mean":   variadic{1, mean},
	"median": variadic{1, median},
	"stdev":  variadic{2, stdev},
	"stddev": variadic{2, stdev},
}

// Functions returns the names of all recognized functions in sorted order.
func Functions() []string {
	names := make([]string, 0, len(globalfuncs))
	for name := range globalfuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type monadic struct {
	f func(float64) (float64, error)
}

func (m monadic) Call(args []float64) (float64, error) { return m.f(args[0]) }
func (m monadic) CanCall(n int) bool                   { return n == 1 }
func (m monadic) Arity() string                        { return "1" }

type dyadic struct {
	f func(a, b float64) (float64, error)
}

func (d dyadic) Call(args []float64) (float64, error) { return d.f(args[0], args[1]) }
func (d dyadic) CanCall(n int) bool                   { return n == 2 }
func (d dyadic) Arity() string                        { return "2" }

type variadic struct {
	min int
	f   func(args []float64) (float64, error)
}

func (v variadic) Call(args []float64) (float64, error) { return v.f(args) }
func (v variadic) CanCall(n int) bool                   { return n >= v.min }
func (v variadic) Arity() string                        { return "at least " + strconv.Itoa(v.min) }

func degrees(x float64) float64 {
	return x * 180 / math.Pi
}

func asin(x float64) (float64, error) {
	if x < -1 || x > 1 {
		return 0, &DomainError{Func: "asin", X: x}
	}
	return degrees(math.Asin(x)), nil
}

func acos(x float64) (float64, error) {
	if x < -1 || x > 1 {
		return 0, &DomainError{Func: "acos", X: x}
	}
	return degrees(math.Acos(x)), nil
}

func acosh(x float64) (float64, error) {
	if x < 1 {
		return 0, &DomainError{Func: "acosh", X: x}
	}
	return math.Acosh(x), nil
}

func atanh(x float64) (float64, error) {
	if x <= -1 || x >= 1 {
		return 0, &DomainError{Func: "atanh", X: x}
	}
	return math.Atanh(x), nil
}

func logE(x float64) (float64, error) {
	if x <= 0 {
		return 0, &DomainError{Func: "ln", X: x}
	}
	return math.Log(x), nil
}

func log10(x float64) (float64, error) {
	if x <= 0 {
		return 0, &DomainError{Func: "log", X: x}
	}
	return math.Log10(x), nil
}

func sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, &DomainError{Func: "sqrt", X: x}
	}
	return math.Sqrt(x), nil
}

// factorial computes n! iteratively. Overflow saturates to +Inf, which
// propagates as a value rather than an error.
func factorial(name string) func(float64) (float64, error) {
	return func(x float64) (float64, error) {
		if x < 0 || !isInt(x) {
			return 0, &DomainError{Func: name, X: x}
		}
		n := math.Round(x)
		v := 1.0
		for i := 2.0; i <= n; i++ {
			v *= i
			if math.IsInf(v, 1) {
				break
			}
		}
		return v, nil
	}
}

// perm computes n!/(n-k)! as a falling product to avoid overflowing on the
// intermediate factorials.
func perm(name string) func(a, b float64) (float64, error) {
	return func(a, b float64) (float64, error) {
		n, k, err := nk(name, a, b)
		if err != nil {
			return 0, err
		}
		v := 1.0
		for i := 0.0; i < k; i++ {
			v *= n - i
			if math.IsInf(v, 1) {
				break
			}
		}
		return v, nil
	}
}

// comb computes n!/(k!(n-k)!), dividing as it multiplies so that the running
// product stays small for moderate n.
func comb(name string) func(a, b float64) (float64, error) {
	return func(a, b float64) (float64, error) {
		n, k, err := nk(name, a, b)
		if err != nil {
			return 0, err
		}
		k = math.Min(k, n-k)
		v := 1.0
		for i := 0.0; i < k; i++ {
			v *= (n - i) / (i + 1)
			if math.IsInf(v, 1) {
				break
			}
		}
		return v, nil
	}
}

// nk validates the shared perm/comb domain: both arguments non-negative
// integers with k <= n.
func nk(name string, a, b float64) (n, k float64, err error) {
	if a < 0 || !isInt(a) {
		return 0, 0, &DomainError{Func: name, X: a}
	}
	if b < 0 || !isInt(b) || math.Round(b) > math.Round(a) {
		return 0, 0, &DomainError{Func: name, X: b}
	}
	return math.Round(a), math.Round(b), nil
}

func mean(args []float64) (float64, error) {
	sum := 0.0
	for _, x := range args {
		sum += x
	}
	return sum / float64(len(args)), nil
}

func median(args []float64) (float64, error) {
	sorted := append([]float64(nil), args...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}
	return sorted[mid], nil
}

// stdev computes the sample standard deviation, dividing the summed squared
// deviations by n-1.
func stdev(args []float64) (float64, error) {
	m, _ := mean(args)
	sum := 0.0
	for _, x := range args {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(args)-1)), nil
}

// DomainError is an error from an operation applied to a value outside its
// mathematically valid range.
type DomainError struct {
	// Func is a name identifying the operation.
	Func string
	// X is the out-of-domain argument.
	X float64
}

func (err *DomainError) Error() string {
	return ftoa(err.X) + " outside domain of " + err.Func
}
