package tui

import (
	"strconv"

	"github.com/anverik/termcalc"
)

// FormatResult renders a result value without a trailing fractional part for
// integral values, so 8 rather than 8.0.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatSteps renders each recorded evaluation step as "op = value".
func FormatSteps(tr *termcalc.Trace) []string {
	out := make([]string, len(tr.Steps))
	for i, s := range tr.Steps {
		out[i] = s.Op + " = " + FormatResult(s.Value)
	}
	return out
}
