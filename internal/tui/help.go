package tui

import (
	"strings"

	"github.com/anverik/termcalc"
)

// helpContent builds the reference text shown by the help command. The
// function list comes from the engine so it never drifts from what actually
// evaluates.
func helpContent() string {
	var b strings.Builder
	b.WriteString("Operators\n")
	b.WriteString("  a + b   a - b   a * b   a / b\n")
	b.WriteString("  a % b   remainder of a / b\n")
	b.WriteString("  a ^ b   a raised to the b-th power (right associative)\n")
	b.WriteString("  a r b   b-th root of a, e.g. 8 r 3 = 2\n")
	b.WriteString("  -a      negation; -2^2 is -(2^2)\n")
	b.WriteString("\nConstants\n")
	b.WriteString("  pi  e\n")
	b.WriteString("\nFunctions\n")
	b.WriteString("  sin, cos, and tan take radians; asin, acos, and atan\n")
	b.WriteString("  return degrees. Functions always take parentheses.\n\n")
	names := termcalc.Functions()
	for i := 0; i < len(names); i += 6 {
		b.WriteString(" ")
		for _, name := range names[i:min(i+6, len(names))] {
			b.WriteString(" ")
			b.WriteString(name)
			b.WriteString(strings.Repeat(" ", max(10-len(name), 1)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\nCommands\n")
	b.WriteString("  help              this screen\n")
	b.WriteString("  details <expr>    evaluate step by step (also <expr> details)\n")
	b.WriteString("  clear, reset      forget history and results\n")
	b.WriteString("  q, quit, exit     leave\n")
	b.WriteString("\nKeys\n")
	b.WriteString("  up/down           browse history; down past the newest\n")
	b.WriteString("                    restores the line you were typing\n")
	b.WriteString("  pgup/pgdn         browse history a page at a time\n")
	b.WriteString("  home/end, ctrl+a/ctrl+e  jump inside the line\n")
	b.WriteString("  ctrl+u            clear the line\n")
	b.WriteString("  ctrl+c            quit\n")
	return b.String()
}
