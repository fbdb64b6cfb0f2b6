package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func typeLine(t *testing.T, m Model, line string) Model {
	t.Helper()
	for _, r := range line {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func press(t *testing.T, m Model, k tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(Model), cmd
}

func TestModelCommitEvaluates(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "2 + 2 * 3")
	m, _ = press(t, m, tea.KeyEnter)
	if m.ed.Len() != 0 {
		t.Errorf("buffer not cleared after commit: %q", m.ed.String())
	}
	if m.hist.Len() != 1 {
		t.Errorf("history has %d entries, want 1", m.hist.Len())
	}
	joined := strings.Join(m.lines, "\n")
	if !strings.Contains(joined, "= 8") {
		t.Errorf("log %q missing result 8", joined)
	}
}

func TestModelCommitEmptyNoop(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, tea.KeyEnter)
	if m.hist.Len() != 0 || len(m.lines) != 0 {
		t.Errorf("empty commit recorded: hist %d, log %d", m.hist.Len(), len(m.lines))
	}
}

func TestModelErrorKeepsSession(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "1 / 0")
	var cmd tea.Cmd
	m, cmd = press(t, m, tea.KeyEnter)
	if cmd != nil {
		t.Error("error produced a command; the session should continue")
	}
	joined := strings.Join(m.lines, "\n")
	if !strings.Contains(joined, "division by zero") {
		t.Errorf("log %q missing error text", joined)
	}
	// the session still evaluates afterwards
	m = typeLine(t, m, "1+1")
	m, _ = press(t, m, tea.KeyEnter)
	if !strings.Contains(strings.Join(m.lines, "\n"), "= 2") {
		t.Error("evaluation after an error did not produce a result")
	}
}

func TestModelParseErrorCaret(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "2 + $")
	m, _ = press(t, m, tea.KeyEnter)
	found := false
	for _, line := range m.lines {
		if strings.Contains(line, "^") {
			found = true
		}
	}
	if !found {
		t.Errorf("log %v missing position caret", m.lines)
	}
}

func TestModelQuitCommands(t *testing.T) {
	for _, word := range []string{"q", "quit", "exit", "Q", "QUIT", "Exit"} {
		m := newTestModel(t)
		m = typeLine(t, m, word)
		_, cmd := press(t, m, tea.KeyEnter)
		if cmd == nil {
			t.Errorf("%q did not quit", word)
		}
	}
}

func TestModelCtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	_, cmd := press(t, m, tea.KeyCtrlC)
	if cmd == nil {
		t.Error("ctrl+c did not quit")
	}
}

func TestModelClearCommand(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "1+1")
	m, _ = press(t, m, tea.KeyEnter)
	m = typeLine(t, m, "clear")
	m, _ = press(t, m, tea.KeyEnter)
	if m.hist.Len() != 0 || len(m.lines) != 0 {
		t.Errorf("clear left hist %d, log %d", m.hist.Len(), len(m.lines))
	}
}

func TestModelHelpCommand(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "help")
	m, _ = press(t, m, tea.KeyEnter)
	if m.mode != modeHelp {
		t.Fatal("help command did not open the help screen")
	}
	if !strings.Contains(m.View(), "termcalc help") {
		t.Error("help view missing title")
	}
	m, _ = press(t, m, tea.KeyEsc)
	if m.mode != modeEdit {
		t.Error("esc did not close the help screen")
	}
}

func TestModelDetails(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "details 2 + 3 * 4")
	m, _ = press(t, m, tea.KeyEnter)
	joined := strings.Join(m.lines, "\n")
	for _, want := range []string{"3 * 4 = 12", "2 + 12 = 14", "= 14"} {
		if !strings.Contains(joined, want) {
			t.Errorf("log %q missing %q", joined, want)
		}
	}

	m = newTestModel(t)
	m = typeLine(t, m, "2 + 3 * 4 details")
	m, _ = press(t, m, tea.KeyEnter)
	if !strings.Contains(strings.Join(m.lines, "\n"), "3 * 4 = 12") {
		t.Error("details suffix did not trace")
	}
}

func TestModelHistoryKeys(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "1+1")
	m, _ = press(t, m, tea.KeyEnter)
	m = typeLine(t, m, "2+2")
	m, _ = press(t, m, tea.KeyEnter)

	m = typeLine(t, m, "3+")
	m, _ = press(t, m, tea.KeyUp)
	if got := m.ed.String(); got != "2+2" {
		t.Fatalf("up recalled %q, want %q", got, "2+2")
	}
	m, _ = press(t, m, tea.KeyUp)
	if got := m.ed.String(); got != "1+1" {
		t.Fatalf("second up recalled %q, want %q", got, "1+1")
	}
	m, _ = press(t, m, tea.KeyDown)
	m, _ = press(t, m, tea.KeyDown)
	if got := m.ed.String(); got != "3+" {
		t.Errorf("down past newest recalled %q, want the stashed %q", got, "3+")
	}
}

func TestModelEditingKeys(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "12")
	m, _ = press(t, m, tea.KeyLeft)
	m, _ = press(t, m, tea.KeyBackspace)
	if got := m.ed.String(); got != "2" {
		t.Errorf("buffer %q, want %q", got, "2")
	}
	m, _ = press(t, m, tea.KeyCtrlU)
	if m.ed.Len() != 0 {
		t.Errorf("ctrl+u left %q", m.ed.String())
	}
}

func TestStripDetails(t *testing.T) {
	cases := []struct {
		line   string
		expr   string
		traced bool
	}{
		{"details 1+1", "1+1", true},
		{"1+1 details", "1+1", true},
		{"Details 1+1", "1+1", true},
		{"1+1 DETAILS", "1+1", true},
		{"1+1", "1+1", false},
		{"details", "details", false},
	}
	for _, c := range cases {
		expr, traced := stripDetails(c.line)
		if expr != c.expr || traced != c.traced {
			t.Errorf("stripDetails(%q) = %q, %v; want %q, %v", c.line, expr, traced, c.expr, c.traced)
		}
	}
}
