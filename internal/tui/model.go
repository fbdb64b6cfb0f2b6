// Package tui implements the interactive calculator session: a line editor
// with history over a scrolling result log, driven by bubbletea.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anverik/termcalc"
)

var (
	// promptStyle is the style for the input prompt marker
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true)

	// echoStyle is the style for committed input echoed into the log
	echoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// resultStyle is the style for evaluated results
	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")).
			Bold(true)

	// stepStyle is the style for the step lines of a details evaluation
	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	// errorStyle is the style for error lines and the position caret
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// cursorStyle marks the rune under the editor cursor
	cursorStyle = lipgloss.NewStyle().Reverse(true)

	// titleStyle is the style for the help screen title
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true)

	// hintStyle is the style for the help screen's footer hint
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// prompt is the input line marker. promptWidth is its rune width, used to
// align the error caret with the echoed input.
const (
	prompt      = "> "
	promptWidth = 2
)

type mode int

const (
	modeEdit mode = iota
	modeHelp
)

type keyMap struct {
	History key.Binding
	Page    key.Binding
	Clear   key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		History: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "history"),
		),
		Page: key.NewBinding(
			key.WithKeys("pgup", "pgdown"),
			key.WithHelp("pgup/pgdn", "history page"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear line"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.History, k.Page, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.History, k.Page}, {k.Clear, k.Quit}}
}

// Model is the bubbletea model for a calculator session.
type Model struct {
	ed   Editor
	hist History

	log      viewport.Model
	lines    []string
	helpView viewport.Model

	keys keyMap
	help help.Model

	mode   mode
	width  int
	height int
	ready  bool
}

// New returns a Model ready to hand to a bubbletea program. Viewports size
// themselves on the first window size message.
func New() Model {
	return Model{
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeHelp {
			return m.updateHelp(msg)
		}
		return m.updateEdit(msg)
	}
	return m, nil
}

func (m *Model) resize(w, h int) {
	m.width = w
	m.height = h
	// one row for the prompt, one for the status bar
	logH := max(h-2, 1)
	if !m.ready {
		m.log = viewport.New(w, logH)
		m.helpView = viewport.New(w, max(h-2, 1))
		m.ready = true
	} else {
		m.log.Width = w
		m.log.Height = logH
		m.helpView.Width = w
		m.helpView.Height = max(h-2, 1)
	}
	m.help.Width = w
	m.refreshLog()
}

func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc, tea.KeyEnter:
		m.mode = modeEdit
		return m, nil
	}
	if msg.String() == "q" {
		m.mode = modeEdit
		return m, nil
	}
	var cmd tea.Cmd
	m.helpView, cmd = m.helpView.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		return m.commit()
	case tea.KeyBackspace:
		m.ed.Backspace()
	case tea.KeyDelete:
		m.ed.Delete()
	case tea.KeyLeft:
		m.ed.Left()
	case tea.KeyRight:
		m.ed.Right()
	case tea.KeyHome, tea.KeyCtrlA:
		m.ed.Home()
	case tea.KeyEnd, tea.KeyCtrlE:
		m.ed.End()
	case tea.KeyCtrlU:
		m.ed.Clear()
	case tea.KeyUp:
		if s, ok := m.hist.Up(m.ed.String()); ok {
			m.ed.Set(s)
		}
	case tea.KeyDown:
		if s, ok := m.hist.Down(); ok {
			m.ed.Set(s)
		}
	case tea.KeyPgUp:
		if s, ok := m.hist.PageUp(m.ed.String(), m.pageSize()); ok {
			m.ed.Set(s)
		}
	case tea.KeyPgDown:
		if s, ok := m.hist.PageDown(m.pageSize()); ok {
			m.ed.Set(s)
		}
	case tea.KeySpace:
		m.ed.Insert(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.ed.Insert(r)
		}
	}
	return m, nil
}

func (m Model) pageSize() int {
	if !m.ready {
		return 1
	}
	return max(m.log.Height, 1)
}

// commit consumes the edited line. Command words run their command; anything
// else is evaluated as an expression. Errors never end the session.
func (m Model) commit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.ed.String())
	m.ed.Clear()
	if line == "" {
		return m, nil
	}
	switch strings.ToLower(line) {
	case "q", "quit", "exit":
		return m, tea.Quit
	case "help":
		m.helpView.SetContent(helpContent())
		m.helpView.GotoTop()
		m.mode = modeHelp
		return m, nil
	case "clear", "reset":
		m.hist.Clear()
		m.lines = nil
		m.refreshLog()
		return m, nil
	}
	m.hist.Append(line)
	m.push(promptStyle.Render(prompt) + echoStyle.Render(line))
	expr, traced := stripDetails(line)
	m.evalExpr(line, expr, traced)
	return m, nil
}

// stripDetails recognizes the details prefix or suffix on a committed line
// and returns the remaining expression.
func stripDetails(line string) (expr string, traced bool) {
	lower := strings.ToLower(line)
	switch {
	case strings.HasPrefix(lower, "details "):
		return strings.TrimSpace(line[len("details "):]), true
	case strings.HasSuffix(lower, " details"):
		return strings.TrimSpace(line[:len(line)-len(" details")]), true
	}
	return line, false
}

// evalExpr evaluates expr and appends the outcome to the log. line is the
// full committed text, used to place the error caret when the expression sits
// at an offset inside it.
func (m *Model) evalExpr(line, expr string, traced bool) {
	toks, err := termcalc.Tokenize(expr)
	if err != nil {
		m.pushErr(line, expr, err)
		return
	}
	n, err := termcalc.Parse(toks)
	if err != nil {
		m.pushErr(line, expr, err)
		return
	}
	if traced {
		var tr termcalc.Trace
		v, err := n.EvalWithTrace(&tr)
		if err != nil {
			m.pushErr(line, expr, err)
			return
		}
		for _, s := range FormatSteps(&tr) {
			m.push(stepStyle.Render("  " + s))
		}
		m.push(resultStyle.Render("= " + FormatResult(v)))
		return
	}
	v, err := n.Eval()
	if err != nil {
		m.pushErr(line, expr, err)
		return
	}
	m.push(resultStyle.Render("= " + FormatResult(v)))
}

// pushErr logs an error. For position-carrying errors it first draws a caret
// under the offending column of the echoed input.
func (m *Model) pushErr(line, expr string, err error) {
	var ie termcalc.InputError
	if errors.As(err, &ie) {
		off := 0
		if i := strings.Index(line, expr); i >= 0 {
			off = len([]rune(line[:i]))
		}
		col := promptWidth + off + ie.Pos() - 1
		m.push(errorStyle.Render(strings.Repeat(" ", col) + "^"))
	}
	m.push(errorStyle.Render("! " + err.Error()))
}

func (m *Model) push(s string) {
	m.lines = append(m.lines, s)
	m.refreshLog()
}

func (m *Model) refreshLog() {
	if !m.ready {
		return
	}
	m.log.SetContent(strings.Join(m.lines, "\n"))
	m.log.GotoBottom()
}

// inputView renders the editor buffer with the cursor as a reverse-video
// cell.
func (m Model) inputView() string {
	buf := []rune(m.ed.String())
	cur := m.ed.Cursor()
	if cur >= len(buf) {
		return string(buf) + cursorStyle.Render(" ")
	}
	return string(buf[:cur]) + cursorStyle.Render(string(buf[cur])) + string(buf[cur+1:])
}

func (m Model) View() string {
	if !m.ready {
		return ""
	}
	if m.mode == modeHelp {
		return titleStyle.Render("termcalc help") + "\n" +
			m.helpView.View() + "\n" +
			hintStyle.Render("esc to return, ↑/↓ to scroll")
	}
	return m.log.View() + "\n" +
		promptStyle.Render(prompt) + m.inputView() + "\n" +
		m.help.View(m.keys)
}
