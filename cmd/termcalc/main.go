package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/anverik/termcalc"
	"github.com/anverik/termcalc/internal/tui"
)

func main() {
	log.SetFlags(0)
	var (
		verb  string
		echo  bool
		steps bool
	)
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&echo, "echo", false, "print the parsed expression before its result")
	flag.BoolVar(&steps, "steps", false, "print each evaluation step")
	flag.Parse()
	verb += "\n"

	switch {
	case flag.NArg() > 0:
		// each argument is one expression
		for _, arg := range flag.Args() {
			if err := eval(arg, verb, echo, steps); err != nil {
				log.Fatal(err)
			}
		}
	case term.IsTerminal(int(os.Stdin.Fd())):
		p := tea.NewProgram(tui.New(), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatal(err)
		}
	default:
		// piped input, one expression per line
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			if err := eval(line, verb, echo, steps); err != nil {
				log.Println(err)
			}
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
	}
}

func eval(src, verb string, echo, steps bool) error {
	toks, err := termcalc.Tokenize(src)
	if err != nil {
		return err
	}
	n, err := termcalc.Parse(toks)
	if err != nil {
		return err
	}
	if echo {
		fmt.Printf("%v : ", n)
	}
	if steps {
		var tr termcalc.Trace
		v, err := n.EvalWithTrace(&tr)
		if err != nil {
			return err
		}
		for _, s := range tr.Steps {
			fmt.Printf("  %s = "+verb, s.Op, s.Value)
		}
		fmt.Printf(verb, v)
		return nil
	}
	v, err := n.Eval()
	if err != nil {
		return err
	}
	fmt.Printf(verb, v)
	return nil
}
