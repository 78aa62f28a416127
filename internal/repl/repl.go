// Package repl is a minimal read-eval-print loop over the core
// Lex → Parse → Eval pipeline, persisting one evaluator and one
// environment across lines so a variable declared on one line is
// visible on the next. Line editing, history, and theming are left to
// whatever terminal the process runs in — this driver is deliberately
// thin.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pana-lang/pana/internal/eval"
	"github.com/pana-lang/pana/internal/lexer"
	"github.com/pana-lang/pana/internal/object"
	"github.com/pana-lang/pana/internal/parser"
)

const prompt = ">> "

// Run drives the loop: read a line from in, write the prompt and
// results to out, until in is exhausted. `limpiar` clears the screen
// (an ANSI escape, since there's no terminal library wired here) and
// `salir` ends the loop.
func Run(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	env := object.NewEnvironment()
	ev := eval.NewWithIO(out, in)

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()

		switch line {
		case "limpiar":
			fmt.Fprint(out, "\x1b[H\x1b[2J")
			continue
		case "salir":
			return
		case "":
			continue
		}

		l := lexer.New(line)
		p := parser.New(l)
		program := p.ParseProgram()
		if p.Err != nil {
			fmt.Fprintln(out, p.Err.Error())
			continue
		}

		result := ev.Run(program, env)
		if e, ok := result.(object.Error); ok {
			fmt.Fprintln(out, e.Display())
			continue
		}
		if _, ok := result.(object.Void); ok {
			continue
		}
		fmt.Fprintln(out, result.String())
	}
}
