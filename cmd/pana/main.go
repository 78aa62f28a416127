// Command pana is the CLI front end over the Lex → Parse → Eval
// pipeline in internal/lexer, internal/parser, and internal/eval.
package main

import (
	"fmt"
	"os"

	"github.com/pana-lang/pana/cmd/pana/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
