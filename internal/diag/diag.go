// Package diag renders source-located diagnostics in the two fixed
// formats Pana's CLI prints to standard error: a syntax error from the
// parser, and a runtime error from the evaluator. Adapted from the
// teacher's source-context error formatter, trimmed to the two literal
// sentence shapes the language requires — no ANSI color, no multi-line
// context, since the CLI contract names only the one-line form.
package diag

import "fmt"

// SourceError is a single diagnostic anchored to a source position.
type SourceError struct {
	Line    int
	Col     int
	Message string
}

// SyntaxError formats a parser diagnostic:
// "Error de sintaxis: <message>. Linea <L>, columna <C>."
func (e *SourceError) SyntaxError() string {
	return fmt.Sprintf("Error de sintaxis: %s. Linea %d, columna %d.", e.Message, e.Line, e.Col)
}

// RuntimeError formats an evaluator diagnostic:
// "Error de ejecución. <message>. Linea <L>, columna <C>."
func (e *SourceError) RuntimeError() string {
	return fmt.Sprintf("Error de ejecución. %s. Linea %d, columna %d.", e.Message, e.Line, e.Col)
}

// ParseError wraps the single fatal parser error (parsing stops at the
// first failure, per the parser's contract).
type ParseError struct {
	*SourceError
}

func (e *ParseError) Error() string {
	return e.SyntaxError()
}

// NewParseError builds a ParseError at the given position.
func NewParseError(line, col int, message string) *ParseError {
	return &ParseError{&SourceError{Line: line, Col: col, Message: message}}
}
