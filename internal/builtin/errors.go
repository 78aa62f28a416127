// Package builtin implements Pana's global functions (longitud, tipo,
// imprimir, leer, cadena) and the member-method dispatch table that
// backs `receptor.metodo(args...)` on strings, lists, and dictionaries.
//
// Every function here receives already-evaluated object.Value
// arguments and an ast.Node for error location — the evaluator is
// responsible for walking argument expressions and short-circuiting on
// an Error operand before a built-in ever runs.
package builtin

import (
	"fmt"

	"github.com/pana-lang/pana/internal/ast"
	"github.com/pana-lang/pana/internal/diag"
	"github.com/pana-lang/pana/internal/object"
)

func newError(pos ast.Node, format string, args ...interface{}) object.Value {
	p := pos.Pos()
	se := &diag.SourceError{Line: p.Line, Col: p.Col, Message: fmt.Sprintf(format, args...)}
	return object.Error{Message: "^" + se.RuntimeError(), Line: p.Line, Col: p.Col}
}

func typeMismatch(method string, got object.Value, pos ast.Node) object.Value {
	return newError(pos, "El tipo de dato %s no posee el miembro `%s`", got.Type(), method)
}

func argTypeMismatch(want string, got object.Value, pos ast.Node) object.Value {
	return newError(pos, "Se espera un tipo de dato %s, no %s", want, got.Type())
}

func arityMismatch(method string, want, got int, pos ast.Node) object.Value {
	return newError(pos, "Se encontro %d argumentos de %d para `%s`", got, want, method)
}
