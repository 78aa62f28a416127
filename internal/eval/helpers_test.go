package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pana-lang/pana/internal/lexer"
	"github.com/pana-lang/pana/internal/object"
	"github.com/pana-lang/pana/internal/parser"
)

// evalInput lexes, parses, and evaluates src against a fresh evaluator
// and environment, returning the final value and whatever imprimir
// wrote to out.
func evalInput(t *testing.T, src string) (object.Value, string) {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()
	if p.Err != nil {
		t.Fatalf("parse error: %v", p.Err)
	}
	var out bytes.Buffer
	ev := NewWithIO(&out, strings.NewReader(""))
	result := ev.Run(program, object.NewEnvironment())
	return result, out.String()
}

func requireError(t *testing.T, v object.Value) object.Error {
	t.Helper()
	e, ok := v.(object.Error)
	if !ok {
		t.Fatalf("expected object.Error, got %T (%v)", v, v)
	}
	return e
}
