package eval_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/pana-lang/pana/internal/eval"
	"github.com/pana-lang/pana/internal/lexer"
	"github.com/pana-lang/pana/internal/object"
	"github.com/pana-lang/pana/internal/parser"
)

// run lexes, parses, and evaluates src against a fresh environment,
// capturing whatever imprimir wrote, followed by one "runtime error:"
// line when the final result is a runtime error. A non-error final
// value is not included.
func run(t *testing.T, src string) string {
	t.Helper()
	var out bytes.Buffer

	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()
	if p.Err != nil {
		return "parse error: " + p.Err.Error()
	}

	ev := eval.NewWithIO(&out, strings.NewReader(""))
	result := ev.Run(program, object.NewEnvironment())

	if e, ok := result.(object.Error); ok {
		out.WriteString("runtime error: " + e.Display() + "\n")
	}
	return out.String()
}

// Each case below is one of the literal input/output scenarios the
// language is specified against: a fixed program whose stdout (or
// reported runtime error) must match a known-good snapshot.
func TestScenarios(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"arithmetic_precedence", `var a = 1 + 2 * 3; imprimir(a);`},
		{"function_call", `fn sumar(a,b){ retornar a+b; } imprimir(sumar(3,4));`},
		{"list_mutation_and_length", `var l = [1,2,3]; l.agregar(4); imprimir(longitud(l));`},
		{"dict_index", `var d = {"lunes":1}; imprimir(d["lunes"]);`},
		{"string_repeat", `var s = "ab"; imprimir(s * 3);`},
		{"for_range", `para i en rango(3) { imprimir(i); }`},
		{"top_level_retornar", `retornar 1;`},
		{"assign_without_declare", "var a = 1; a = 2; b = 2;"},
		{"division_by_zero", `imprimir(1/0);`},
		{"closures", `var f = fn(x){ retornar fn(y){ retornar x+y; }; }; imprimir(f(2)(3));`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snaps.MatchSnapshot(t, run(t, tc.src))
		})
	}
}

func TestAliasAndCopySemantics(t *testing.T) {
	// Alias mutation: a list assigned to another name shares storage.
	out := run(t, `var a = [1,2]; var b = a; b.agregar(3); imprimir(a);`)
	if strings.TrimSpace(out) != "[1, 2, 3]" {
		t.Errorf("expected alias mutation to be visible through a, got %q", out)
	}

	// Copy semantics: reassigning b after copying from a does not
	// affect a, since Numeric is a Go value type.
	out = run(t, `var a = 1; var b = a; b = b+1; imprimir(a);`)
	if strings.TrimSpace(out) != "1" {
		t.Errorf("expected a to remain 1 after copying into b, got %q", out)
	}
}
