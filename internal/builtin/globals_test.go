package builtin

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/pana-lang/pana/internal/ast"
	"github.com/pana-lang/pana/internal/object"
)

func newGlobals(out *bytes.Buffer, in string) map[string]*object.Builtin {
	return Globals(IO{Out: out, In: bufio.NewReader(strings.NewReader(in))})
}

func TestLongitud(t *testing.T) {
	g := newGlobals(&bytes.Buffer{}, "")
	fn := g["longitud"].Fn

	if v := fn([]object.Value{&object.String{Value: "hola"}}, nil); v.String() != "4" {
		t.Errorf("longitud(string): expected 4, got %s", v.String())
	}
	if v := fn([]object.Value{&object.List{Elements: []object.Value{object.NewInt(1), object.NewInt(2)}}}, nil); v.String() != "2" {
		t.Errorf("longitud(list): expected 2, got %s", v.String())
	}
	if _, ok := fn([]object.Value{object.NewInt(1)}, nilNode()).(object.Error); !ok {
		t.Errorf("longitud(numerico): expected error")
	}
}

func TestTipo(t *testing.T) {
	g := newGlobals(&bytes.Buffer{}, "")
	fn := g["tipo"].Fn
	cases := []struct {
		v    object.Value
		want string
	}{
		{object.NewInt(1), "numerico"},
		{object.Boolean{Value: true}, "logico"},
		{&object.String{Value: "x"}, "cadena"},
		{&object.List{}, "lista"},
		{object.Null{}, "nulo"},
	}
	for _, c := range cases {
		if v := fn([]object.Value{c.v}, nil); v.String() != c.want {
			t.Errorf("tipo(%v): expected %s, got %s", c.v, c.want, v.String())
		}
	}
}

func TestImprimirConcatenatesArgsWithTrailingNewline(t *testing.T) {
	var out bytes.Buffer
	g := newGlobals(&out, "")
	fn := g["imprimir"].Fn

	fn([]object.Value{object.NewInt(1), object.NewInt(2)}, nil)
	if out.String() != "12\n" {
		t.Errorf("expected %q, got %q", "12\n", out.String())
	}
}

func TestLeerTrimsTrailingNewlineInBothForms(t *testing.T) {
	var out bytes.Buffer
	g := newGlobals(&out, "hola\nmundo\n")
	fn := g["leer"].Fn

	if v := fn(nil, nil); v.String() != "hola" {
		t.Errorf("leer(): expected hola, got %q", v.String())
	}
	if v := fn([]object.Value{&object.String{Value: "> "}}, nil); v.String() != "mundo" {
		t.Errorf("leer(prompt): expected mundo, got %q", v.String())
	}
	if out.String() != "> " {
		t.Errorf("expected prompt written with no newline, got %q", out.String())
	}
}

func TestCadenaConvertsAnyValueToItsStringForm(t *testing.T) {
	g := newGlobals(&bytes.Buffer{}, "")
	fn := g["cadena"].Fn
	if v := fn([]object.Value{object.NewInt(42)}, nil); v.String() != "42" {
		t.Errorf("expected 42, got %s", v.String())
	}
}

// nilNode satisfies ast.Node for tests that need a valid position but
// don't check its content.
func nilNode() ast.Node {
	return &ast.Identifier{}
}
