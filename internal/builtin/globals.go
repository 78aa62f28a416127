package builtin

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pana-lang/pana/internal/ast"
	"github.com/pana-lang/pana/internal/object"
)

// IO bundles the streams the global functions that touch the outside
// world read from and write to: imprimir writes to Out, leer reads a
// line from In.
type IO struct {
	Out io.Writer
	In  *bufio.Reader
}

// Globals builds the fixed table of Pana's five global functions, bound
// to the given streams.
func Globals(streams IO) map[string]*object.Builtin {
	return map[string]*object.Builtin{
		"longitud": {Name: "longitud", Fn: longitudFn},
		"tipo":     {Name: "tipo", Fn: tipoFn},
		"imprimir": {Name: "imprimir", Fn: imprimirFn(streams.Out)},
		"leer":     {Name: "leer", Fn: leerFn(streams)},
		"cadena":   {Name: "cadena", Fn: cadenaFn},
	}
}

func longitudFn(args []object.Value, pos ast.Node) object.Value {
	if len(args) != 1 {
		return arityMismatch("longitud", 1, len(args), pos)
	}
	switch v := args[0].(type) {
	case *object.String:
		return object.NewInt(int64(len([]rune(v.Value))))
	case *object.List:
		return object.NewInt(int64(len(v.Elements)))
	case *object.Dict:
		return object.NewInt(int64(v.Len()))
	default:
		return newError(pos, "Se espera un tipo de dato cadena, lista o diccionario, no %s", v.Type())
	}
}

func tipoFn(args []object.Value, pos ast.Node) object.Value {
	if len(args) != 1 {
		return arityMismatch("tipo", 1, len(args), pos)
	}
	return &object.String{Value: string(args[0].Type())}
}

func imprimirFn(out io.Writer) object.BuiltinFunc {
	return func(args []object.Value, pos ast.Node) object.Value {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.String()
		}
		fmt.Fprintln(out, strings.Join(parts, ""))
		return object.Void{}
	}
}

// leerFn implements leer()/leer(prompt): the 1-argument form prints
// its prompt first with no trailing newline, then both forms block on
// one line of standard input and always trim the trailing newline —
// unlike a version of this function seen elsewhere that only trims in
// the prompted form.
func leerFn(streams IO) object.BuiltinFunc {
	return func(args []object.Value, pos ast.Node) object.Value {
		switch len(args) {
		case 0:
		case 1:
			s, ok := args[0].(*object.String)
			if !ok {
				return argTypeMismatch("cadena", args[0], pos)
			}
			fmt.Fprint(streams.Out, s.Value)
		default:
			return arityMismatch("leer", 1, len(args), pos)
		}
		line, err := streams.In.ReadString('\n')
		if err != nil && line == "" {
			return &object.String{Value: ""}
		}
		return &object.String{Value: strings.TrimRight(line, "\r\n")}
	}
}

func cadenaFn(args []object.Value, pos ast.Node) object.Value {
	if len(args) != 1 {
		return arityMismatch("cadena", 1, len(args), pos)
	}
	return &object.String{Value: args[0].String()}
}
