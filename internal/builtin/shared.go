// Methods shared across the three container-ish receivers (list,
// dictionary, string), grounded on the method group that appears for
// all three receivers in the member-dispatch reference this package
// was translated from.
package builtin

import (
	"github.com/pana-lang/pana/internal/ast"
	"github.com/pana-lang/pana/internal/object"
)

func eliminar(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 1 {
		return arityMismatch("eliminar", 1, len(args), pos)
	}
	switch t := target.(type) {
	case *object.List:
		for i, el := range t.Elements {
			if object.Equal(el, args[0]) {
				removed := el
				t.Elements = append(t.Elements[:i], t.Elements[i+1:]...)
				return removed
			}
		}
		return object.Null{}
	case *object.Dict:
		v, ok := t.Get(args[0])
		if !ok {
			return object.Null{}
		}
		t.Delete(args[0])
		return v
	default:
		return typeMismatch("eliminar", target, pos)
	}
}

func limpiar(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 0 {
		return arityMismatch("limpiar", 0, len(args), pos)
	}
	switch t := target.(type) {
	case *object.List:
		t.Elements = nil
		return object.Void{}
	case *object.Dict:
		t.Clear()
		return object.Void{}
	case *object.String:
		t.Value = ""
		return object.Void{}
	default:
		return typeMismatch("limpiar", target, pos)
	}
}

// buscar returns the matching element itself on a list (not its
// index — that's indice), or the byte-offset-free rune index of a
// substring on a string.
func buscar(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 1 {
		return arityMismatch("buscar", 1, len(args), pos)
	}
	switch t := target.(type) {
	case *object.List:
		for _, el := range t.Elements {
			if object.Equal(el, args[0]) {
				return el
			}
		}
		return object.Null{}
	case *object.String:
		s, ok := args[0].(*object.String)
		if !ok {
			return argTypeMismatch("cadena", args[0], pos)
		}
		idx := runeIndex(t.Value, s.Value)
		if idx < 0 {
			return object.Null{}
		}
		return object.NewInt(int64(idx))
	default:
		return typeMismatch("buscar", target, pos)
	}
}

// insertar(valor, indice) inserts valor at indice, shifting later
// elements right. indice == length is a valid "append at the end"
// position — a strict less-than bound here would reject it.
func insertar(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 2 {
		return arityMismatch("insertar", 2, len(args), pos)
	}
	idxNum, ok := args[1].(object.Numeric)
	if !ok || idxNum.IsFloat {
		return argTypeMismatch("numerico entero", args[1], pos)
	}
	if idxNum.Int < 0 {
		return newError(pos, "El indice debe ser un numero positivo")
	}
	idx := int(idxNum.Int)

	switch t := target.(type) {
	case *object.List:
		if idx > len(t.Elements) {
			return newError(pos, "El indice esta fuera de rango")
		}
		t.Elements = append(t.Elements, nil)
		copy(t.Elements[idx+1:], t.Elements[idx:])
		t.Elements[idx] = args[0]
		return object.Void{}
	case *object.String:
		s, ok := args[0].(*object.String)
		if !ok {
			return argTypeMismatch("cadena", args[0], pos)
		}
		r := []rune(t.Value)
		if idx > len(r) {
			return newError(pos, "El indice esta fuera de rango")
		}
		t.Value = string(r[:idx]) + s.Value + string(r[idx:])
		return object.Void{}
	default:
		return typeMismatch("insertar", target, pos)
	}
}

func vacio(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 0 {
		return arityMismatch("vacio", 0, len(args), pos)
	}
	switch t := target.(type) {
	case *object.List:
		return object.Boolean{Value: len(t.Elements) == 0}
	case *object.Dict:
		return object.Boolean{Value: t.Len() == 0}
	case *object.String:
		return object.Boolean{Value: t.Value == ""}
	default:
		return typeMismatch("vacio", target, pos)
	}
}

func invertir(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 0 {
		return arityMismatch("invertir", 0, len(args), pos)
	}
	switch t := target.(type) {
	case *object.List:
		for i, j := 0, len(t.Elements)-1; i < j; i, j = i+1, j-1 {
			t.Elements[i], t.Elements[j] = t.Elements[j], t.Elements[i]
		}
		return object.Void{}
	case *object.String:
		r := []rune(t.Value)
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		t.Value = string(r)
		return object.Void{}
	default:
		return typeMismatch("invertir", target, pos)
	}
}
