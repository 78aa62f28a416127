package builtin

import (
	"strings"

	"github.com/pana-lang/pana/internal/ast"
	"github.com/pana-lang/pana/internal/object"
)

func agregar(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 1 {
		return arityMismatch("agregar", 1, len(args), pos)
	}
	l, ok := target.(*object.List)
	if !ok {
		return typeMismatch("agregar", target, pos)
	}
	l.Elements = append(l.Elements, args[0])
	return object.Void{}
}

func indice(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 1 {
		return arityMismatch("indice", 1, len(args), pos)
	}
	l, ok := target.(*object.List)
	if !ok {
		return typeMismatch("indice", target, pos)
	}
	for i, el := range l.Elements {
		if object.Equal(el, args[0]) {
			return object.NewInt(int64(i))
		}
	}
	return object.Null{}
}

// ordenar sorts a list in place, rejecting a mix of numeric and string
// elements rather than silently comparing them by some arbitrary type
// order.
func ordenar(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 0 {
		return arityMismatch("ordenar", 0, len(args), pos)
	}
	l, ok := target.(*object.List)
	if !ok {
		return typeMismatch("ordenar", target, pos)
	}
	if err := object.SortValues(l.Elements); err != nil {
		return newError(pos, "%s", err.Error())
	}
	return object.Void{}
}

func concatenar(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 1 {
		return arityMismatch("concatenar", 1, len(args), pos)
	}
	l, ok := target.(*object.List)
	if !ok {
		return typeMismatch("concatenar", target, pos)
	}
	other, ok := args[0].(*object.List)
	if !ok {
		return argTypeMismatch("lista", args[0], pos)
	}
	l.Elements = append(l.Elements, other.Elements...)
	return object.Void{}
}

func eliminarIndice(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 1 {
		return arityMismatch("eliminar_indice", 1, len(args), pos)
	}
	n, ok := args[0].(object.Numeric)
	if !ok || n.IsFloat {
		return argTypeMismatch("numerico entero", args[0], pos)
	}
	l, ok := target.(*object.List)
	if !ok {
		return typeMismatch("eliminar_indice", target, pos)
	}
	if n.Int < 0 || n.Int >= int64(len(l.Elements)) {
		return object.Null{}
	}
	removed := l.Elements[n.Int]
	l.Elements = append(l.Elements[:n.Int], l.Elements[n.Int+1:]...)
	return removed
}

func juntar(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 1 {
		return arityMismatch("juntar", 1, len(args), pos)
	}
	sep, ok := args[0].(*object.String)
	if !ok {
		return argTypeMismatch("cadena", args[0], pos)
	}
	l, ok := target.(*object.List)
	if !ok {
		return typeMismatch("juntar", target, pos)
	}
	parts := make([]string, len(l.Elements))
	for i, el := range l.Elements {
		parts[i] = el.String()
	}
	return &object.String{Value: strings.Join(parts, sep.Value)}
}
