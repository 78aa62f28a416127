package builtin

import (
	"github.com/pana-lang/pana/internal/ast"
	"github.com/pana-lang/pana/internal/object"
)

func llaves(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 0 {
		return arityMismatch("llaves", 0, len(args), pos)
	}
	d, ok := target.(*object.Dict)
	if !ok {
		return typeMismatch("llaves", target, pos)
	}
	return &object.List{Elements: d.Keys()}
}

func valores(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 0 {
		return arityMismatch("valores", 0, len(args), pos)
	}
	d, ok := target.(*object.Dict)
	if !ok {
		return typeMismatch("valores", target, pos)
	}
	return &object.List{Elements: d.Values()}
}
