package eval

import (
	"github.com/pana-lang/pana/internal/ast"
	"github.com/pana-lang/pana/internal/object"
)

// evalIndex reads left[index]. List reads are Null, not an error, when
// the index falls outside the slice — only a dictionary miss is an
// error, since a dictionary has no notion of "in range".
func (e *Evaluator) evalIndex(ie *ast.IndexExpression, env *object.Environment) object.Value {
	return e.indexReadOrWrite(ie.Left, ie.Index, nil, env, ie)
}

// indexReadOrWrite implements both `left[index]` (newValue == nil) and
// `left[index] = newValue` (the AssignmentExpression case), since the
// receiver resolution and bounds/key checks are identical either way.
func (e *Evaluator) indexReadOrWrite(leftExpr, indexExpr ast.Expression, newValue *object.Value, env *object.Environment, pos ast.Node) object.Value {
	left := e.Eval(leftExpr, env)
	if isError(left) {
		return left
	}

	switch recv := left.(type) {
	case *object.List:
		idx := e.Eval(indexExpr, env)
		if isError(idx) {
			return idx
		}
		n, ok := idx.(object.Numeric)
		if !ok || n.IsFloat {
			return newError(indexExpr, "El indice de una lista debe ser un numero entero")
		}
		i := n.Int
		inRange := i >= 0 && i < int64(len(recv.Elements))
		if newValue != nil {
			if !inRange {
				return object.Null{}
			}
			recv.Elements[i] = *newValue
			return *newValue
		}
		if !inRange {
			return object.Null{}
		}
		return recv.Elements[i]

	case *object.Dict:
		key := e.Eval(indexExpr, env)
		if isError(key) {
			return key
		}
		if newValue != nil {
			if !recv.Set(key, *newValue) {
				return newError(indexExpr, "No se puede usar un tipo de dato %s como llave de diccionario", key.Type())
			}
			return *newValue
		}
		v, ok := recv.Get(key)
		if !ok {
			return newError(indexExpr, "Llave invalida %s", key.String())
		}
		return v

	default:
		return newError(pos, "El operador de indexar solo se puede usar con listas y diccionarios, no %s", left.Type())
	}
}
