package eval

import (
	"github.com/pana-lang/pana/internal/ast"
	"github.com/pana-lang/pana/internal/object"
)

// evalAssignment handles both lvalue shapes the parser accepts: a bare
// identifier, which must already be declared somewhere in the chain,
// and an index target, which reuses indexReadOrWrite's write path.
func (e *Evaluator) evalAssignment(ae *ast.AssignmentExpression, env *object.Environment) object.Value {
	switch target := ae.Target.(type) {
	case *ast.Identifier:
		if !env.Exists(target.Value) {
			return newError(target, "El no existe referencias hacia `%s`", target.Value)
		}
		val := e.Eval(ae.Value, env)
		if isError(val) {
			return val
		}
		if _, ok := val.(object.Void); ok {
			return newError(ae, "No se puede asignar el tipo de dato vacio a una variable")
		}
		env.Assign(target.Value, val)
		return val

	case *ast.IndexExpression:
		val := e.Eval(ae.Value, env)
		if isError(val) {
			return val
		}
		if _, ok := val.(object.Void); ok {
			return newError(ae, "No se puede asignar el tipo de dato vacio a una variable")
		}
		return e.indexReadOrWrite(target.Left, target.Index, &val, env, ae)

	default:
		return newError(ae, "Destino de asignacion invalido")
	}
}
