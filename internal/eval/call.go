package eval

import (
	"github.com/pana-lang/pana/internal/ast"
	"github.com/pana-lang/pana/internal/object"
)

func (e *Evaluator) evalCall(ce *ast.CallExpression, env *object.Environment) object.Value {
	callee := e.Eval(ce.Callee, env)
	if isError(callee) {
		return callee
	}
	args := make([]object.Value, 0, len(ce.Args))
	for _, a := range ce.Args {
		v := e.Eval(a, env)
		if isError(v) {
			return v
		}
		args = append(args, v)
	}

	switch fn := callee.(type) {
	case object.Function:
		return e.applyFunction(fn, args, ce)
	case object.Builtin:
		return fn.Fn(args, ce)
	default:
		return newError(ce, "La operacion de llamada solo se puede aplicar a funciones, no %s", callee.Type())
	}
}

// applyFunction runs fn's body in a fresh scope nested under its
// closure environment, binding each parameter by value/handle (an atom
// argument copies into the scope, a heap argument hands over the same
// pointer — ordinary Go assignment gives both for free). A body that
// falls off the end without `retornar` yields its last statement's
// value, same as an if/while block does.
func (e *Evaluator) applyFunction(fn object.Function, args []object.Value, callPos ast.Node) object.Value {
	if len(args) != len(fn.Parameters) {
		return newError(callPos, "Se encontro %d argumentos, se esperaba %d", len(args), len(fn.Parameters))
	}

	scope := object.NewChildEnvironment(fn.Env)
	for i, param := range fn.Parameters {
		scope.Declare(param.Value, args[i])
	}

	result := e.evalBlock(fn.Body, scope)
	switch r := result.(type) {
	case object.ReturnValue:
		return r.Value
	case object.BreakValue:
		return newError(callPos, "Solo se puede usar `romper` dentro de un ciclo")
	case object.ContinueValue:
		return newError(callPos, "Solo se puede usar `continuar` dentro de un ciclo")
	default:
		return result
	}
}
