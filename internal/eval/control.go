package eval

import (
	"github.com/pana-lang/pana/internal/ast"
	"github.com/pana-lang/pana/internal/object"
)

func (e *Evaluator) evalIf(ie *ast.IfExpression, env *object.Environment) object.Value {
	cond := e.Eval(ie.Condition, env)
	if isError(cond) {
		return cond
	}
	scope := object.NewChildEnvironment(env)
	if object.Truthy(cond) {
		return e.evalBlock(ie.Consequence, scope)
	}
	if ie.Alternative != nil {
		return e.evalBlock(ie.Alternative, scope)
	}
	return object.Void{}
}

// evalWhile runs the body in a fresh child scope each iteration —
// variables declared in one pass don't leak a re-declaration error
// into the next. Break/Return stop the loop (Return propagates up
// unwrapped for the enclosing function frame to unwrap); Continue
// re-checks the condition; any Error short-circuits immediately.
func (e *Evaluator) evalWhile(we *ast.WhileExpression, env *object.Environment) object.Value {
	for {
		cond := e.Eval(we.Condition, env)
		if isError(cond) {
			return cond
		}
		if !object.Truthy(cond) {
			return object.Void{}
		}

		scope := object.NewChildEnvironment(env)
		result := e.evalBlock(we.Body, scope)
		switch result.(type) {
		case object.Error, object.ReturnValue:
			return result
		case object.BreakValue:
			return object.Void{}
		case object.ContinueValue:
			continue
		}
	}
}

// evalForRange implements `para ident en rango(...)`, accepting the
// 1/2/3-argument forms of rango: (end), (begin, end), and
// (begin, end, step). Every bound must be an integer; begin and end
// must be non-negative and step strictly positive.
func (e *Evaluator) evalForRange(fr *ast.ForRangeExpression, env *object.Environment) object.Value {
	args := make([]object.Value, 0, len(fr.Args))
	for _, a := range fr.Args {
		v := e.Eval(a, env)
		if isError(v) {
			return v
		}
		args = append(args, v)
	}

	var begin, end, step int64
	switch len(args) {
	case 1:
		n, ok := asInt(args[0])
		if !ok {
			return newError(fr, "Los argumentos de rango deben ser numeros enteros")
		}
		begin, end, step = 0, n, 1
	case 2:
		b, ok1 := asInt(args[0])
		n, ok2 := asInt(args[1])
		if !ok1 || !ok2 {
			return newError(fr, "Los argumentos de rango deben ser numeros enteros")
		}
		begin, end, step = b, n, 1
	case 3:
		b, ok1 := asInt(args[0])
		n, ok2 := asInt(args[1])
		s, ok3 := asInt(args[2])
		if !ok1 || !ok2 || !ok3 {
			return newError(fr, "Los argumentos de rango deben ser numeros enteros")
		}
		begin, end, step = b, n, s
	default:
		return newError(fr, "rango espera entre 1 y 3 argumentos, se encontro %d", len(args))
	}

	if begin < 0 {
		return newError(fr, "El inicio del rango debe ser mayor o igual a cero")
	}
	if end < 0 {
		return newError(fr, "El fin del rango debe ser mayor o igual a cero")
	}
	if step <= 0 {
		return newError(fr, "El paso del rango debe ser mayor a cero")
	}

	for i := begin; i < end; i += step {
		scope := object.NewChildEnvironment(env)
		scope.Declare(fr.Ident, object.NewInt(i))
		result := e.evalBlock(fr.Body, scope)
		switch result.(type) {
		case object.Error, object.ReturnValue:
			return result
		case object.BreakValue:
			return object.Void{}
		case object.ContinueValue:
			continue
		}
	}
	return object.Void{}
}

func asInt(v object.Value) (int64, bool) {
	n, ok := v.(object.Numeric)
	if !ok || n.IsFloat {
		return 0, false
	}
	return n.Int, true
}
