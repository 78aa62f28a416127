package eval

import (
	"github.com/pana-lang/pana/internal/ast"
	"github.com/pana-lang/pana/internal/builtin"
	"github.com/pana-lang/pana/internal/object"
)

// evalMember evaluates the receiver and arguments and hands the call
// off to the member-method dispatch table, which knows how to route
// each method name by receiver type.
func (e *Evaluator) evalMember(me *ast.MemberExpression, env *object.Environment) object.Value {
	recv := e.Eval(me.Receiver, env)
	if isError(recv) {
		return recv
	}
	args := make([]object.Value, 0, len(me.Args))
	for _, a := range me.Args {
		v := e.Eval(a, env)
		if isError(v) {
			return v
		}
		args = append(args, v)
	}
	return builtin.DispatchMember(recv, me.Method, args, me.Receiver)
}
