// Package eval is the tree-walking evaluator: it drives an ast.Program
// directly, threading an object.Environment chain for scope and using
// the Return/Break/Continue sentinel values from internal/object to
// unwind function calls and loops without panics or Go-level control
// flow tricks.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/pana-lang/pana/internal/ast"
	"github.com/pana-lang/pana/internal/builtin"
	"github.com/pana-lang/pana/internal/object"
)

// Evaluator holds the state threaded through a single run: the global
// built-in table and the I/O streams imprimir/leer read and write.
type Evaluator struct {
	Builtins map[string]*object.Builtin
}

// New creates an Evaluator wired to the process's standard streams.
func New() *Evaluator {
	return NewWithIO(os.Stdout, os.Stdin)
}

// NewWithIO creates an Evaluator that reads leer() input from in and
// writes imprimir() output to out — used by the REPL and by tests that
// need to capture output or script input.
func NewWithIO(out io.Writer, in io.Reader) *Evaluator {
	return &Evaluator{Builtins: builtin.Globals(builtin.IO{Out: out, In: bufio.NewReader(in)})}
}

// Run evaluates a full program. A stray retornar/romper/continuar
// reaching the top level (outside any function or loop) is reported as
// a runtime error rather than silently accepted.
func (e *Evaluator) Run(prog *ast.Program, env *object.Environment) object.Value {
	var result object.Value = object.Void{}
	for _, stmt := range prog.Statements {
		result = e.Eval(stmt, env)
		switch result.(type) {
		case object.Error:
			return result
		case object.ReturnValue:
			return newError(stmt, "Solo se puede retornar dentro de funciones")
		case object.BreakValue:
			return newError(stmt, "Solo se puede usar `romper` dentro de un ciclo")
		case object.ContinueValue:
			return newError(stmt, "Solo se puede usar `continuar` dentro de un ciclo")
		}
	}
	return result
}

// Eval dispatches a single node. Run calls it once per top-level
// statement; the REPL calls Run once per input line against a
// persisted environment.
func (e *Evaluator) Eval(node ast.Node, env *object.Environment) object.Value {
	switch n := node.(type) {
	case *ast.Program:
		return e.Run(n, env)

	case *ast.ExpressionStatement:
		return e.Eval(n.Expr, env)
	case *ast.BlockStatement:
		return e.evalBlock(n, env)
	case *ast.VarStatement:
		return e.evalVarStatement(n, env)
	case *ast.ReturnStatement:
		return e.evalReturnStatement(n, env)
	case *ast.BreakStatement:
		return object.BreakValue{}
	case *ast.ContinueStatement:
		return object.ContinueValue{}
	case *ast.FunctionStatement:
		return e.evalFunctionStatement(n, env)

	case *ast.Identifier:
		return e.evalIdentifier(n, env)
	case *ast.IntegerLiteral:
		return object.NewInt(n.Value)
	case *ast.FloatLiteral:
		return object.NewFloat(n.Value)
	case *ast.StringLiteral:
		return &object.String{Value: n.Value}
	case *ast.BooleanLiteral:
		return object.Boolean{Value: n.Value}
	case *ast.NullLiteral:
		return object.Null{}
	case *ast.ListLiteral:
		return e.evalListLiteral(n, env)
	case *ast.DictLiteral:
		return e.evalDictLiteral(n, env)
	case *ast.IndexExpression:
		return e.evalIndex(n, env)
	case *ast.MemberExpression:
		return e.evalMember(n, env)
	case *ast.PrefixExpression:
		right := e.Eval(n.Right, env)
		return e.evalPrefix(n.Operator, right, n)
	case *ast.InfixExpression:
		left := e.Eval(n.Left, env)
		right := e.Eval(n.Right, env)
		return e.evalInfix(n.Operator, left, right, n)
	case *ast.AssignmentExpression:
		return e.evalAssignment(n, env)
	case *ast.IfExpression:
		return e.evalIf(n, env)
	case *ast.WhileExpression:
		return e.evalWhile(n, env)
	case *ast.ForRangeExpression:
		return e.evalForRange(n, env)
	case *ast.CallExpression:
		return e.evalCall(n, env)
	case *ast.FunctionLiteral:
		return object.Function{Parameters: n.Parameters, Body: n.Body, Env: env}
	}
	return newError(node, "nodo no soportado durante la evaluacion")
}

// evalBlock evaluates a block's statements in sequence, stopping early
// the moment one produces an Error or a control-flow sentinel — the
// enclosing function/loop/program frame decides what that sentinel
// means.
func (e *Evaluator) evalBlock(block *ast.BlockStatement, env *object.Environment) object.Value {
	var result object.Value = object.Void{}
	for _, stmt := range block.Statements {
		result = e.Eval(stmt, env)
		switch result.(type) {
		case object.Error, object.ReturnValue, object.BreakValue, object.ContinueValue:
			return result
		}
	}
	return result
}

func (e *Evaluator) evalVarStatement(vs *ast.VarStatement, env *object.Environment) object.Value {
	if env.Exists(vs.Name.Value) {
		return newError(vs.Name, "El identificador `%s` ya habia sido declarado", vs.Name.Value)
	}
	val := e.Eval(vs.Value, env)
	if isError(val) {
		return val
	}
	if _, ok := val.(object.Void); ok {
		return newError(vs, "No se puede asignar el tipo de dato vacio a una variable")
	}
	env.Declare(vs.Name.Value, val)
	return val
}

func (e *Evaluator) evalReturnStatement(rs *ast.ReturnStatement, env *object.Environment) object.Value {
	val := e.Eval(rs.Value, env)
	if isError(val) {
		return val
	}
	return object.ReturnValue{Value: val}
}

func (e *Evaluator) evalFunctionStatement(fs *ast.FunctionStatement, env *object.Environment) object.Value {
	if env.Exists(fs.Name.Value) {
		return newError(fs.Name, "El identificador `%s` ya habia sido declarado", fs.Name.Value)
	}
	fn := object.Function{Name: fs.Name.Value, Parameters: fs.Parameters, Body: fs.Body, Env: env}
	env.Declare(fs.Name.Value, fn)
	return fn
}

func (e *Evaluator) evalIdentifier(id *ast.Identifier, env *object.Environment) object.Value {
	if v, ok := env.Get(id.Value); ok {
		return v
	}
	if b, ok := e.Builtins[id.Value]; ok {
		return *b
	}
	return newError(id, "El identificador `%s` no existe", id.Value)
}

func (e *Evaluator) evalListLiteral(ll *ast.ListLiteral, env *object.Environment) object.Value {
	elems := make([]object.Value, 0, len(ll.Elements))
	for _, expr := range ll.Elements {
		v := e.Eval(expr, env)
		if isError(v) {
			return v
		}
		elems = append(elems, v)
	}
	return &object.List{Elements: elems}
}

func (e *Evaluator) evalDictLiteral(dl *ast.DictLiteral, env *object.Environment) object.Value {
	dict := object.NewDict()
	for i, keyExpr := range dl.Keys {
		key := e.Eval(keyExpr, env)
		if isError(key) {
			return key
		}
		val := e.Eval(dl.Values[i], env)
		if isError(val) {
			return val
		}
		if !dict.Set(key, val) {
			return newError(keyExpr, "No se puede usar un tipo de dato %s como llave de diccionario", key.Type())
		}
	}
	return dict
}
