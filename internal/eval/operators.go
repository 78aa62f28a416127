package eval

import (
	"math"
	"strings"

	"github.com/pana-lang/pana/internal/ast"
	"github.com/pana-lang/pana/internal/object"
)

// evalPrefix implements the three unary operators. `+x` is identity
// regardless of type (even on a non-numeric operand — the language
// leaves it to the writer to use it sensibly). `-x` negates a Numeric
// or a Boolean coerced to 0/1 first; anything else yields Null rather
// than an error. `!x` is true exactly on integer zero and Null, the
// negation of a Boolean, and Null (never an error) on everything else.
func (e *Evaluator) evalPrefix(op string, right object.Value, pos ast.Node) object.Value {
	if isError(right) {
		return right
	}
	switch op {
	case "+":
		return right
	case "-":
		switch r := right.(type) {
		case object.Numeric:
			if r.IsFloat {
				return object.NewFloat(-r.Float)
			}
			if r.Int == math.MinInt64 {
				return newError(pos, "El resultado de la operacion desborda el entero de 64 bits")
			}
			return object.NewInt(-r.Int)
		case object.Boolean:
			if r.Value {
				return object.NewInt(-1)
			}
			return object.NewInt(0)
		default:
			return object.Null{}
		}
	case "!":
		switch r := right.(type) {
		case object.Numeric:
			if !r.IsFloat && r.Int == 0 {
				return object.Boolean{Value: true}
			}
			return object.Null{}
		case object.Boolean:
			return object.Boolean{Value: !r.Value}
		case object.Null:
			return object.Boolean{Value: true}
		default:
			return object.Null{}
		}
	default:
		return newError(pos, "Operador prefijo desconocido `%s`", op)
	}
}

// evalInfix dispatches on the type pair per the language's operator
// matrix. An operand that is already an Error passes through
// unchanged — it is not re-framed with this operation's position.
// Every unhandled type pair falls through to the same "unsupported
// operation" error, naming both operand types and the operator.
func (e *Evaluator) evalInfix(op string, left, right object.Value, pos ast.Node) object.Value {
	if le, ok := left.(object.Error); ok {
		return le
	}
	if re, ok := right.(object.Error); ok {
		return re
	}

	switch l := left.(type) {
	case object.Numeric:
		switch r := right.(type) {
		case object.Numeric:
			return numericOp(l, r, op, pos)
		case object.Boolean:
			return numericOp(l, boolToNumeric(r), op, pos)
		case *object.String:
			return stringIntOp(r, l, op, pos)
		case *object.List:
			return listIntOp(r, l, op, pos)
		}
	case object.Boolean:
		switch r := right.(type) {
		case object.Numeric:
			return numericOp(boolToNumeric(l), r, op, pos)
		case object.Boolean:
			return numericOp(boolToNumeric(l), boolToNumeric(r), op, pos)
		}
	case *object.String:
		switch r := right.(type) {
		case *object.String:
			return stringOp(l, r, op, pos)
		case object.Numeric:
			return stringIntOp(l, r, op, pos)
		}
	case *object.List:
		switch r := right.(type) {
		case *object.List:
			return listOp(l, r, op, pos)
		case object.Numeric:
			return listIntOp(l, r, op, pos)
		}
	case object.Null:
		if _, ok := right.(object.Null); ok {
			return nullNullOp(op, pos)
		}
		return nullAnyOp(op, pos)
	}
	if _, ok := right.(object.Null); ok {
		return nullAnyOp(op, pos)
	}
	return newError(pos, "No se soporta operaciones %s %s %s", left.Type(), op, right.Type())
}

func boolToNumeric(b object.Boolean) object.Numeric {
	if b.Value {
		return object.NewInt(1)
	}
	return object.NewInt(0)
}

func numericOp(a, b object.Numeric, op string, pos ast.Node) object.Value {
	switch op {
	case "+", "-", "*", "/", "%":
		return arith(a, b, op, pos)
	case "==":
		return object.Boolean{Value: object.Equal(a, b)}
	case "!=":
		return object.Boolean{Value: !object.Equal(a, b)}
	case "<", "<=", ">", ">=":
		lt, _ := object.Less(a, b)
		eq := object.Equal(a, b)
		switch op {
		case "<":
			return object.Boolean{Value: lt}
		case "<=":
			return object.Boolean{Value: lt || eq}
		case ">":
			return object.Boolean{Value: !lt && !eq}
		default:
			return object.Boolean{Value: !lt || eq}
		}
	default:
		return newError(pos, "No se soporta operaciones %s %s %s", "numerico", op, "numerico")
	}
}

func arith(a, b object.Numeric, op string, pos ast.Node) object.Value {
	if a.IsFloat || b.IsFloat {
		af, bf := a.AsFloat(), b.AsFloat()
		switch op {
		case "+":
			return object.NewFloat(af + bf)
		case "-":
			return object.NewFloat(af - bf)
		case "*":
			return object.NewFloat(af * bf)
		case "/":
			if bf == 0 {
				return newError(pos, "No se puede dividir entre cero")
			}
			return object.NewFloat(af / bf)
		case "%":
			if bf == 0 {
				return newError(pos, "No se puede dividir entre cero")
			}
			return object.NewFloat(math.Mod(af, bf))
		}
	}

	ai, bi := a.Int, b.Int
	switch op {
	case "+":
		sum, overflow := addOverflow(ai, bi)
		if overflow {
			return newError(pos, "El resultado de la operacion desborda el entero de 64 bits")
		}
		return object.NewInt(sum)
	case "-":
		diff, overflow := subOverflow(ai, bi)
		if overflow {
			return newError(pos, "El resultado de la operacion desborda el entero de 64 bits")
		}
		return object.NewInt(diff)
	case "*":
		prod, overflow := mulOverflow(ai, bi)
		if overflow {
			return newError(pos, "El resultado de la operacion desborda el entero de 64 bits")
		}
		return object.NewInt(prod)
	case "/":
		if bi == 0 {
			return newError(pos, "No se puede dividir entre cero")
		}
		return object.NewInt(ai / bi)
	case "%":
		if bi == 0 {
			return newError(pos, "No se puede dividir entre cero")
		}
		return object.NewInt(ai % bi)
	}
	return newError(pos, "Operador aritmetico desconocido `%s`", op)
}

func addOverflow(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, true
	}
	return sum, false
}

func subOverflow(a, b int64) (int64, bool) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, true
	}
	return diff, false
}

func mulOverflow(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	if (a == math.MinInt64 && b == -1) || (a == -1 && b == math.MinInt64) {
		return 0, true
	}
	prod := a * b
	if prod/b != a {
		return 0, true
	}
	return prod, false
}

func stringOp(a, b *object.String, op string, pos ast.Node) object.Value {
	switch op {
	case "+":
		return &object.String{Value: a.Value + b.Value}
	case "==":
		return object.Boolean{Value: a.Value == b.Value}
	case "!=":
		return object.Boolean{Value: a.Value != b.Value}
	default:
		return newError(pos, "No se soporta operaciones %s %s %s", "cadena", op, "cadena")
	}
}

// stringIntOp implements string*int repetition, the only operation the
// matrix allows between a string and a number — and only with an
// integer count, not a float one.
func stringIntOp(s *object.String, n object.Numeric, op string, pos ast.Node) object.Value {
	if op != "*" {
		return newError(pos, "No se soporta operaciones %s %s %s", "cadena", op, "numerico")
	}
	if n.IsFloat {
		return newError(pos, "No se puede hacer operaciones de repeticion con un numero flotante")
	}
	if n.Int <= 0 {
		return &object.String{Value: ""}
	}
	return &object.String{Value: strings.Repeat(s.Value, int(n.Int))}
}

func listOp(a, b *object.List, op string, pos ast.Node) object.Value {
	switch op {
	case "+":
		merged := make([]object.Value, 0, len(a.Elements)+len(b.Elements))
		merged = append(merged, a.Elements...)
		merged = append(merged, b.Elements...)
		return &object.List{Elements: merged}
	case "==":
		return object.Boolean{Value: object.Equal(a, b)}
	case "!=":
		return object.Boolean{Value: !object.Equal(a, b)}
	case "<", "<=", ">", ">=":
		lt, _ := object.Less(a, b)
		eq := len(a.Elements) == len(b.Elements)
		switch op {
		case "<":
			return object.Boolean{Value: lt}
		case "<=":
			return object.Boolean{Value: lt || eq}
		case ">":
			return object.Boolean{Value: !lt && !eq}
		default:
			return object.Boolean{Value: !lt || eq}
		}
	default:
		return newError(pos, "No se soporta operaciones %s %s %s", "lista", op, "lista")
	}
}

// listIntOp implements list*int repetition: the list's elements
// repeated n times. A non-positive count yields an empty list rather
// than erroring.
func listIntOp(l *object.List, n object.Numeric, op string, pos ast.Node) object.Value {
	if op != "*" {
		return newError(pos, "No se soporta operaciones %s %s %s", "lista", op, "numerico")
	}
	if n.IsFloat {
		return newError(pos, "No se puede hacer operaciones de repeticion con un numero flotante")
	}
	if n.Int <= 0 {
		return &object.List{}
	}
	out := make([]object.Value, 0, len(l.Elements)*int(n.Int))
	for i := int64(0); i < n.Int; i++ {
		out = append(out, l.Elements...)
	}
	return &object.List{Elements: out}
}

func nullNullOp(op string, pos ast.Node) object.Value {
	switch op {
	case "==":
		return object.Boolean{Value: true}
	case "!=":
		return object.Boolean{Value: false}
	default:
		return newError(pos, "El objeto nulo solo puede hacer operaciones logicas de igualdad")
	}
}

func nullAnyOp(op string, pos ast.Node) object.Value {
	switch op {
	case "==":
		return object.Boolean{Value: false}
	case "!=":
		return object.Boolean{Value: true}
	default:
		return newError(pos, "El objeto nulo solo puede hacer operaciones logicas de igualdad")
	}
}
