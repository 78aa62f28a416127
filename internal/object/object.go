// Package object is the runtime value model: the Value interface and
// its concrete variants, split along the copy/reference line the
// language requires.
//
// Atom values (Numeric, Boolean, Null, Error, the control-flow
// sentinels, Function/Builtin) are Go structs used by value — passing
// one around, assigning it, or storing it in an environment copies it,
// which is exactly the "copy" discipline the language specifies.
//
// Heap values (String, List, Dict) are represented as pointers to
// their struct. Two variables holding the same *List alias the same
// backing slice header; mutating through either is visible through
// both, which is the "reference" discipline, obtained here from Go's
// ordinary pointer semantics and garbage collector rather than from a
// hand-rolled reference-counting handle — there are no destructors to
// run deterministically, so nothing is lost by letting the collector
// reclaim unreachable heap values instead of counting references to
// them by hand.
package object

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pana-lang/pana/internal/ast"
)

// Type names the runtime category of a Value, used both for dispatch
// inside the evaluator and as the user-visible string tipo(x) returns.
type Type string

const (
	NUMERIC_INT   Type = "numerico"
	NUMERIC_FLOAT Type = "numerico"
	BOOLEAN       Type = "logico"
	STRING        Type = "cadena"
	LIST          Type = "lista"
	DICT          Type = "diccionario"
	FUNCTION      Type = "funcion"
	NULL          Type = "nulo"
	VOID          Type = "vacio"
	ERROR         Type = "error"
	RETURN        Type = "retornar"
	BREAK         Type = "romper"
	CONTINUE      Type = "continuar"
)

// Value is implemented by every runtime value, atom and heap alike.
type Value interface {
	Type() Type
	String() string
}

// ---- Atoms -------------------------------------------------------------

// Numeric is the tagged Int/Float number type. Arithmetic promotes to
// Float whenever either operand is Float.
type Numeric struct {
	IsFloat bool
	Int     int64
	Float   float64
}

func NewInt(v int64) Numeric   { return Numeric{Int: v} }
func NewFloat(v float64) Numeric { return Numeric{IsFloat: true, Float: v} }

func (n Numeric) Type() Type {
	if n.IsFloat {
		return NUMERIC_FLOAT
	}
	return NUMERIC_INT
}

// SubType reports the numeric sub-form: "integer" or "floating".
// tipo() does not use it; it reports "numerico" for both forms.
func (n Numeric) SubType() string {
	if n.IsFloat {
		return "floating"
	}
	return "integer"
}

func (n Numeric) AsFloat() float64 {
	if n.IsFloat {
		return n.Float
	}
	return float64(n.Int)
}

func (n Numeric) String() string {
	if n.IsFloat {
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	}
	return strconv.FormatInt(n.Int, 10)
}

// Boolean is verdad/falso.
type Boolean struct {
	Value bool
}

func (Boolean) Type() Type { return BOOLEAN }
func (b Boolean) String() string {
	if b.Value {
		return "verdad"
	}
	return "falso"
}

// Null is nulo, the language's single null value.
type Null struct{}

func (Null) Type() Type     { return NULL }
func (Null) String() string { return "nulo" }

// Void is the result of a statement/built-in with no meaningful
// value (imprimir, a bare while/for loop).
type Void struct{}

func (Void) Type() Type     { return VOID }
func (Void) String() string { return "" }

// Error is a first-class runtime error value. Message already carries
// a leading "^" once it has been framed with a source location, so
// that re-wrapping it at an outer operation does not duplicate the
// position information.
type Error struct {
	Message string
	Line    int
	Col     int
}

func (Error) Type() Type { return ERROR }
func (e Error) String() string {
	return e.Message
}

// Located reports whether the error has already been framed with a
// source position (its message starts with the de-duplication marker).
func (e Error) Located() bool {
	return strings.HasPrefix(e.Message, "^")
}

// Display strips the de-duplication marker, returning the message a
// user should actually see.
func (e Error) Display() string {
	return strings.TrimPrefix(e.Message, "^")
}

// Return/Break/Continue are sentinel atoms produced by their
// corresponding statements. Block evaluation detects them and the
// enclosing function/loop frame unwraps or consumes them.
type ReturnValue struct {
	Value Value
}

func (ReturnValue) Type() Type       { return RETURN }
func (r ReturnValue) String() string { return r.Value.String() }

type BreakValue struct{}

func (BreakValue) Type() Type     { return BREAK }
func (BreakValue) String() string { return "" }

type ContinueValue struct{}

func (ContinueValue) Type() Type     { return CONTINUE }
func (ContinueValue) String() string { return "" }

// Function is a named or anonymous fn value capturing its defining
// environment by shared handle, giving it closure semantics.
type Function struct {
	Name       string
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (Function) Type() Type { return FUNCTION }
func (f Function) String() string {
	var params []string
	for _, p := range f.Parameters {
		params = append(params, p.Value)
	}
	name := f.Name
	if name == "" {
		name = "fn"
	}
	return name + "(" + strings.Join(params, ", ") + ") { ... }"
}

// BuiltinFunc is the native Go implementation of a global built-in or
// member method. It receives already-evaluated argument values and the
// call-site node (for error location), not raw expressions — the
// evaluator evaluates arguments eagerly before handing off to native
// code, same as it does for an ordinary fn call.
type BuiltinFunc func(args []Value, pos ast.Node) Value

// Builtin is the runtime value wrapping a BuiltinFunc under its
// registered name.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

func (Builtin) Type() Type { return FUNCTION }
func (b Builtin) String() string {
	return "builtin " + b.Name + "(...)"
}

// ---- Heap values --------------------------------------------------------

// String is a heap-allocated, reference-semantics string. Some string
// methods (reemplazar, recortar, limpiar, insertar, invertir) mutate
// the *String in place, so the change is visible through every alias;
// others (a_mayusculas, a_minusculas, subcadena) return a new *String.
type String struct {
	Value string
}

func (String) Type() Type     { return STRING }
func (s *String) String() string { return s.Value }

// List is an ordered, heap-allocated, shared-mutable sequence.
type List struct {
	Elements []Value
}

func (List) Type() Type { return LIST }
func (l *List) String() string {
	var parts []string
	for _, e := range l.Elements {
		parts = append(parts, formatElement(e))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Dict is a heap-allocated, shared-mutable mapping from hashable
// atoms to values. Insertion order is preserved for llaves()/valores()
// and for String().
type Dict struct {
	order []HashKey
	pairs map[HashKey]dictPair
}

type dictPair struct {
	Key   Value
	Value Value
}

// NewDict creates an empty dictionary.
func NewDict() *Dict {
	return &Dict{pairs: make(map[HashKey]dictPair)}
}

func (*Dict) Type() Type { return DICT }

func (d *Dict) String() string {
	var parts []string
	for _, k := range d.order {
		pair := d.pairs[k]
		parts = append(parts, formatElement(pair.Key)+": "+formatElement(pair.Value))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// HashKey identifies a hashable atom for use as a dictionary key.
// Only Numeric, Boolean, String*, and Null are hashable — lists,
// dicts, and functions are not, and Hash reports that via ok=false.
type HashKey struct {
	typ Type
	key string
}

// Hash computes the HashKey for v, or reports ok=false if v cannot be
// used as a dictionary key.
func Hash(v Value) (HashKey, bool) {
	switch val := v.(type) {
	case Numeric:
		return HashKey{typ: val.Type(), key: val.String()}, true
	case Boolean:
		return HashKey{typ: BOOLEAN, key: val.String()}, true
	case *String:
		return HashKey{typ: STRING, key: val.Value}, true
	case Null:
		return HashKey{typ: NULL, key: "nulo"}, true
	default:
		return HashKey{}, false
	}
}

// Get looks up key, returning its value and whether it was present.
func (d *Dict) Get(key Value) (Value, bool) {
	hk, ok := Hash(key)
	if !ok {
		return nil, false
	}
	pair, ok := d.pairs[hk]
	if !ok {
		return nil, false
	}
	return pair.Value, true
}

// Set inserts or updates key → value, reporting ok=false if key is
// not hashable. Insertion order of a brand-new key is appended to the
// end; updating an existing key keeps its original position.
func (d *Dict) Set(key, value Value) bool {
	hk, ok := Hash(key)
	if !ok {
		return false
	}
	if _, exists := d.pairs[hk]; !exists {
		d.order = append(d.order, hk)
	}
	d.pairs[hk] = dictPair{Key: key, Value: value}
	return true
}

// Delete removes key if present, reporting whether it was removed.
func (d *Dict) Delete(key Value) bool {
	hk, ok := Hash(key)
	if !ok {
		return false
	}
	if _, exists := d.pairs[hk]; !exists {
		return false
	}
	delete(d.pairs, hk)
	for i, k := range d.order {
		if k == hk {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return true
}

// Len reports the number of entries.
func (d *Dict) Len() int { return len(d.order) }

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []Value {
	keys := make([]Value, 0, len(d.order))
	for _, k := range d.order {
		keys = append(keys, d.pairs[k].Key)
	}
	return keys
}

// Values returns the values in insertion (key) order.
func (d *Dict) Values() []Value {
	vals := make([]Value, 0, len(d.order))
	for _, k := range d.order {
		vals = append(vals, d.pairs[k].Value)
	}
	return vals
}

// Clear empties the dictionary in place — visible through every alias.
func (d *Dict) Clear() {
	d.order = nil
	d.pairs = make(map[HashKey]dictPair)
}

func formatElement(v Value) string {
	if s, ok := v.(*String); ok {
		return "\"" + s.Value + "\""
	}
	return v.String()
}

// ---- Equality ------------------------------------------------------------

// Equal is structural, deep equality. Two *List or *Dict values
// compare equal when they alias the same handle or when their
// contents compare equal element-wise; this is well-defined because
// the language builds containers only from literals and from
// non-self-referential append/insert operations, so no cycle can
// arise.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Numeric:
		bv, ok := b.(Numeric)
		if !ok {
			return false
		}
		return av.AsFloat() == bv.AsFloat() && av.IsFloat == bv.IsFloat
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av.Value == bv.Value
	case Null:
		_, ok := b.(Null)
		return ok
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *List:
		bv, ok := b.(*List)
		if !ok {
			return false
		}
		if av == bv {
			return true
		}
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Dict:
		bv, ok := b.(*Dict)
		if !ok {
			return false
		}
		if av == bv {
			return true
		}
		if av.Len() != bv.Len() {
			return false
		}
		for _, k := range av.order {
			bval, ok := bv.pairs[k]
			aval := av.pairs[k]
			if !ok || !Equal(aval.Value, bval.Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Less reports structural ordering for the two orderable shapes the
// language defines: numeric-vs-numeric (with boolean coercion) and
// list-vs-list, which compares the two lists' lengths, as specified
// for the relational operators on lists.
func Less(a, b Value) (bool, bool) {
	an, aok := asNumeric(a)
	bn, bok := asNumeric(b)
	if aok && bok {
		return an.AsFloat() < bn.AsFloat(), true
	}
	al, aok := a.(*List)
	bl, bok := b.(*List)
	if aok && bok {
		return len(al.Elements) < len(bl.Elements), true
	}
	return false, false
}

func asNumeric(v Value) (Numeric, bool) {
	switch val := v.(type) {
	case Numeric:
		return val, true
	case Boolean:
		if val.Value {
			return NewInt(1), true
		}
		return NewInt(0), true
	default:
		return Numeric{}, false
	}
}

// Truthy implements the language's condition-context predicate:
// Boolean(false), Numeric Int(0), and Null are false; everything else
// — including Float(0.0) — is true.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case Boolean:
		return val.Value
	case Numeric:
		return val.IsFloat || val.Int != 0
	case Null:
		return false
	default:
		return true
	}
}

// SortValues sorts a slice in place when every element is numeric
// (booleans count as 0/1) or every element is a string, returning an
// error if the elements are not homogeneously orderable (mixed
// numeric/string, or anything else).
func SortValues(vals []Value) error {
	if len(vals) < 2 {
		return nil
	}
	allNumeric := true
	allString := true
	for _, v := range vals {
		if _, ok := asNumeric(v); !ok {
			allNumeric = false
		}
		if _, ok := v.(*String); !ok {
			allString = false
		}
	}
	switch {
	case allNumeric:
		sort.Slice(vals, func(i, j int) bool {
			ni, _ := asNumeric(vals[i])
			nj, _ := asNumeric(vals[j])
			return ni.AsFloat() < nj.AsFloat()
		})
		return nil
	case allString:
		sort.Slice(vals, func(i, j int) bool {
			return vals[i].(*String).Value < vals[j].(*String).Value
		})
		return nil
	default:
		return fmt.Errorf("no se puede ordenar una lista con elementos de distinto tipo")
	}
}
