package builtin

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pana-lang/pana/internal/ast"
	"github.com/pana-lang/pana/internal/lexer"
	"github.com/pana-lang/pana/internal/object"
	"github.com/pana-lang/pana/internal/token"
)

// runeIndex is strings.Index counted in runes rather than bytes, so a
// buscar() offset lines up with the rune-based indexing caracter()
// and subcadena() use.
func runeIndex(s, substr string) int {
	byteIdx := strings.Index(s, substr)
	if byteIdx < 0 {
		return -1
	}
	return len([]rune(s[:byteIdx]))
}

func separar(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 1 {
		return arityMismatch("separar", 1, len(args), pos)
	}
	sep, ok := args[0].(*object.String)
	if !ok {
		return argTypeMismatch("cadena", args[0], pos)
	}
	s, ok := target.(*object.String)
	if !ok {
		return typeMismatch("separar", target, pos)
	}
	var parts []string
	if sep.Value == "" {
		parts = strings.Split(s.Value, "")
	} else {
		parts = strings.Split(s.Value, sep.Value)
	}
	elems := make([]object.Value, len(parts))
	for i, p := range parts {
		elems[i] = &object.String{Value: p}
	}
	return &object.List{Elements: elems}
}

func caracter(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 1 {
		return arityMismatch("caracter", 1, len(args), pos)
	}
	n, ok := args[0].(object.Numeric)
	if !ok || n.IsFloat {
		return argTypeMismatch("numerico entero", args[0], pos)
	}
	if n.Int < 0 {
		return newError(pos, "El indice debe ser un numero positivo")
	}
	s, ok := target.(*object.String)
	if !ok {
		return typeMismatch("caracter", target, pos)
	}
	r := []rune(s.Value)
	if n.Int >= int64(len(r)) {
		return object.Null{}
	}
	return &object.String{Value: string(r[n.Int])}
}

// caracteres returns the Unicode code points of the string as a list
// of integers, not single-character strings.
func caracteres(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 0 {
		return arityMismatch("caracteres", 0, len(args), pos)
	}
	s, ok := target.(*object.String)
	if !ok {
		return typeMismatch("caracteres", target, pos)
	}
	r := []rune(s.Value)
	elems := make([]object.Value, len(r))
	for i, c := range r {
		elems[i] = object.NewInt(int64(c))
	}
	return &object.List{Elements: elems}
}

func esAlfabetico(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 0 {
		return arityMismatch("es_alfabetico", 0, len(args), pos)
	}
	s, ok := target.(*object.String)
	if !ok {
		return typeMismatch("es_alfabetico", target, pos)
	}
	return object.Boolean{Value: runesAll(s.Value, unicode.IsLetter)}
}

func esNumerico(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 0 {
		return arityMismatch("es_numerico", 0, len(args), pos)
	}
	s, ok := target.(*object.String)
	if !ok {
		return typeMismatch("es_numerico", target, pos)
	}
	return object.Boolean{Value: runesAll(s.Value, unicode.IsDigit)}
}

func esAlfanumerico(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 0 {
		return arityMismatch("es_alfanumerico", 0, len(args), pos)
	}
	s, ok := target.(*object.String)
	if !ok {
		return typeMismatch("es_alfanumerico", target, pos)
	}
	return object.Boolean{Value: runesAll(s.Value, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})}
}

func runesAll(s string, pred func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

func iniciaCon(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 1 {
		return arityMismatch("inicia_con", 1, len(args), pos)
	}
	pat, ok := args[0].(*object.String)
	if !ok {
		return argTypeMismatch("cadena", args[0], pos)
	}
	s, ok := target.(*object.String)
	if !ok {
		return typeMismatch("inicia_con", target, pos)
	}
	return object.Boolean{Value: strings.HasPrefix(s.Value, pat.Value)}
}

// terminaCon reports whether the string ends with the given suffix —
// an actual suffix check, not the prefix check a version of this
// method elsewhere is implemented as.
func terminaCon(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 1 {
		return arityMismatch("termina_con", 1, len(args), pos)
	}
	pat, ok := args[0].(*object.String)
	if !ok {
		return argTypeMismatch("cadena", args[0], pos)
	}
	s, ok := target.(*object.String)
	if !ok {
		return typeMismatch("termina_con", target, pos)
	}
	return object.Boolean{Value: strings.HasSuffix(s.Value, pat.Value)}
}

func aMayusculas(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 0 {
		return arityMismatch("a_mayusculas", 0, len(args), pos)
	}
	s, ok := target.(*object.String)
	if !ok {
		return typeMismatch("a_mayusculas", target, pos)
	}
	return &object.String{Value: strings.ToUpper(s.Value)}
}

func aMinusculas(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 0 {
		return arityMismatch("a_minusculas", 0, len(args), pos)
	}
	s, ok := target.(*object.String)
	if !ok {
		return typeMismatch("a_minusculas", target, pos)
	}
	return &object.String{Value: strings.ToLower(s.Value)}
}

func reemplazar(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 2 {
		return arityMismatch("reemplazar", 2, len(args), pos)
	}
	pat, ok := args[0].(*object.String)
	if !ok {
		return argTypeMismatch("cadena", args[0], pos)
	}
	rep, ok := args[1].(*object.String)
	if !ok {
		return argTypeMismatch("cadena", args[1], pos)
	}
	s, ok := target.(*object.String)
	if !ok {
		return typeMismatch("reemplazar", target, pos)
	}
	s.Value = strings.ReplaceAll(s.Value, pat.Value, rep.Value)
	return object.Void{}
}

func recortar(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 0 {
		return arityMismatch("recortar", 0, len(args), pos)
	}
	s, ok := target.(*object.String)
	if !ok {
		return typeMismatch("recortar", target, pos)
	}
	s.Value = strings.TrimSpace(s.Value)
	return object.Void{}
}

// subcadena(posicion, longitud) returns the longitud-rune slice
// starting at posicion. Both bounds are checked to actually fit inside
// the string, unlike a version of this method elsewhere whose
// comparison direction lets an out-of-range request through.
func subcadena(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 2 {
		return arityMismatch("subcadena", 2, len(args), pos)
	}
	posNum, ok := args[0].(object.Numeric)
	if !ok || posNum.IsFloat {
		return argTypeMismatch("numerico entero", args[0], pos)
	}
	lenNum, ok := args[1].(object.Numeric)
	if !ok || lenNum.IsFloat {
		return argTypeMismatch("numerico entero", args[1], pos)
	}
	if posNum.Int < 0 || lenNum.Int < 0 {
		return newError(pos, "El indice debe ser un numero positivo")
	}
	s, ok := target.(*object.String)
	if !ok {
		return typeMismatch("subcadena", target, pos)
	}
	r := []rune(s.Value)
	start, length := int(posNum.Int), int(lenNum.Int)
	if start > len(r) || length > len(r)-start {
		return newError(pos, "El indice esta fuera de rango")
	}
	return &object.String{Value: string(r[start : start+length])}
}

// aNumerico reparses the string using the lexer's own numeric grammar,
// so "0x1F", "3.5", and an ordinary decimal integer all convert the
// same way the parser would have read them as a literal.
func aNumerico(target object.Value, args []object.Value, pos ast.Node) object.Value {
	if len(args) != 0 {
		return arityMismatch("a_numerico", 0, len(args), pos)
	}
	s, ok := target.(*object.String)
	if !ok {
		return typeMismatch("a_numerico", target, pos)
	}

	lx := lexer.New(s.Value)
	tok := lx.NextToken()
	if trailing := lx.NextToken(); trailing.Type != token.EOF {
		return newError(pos, "La cadena `%s` no representa un valor numerico", s.Value)
	}

	switch tok.Type {
	case token.INT:
		// Base 0 only for the 0x/0o/0b forms: a plain decimal with a
		// leading zero ("010") stays decimal, as the parser reads it.
		base := 10
		if len(tok.Literal) > 2 && tok.Literal[0] == '0' && strings.ContainsRune("xob", rune(tok.Literal[1])) {
			base = 0
		}
		i, err := strconv.ParseInt(tok.Literal, base, 64)
		if err != nil {
			return newError(pos, "La cadena `%s` no representa un valor numerico", s.Value)
		}
		return object.NewInt(i)
	case token.FLOAT:
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return newError(pos, "La cadena `%s` no representa un valor numerico", s.Value)
		}
		return object.NewFloat(f)
	default:
		return newError(pos, "La cadena `%s` no representa un valor numerico", s.Value)
	}
}
