package builtin

import (
	"github.com/pana-lang/pana/internal/ast"
	"github.com/pana-lang/pana/internal/object"
)

// DispatchMember routes a `receptor.metodo(args...)` call to its
// implementation by method name, letting each one report its own
// receiver-type and arg-type mismatches. A method name the table
// doesn't know is the same "no such member" error regardless of the
// receiver's type.
func DispatchMember(target object.Value, method string, args []object.Value, pos ast.Node) object.Value {
	switch method {
	// shared across strings, lists, and dictionaries
	case "eliminar":
		return eliminar(target, args, pos)
	case "limpiar":
		return limpiar(target, args, pos)
	case "buscar":
		return buscar(target, args, pos)
	case "insertar":
		return insertar(target, args, pos)
	case "vacio":
		return vacio(target, args, pos)
	case "invertir":
		return invertir(target, args, pos)

	// list-only
	case "agregar":
		return agregar(target, args, pos)
	case "indice":
		return indice(target, args, pos)
	case "ordenar":
		return ordenar(target, args, pos)
	case "concatenar":
		return concatenar(target, args, pos)
	case "eliminar_indice":
		return eliminarIndice(target, args, pos)
	case "juntar":
		return juntar(target, args, pos)

	// dictionary-only
	case "llaves":
		return llaves(target, args, pos)
	case "valores":
		return valores(target, args, pos)

	// string-only
	case "separar":
		return separar(target, args, pos)
	case "caracter":
		return caracter(target, args, pos)
	case "caracteres":
		return caracteres(target, args, pos)
	case "es_alfabetico":
		return esAlfabetico(target, args, pos)
	case "es_numerico":
		return esNumerico(target, args, pos)
	case "es_alfanumerico":
		return esAlfanumerico(target, args, pos)
	case "inicia_con":
		return iniciaCon(target, args, pos)
	case "termina_con":
		return terminaCon(target, args, pos)
	case "a_mayusculas":
		return aMayusculas(target, args, pos)
	case "a_minusculas":
		return aMinusculas(target, args, pos)
	case "reemplazar":
		return reemplazar(target, args, pos)
	case "recortar":
		return recortar(target, args, pos)
	case "subcadena":
		return subcadena(target, args, pos)
	case "a_numerico":
		return aNumerico(target, args, pos)

	default:
		return typeMismatch(method, target, pos)
	}
}
