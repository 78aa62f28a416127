package eval

import "testing"

func TestListMemberMethods(t *testing.T) {
	result, _ := evalInput(t, `var l = [1,2,3]; l.agregar(4); l;`)
	if result.String() != "[1, 2, 3, 4]" {
		t.Errorf("agregar: expected [1, 2, 3, 4], got %s", result.String())
	}

	result, _ = evalInput(t, `var l = [1,2,3]; l.indice(2);`)
	if result.String() != "1" {
		t.Errorf("indice: expected 1, got %s", result.String())
	}

	result, _ = evalInput(t, `var l = [3,1,2]; l.ordenar(); l;`)
	if result.String() != "[1, 2, 3]" {
		t.Errorf("ordenar: expected [1, 2, 3], got %s", result.String())
	}

	result, _ = evalInput(t, `var l = [1]; l.concatenar([2,3]); l;`)
	if result.String() != "[1, 2, 3]" {
		t.Errorf("concatenar: expected [1, 2, 3], got %s", result.String())
	}

	result, _ = evalInput(t, `var l = [1,2,3]; l.eliminar_indice(1); l;`)
	if result.String() != "[1, 3]" {
		t.Errorf("eliminar_indice: expected [1, 3], got %s", result.String())
	}

	result, _ = evalInput(t, `var l = ["a","b","c"]; l.juntar("-");`)
	if result.String() != "a-b-c" {
		t.Errorf("juntar: expected a-b-c, got %s", result.String())
	}
}

func TestOrdenarRejectsMixedTypes(t *testing.T) {
	result, _ := evalInput(t, `var l = [1, "a"]; l.ordenar();`)
	requireError(t, result)
}

func TestListInsertAtEndIsValid(t *testing.T) {
	result, _ := evalInput(t, `var l = [1,2]; l.insertar(3, 2); l;`)
	if result.String() != "[1, 2, 3]" {
		t.Errorf("insertar at end: expected [1, 2, 3], got %s", result.String())
	}
}

func TestListInsertOutOfRangeIsError(t *testing.T) {
	result, _ := evalInput(t, `var l = [1,2]; l.insertar(3, 5);`)
	requireError(t, result)
}

func TestDictMemberMethods(t *testing.T) {
	result, _ := evalInput(t, `var d = {"a":1,"b":2}; d.llaves();`)
	if result.String() != `["a", "b"]` {
		t.Errorf(`llaves: expected ["a", "b"], got %s`, result.String())
	}
	result, _ = evalInput(t, `var d = {"a":1,"b":2}; d.valores();`)
	if result.String() != "[1, 2]" {
		t.Errorf("valores: expected [1, 2], got %s", result.String())
	}
	result, _ = evalInput(t, `var d = {"a":1}; d.eliminar("a"); d.vacio();`)
	if result.String() != "verdad" {
		t.Errorf("eliminar+vacio: expected verdad, got %s", result.String())
	}
}

func TestStringMemberMethods(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`"a,b,c".separar(",");`, `["a", "b", "c"]`},
		{`"abc".caracter(1);`, "b"},
		{`"ab".caracteres();`, "[97, 98]"},
		{`"abc".es_alfabetico();`, "verdad"},
		{`"123".es_numerico();`, "verdad"},
		{`"abc123".es_alfanumerico();`, "verdad"},
		{`"hola mundo".inicia_con("hola");`, "verdad"},
		{`"hola mundo".termina_con("mundo");`, "verdad"},
		{`"hola mundo".termina_con("hola");`, "falso"},
		{`"abc".a_mayusculas();`, "ABC"},
		{`"ABC".a_minusculas();`, "abc"},
		{`"3.5".a_numerico();`, "3.5"},
		{`"42".a_numerico();`, "42"},
	}
	for _, tt := range tests {
		result, _ := evalInput(t, tt.src)
		if result.String() != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.src, tt.want, result.String())
		}
	}
}

func TestStringSubcadenaInRangeAndOutOfRange(t *testing.T) {
	result, _ := evalInput(t, `"hola mundo".subcadena(0, 4);`)
	if result.String() != "hola" {
		t.Errorf("subcadena: expected hola, got %s", result.String())
	}
	result, _ = evalInput(t, `"hola".subcadena(2, 10);`)
	requireError(t, result)
}

func TestANumericoRejectsGarbage(t *testing.T) {
	result, _ := evalInput(t, `"abc".a_numerico();`)
	requireError(t, result)
	result, _ = evalInput(t, `"42abc".a_numerico();`)
	requireError(t, result)
}

func TestUnknownMemberMethodIsError(t *testing.T) {
	result, _ := evalInput(t, `var l = [1]; l.volar();`)
	requireError(t, result)
}

func TestMemberOnWrongReceiverTypeIsError(t *testing.T) {
	result, _ := evalInput(t, `var l = [1]; l.separar(",");`)
	requireError(t, result)
}
