package builtin

import (
	"testing"

	"github.com/pana-lang/pana/internal/object"
)

func TestDispatchMemberUnknownMethod(t *testing.T) {
	result := DispatchMember(&object.List{}, "no_existe", nil, nilNode())
	if _, ok := result.(object.Error); !ok {
		t.Fatalf("expected object.Error, got %T", result)
	}
}

func TestDispatchMemberArityMismatch(t *testing.T) {
	result := DispatchMember(&object.List{}, "agregar", nil, nilNode())
	if _, ok := result.(object.Error); !ok {
		t.Fatalf("expected object.Error for missing argument, got %T", result)
	}
}

func TestDispatchMemberAgregarMutatesReceiver(t *testing.T) {
	l := &object.List{}
	DispatchMember(l, "agregar", []object.Value{object.NewInt(1)}, nilNode())
	if len(l.Elements) != 1 {
		t.Fatalf("expected 1 element after agregar, got %d", len(l.Elements))
	}
}

func TestDispatchMemberStringLimpiar(t *testing.T) {
	s := &object.String{Value: "hola"}
	DispatchMember(s, "limpiar", nil, nilNode())
	if s.Value != "" {
		t.Errorf("expected empty string after limpiar, got %q", s.Value)
	}
}
