package eval

import "testing"

func TestFunctionCallAndImplicitReturn(t *testing.T) {
	result, _ := evalInput(t, `fn sumar(a,b){ retornar a+b; } sumar(3,4);`)
	if result.String() != "7" {
		t.Errorf("expected 7, got %s", result.String())
	}

	// No retornar: the value of the last statement is the result.
	result, _ = evalInput(t, `fn doble(x){ x * 2; } doble(5);`)
	if result.String() != "10" {
		t.Errorf("expected implicit return of 10, got %s", result.String())
	}
}

func TestArityMismatchIsError(t *testing.T) {
	result, _ := evalInput(t, `fn sumar(a,b){ retornar a+b; } sumar(3);`)
	requireError(t, result)
}

func TestClosureCapturesEnclosingScope(t *testing.T) {
	result, _ := evalInput(t, `var f = fn(x){ retornar fn(y){ retornar x+y; }; }; f(2)(3);`)
	if result.String() != "5" {
		t.Errorf("expected 5, got %s", result.String())
	}
}

func TestRecursiveFunctionStatement(t *testing.T) {
	result, _ := evalInput(t, `
		fn factorial(n) {
			si (n <= 1) { retornar 1; }
			retornar n * factorial(n-1);
		}
		factorial(5);
	`)
	if result.String() != "120" {
		t.Errorf("expected 120, got %s", result.String())
	}
}

func TestBreakEscapingFunctionBoundaryIsError(t *testing.T) {
	result, _ := evalInput(t, `fn f(){ romper; } f();`)
	requireError(t, result)
}

func TestCallingNonFunctionIsError(t *testing.T) {
	result, _ := evalInput(t, `var a = 1; a();`)
	requireError(t, result)
}
