package lexer

import (
	"testing"

	"github.com/pana-lang/pana/internal/token"
)

func collect(t *testing.T, input string) []token.Token {
	t.Helper()
	l := New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks
}

func TestNextTokenOperatorsAndDelimiters(t *testing.T) {
	input := `var a = 1 + 2 * 3 / 4 % 5;
a == b != c <= d >= e < f > g;
l[0] = s.metodo();`

	toks := collect(t, input)

	wantTypes := []token.Type{
		token.VAR, token.IDENT, token.ASSIGN, token.INT, token.PLUS, token.INT,
		token.ASTERISK, token.INT, token.SLASH, token.INT, token.PERCENT, token.INT, token.SEMICOLON,
		token.NEWLINE,
		token.IDENT, token.EQ, token.IDENT, token.NOT_EQ, token.IDENT, token.LT_EQ, token.IDENT,
		token.GT_EQ, token.IDENT, token.LT, token.IDENT, token.GT, token.IDENT, token.SEMICOLON,
		token.NEWLINE,
		token.IDENT, token.LBRACKET, token.INT, token.RBRACKET, token.ASSIGN, token.IDENT,
		token.DOT, token.IDENT, token.LPAREN, token.RPAREN, token.SEMICOLON,
		token.EOF,
	}

	if len(toks) != len(wantTypes) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(wantTypes), toks)
	}
	for i, want := range wantTypes {
		if toks[i].Type != want {
			t.Errorf("token %d: got %s (%q), want %s", i, toks[i].Type, toks[i].Literal, want)
		}
	}
}

func TestKeywordsProduceKeywordTokens(t *testing.T) {
	input := "var fn si sino retornar verdad falso nulo mientras para en rango romper continuar"
	want := []token.Type{
		token.VAR, token.FN, token.SI, token.SINO, token.RETORNAR, token.VERDAD,
		token.FALSO, token.NULO, token.MIENTRAS, token.PARA, token.EN, token.RANGO,
		token.ROMPER, token.CONTINUAR, token.EOF,
	}
	toks := collect(t, input)
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, w)
		}
	}
}

func TestNumericLiterals(t *testing.T) {
	cases := []struct {
		input string
		typ   token.Type
		lit   string
	}{
		{"123", token.INT, "123"},
		{"123.45", token.FLOAT, "123.45"},
		{"0x1F", token.INT, "0x1F"},
		{"0o17", token.INT, "0o17"},
		{"0b1010", token.INT, "0b1010"},
		{"1.2.3", token.ILLEGAL, "1.2.3"},
		{"123abc", token.ILLEGAL, "123abc"},
	}
	for _, c := range cases {
		toks := collect(t, c.input)
		if toks[0].Type != c.typ || toks[0].Literal != c.lit {
			t.Errorf("%q: got (%s, %q), want (%s, %q)", c.input, toks[0].Type, toks[0].Literal, c.typ, c.lit)
		}
	}
}

func TestIdentifierSnakeCaseValidation(t *testing.T) {
	toks := collect(t, "hola_mundo")
	if toks[0].Type != token.IDENT {
		t.Fatalf("got %s, want IDENT", toks[0].Type)
	}

	toks = collect(t, "holaMundo")
	if toks[0].Type != token.ILLEGAL_ID {
		t.Fatalf("got %s, want ILLEGAL_ID", toks[0].Type)
	}
}

func TestIdentifierAcceptsSpanishLetters(t *testing.T) {
	toks := collect(t, "año_niño")
	if toks[0].Type != token.IDENT || toks[0].Literal != "año_niño" {
		t.Fatalf("got (%s, %q)", toks[0].Type, toks[0].Literal)
	}
}

func TestLineComment(t *testing.T) {
	toks := collect(t, "var a = 1; # esto es un comentario\nvar b = 2;")
	var types []token.Type
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	want := []token.Type{
		token.VAR, token.IDENT, token.ASSIGN, token.INT, token.SEMICOLON,
		token.COMMENT, token.NEWLINE,
		token.VAR, token.IDENT, token.ASSIGN, token.INT, token.SEMICOLON, token.EOF,
	}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, types[i], want[i])
		}
	}
	if toks[5].Literal != "# esto es un comentario" {
		t.Errorf("comment literal: got %q", toks[5].Literal)
	}
}

func TestUnterminatedString(t *testing.T) {
	toks := collect(t, `"hola`)
	if toks[0].Type != token.ILLEGAL {
		t.Fatalf("got %s, want ILLEGAL", toks[0].Type)
	}
}

func TestStringLiteral(t *testing.T) {
	toks := collect(t, `"hola mundo"`)
	if toks[0].Type != token.STRING || toks[0].Literal != "hola mundo" {
		t.Fatalf("got (%s, %q)", toks[0].Type, toks[0].Literal)
	}
}

func TestLineColTracking(t *testing.T) {
	toks := collect(t, "var a = 1;\nvar b = 2;")
	// Second "var" is on line 2.
	var secondVar token.Token
	count := 0
	for _, tok := range toks {
		if tok.Type == token.VAR {
			count++
			if count == 2 {
				secondVar = tok
			}
		}
	}
	if secondVar.Pos.Line != 2 {
		t.Fatalf("second var: got line %d, want 2", secondVar.Pos.Line)
	}
}

func TestMultilineProgramEndsInEOF(t *testing.T) {
	toks := collect(t, "var a = 1;\nvar b = 2;\n")
	last := toks[len(toks)-1]
	if last.Type != token.EOF {
		t.Fatalf("last token: got %s, want EOF", last.Type)
	}
}
