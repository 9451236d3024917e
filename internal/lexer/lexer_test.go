package lexer

import (
	"testing"

	"github.com/ahl00/go-arrow/internal/token"
)

func TestNextTokenPunctuationAndKeywords(t *testing.T) {
	input := `let x: i32 = 5;
const y: bool = true;
if x < 10 { print(x); }`

	tests := []struct {
		kind    token.Kind
		literal string
	}{
		{token.LET, "let"},
		{token.IDENT, "x"},
		{token.COLON, ":"},
		{token.TYPE_I32, "i32"},
		{token.ASSIGN, "="},
		{token.INT, "5"},
		{token.SEMICOLON, ";"},
		{token.CONST, "const"},
		{token.IDENT, "y"},
		{token.COLON, ":"},
		{token.TYPE_BOOL, "bool"},
		{token.ASSIGN, "="},
		{token.TRUE, "true"},
		{token.SEMICOLON, ";"},
		{token.IF, "if"},
		{token.IDENT, "x"},
		{token.OPERATOR, "<"},
		{token.INT, "10"},
		{token.LBRACE, "{"},
		{token.BUILTIN_PRINT, "print"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.RPAREN, ")"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Kind != tt.kind {
			t.Fatalf("tests[%d] - kind wrong. expected=%s, got=%s (literal %q)", i, tt.kind, tok.Kind, tok.Literal)
		}
		if tok.Literal != tt.literal {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.literal, tok.Literal)
		}
	}
}

func TestPrefixVsInfixPlusMinus(t *testing.T) {
	tests := []struct {
		input   string
		opKinds []token.Operator
	}{
		{"-5", []token.Operator{token.Negation}},
		{"5 - 3", []token.Operator{token.Minus}},
		{"5 + -3", []token.Operator{token.Plus, token.Negation}},
		{"(5) - 3", []token.Operator{token.Minus}},
		{"x - -3", []token.Operator{token.Minus, token.Negation}},
	}

	for i, tt := range tests {
		l := New(tt.input)
		var got []token.Operator
		for {
			tok := l.NextToken()
			if tok.Kind == token.EOF {
				break
			}
			if tok.Kind == token.OPERATOR {
				got = append(got, tok.Op)
			}
		}
		if len(got) != len(tt.opKinds) {
			t.Fatalf("tests[%d]: expected %d operators, got %d (%v)", i, len(tt.opKinds), len(got), got)
		}
		for j, op := range got {
			if op != tt.opKinds[j] {
				t.Fatalf("tests[%d]: operator %d wrong. expected=%s, got=%s", i, j, tt.opKinds[j], op)
			}
		}
	}
}

func TestUnterminatedStringError(t *testing.T) {
	l := New(`"hello`)
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			break
		}
	}
	if err := l.Err(); err == nil || err.Kind != UnexpectedEOF {
		t.Fatalf("expected UnexpectedEOF lexical error, got %v", err)
	}
}

func TestInvalidFloatLiteralError(t *testing.T) {
	l := New(`1.2.3`)
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			break
		}
	}
	if err := l.Err(); err == nil || err.Kind != InvalidFloatLiteral {
		t.Fatalf("expected InvalidFloatLiteral error, got %v", err)
	}
}

func TestStripUnderscores(t *testing.T) {
	if got := StripUnderscores("1_000_000"); got != "1000000" {
		t.Fatalf("expected 1000000, got %s", got)
	}
	if got := StripUnderscores("42"); got != "42" {
		t.Fatalf("expected 42 unchanged, got %s", got)
	}
}

func TestUnicodeIdentifierColumns(t *testing.T) {
	l := New("let café: str = \"x\";")
	var lastIdentCol int
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind == token.IDENT {
			lastIdentCol = tok.Pos.Column
		}
	}
	if lastIdentCol != 5 {
		t.Fatalf("expected identifier to start at column 5 (rune count), got %d", lastIdentCol)
	}
}
