package token

import "testing"

func TestLookupIdentPrecedence(t *testing.T) {
	tests := []struct {
		lexeme string
		want   Kind
	}{
		{"let", LET},
		{"i32", TYPE_I32},
		{"print", BUILTIN_PRINT},
		{"true", TRUE},
		{"false", FALSE},
		{"foo", IDENT},
	}
	for _, tt := range tests {
		if got := LookupIdent(tt.lexeme); got != tt.want {
			t.Fatalf("LookupIdent(%q) = %s, want %s", tt.lexeme, got, tt.want)
		}
	}
}

func TestIsLiteralAndIsKeyword(t *testing.T) {
	if !INT.IsLiteral() {
		t.Fatalf("INT should be a literal kind")
	}
	if LET.IsLiteral() {
		t.Fatalf("LET should not be a literal kind")
	}
	if !WHILE.IsKeyword() {
		t.Fatalf("WHILE should be a keyword kind")
	}
	if IDENT.IsKeyword() {
		t.Fatalf("IDENT should not be a keyword kind")
	}
}

func TestOperatorPrefixInfixClassification(t *testing.T) {
	if !Negation.IsPrefix() || Negation.IsInfix() {
		t.Fatalf("Negation should be prefix-only")
	}
	if !Minus.IsInfix() || Minus.IsPrefix() {
		t.Fatalf("Minus should be infix-only")
	}
	if !Not.IsPrefix() || Not.IsInfix() {
		t.Fatalf("Not should be prefix-only")
	}
}

func TestIsExpressionTerminator(t *testing.T) {
	if !(Token{Kind: IDENT}).IsExpressionTerminator() {
		t.Fatalf("IDENT should terminate an expression")
	}
	if (Token{Kind: LPAREN}).IsExpressionTerminator() {
		t.Fatalf("LPAREN should not terminate an expression")
	}
	if !(Token{Kind: RPAREN}).IsExpressionTerminator() {
		t.Fatalf("RPAREN should terminate an expression")
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7}
	if got := p.String(); got != "3:7" {
		t.Fatalf("Position.String() = %q, want 3:7", got)
	}
}
