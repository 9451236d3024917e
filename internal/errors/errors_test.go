package errors

import (
	"strings"
	"testing"

	"github.com/ahl00/go-arrow/internal/interp"
	"github.com/ahl00/go-arrow/internal/lexer"
	"github.com/ahl00/go-arrow/internal/parser"
	"github.com/ahl00/go-arrow/internal/token"
)

func TestTierOfClassifiesEachStage(t *testing.T) {
	source := `"unterminated`
	l := lexer.New(source)
	for {
		if tok := l.NextToken(); tok.Kind == token.EOF {
			break
		}
	}
	lexErr := l.Err()
	if lexErr == nil {
		t.Fatalf("expected a lexical error")
	}
	tier, ok := TierOf(lexErr)
	if !ok || tier != Lexical {
		t.Fatalf("expected Lexical tier, got %s (ok=%v)", tier, ok)
	}

	p := parser.New(lexer.New(`let x: i32 = 5`))
	p.ParseProgram()
	if tier, ok := TierOf(p.Err()); !ok || tier != Syntax {
		t.Fatalf("expected Syntax tier, got %s (ok=%v)", tier, ok)
	}

	prog := parser.New(lexer.New(`let x: i32 = y;`)).ParseProgram()
	rtErr := interp.New(nil).Run(prog)
	if rtErr == nil {
		t.Fatalf("expected a semantic error")
	}
	if tier, ok := TierOf(rtErr); !ok || tier != Semantic {
		t.Fatalf("expected Semantic tier, got %s (ok=%v)", tier, ok)
	}
}

func TestFormatIncludesSourceLineAndCaret(t *testing.T) {
	source := "let x: i32 = 5\n"
	p := parser.New(lexer.New(source))
	p.ParseProgram()
	err := p.Err()
	if err == nil {
		t.Fatalf("expected a parse error for missing semicolon")
	}

	out := Format(err, source, "script.ar", false)
	if !strings.Contains(out, "script.ar") {
		t.Fatalf("expected formatted output to name the file, got: %s", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("expected formatted output to include a caret, got: %s", out)
	}
	if !strings.Contains(out, err.Error()) {
		t.Fatalf("expected formatted output to include the error message, got: %s", out)
	}
}

func TestFormatFallsBackForUnrecognizedError(t *testing.T) {
	plain := &plainError{"boom"}
	if got := Format(plain, "", "", false); got != "boom" {
		t.Fatalf("expected plain fallback, got %q", got)
	}
}

type plainError struct{ msg string }

func (e *plainError) Error() string { return e.msg }
