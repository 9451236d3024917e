package arrow

import (
	"bytes"
	"strings"
	"testing"
)

func TestDriveOnceReturnsSnapshot(t *testing.T) {
	snap, err := DriveOnce(`
		let x: i32 = 2 + 2;
		const name: str = "arrow";
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(snap))
	}
	if snap[0].Name != "x" || snap[0].Value.Int32() != 4 {
		t.Fatalf("unexpected first binding: %+v", snap[0])
	}
	if snap[1].Name != "name" || snap[1].Mutable {
		t.Fatalf("unexpected second binding: %+v", snap[1])
	}
}

func TestDriveOnceSurfacesSemanticError(t *testing.T) {
	_, err := DriveOnce(`const x: i32 = 1; x = 2;`)
	if err == nil {
		t.Fatalf("expected an immutability error")
	}
}

func TestDriveOnceSurfacesParseError(t *testing.T) {
	_, err := DriveOnce(`let x: i32 = `)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestWithOutputRedirectsPrint(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(WithOutput(&buf)).DriveOnce(`print("hello");`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "hello" {
		t.Fatalf("expected print output \"hello\", got %q", got)
	}
}

func TestEngineLexAndParse(t *testing.T) {
	eng := New()
	tokens, err := eng.Lex(`let x: i32 = 1;`)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if len(tokens) == 0 {
		t.Fatalf("expected at least one token")
	}

	prog, err := eng.Parse(`let x: i32 = 1;`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
}

func TestReplPersistsBindingsAcrossFragments(t *testing.T) {
	var buf bytes.Buffer
	r := NewRepl(WithOutput(&buf))

	if err := r.Eval(`let count: i32 = 0;`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Eval(`count = count + 1;`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Eval(`count = count + 1;`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vars := r.Variables()
	if len(vars) != 1 || vars[0].Value.Int32() != 2 {
		t.Fatalf("expected count=2 after two fragments, got %+v", vars)
	}
}

func TestReplRejectsImmutableReassignmentButKeepsEarlierState(t *testing.T) {
	r := NewRepl()
	if err := r.Eval(`const x: i32 = 1;`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Eval(`x = 2;`); err == nil {
		t.Fatalf("expected immutability error")
	}
	if got := r.Variables()[0].Value.Int32(); got != 1 {
		t.Fatalf("expected x to remain 1 after rejected assignment, got %d", got)
	}
}

func TestReplBlankFragmentIsNoop(t *testing.T) {
	r := NewRepl()
	if err := r.Eval(``); err != nil {
		t.Fatalf("expected blank fragment to be a no-op, got %v", err)
	}
}
