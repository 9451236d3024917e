package arrow

import (
	"github.com/ahl00/go-arrow/internal/interp"
	"github.com/ahl00/go-arrow/internal/lexer"
	"github.com/ahl00/go-arrow/internal/parser"
)

// Repl holds one persistent environment across successive fragments, the
// way a line-oriented interactive shell needs: each call to Eval parses
// and runs just that fragment, leaving prior bindings intact on success.
// A fragment that fails partway through keeps whatever side effects its
// earlier statements already committed; there is no rollback within a
// fragment, and no rollback across fragments either.
type Repl struct {
	it  *interp.Interp
	eng *Engine
}

// NewRepl creates a Repl with an empty environment, printing to the
// Engine's configured writer (os.Stdout by default).
func NewRepl(opts ...Option) *Repl {
	eng := New(opts...)
	return &Repl{it: interp.New(eng.out), eng: eng}
}

// Eval parses fragment as a standalone program and runs it against the
// Repl's persistent environment. A parse or lexical error leaves the
// environment untouched; a semantic error leaves in place whatever
// statements before the failure already executed, matching DriveOnce's
// first-error-aborts-the-rest policy applied to a single fragment.
func (r *Repl) Eval(fragment string) error {
	l := lexer.New(fragment)
	p := parser.New(l)
	prog := p.ParseProgram()
	if lexErr := l.Err(); lexErr != nil {
		return lexErr
	}
	if perr := p.Err(); perr != nil {
		return perr
	}
	if len(prog.Statements) == 0 {
		return nil
	}
	if err := r.it.Run(prog); err != nil {
		return err
	}
	return nil
}

// Variables returns an ordered snapshot of every binding currently held
// by the Repl's environment.
func (r *Repl) Variables() []Binding {
	return snapshotOf(r.it.Env)
}
