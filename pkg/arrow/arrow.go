// Package arrow is the public library contract for the Arrow interpreter:
// drive a complete source buffer once, or keep a REPL handle alive across
// successive fragments against one persistent environment.
package arrow

import (
	"io"
	"os"

	"github.com/ahl00/go-arrow/internal/ast"
	"github.com/ahl00/go-arrow/internal/interp"
	"github.com/ahl00/go-arrow/internal/lexer"
	"github.com/ahl00/go-arrow/internal/parser"
	"github.com/ahl00/go-arrow/internal/token"
	"github.com/ahl00/go-arrow/internal/values"
)

// Binding is one (name, value, mutable, declared type) entry of an
// environment snapshot.
type Binding struct {
	Name         string
	Value        values.Value
	DeclaredType values.Type
	Mutable      bool
}

// Snapshot is an ordered view of every binding in an environment,
// exposed for external inspection after a successful run.
type Snapshot []Binding

// Option configures an Engine.
type Option func(*Engine)

// WithOutput directs the print built-in's output to w instead of
// os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) { e.out = w }
}

// Engine holds only the print output writer; each Lex, Parse, or
// DriveOnce call creates a fresh scanner, parser, and evaluator. It does
// not itself hold a persistent environment — that is Repl's job.
type Engine struct {
	out io.Writer
}

// New creates an Engine. By default print output goes to os.Stdout.
func New(opts ...Option) *Engine {
	e := &Engine{out: os.Stdout}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Lex tokenizes source completely, stopping at the first lexical error.
func (e *Engine) Lex(source string) ([]token.Token, error) {
	l := lexer.New(source)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	if err := l.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// Parse lexes and parses source into an AST, stopping at the first
// lexical or syntactic error.
func (e *Engine) Parse(source string) (*ast.Program, error) {
	l := lexer.New(source)
	p := parser.New(l)
	prog := p.ParseProgram()
	if lexErr := l.Err(); lexErr != nil {
		return nil, lexErr
	}
	if perr := p.Err(); perr != nil {
		return nil, perr
	}
	return prog, nil
}

// DriveOnce runs the scanner, parser, and evaluator over source against a
// fresh environment, returning its final snapshot or the first error
// encountered at any stage.
func (e *Engine) DriveOnce(source string) (Snapshot, error) {
	prog, err := e.Parse(source)
	if err != nil {
		return nil, err
	}
	it := interp.New(e.out)
	if rtErr := it.Run(prog); rtErr != nil {
		return nil, rtErr
	}
	return snapshotOf(it.Env), nil
}

// DriveOnce is a package-level convenience that runs a one-shot Engine
// with default options.
func DriveOnce(source string) (Snapshot, error) {
	return New().DriveOnce(source)
}

func snapshotOf(env *interp.Environment) Snapshot {
	bindings := env.Snapshot()
	out := make(Snapshot, len(bindings))
	for i, b := range bindings {
		out[i] = Binding{Name: b.Name, Value: b.Value, DeclaredType: b.DeclaredType, Mutable: b.Mutable}
	}
	return out
}
