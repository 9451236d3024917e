// Package interp is the tree-walking evaluator: it walks an *ast.Program
// depth-first, maintaining a mutable Environment and enforcing the
// static type discipline dynamically at each statement and expression.
package interp

import (
	"fmt"
	"io"
	"strings"

	"github.com/ahl00/go-arrow/internal/ast"
	"github.com/ahl00/go-arrow/internal/values"
)

// Interp owns one Environment and the writer the print built-in writes
// to. The environment is exclusively owned and mutated by the Interp for
// as long as its caller (the driver in pkg/arrow) holds it.
type Interp struct {
	Env *Environment
	Out io.Writer
}

// New creates an Interp with a fresh empty environment, writing print
// output to out.
func New(out io.Writer) *Interp {
	return &Interp{Env: NewEnvironment(), Out: out}
}

// Run executes every statement in prog in order against it.Env. It stops
// and returns the first error; statements that already ran keep their
// side effects, so a failed fragment can still have partially updated
// the environment.
func (it *Interp) Run(prog *ast.Program) *Error {
	if len(prog.Statements) == 0 {
		return errAstEmpty()
	}
	return it.execStatements(prog.Statements)
}

func (it *Interp) execStatements(stmts []ast.Statement) *Error {
	for _, stmt := range stmts {
		if err := it.execStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interp) execStatement(stmt ast.Statement) *Error {
	switch s := stmt.(type) {
	case *ast.Alloc:
		return it.execAlloc(s)
	case *ast.Assign:
		return it.execAssign(s)
	case *ast.If:
		return it.execIf(s)
	case *ast.While:
		return it.execWhile(s)
	case *ast.ExpressionStatement:
		_, err := it.eval(s.Expr)
		return err
	case *ast.Noop:
		return nil
	default:
		return &Error{Kind: LiteralMissingData, Message: fmt.Sprintf("unknown statement node %T", stmt), At: stmt.Pos()}
	}
}

func (it *Interp) execAlloc(s *ast.Alloc) *Error {
	v, err := it.eval(s.Initializer)
	if err != nil {
		return err
	}
	if v.Type() != s.DeclaredType {
		return errTypeMismatchInit(s.Pos(), s.Name, s.DeclaredType, v.Type())
	}
	it.Env.Declare(s.Name, v, s.DeclaredType, s.Mutable)
	return nil
}

func (it *Interp) execAssign(s *ast.Assign) *Error {
	binding := it.Env.Lookup(s.Name)
	if binding == nil {
		return errUndeclared(s.Pos(), s.Name)
	}
	v, err := it.eval(s.Expr)
	if err != nil {
		return err
	}
	if v.Type() != binding.DeclaredType {
		return errTypeMismatchAssign(s.Pos(), s.Name, binding.DeclaredType, v.Type())
	}
	if !binding.Mutable {
		return errImmutableAssign(s.Pos(), s.Name)
	}
	it.Env.SetValue(s.Name, v)
	return nil
}

func (it *Interp) execIf(s *ast.If) *Error {
	cond, err := it.eval(s.Cond)
	if err != nil {
		return err
	}
	if cond.Type() != values.Bool {
		return errNonBoolCondition(s.Cond.Pos(), cond.Type())
	}
	if cond.Bool() {
		return it.execStatements(s.Then)
	}
	return nil
}

func (it *Interp) execWhile(s *ast.While) *Error {
	for {
		cond, err := it.eval(s.Cond)
		if err != nil {
			return err
		}
		if cond.Type() != values.Bool {
			return errNonBoolCondition(s.Cond.Pos(), cond.Type())
		}
		if !cond.Bool() {
			return nil
		}
		if err := it.execStatements(s.Body); err != nil {
			return err
		}
	}
}

// eval evaluates an expression to a Value. VarRef yields a copy of the
// bound value; since every variant but Str is a plain scalar and Go
// strings are immutable, "copy" and "clone" both reduce to an ordinary
// Go value copy.
func (it *Interp) eval(expr ast.Expression) (values.Value, *Error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.VarRef:
		binding := it.Env.Lookup(e.Name)
		if binding == nil {
			return values.Value{}, errUndeclared(e.Pos(), e.Name)
		}
		return binding.Value, nil
	case *ast.Prefix:
		operand, err := it.eval(e.Operand)
		if err != nil {
			return values.Value{}, err
		}
		return applyPrefix(e.Pos(), e.Op, operand)
	case *ast.Infix:
		left, err := it.eval(e.Left)
		if err != nil {
			return values.Value{}, err
		}
		right, err := it.eval(e.Right)
		if err != nil {
			return values.Value{}, err
		}
		return applyInfix(e.Pos(), e.Op, left, right)
	case *ast.Call:
		return it.evalCall(e)
	default:
		return values.Value{}, errLiteralMissingData(expr.Pos())
	}
}

func (it *Interp) evalCall(c *ast.Call) (values.Value, *Error) {
	switch c.Function {
	case "print":
		return it.evalPrint(c)
	default:
		return values.Value{}, &Error{Kind: LiteralMissingData, Message: fmt.Sprintf("unknown built-in function %q", c.Function), At: c.Pos()}
	}
}

// evalPrint writes its arguments' String() representations, space
// separated, followed by a newline, and yields Unit.
func (it *Interp) evalPrint(c *ast.Call) (values.Value, *Error) {
	parts := make([]string, len(c.Args))
	for i, arg := range c.Args {
		v, err := it.eval(arg)
		if err != nil {
			return values.Value{}, err
		}
		parts[i] = v.String()
	}
	if it.Out != nil {
		fmt.Fprintln(it.Out, strings.Join(parts, " "))
	}
	return values.UnitValue, nil
}
