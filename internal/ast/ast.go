// Package ast defines the Arrow language's abstract syntax tree. Node
// variants are Go interfaces implemented by small concrete structs and
// dispatched with type switches — there is no virtual-call dispatch
// here, only pattern matching in the parser and evaluator.
package ast

import (
	"strings"

	"github.com/ahl00/go-arrow/internal/token"
	"github.com/ahl00/go-arrow/internal/values"
)

// Node is the base interface every AST node implements.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without producing a value.
type Statement interface {
	Node
	statementNode()
}

// Program is the root node: an ordered sequence of statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
	}
	return sb.String()
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// ---- Expressions ----

// Literal holds a value already resolved at parse time: its payload's
// type always matches the token that produced it.
type Literal struct {
	Token token.Token
	Value values.Value
}

func (*Literal) expressionNode()        {}
func (l *Literal) TokenLiteral() string { return l.Token.Literal }
func (l *Literal) Pos() token.Position  { return l.Token.Pos }
func (l *Literal) String() string       { return l.Value.String() }

// VarRef references a bound variable by name.
type VarRef struct {
	Token token.Token
	Name  string
}

func (*VarRef) expressionNode()        {}
func (v *VarRef) TokenLiteral() string { return v.Token.Literal }
func (v *VarRef) Pos() token.Position  { return v.Token.Pos }
func (v *VarRef) String() string       { return v.Name }

// Prefix is a prefix-operator application: !x, -x, +x.
type Prefix struct {
	Token   token.Token
	Op      token.Operator
	Operand Expression
}

func (*Prefix) expressionNode()        {}
func (p *Prefix) TokenLiteral() string { return p.Token.Literal }
func (p *Prefix) Pos() token.Position  { return p.Token.Pos }
func (p *Prefix) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(p.Op.String())
	sb.WriteString(p.Operand.String())
	sb.WriteString(")")
	return sb.String()
}

// Infix is a binary-operator application: left op right.
type Infix struct {
	Token token.Token
	Op    token.Operator
	Left  Expression
	Right Expression
}

func (*Infix) expressionNode()        {}
func (i *Infix) TokenLiteral() string { return i.Token.Literal }
func (i *Infix) Pos() token.Position  { return i.Token.Pos }
func (i *Infix) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(i.Left.String())
	sb.WriteString(" ")
	sb.WriteString(i.Op.String())
	sb.WriteString(" ")
	sb.WriteString(i.Right.String())
	sb.WriteString(")")
	return sb.String()
}

// Call is a built-in function call. Only built-in calls are ever emitted;
// user-defined functions are reserved but not implemented.
type Call struct {
	Token    token.Token
	Function string
	Args     []Expression
}

func (*Call) expressionNode()        {}
func (c *Call) TokenLiteral() string { return c.Token.Literal }
func (c *Call) Pos() token.Position  { return c.Token.Pos }
func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.Function + "(" + strings.Join(args, ", ") + ")"
}
