package ast

import (
	"strings"

	"github.com/ahl00/go-arrow/internal/token"
	"github.com/ahl00/go-arrow/internal/values"
)

// Alloc declares a new binding: let/const name : type = initializer ;
type Alloc struct {
	Token        token.Token // the `let` or `const` token
	Name         string
	DeclaredType values.Type
	Initializer  Expression
	Mutable      bool
}

func (*Alloc) statementNode()        {}
func (a *Alloc) TokenLiteral() string { return a.Token.Literal }
func (a *Alloc) Pos() token.Position  { return a.Token.Pos }
func (a *Alloc) String() string {
	kw := "const"
	if a.Mutable {
		kw = "let"
	}
	return kw + " " + a.Name + ": " + a.DeclaredType.String() + " = " + a.Initializer.String() + ";"
}

// Assign overwrites an existing mutable binding: name = expr ;
type Assign struct {
	Token token.Token // the identifier token
	Name  string
	Expr  Expression
}

func (*Assign) statementNode()        {}
func (a *Assign) TokenLiteral() string { return a.Token.Literal }
func (a *Assign) Pos() token.Position  { return a.Token.Pos }
func (a *Assign) String() string       { return a.Name + " = " + a.Expr.String() + ";" }

// If executes Then when Cond evaluates true. There is no else-branch in
// the grammar and no new lexical scope is introduced.
type If struct {
	Token token.Token // the `if` token
	Cond  Expression
	Then  []Statement
}

func (*If) statementNode()        {}
func (i *If) TokenLiteral() string { return i.Token.Literal }
func (i *If) Pos() token.Position  { return i.Token.Pos }
func (i *If) String() string {
	var sb strings.Builder
	sb.WriteString("if ")
	sb.WriteString(i.Cond.String())
	sb.WriteString(" { ")
	for _, s := range i.Then {
		sb.WriteString(s.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// While repeatedly executes Body while Cond evaluates true.
type While struct {
	Token token.Token // the `while` token
	Cond  Expression
	Body  []Statement
}

func (*While) statementNode()        {}
func (w *While) TokenLiteral() string { return w.Token.Literal }
func (w *While) Pos() token.Position  { return w.Token.Pos }
func (w *While) String() string {
	var sb strings.Builder
	sb.WriteString("while ")
	sb.WriteString(w.Cond.String())
	sb.WriteString(" { ")
	for _, s := range w.Body {
		sb.WriteString(s.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// ExpressionStatement evaluates Expr for its value, discarding the
// result. A bare identifier or call not followed by `=` parses into one
// of these rather than a Noop, which is also how a bare print(...) call
// does anything.
type ExpressionStatement struct {
	Token token.Token
	Expr  Expression
}

func (*ExpressionStatement) statementNode()        {}
func (e *ExpressionStatement) TokenLiteral() string { return e.Token.Literal }
func (e *ExpressionStatement) Pos() token.Position  { return e.Token.Pos }
func (e *ExpressionStatement) String() string       { return e.Expr.String() + ";" }

// Noop is a statement that performs no action.
type Noop struct {
	Token token.Token
}

func (*Noop) statementNode()        {}
func (n *Noop) TokenLiteral() string { return n.Token.Literal }
func (n *Noop) Pos() token.Position  { return n.Token.Pos }
func (n *Noop) String() string       { return ";" }
