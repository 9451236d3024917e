// Package parser implements the Arrow language's recursive-descent
// statement grammar together with a Pratt expression parser, producing a
// typed, fully-resolved AST from a lexer.Lexer's token stream.
package parser

import (
	"fmt"

	"github.com/ahl00/go-arrow/internal/ast"
	"github.com/ahl00/go-arrow/internal/lexer"
	"github.com/ahl00/go-arrow/internal/token"
	"github.com/ahl00/go-arrow/internal/values"
)

// Binding powers (left-binding power; the right-binding power used when
// recursing into a left-associative operator's right operand is always
// bp+1). Low to high: logical connectives bind loosest of all, then
// comparison, then the bitwise operators, then shift, then the familiar
// arithmetic tiers, with power tightest before unary prefix operators.
const (
	bpLowest = iota
	bpLogical
	bpComparison
	bpBitOr
	bpBitAnd
	bpShift
	bpAdditive
	bpMultiplicative
	bpPower
	bpPrefix
)

// precedence returns op's left-binding power when used as an infix
// operator.
func precedence(op token.Operator) int {
	switch op {
	case token.Or, token.And:
		return bpLogical
	case token.Equals, token.NotEqual, token.LessThan, token.GreaterThan, token.LessThanOrEqual, token.GreaterThanOrEqual:
		return bpComparison
	case token.BitwiseOr:
		return bpBitOr
	case token.BitwiseAnd:
		return bpBitAnd
	case token.LeftShift, token.RightShift:
		return bpShift
	case token.Plus, token.Minus:
		return bpAdditive
	case token.Asterisk, token.Slash, token.Modulo:
		return bpMultiplicative
	case token.Caret:
		return bpPower
	default:
		return bpLowest
	}
}

// Parser turns a token stream into an *ast.Program. It holds the current
// and next token (no backtracking is needed by this grammar).
type Parser struct {
	l *lexer.Lexer

	cur  token.Token
	peek token.Token

	err *Error
}

// New creates a Parser reading from l and primes the first two tokens.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.next()
	p.next()
	return p
}

// Err returns the first syntactic error encountered, or nil. A lexical
// error surfacing mid-parse (an ILLEGAL token) is also reported here as
// an UnexpectedToken.
func (p *Parser) Err() *Error { return p.err }

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) fail(kind ErrorKind, pos token.Position, format string, args ...any) {
	if p.err == nil {
		p.err = &Error{Kind: kind, Message: fmt.Sprintf(format, args...), At: pos}
	}
}

func (p *Parser) failed() bool { return p.err != nil }

// ParseProgram parses statements until EOF, stopping at the first error
// rather than attempting error recovery.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for p.cur.Kind != token.EOF && !p.failed() {
		stmt := p.parseStatement()
		if p.failed() {
			break
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog
}

// parseBlock parses `{` statement* `}` with an optional trailing `;`.
func (p *Parser) parseBlock() []ast.Statement {
	if p.cur.Kind != token.LBRACE {
		p.fail(MissingOpenBrace, p.cur.Pos, "expected '{', got %q", p.cur.Literal)
		return nil
	}
	p.next() // consume '{'

	var stmts []ast.Statement
	for p.cur.Kind != token.RBRACE {
		if p.cur.Kind == token.EOF {
			p.fail(MissingCloseBrace, p.cur.Pos, "expected '}', reached end of input")
			return nil
		}
		stmt := p.parseStatement()
		if p.failed() {
			return nil
		}
		stmts = append(stmts, stmt)
	}
	p.next() // consume '}'

	if p.cur.Kind == token.SEMICOLON {
		p.next()
	}
	return stmts
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Kind {
	case token.LET:
		return p.parseAlloc(true)
	case token.CONST:
		return p.parseAlloc(false)
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.IDENT:
		if p.peek.Kind == token.ASSIGN {
			return p.parseAssign()
		}
		return p.parseExpressionStatement()
	case token.BUILTIN_PRINT:
		return p.parseExpressionStatement()
	default:
		p.fail(UnexpectedToken, p.cur.Pos, "unexpected token %q at start of statement", p.cur.Literal)
		return nil
	}
}

func (p *Parser) parseAlloc(mutable bool) ast.Statement {
	tok := p.cur
	p.next() // consume let/const

	if p.cur.Kind != token.IDENT {
		p.fail(UnexpectedToken, p.cur.Pos, "expected identifier after %q, got %q", tok.Literal, p.cur.Literal)
		return nil
	}
	name := p.cur.Literal
	p.next()

	if p.cur.Kind != token.COLON {
		p.fail(UnsupportedConstruct, p.cur.Pos, "expected ':' after variable name, got %q (type inference is not supported)", p.cur.Literal)
		return nil
	}
	p.next()

	declaredType, ok := typeFromToken(p.cur.Kind)
	if !ok {
		if p.cur.Kind == token.IDENT {
			p.fail(UnsupportedConstruct, p.cur.Pos, "custom type names are not supported, got %q", p.cur.Literal)
			return nil
		}
		p.fail(UnknownType, p.cur.Pos, "unknown type %q", p.cur.Literal)
		return nil
	}
	p.next()

	if p.cur.Kind != token.ASSIGN {
		p.fail(UnexpectedToken, p.cur.Pos, "expected '=' in declaration, got %q", p.cur.Literal)
		return nil
	}
	p.next()

	init := p.parseExpression(bpLowest)
	if p.failed() {
		return nil
	}

	if p.cur.Kind != token.SEMICOLON {
		p.fail(MissingSemicolon, p.cur.Pos, "expected ';' after declaration")
		return nil
	}
	p.next()

	return &ast.Alloc{Token: tok, Name: name, DeclaredType: declaredType, Initializer: init, Mutable: mutable}
}

func typeFromToken(k token.Kind) (values.Type, bool) {
	switch k {
	case token.TYPE_I32:
		return values.Int32, true
	case token.TYPE_F64:
		return values.Float64, true
	case token.TYPE_STR:
		return values.Str, true
	case token.TYPE_CHAR:
		return values.Char, true
	case token.TYPE_BOOL:
		return values.Bool, true
	default:
		return 0, false
	}
}

func (p *Parser) parseAssign() ast.Statement {
	tok := p.cur
	name := p.cur.Literal
	p.next() // consume identifier
	p.next() // consume '='

	expr := p.parseExpression(bpLowest)
	if p.failed() {
		return nil
	}

	if p.cur.Kind != token.SEMICOLON {
		p.fail(MissingSemicolon, p.cur.Pos, "expected ';' after assignment")
		return nil
	}
	p.next()

	return &ast.Assign{Token: tok, Name: name, Expr: expr}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.cur
	expr := p.parseExpression(bpLowest)
	if p.failed() {
		return nil
	}
	if p.cur.Kind != token.SEMICOLON {
		p.fail(MissingSemicolon, p.cur.Pos, "expected ';' after expression statement")
		return nil
	}
	p.next()
	return &ast.ExpressionStatement{Token: tok, Expr: expr}
}

func (p *Parser) parseIf() ast.Statement {
	tok := p.cur
	p.next() // consume 'if'

	cond := p.parseExpression(bpLowest)
	if p.failed() {
		return nil
	}
	then := p.parseBlock()
	if p.failed() {
		return nil
	}
	return &ast.If{Token: tok, Cond: cond, Then: then}
}

func (p *Parser) parseWhile() ast.Statement {
	tok := p.cur
	p.next() // consume 'while'

	cond := p.parseExpression(bpLowest)
	if p.failed() {
		return nil
	}
	body := p.parseBlock()
	if p.failed() {
		return nil
	}
	return &ast.While{Token: tok, Cond: cond, Body: body}
}
