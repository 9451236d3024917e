package parser

import (
	"strconv"

	"github.com/ahl00/go-arrow/internal/ast"
	"github.com/ahl00/go-arrow/internal/lexer"
	"github.com/ahl00/go-arrow/internal/token"
	"github.com/ahl00/go-arrow/internal/values"
)

// parseExpression is the Pratt loop: parse one primary, then keep
// consuming infix operators whose left binding power is at least minBP.
// Grouping (a parenthesized sub-expression) and every statement context
// (`;`, `{` terminated) share this single entry point — the token that
// ends the expression is simply whatever isn't an infix operator with
// high enough binding power, so no separate end-sentinel parameter is
// needed beyond the minBP floor itself.
func (p *Parser) parseExpression(minBP int) ast.Expression {
	left := p.parsePrefix()
	if p.failed() {
		return nil
	}

	for {
		if p.cur.Kind != token.OPERATOR {
			break
		}
		opBP := precedence(p.cur.Op)
		if opBP < minBP || opBP == bpLowest {
			break
		}

		opTok := p.cur
		p.next() // consume operator

		right := p.parseExpression(opBP + 1)
		if p.failed() {
			return nil
		}

		left = &ast.Infix{Token: opTok, Op: opTok.Op, Left: left, Right: right}
	}

	return left
}

func (p *Parser) parsePrefix() ast.Expression {
	switch p.cur.Kind {
	case token.OPERATOR:
		if !p.cur.Op.IsPrefix() {
			p.fail(UnexpectedToken, p.cur.Pos, "operator %q cannot be used as a prefix", p.cur.Op)
			return nil
		}
		opTok := p.cur
		p.next()
		operand := p.parseExpression(bpPrefix)
		if p.failed() {
			return nil
		}
		return &ast.Prefix{Token: opTok, Op: opTok.Op, Operand: operand}

	case token.IDENT:
		tok := p.cur
		p.next()
		return &ast.VarRef{Token: tok, Name: tok.Literal}

	case token.BUILTIN_PRINT:
		return p.parseCall()

	case token.INT, token.FLOAT, token.STRING, token.CHAR, token.TRUE, token.FALSE:
		return p.parseLiteral()

	case token.LPAREN:
		p.next()
		expr := p.parseExpression(bpLowest)
		if p.failed() {
			return nil
		}
		if p.cur.Kind != token.RPAREN {
			p.fail(UnexpectedToken, p.cur.Pos, "expected ')', got %q", p.cur.Literal)
			return nil
		}
		p.next()
		return expr

	default:
		p.fail(UnexpectedToken, p.cur.Pos, "unexpected token %q in expression", p.cur.Literal)
		return nil
	}
}

func (p *Parser) parseCall() ast.Expression {
	tok := p.cur
	name := tok.Literal
	p.next() // consume function name

	if p.cur.Kind != token.LPAREN {
		p.fail(UnexpectedToken, p.cur.Pos, "expected '(' after %q", name)
		return nil
	}
	p.next()

	var args []ast.Expression
	for p.cur.Kind != token.RPAREN {
		if len(args) > 0 {
			if p.cur.Kind != token.COMMA {
				p.fail(UnexpectedToken, p.cur.Pos, "expected ',' or ')' in argument list")
				return nil
			}
			p.next()
		}
		arg := p.parseExpression(bpLowest)
		if p.failed() {
			return nil
		}
		args = append(args, arg)
	}
	p.next() // consume ')'

	return &ast.Call{Token: tok, Function: name, Args: args}
}

func (p *Parser) parseLiteral() ast.Expression {
	tok := p.cur
	defer p.next()

	switch tok.Kind {
	case token.INT:
		n, err := strconv.ParseInt(lexer.StripUnderscores(tok.Literal), 10, 32)
		if err != nil {
			p.fail(UnexpectedToken, tok.Pos, "invalid i32 literal %q", tok.Literal)
			return nil
		}
		return &ast.Literal{Token: tok, Value: values.NewInt32(int32(n))}

	case token.FLOAT:
		f, err := strconv.ParseFloat(lexer.StripUnderscores(tok.Literal), 64)
		if err != nil {
			p.fail(UnexpectedToken, tok.Pos, "invalid f64 literal %q", tok.Literal)
			return nil
		}
		return &ast.Literal{Token: tok, Value: values.NewFloat64(f)}

	case token.STRING:
		return &ast.Literal{Token: tok, Value: values.NewStr(tok.Literal)}

	case token.CHAR:
		r, _ := firstRune(tok.Literal)
		return &ast.Literal{Token: tok, Value: values.NewChar(r)}

	case token.TRUE:
		return &ast.Literal{Token: tok, Value: values.NewBool(true)}

	case token.FALSE:
		return &ast.Literal{Token: tok, Value: values.NewBool(false)}

	default:
		p.fail(UnexpectedToken, tok.Pos, "not a literal: %q", tok.Literal)
		return nil
	}
}

func firstRune(s string) (rune, int) {
	for _, r := range s {
		return r, len(string(r))
	}
	return 0, 0
}
