// Package errors formats the three error tiers (lexical, syntactic,
// semantic) produced by lexer/parser/interp with source context and a
// caret, the way go-dws's internal/errors.CompilerError formats a
// compiler diagnostic.
package errors

import (
	"fmt"
	"strings"

	"github.com/ahl00/go-arrow/internal/interp"
	"github.com/ahl00/go-arrow/internal/lexer"
	"github.com/ahl00/go-arrow/internal/parser"
	"github.com/ahl00/go-arrow/internal/token"
)

// Tier names the three pipeline stages an error can originate from.
type Tier string

const (
	Lexical  Tier = "lexical"
	Syntax   Tier = "syntactic"
	Semantic Tier = "semantic"
)

// positioned is implemented by lexer.Error, parser.Error, and
// interp.Error.
type positioned interface {
	error
	Pos() token.Position
}

// TierOf classifies err into one of the three pipeline stages. It
// returns ("", false) for any error not produced by this package's
// stages (e.g. an I/O error reading a script file).
func TierOf(err error) (Tier, bool) {
	switch err.(type) {
	case *lexer.Error:
		return Lexical, true
	case *parser.Error:
		return Syntax, true
	case *interp.Error:
		return Semantic, true
	default:
		return "", false
	}
}

// Format renders err with a header naming the file/position, the
// offending source line, a caret under the offending column, and the
// message — or, for an error this package doesn't recognize, just its
// plain Error() text. Pass color=true for ANSI-highlighted terminal
// output.
func Format(err error, source, file string, color bool) string {
	pe, ok := err.(positioned)
	if !ok {
		return err.Error()
	}

	tier, _ := TierOf(err)
	pos := pe.Pos()

	var sb strings.Builder
	if file != "" {
		fmt.Fprintf(&sb, "%s error in %s:%d:%d\n", tier, file, pos.Line, pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s error at %d:%d\n", tier, pos.Line, pos.Column)
	}

	if line := sourceLine(source, pos.Line); line != "" {
		gutter := fmt.Sprintf("%4d | ", pos.Line)
		sb.WriteString(gutter)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(gutter)+max(pos.Column-1, 0)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(pe.Error())
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func sourceLine(source string, line int) string {
	if source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}
