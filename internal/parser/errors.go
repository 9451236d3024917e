package parser

import "github.com/ahl00/go-arrow/internal/token"

// ErrorKind enumerates the syntactic error kinds the parser can produce.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	UnknownType
	MissingSemicolon
	MissingOpenBrace
	MissingCloseBrace
	// UnsupportedConstruct covers grammar a reader might reasonably expect
	// but that isn't implemented: omitting a declaration's type (type
	// inference) or naming a custom type instead of one of the built-ins.
	UnsupportedConstruct
)

// Error is a syntactic error produced by the parser.
type Error struct {
	Kind    ErrorKind
	Message string
	At      token.Position
}

func (e *Error) Error() string       { return e.Message }
func (e *Error) Pos() token.Position { return e.At }
