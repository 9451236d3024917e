package interp

import (
	"fmt"

	"github.com/ahl00/go-arrow/internal/token"
	"github.com/ahl00/go-arrow/internal/values"
)

// ErrorKind enumerates the semantic error kinds the evaluator can
// produce, including DivisionByZero, which rejects division and modulo
// by zero uniformly for Int32 and Float64 rather than letting host
// arithmetic behavior (a panic, an Inf/NaN) leak out of the evaluator.
type ErrorKind int

const (
	AstEmpty ErrorKind = iota
	UndeclaredVariable
	TypeMismatchAssign
	TypeMismatchInit
	ImmutableAssign
	TypeMismatchOperator
	NonBoolCondition
	OperatorNotInfix
	OperatorNotPrefix
	LiteralMissingData
	DivisionByZero
)

// Error is a runtime (semantic) error produced by the evaluator.
type Error struct {
	Kind    ErrorKind
	Message string
	At      token.Position

	VarName   string
	Op        token.Operator
	LeftType  values.Type
	RightType values.Type
}

func (e *Error) Error() string       { return e.Message }
func (e *Error) Pos() token.Position { return e.At }

func errAstEmpty() *Error {
	return &Error{Kind: AstEmpty, Message: "program is empty"}
}

func errUndeclared(pos token.Position, name string) *Error {
	return &Error{Kind: UndeclaredVariable, Message: fmt.Sprintf("undeclared variable %q", name), At: pos, VarName: name}
}

func errTypeMismatchInit(pos token.Position, name string, declared, got values.Type) *Error {
	return &Error{
		Kind:    TypeMismatchInit,
		Message: fmt.Sprintf("cannot initialize %q of type %s with value of type %s", name, declared, got),
		At:      pos, VarName: name, LeftType: declared, RightType: got,
	}
}

func errTypeMismatchAssign(pos token.Position, name string, declared, got values.Type) *Error {
	return &Error{
		Kind:    TypeMismatchAssign,
		Message: fmt.Sprintf("cannot assign value of type %s to %q of type %s", got, name, declared),
		At:      pos, VarName: name, LeftType: declared, RightType: got,
	}
}

func errImmutableAssign(pos token.Position, name string) *Error {
	return &Error{Kind: ImmutableAssign, Message: fmt.Sprintf("cannot assign to immutable variable %q", name), At: pos, VarName: name}
}

func errTypeMismatchOperator(pos token.Position, op token.Operator, left, right values.Type) *Error {
	return &Error{
		Kind:      TypeMismatchOperator,
		Message:   fmt.Sprintf("operator %s is not defined for %s and %s", op, left, right),
		At:        pos, Op: op, LeftType: left, RightType: right,
	}
}

func errNonBoolCondition(pos token.Position, got values.Type) *Error {
	return &Error{Kind: NonBoolCondition, Message: fmt.Sprintf("condition must be bool, got %s", got), At: pos, RightType: got}
}

func errOperatorNotInfix(pos token.Position, op token.Operator) *Error {
	return &Error{Kind: OperatorNotInfix, Message: fmt.Sprintf("operator %s cannot be used as infix", op), At: pos, Op: op}
}

func errOperatorNotPrefix(pos token.Position, op token.Operator) *Error {
	return &Error{Kind: OperatorNotPrefix, Message: fmt.Sprintf("operator %s cannot be used as prefix", op), At: pos, Op: op}
}

func errDivisionByZero(pos token.Position, op token.Operator) *Error {
	return &Error{Kind: DivisionByZero, Message: fmt.Sprintf("%s by zero", op), At: pos, Op: op}
}

func errLiteralMissingData(pos token.Position) *Error {
	return &Error{Kind: LiteralMissingData, Message: "literal node carries no value", At: pos}
}
