package interp

import (
	"math"

	"github.com/ahl00/go-arrow/internal/token"
	"github.com/ahl00/go-arrow/internal/values"
)

// applyInfix implements every binary operator's dynamic type check and
// semantics. Both operands have already been evaluated left-then-right
// by the caller.
func applyInfix(pos token.Position, op token.Operator, left, right values.Value) (values.Value, *Error) {
	if !op.IsInfix() {
		return values.Value{}, errOperatorNotInfix(pos, op)
	}

	switch op {
	case token.Plus:
		return arithmeticOrConcat(pos, op, left, right)
	case token.Minus, token.Asterisk:
		return numericSameType(pos, op, left, right, func(a, b int32) (int32, *Error) { return applyIntOp(op, a, b) },
			func(a, b float64) float64 { return applyFloatOp(op, a, b) })
	case token.Slash:
		return divide(pos, left, right)
	case token.Modulo:
		return modulo(pos, left, right)
	case token.Caret:
		return power(pos, left, right)
	case token.BitwiseAnd:
		return intOp(pos, op, left, right, func(a, b int32) int32 { return a & b })
	case token.BitwiseOr:
		return intOp(pos, op, left, right, func(a, b int32) int32 { return a | b })
	case token.LeftShift:
		return shift(pos, op, left, right, func(a int32, n uint) int32 { return a << n })
	case token.RightShift:
		return shift(pos, op, left, right, func(a int32, n uint) int32 { return a >> n })
	case token.LessThan, token.GreaterThan, token.LessThanOrEqual, token.GreaterThanOrEqual:
		return order(pos, op, left, right)
	case token.Equals, token.NotEqual:
		return equality(pos, op, left, right)
	case token.And, token.Or:
		return boolean(pos, op, left, right)
	default:
		return values.Value{}, errOperatorNotInfix(pos, op)
	}
}

// applyPrefix implements Not/Identity/Negation.
func applyPrefix(pos token.Position, op token.Operator, operand values.Value) (values.Value, *Error) {
	if !op.IsPrefix() {
		return values.Value{}, errOperatorNotPrefix(pos, op)
	}

	switch op {
	case token.Negation:
		switch operand.Type() {
		case values.Int32:
			return values.NewInt32(-operand.Int32()), nil
		case values.Float64:
			return values.NewFloat64(-operand.Float64()), nil
		default:
			return values.Value{}, errTypeMismatchOperator(pos, op, operand.Type(), operand.Type())
		}
	case token.Not:
		if operand.Type() != values.Bool {
			return values.Value{}, errTypeMismatchOperator(pos, op, operand.Type(), operand.Type())
		}
		return values.NewBool(!operand.Bool()), nil
	case token.Identity:
		switch operand.Type() {
		case values.Int32, values.Float64:
			return operand, nil
		default:
			return values.Value{}, errTypeMismatchOperator(pos, op, operand.Type(), operand.Type())
		}
	default:
		return values.Value{}, errOperatorNotPrefix(pos, op)
	}
}

func arithmeticOrConcat(pos token.Position, op token.Operator, left, right values.Value) (values.Value, *Error) {
	if left.Type() != right.Type() {
		return values.Value{}, errTypeMismatchOperator(pos, op, left.Type(), right.Type())
	}
	switch left.Type() {
	case values.Int32:
		return values.NewInt32(left.Int32() + right.Int32()), nil
	case values.Float64:
		return values.NewFloat64(left.Float64() + right.Float64()), nil
	case values.Str:
		return values.NewStr(left.Str() + right.Str()), nil
	default:
		return values.Value{}, errTypeMismatchOperator(pos, op, left.Type(), right.Type())
	}
}

func numericSameType(
	pos token.Position, op token.Operator, left, right values.Value,
	intFn func(a, b int32) (int32, *Error), floatFn func(a, b float64) float64,
) (values.Value, *Error) {
	if left.Type() != right.Type() {
		return values.Value{}, errTypeMismatchOperator(pos, op, left.Type(), right.Type())
	}
	switch left.Type() {
	case values.Int32:
		r, err := intFn(left.Int32(), right.Int32())
		if err != nil {
			return values.Value{}, err
		}
		return values.NewInt32(r), nil
	case values.Float64:
		return values.NewFloat64(floatFn(left.Float64(), right.Float64())), nil
	default:
		return values.Value{}, errTypeMismatchOperator(pos, op, left.Type(), right.Type())
	}
}

func applyIntOp(op token.Operator, a, b int32) (int32, *Error) {
	switch op {
	case token.Minus:
		return a - b, nil
	case token.Asterisk:
		return a * b, nil
	default:
		return 0, nil
	}
}

func applyFloatOp(op token.Operator, a, b float64) float64 {
	switch op {
	case token.Minus:
		return a - b
	case token.Asterisk:
		return a * b
	default:
		return 0
	}
}

func divide(pos token.Position, left, right values.Value) (values.Value, *Error) {
	if left.Type() != right.Type() {
		return values.Value{}, errTypeMismatchOperator(pos, token.Slash, left.Type(), right.Type())
	}
	switch left.Type() {
	case values.Int32:
		if right.Int32() == 0 {
			return values.Value{}, errDivisionByZero(pos, token.Slash)
		}
		return values.NewInt32(left.Int32() / right.Int32()), nil
	case values.Float64:
		if right.Float64() == 0 {
			return values.Value{}, errDivisionByZero(pos, token.Slash)
		}
		return values.NewFloat64(left.Float64() / right.Float64()), nil
	default:
		return values.Value{}, errTypeMismatchOperator(pos, token.Slash, left.Type(), right.Type())
	}
}

func modulo(pos token.Position, left, right values.Value) (values.Value, *Error) {
	if left.Type() != right.Type() {
		return values.Value{}, errTypeMismatchOperator(pos, token.Modulo, left.Type(), right.Type())
	}
	switch left.Type() {
	case values.Int32:
		if right.Int32() == 0 {
			return values.Value{}, errDivisionByZero(pos, token.Modulo)
		}
		return values.NewInt32(left.Int32() % right.Int32()), nil
	case values.Float64:
		if right.Float64() == 0 {
			return values.Value{}, errDivisionByZero(pos, token.Modulo)
		}
		return values.NewFloat64(math.Mod(left.Float64(), right.Float64())), nil
	default:
		return values.Value{}, errTypeMismatchOperator(pos, token.Modulo, left.Type(), right.Type())
	}
}

// power implements Caret: integer exponentiation for Int32 (the right
// operand is a non-negative exponent; a negative exponent is treated the
// same way a negative shift amount is — a type/operator mismatch) and
// math.Pow for Float64.
func power(pos token.Position, left, right values.Value) (values.Value, *Error) {
	if left.Type() != right.Type() {
		return values.Value{}, errTypeMismatchOperator(pos, token.Caret, left.Type(), right.Type())
	}
	switch left.Type() {
	case values.Int32:
		base, exp := left.Int32(), right.Int32()
		if exp < 0 {
			return values.Value{}, errTypeMismatchOperator(pos, token.Caret, left.Type(), right.Type())
		}
		result := int32(1)
		for i := int32(0); i < exp; i++ {
			result *= base
		}
		return values.NewInt32(result), nil
	case values.Float64:
		return values.NewFloat64(math.Pow(left.Float64(), right.Float64())), nil
	default:
		return values.Value{}, errTypeMismatchOperator(pos, token.Caret, left.Type(), right.Type())
	}
}

func intOp(pos token.Position, op token.Operator, left, right values.Value, fn func(a, b int32) int32) (values.Value, *Error) {
	if left.Type() != values.Int32 || right.Type() != values.Int32 {
		return values.Value{}, errTypeMismatchOperator(pos, op, left.Type(), right.Type())
	}
	return values.NewInt32(fn(left.Int32(), right.Int32())), nil
}

func shift(pos token.Position, op token.Operator, left, right values.Value, fn func(a int32, n uint) int32) (values.Value, *Error) {
	if left.Type() != values.Int32 || right.Type() != values.Int32 {
		return values.Value{}, errTypeMismatchOperator(pos, op, left.Type(), right.Type())
	}
	n := right.Int32()
	if n < 0 {
		return values.Value{}, errTypeMismatchOperator(pos, op, left.Type(), right.Type())
	}
	return values.NewInt32(fn(left.Int32(), uint(n))), nil
}

func order(pos token.Position, op token.Operator, left, right values.Value) (values.Value, *Error) {
	if left.Type() != right.Type() {
		return values.Value{}, errTypeMismatchOperator(pos, op, left.Type(), right.Type())
	}
	cmp, ok := compare(left, right)
	if !ok {
		return values.Value{}, errTypeMismatchOperator(pos, op, left.Type(), right.Type())
	}
	switch op {
	case token.LessThan:
		return values.NewBool(cmp < 0), nil
	case token.GreaterThan:
		return values.NewBool(cmp > 0), nil
	case token.LessThanOrEqual:
		return values.NewBool(cmp <= 0), nil
	case token.GreaterThanOrEqual:
		return values.NewBool(cmp >= 0), nil
	default:
		return values.Value{}, errOperatorNotInfix(pos, op)
	}
}

// compare returns -1/0/1 for an ordered pair of same-typed values. Every
// type in the closed set is ordered: numbers and chars numerically,
// strings lexicographically, booleans false < true.
func compare(left, right values.Value) (int, bool) {
	switch left.Type() {
	case values.Int32:
		a, b := left.Int32(), right.Int32()
		return cmpOrdered(a, b), true
	case values.Float64:
		a, b := left.Float64(), right.Float64()
		return cmpOrdered(a, b), true
	case values.Char:
		a, b := left.Char(), right.Char()
		return cmpOrdered(a, b), true
	case values.Str:
		a, b := left.Str(), right.Str()
		return cmpOrdered(a, b), true
	case values.Bool:
		a, b := left.Bool(), right.Bool()
		return cmpOrdered(boolRank(a), boolRank(b)), true
	default:
		return 0, false
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func cmpOrdered[T int32 | float64 | string | int](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func equality(pos token.Position, op token.Operator, left, right values.Value) (values.Value, *Error) {
	if left.Type() != right.Type() {
		return values.Value{}, errTypeMismatchOperator(pos, op, left.Type(), right.Type())
	}
	eq := left.Equal(right)
	if op == token.NotEqual {
		eq = !eq
	}
	return values.NewBool(eq), nil
}

func boolean(pos token.Position, op token.Operator, left, right values.Value) (values.Value, *Error) {
	if left.Type() != values.Bool || right.Type() != values.Bool {
		return values.Value{}, errTypeMismatchOperator(pos, op, left.Type(), right.Type())
	}
	switch op {
	case token.And:
		return values.NewBool(left.Bool() && right.Bool()), nil
	case token.Or:
		return values.NewBool(left.Bool() || right.Bool()), nil
	default:
		return values.Value{}, errOperatorNotInfix(pos, op)
	}
}
