package values

import "strconv"

// Value is a single closed-set variant: exactly one of its payload fields
// is meaningful, selected by typ. Construct one with the New* functions
// below rather than a struct literal.
type Value struct {
	typ Type
	i32 int32
	f64 float64
	b   bool
	ch  rune
	str string
}

// NewInt32 constructs an Int32 value.
func NewInt32(v int32) Value { return Value{typ: Int32, i32: v} }

// NewFloat64 constructs a Float64 value.
func NewFloat64(v float64) Value { return Value{typ: Float64, f64: v} }

// NewBool constructs a Bool value.
func NewBool(v bool) Value { return Value{typ: Bool, b: v} }

// NewChar constructs a Char value from a single Unicode scalar.
func NewChar(v rune) Value { return Value{typ: Char, ch: v} }

// NewStr constructs a Str value. The string is copied by Go's normal
// string-assignment semantics (immutable, cheaply shared); a fresh Value
// never aliases another Value's mutable state because there is none.
func NewStr(v string) Value { return Value{typ: Str, str: v} }

// UnitValue is the single Unit value, reserved for future use.
var UnitValue = Value{typ: Unit}

// Type returns the value's static type. This is the total function
// type_of(value) -> Type from the data model.
func (v Value) Type() Type { return v.typ }

// Int32 returns the payload of an Int32 value. The caller must have
// checked Type() == Int32 first; it panics otherwise, matching the
// "every literal/binding carries exactly one payload" invariant — callers
// in this codebase never call an accessor without a matching type check.
func (v Value) Int32() int32 {
	v.mustBe(Int32)
	return v.i32
}

// Float64 returns the payload of a Float64 value.
func (v Value) Float64() float64 {
	v.mustBe(Float64)
	return v.f64
}

// Bool returns the payload of a Bool value.
func (v Value) Bool() bool {
	v.mustBe(Bool)
	return v.b
}

// Char returns the payload of a Char value.
func (v Value) Char() rune {
	v.mustBe(Char)
	return v.ch
}

// Str returns the payload of a Str value.
func (v Value) Str() string {
	v.mustBe(Str)
	return v.str
}

func (v Value) mustBe(t Type) {
	if v.typ != t {
		panic("values: accessed " + t.String() + " payload of a " + v.typ.String() + " value")
	}
}

// String renders the value the way the built-in print function does:
// Str raw, Char as its scalar, Bool as true/false, numbers in Go's
// default formatting.
func (v Value) String() string {
	switch v.typ {
	case Int32:
		return strconv.FormatInt(int64(v.i32), 10)
	case Float64:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	case Bool:
		if v.b {
			return "true"
		}
		return "false"
	case Char:
		return string(v.ch)
	case Str:
		return v.str
	default:
		return "()"
	}
}

// Equal reports whether two values of the same type are equal. Callers
// must ensure v.Type() == other.Type(); comparing mismatched types is a
// semantic error the evaluator rejects before calling Equal.
func (v Value) Equal(other Value) bool {
	switch v.typ {
	case Int32:
		return v.i32 == other.i32
	case Float64:
		return v.f64 == other.f64
	case Bool:
		return v.b == other.b
	case Char:
		return v.ch == other.ch
	case Str:
		return v.str == other.str
	default:
		return true
	}
}
