package values

import "testing"

func TestConstructorsAndAccessors(t *testing.T) {
	if v := NewInt32(42); v.Type() != Int32 || v.Int32() != 42 {
		t.Fatalf("NewInt32 round-trip failed: %+v", v)
	}
	if v := NewFloat64(3.5); v.Type() != Float64 || v.Float64() != 3.5 {
		t.Fatalf("NewFloat64 round-trip failed: %+v", v)
	}
	if v := NewBool(true); v.Type() != Bool || !v.Bool() {
		t.Fatalf("NewBool round-trip failed: %+v", v)
	}
	if v := NewChar('z'); v.Type() != Char || v.Char() != 'z' {
		t.Fatalf("NewChar round-trip failed: %+v", v)
	}
	if v := NewStr("hi"); v.Type() != Str || v.Str() != "hi" {
		t.Fatalf("NewStr round-trip failed: %+v", v)
	}
	if UnitValue.Type() != Unit {
		t.Fatalf("UnitValue has wrong type: %+v", UnitValue)
	}
}

func TestAccessorPanicsOnWrongType(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic when reading Int32 payload of a Str value")
		}
	}()
	NewStr("x").Int32()
}

func TestStringRendering(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{NewInt32(-7), "-7"},
		{NewFloat64(1.5), "1.5"},
		{NewBool(true), "true"},
		{NewBool(false), "false"},
		{NewChar('q'), "q"},
		{NewStr("abc"), "abc"},
		{UnitValue, "()"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	if !NewInt32(5).Equal(NewInt32(5)) {
		t.Fatalf("expected 5 == 5")
	}
	if NewInt32(5).Equal(NewInt32(6)) {
		t.Fatalf("expected 5 != 6")
	}
	if !NewStr("a").Equal(NewStr("a")) {
		t.Fatalf("expected equal strings to compare equal")
	}
}
