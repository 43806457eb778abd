package keymatch

import "fmt"

// Value is one tuple position: a concrete typed value, or Unset. The zero
// value is Unset. Values are comparable; two Values are equal iff their type
// tags and payloads are equal.
type Value struct {
	kind ComponentType
	num  int64
	str  string
}

// Unset marks a position as "don't care": it matches any value of the slot's
// type, as well as the total absence of the slot from the key when every
// later position is also unset.
var Unset = Value{}

func Int32Value(v int32) Value {
	return Value{kind: TypeInt32, num: int64(v)}
}

func Int64Value(v int64) Value {
	return Value{kind: TypeInt64, num: v}
}

func StringValue(s string) Value {
	return Value{kind: TypeString, str: s}
}

// IsSet reports whether the position holds a concrete value.
func (v Value) IsSet() bool {
	return v.kind != typeUnset
}

// Kind returns the value's type tag, or zero for Unset.
func (v Value) Kind() ComponentType {
	return v.kind
}

func (v Value) Int32() int32 {
	if v.kind != TypeInt32 {
		panic(fmt.Errorf("keymatch: Int32() called on %v", v))
	}
	return int32(v.num)
}

func (v Value) Int64() int64 {
	if v.kind != TypeInt64 {
		panic(fmt.Errorf("keymatch: Int64() called on %v", v))
	}
	return v.num
}

func (v Value) Str() string {
	if v.kind != TypeString {
		panic(fmt.Errorf("keymatch: Str() called on %v", v))
	}
	return v.str
}

func (v Value) String() string {
	switch v.kind {
	case typeUnset:
		return "unset"
	case TypeString:
		return fmt.Sprintf("string(%q)", v.str)
	default:
		return fmt.Sprintf("%v(%d)", v.kind, v.num)
	}
}
