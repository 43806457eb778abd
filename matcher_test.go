package keymatch

import (
	"encoding/hex"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNewMatcherRejections(t *testing.T) {
	tests := []struct {
		name     string
		format   *KeyFormat
		values   []Value
		expected error
	}{
		{"raw encoding", &KeyFormat{Encoding: RawEncoding, Components: slotsIIS()},
			vals(Int32Value(1)), ErrUnsupportedEncoding},
		{"hash encoding", &KeyFormat{Encoding: HashEncoding, Components: slotsIIS()},
			vals(Int32Value(1)), ErrUnsupportedEncoding},
		{"suppressed materialization", &KeyFormat{Encoding: FormattedEncoding, Salt: &Salt{HashSize: 2, SuppressKeyMaterialization: true}, Components: slotsIIS()},
			vals(Int32Value(1)), ErrComponentsNotRecoverable},
		// Compile splices the hash size into a bounded repeat, so sizes the
		// pattern language cannot express must fail at construction.
		{"oversized salt", fmtSaltedIIS(1001),
			vals(Int32Value(1)), ErrInvalidSaltSize},
		{"salt above digest length", fmtSaltedIIS(17),
			vals(Int32Value(1)), ErrInvalidSaltSize},
		{"negative salt", fmtSaltedIIS(-3),
			vals(Int32Value(1)), ErrInvalidSaltSize},
		{"no values", fmtIIS(), nil, ErrInvalidComponentCount},
		{"too many values", fmtIIS(),
			vals(Int32Value(1), Int64Value(2), StringValue("x"), StringValue("y")), ErrInvalidComponentCount},
		{"type mismatch", fmtIIS(),
			vals(Int64Value(1)), ErrTypeMismatch},
		{"string for int64 slot", fmtIIS(),
			vals(Int32Value(1), StringValue("x")), ErrTypeMismatch},
		{"unknown slot type", &KeyFormat{Encoding: FormattedEncoding, Components: []ComponentSlot{{"a", ComponentType(9)}}},
			vals(Unset), ErrUnknownComponentType},
	}
	for _, tt := range tests {
		m, err := NewMatcher(tt.format, tt.values...)
		if !errors.Is(err, tt.expected) {
			t.Errorf("** %s: got error %v, wanted %v", tt.name, err, tt.expected)
		}
		if m != nil {
			t.Errorf("** %s: got a matcher despite the error", tt.name)
		}
	}
}

func TestMatcherEqual(t *testing.T) {
	short := mustMatcher(t, fmtIIS(), Int32Value(42))
	padded := mustMatcher(t, fmtIIS(), Int32Value(42), Unset, Unset)
	other := mustMatcher(t, fmtIIS(), Int32Value(43))
	salted := mustMatcher(t, fmtSaltedIIS(2), Int32Value(42))

	if !short.Equal(padded) {
		t.Errorf("** short and padded matchers are not equal")
	}
	if !padded.Equal(short) {
		t.Errorf("** Equal is not symmetric")
	}
	if short.Equal(other) {
		t.Errorf("** matchers with different values are equal")
	}
	if short.Equal(salted) {
		t.Errorf("** matchers with different formats are equal")
	}
	if short.Equal(nil) {
		t.Errorf("** matcher equals nil")
	}
}

func TestMatcherImmutable(t *testing.T) {
	f := fmtSaltedIIS(2)
	m := mustMatcher(t, f, Int32Value(42))
	before := m.Compile().Expr()

	// Mutating the caller's format or the accessor results must not leak
	// into the matcher.
	f.Salt.HashSize = 9
	f.Components[0] = ComponentSlot{"z", TypeString}
	m.Components()[0] = StringValue("boo")
	m.Format().Encoding = RawEncoding

	if after := m.Compile().Expr(); after != before {
		t.Errorf("** pattern changed from %s to %s", before, after)
	}
}

func TestMatcherAccessors(t *testing.T) {
	m := mustMatcher(t, fmtIIS(), Int32Value(42), Int64Value(7))
	deepEqual(t, m.Components(), vals(Int32Value(42), Int64Value(7), Unset))
	if !m.Format().Equal(fmtIIS()) {
		t.Errorf("** Format() does not round-trip")
	}
	deepEqual(t, m.String(), `Matcher(int32(42), int64(7), unset)`)
}

func TestCompileRepeatable(t *testing.T) {
	m := mustMatcher(t, fmtIIS(), Int32Value(42))
	a, b := m.Compile(), m.Compile()
	if a.Expr() != b.Expr() {
		t.Errorf("** repeated compilation differs: %s vs %s", a.Expr(), b.Expr())
	}
}

// ---- shared test fixtures and helpers ----

func slotsIIS() []ComponentSlot {
	return []ComponentSlot{{"a", TypeInt32}, {"b", TypeInt64}, {"c", TypeString}}
}

func fmtIIS() *KeyFormat {
	return &KeyFormat{Encoding: FormattedEncoding, Components: slotsIIS()}
}

func fmtSaltedIIS(hashSize int) *KeyFormat {
	return &KeyFormat{Encoding: FormattedEncoding, Salt: &Salt{HashSize: hashSize}, Components: slotsIIS()}
}

func vals(vv ...Value) []Value {
	return vv
}

func mustMatcher(t testing.TB, f *KeyFormat, values ...Value) *Matcher {
	t.Helper()
	return must(NewMatcher(f, values...))
}

func mustKey(t testing.TB, f *KeyFormat, values ...Value) []byte {
	t.Helper()
	return must(EncodeKey(f, values...))
}

func deepEqual[T any](t testing.TB, a, e T) {
	if !reflect.DeepEqual(a, e) {
		t.Helper()
		t.Errorf("** got %v, wanted %v", a, e)
	}
}

func x(data string) []byte {
	data = strings.ReplaceAll(data, " ", "")
	return must(hex.DecodeString(data))
}
