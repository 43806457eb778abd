package keymatch

import (
	"fmt"
	"strconv"
)

// Matcher matches encoded row keys against a partially-specified component
// tuple: some positions pinned to concrete values, the rest Unset. Matchers
// are immutable once constructed.
type Matcher struct {
	format *KeyFormat
	values []Value // right-padded with Unset to len(format.Components)
}

// NewMatcher validates the tuple against the format and builds a matcher.
// The tuple may be shorter than the slot count; missing trailing positions
// are treated as Unset, which is what makes a short tuple a prefix matcher.
//
// Fails with ErrUnsupportedEncoding, ErrComponentsNotRecoverable,
// ErrInvalidSaltSize, ErrInvalidComponentCount, ErrTypeMismatch or
// ErrUnknownComponentType; on any failure no matcher is constructed.
func NewMatcher(f *KeyFormat, values ...Value) (*Matcher, error) {
	if f.Encoding != FormattedEncoding {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedEncoding, f.Encoding)
	}
	if f.Salt != nil {
		if f.Salt.SuppressKeyMaterialization {
			return nil, ErrComponentsNotRecoverable
		}
		// Compile interpolates the hash size into the pattern, so an
		// unbounded value must not survive construction.
		if f.Salt.HashSize < 0 || f.Salt.HashSize > maxHashSize {
			return nil, fmt.Errorf("%w: %d", ErrInvalidSaltSize, f.Salt.HashSize)
		}
	}
	n := len(f.Components)
	if len(values) == 0 || len(values) > n {
		return nil, fmt.Errorf("%w: got %d values for %d slots", ErrInvalidComponentCount, len(values), n)
	}

	norm := make([]Value, n)
	copy(norm, values)
	for i, slot := range f.Components {
		if !slot.Type.valid() {
			return nil, fmt.Errorf("%w: component %q: %v", ErrUnknownComponentType, slot.Name, slot.Type)
		}
		if v := norm[i]; v.IsSet() && v.Kind() != slot.Type {
			return nil, fmt.Errorf("%w: component %q: got %v, wanted %v", ErrTypeMismatch, slot.Name, v.Kind(), slot.Type)
		}
	}
	return &Matcher{format: f.clone(), values: norm}, nil
}

// Format returns a copy of the matcher's key format.
func (m *Matcher) Format() *KeyFormat {
	return m.format.clone()
}

// Components returns a copy of the normalized tuple, one Value per slot.
func (m *Matcher) Components() []Value {
	return append([]Value(nil), m.values...)
}

// Equal reports structural equality: same key format and same normalized
// tuple. Two matchers built from a short tuple and its Unset-padded
// equivalent are equal.
func (m *Matcher) Equal(other *Matcher) bool {
	if m == nil || other == nil {
		return m == other
	}
	if !m.format.Equal(other.format) {
		return false
	}
	if len(m.values) != len(other.values) {
		return false
	}
	for i, v := range m.values {
		if v != other.values[i] {
			return false
		}
	}
	return true
}

func (m *Matcher) String() string {
	var p []byte
	p = append(p, "Matcher("...)
	for i, v := range m.values {
		if i > 0 {
			p = append(p, ", "...)
		}
		p = append(p, v.String()...)
	}
	return string(append(p, ')'))
}

// Compile emits the anchored pattern matching exactly the keys consistent
// with the pinned positions. Compilation is pure and cheap; the result is not
// cached. The salt prefix, when present, is skipped as opaque bytes.
func (m *Matcher) Compile() CompiledPattern {
	p := []byte(`(?s)\A`)
	if hs := m.format.hashSize(); hs > 0 {
		p = append(p, ".{"...)
		p = strconv.AppendInt(p, int64(hs), 10)
		p = append(p, '}')
	}
	for i, slot := range m.format.Components {
		p = appendFragment(p, slot.Type, m.values[i])
	}
	p = append(p, `\z`...)
	return compilePattern(string(p))
}
