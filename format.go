package keymatch

import "fmt"

// ComponentType identifies the typed, order-preserving encoding of one key
// component.
type ComponentType int

const (
	typeUnset ComponentType = iota // zero value, reserved for unset Values

	TypeInt32
	TypeInt64
	TypeString
)

func (t ComponentType) valid() bool {
	return t == TypeInt32 || t == TypeInt64 || t == TypeString
}

func (t ComponentType) String() string {
	switch t {
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeString:
		return "string"
	default:
		return fmt.Sprintf("ComponentType(%d)", int(t))
	}
}

func (t ComponentType) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownComponentType, int(t))
	}
	return []byte(t.String()), nil
}

func (t *ComponentType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "int32":
		*t = TypeInt32
	case "int64":
		*t = TypeInt64
	case "string":
		*t = TypeString
	default:
		return fmt.Errorf("%w: %q", ErrUnknownComponentType, b)
	}
	return nil
}

// KeyEncoding identifies how a table builds its row keys. Only
// FormattedEncoding materializes typed components; the other kinds exist so
// that key format descriptors for such tables still parse and can be rejected
// with a proper error.
type KeyEncoding int

const (
	RawEncoding KeyEncoding = iota
	HashEncoding
	HashPrefixEncoding
	FormattedEncoding
)

func (e KeyEncoding) String() string {
	switch e {
	case RawEncoding:
		return "raw"
	case HashEncoding:
		return "hash"
	case HashPrefixEncoding:
		return "hash-prefix"
	case FormattedEncoding:
		return "formatted"
	default:
		return fmt.Sprintf("KeyEncoding(%d)", int(e))
	}
}

func (e KeyEncoding) MarshalText() ([]byte, error) {
	if e < RawEncoding || e > FormattedEncoding {
		return nil, fmt.Errorf("keymatch: invalid key encoding %d", int(e))
	}
	return []byte(e.String()), nil
}

func (e *KeyEncoding) UnmarshalText(b []byte) error {
	switch string(b) {
	case "raw":
		*e = RawEncoding
	case "hash":
		*e = HashEncoding
	case "hash-prefix":
		*e = HashPrefixEncoding
	case "formatted":
		*e = FormattedEncoding
	default:
		return fmt.Errorf("keymatch: invalid key encoding %q", b)
	}
	return nil
}

// Salt describes the fixed-length hash prefix of a formatted key. The hash is
// opaque and never participates in matching. If SuppressKeyMaterialization is
// set, component bytes are not written to the key at all and component
// matching is impossible.
type Salt struct {
	HashSize                   int  `json:"hashSize"`
	SuppressKeyMaterialization bool `json:"suppressKeyMaterialization,omitempty"`
}

// ComponentSlot declares one typed position of a formatted key. Slot order is
// the order component bytes appear in the key, immediately after the salt.
type ComponentSlot struct {
	Name string        `json:"name"`
	Type ComponentType `json:"type"`
}

// KeyFormat describes a table's row key layout.
type KeyFormat struct {
	Encoding   KeyEncoding     `json:"encoding"`
	Salt       *Salt           `json:"salt,omitempty"`
	Components []ComponentSlot `json:"components"`
}

func (f *KeyFormat) Equal(other *KeyFormat) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.Encoding != other.Encoding {
		return false
	}
	if (f.Salt == nil) != (other.Salt == nil) {
		return false
	}
	if f.Salt != nil && *f.Salt != *other.Salt {
		return false
	}
	if len(f.Components) != len(other.Components) {
		return false
	}
	for i, slot := range f.Components {
		if slot != other.Components[i] {
			return false
		}
	}
	return true
}

func (f *KeyFormat) clone() *KeyFormat {
	c := &KeyFormat{Encoding: f.Encoding}
	if f.Salt != nil {
		salt := *f.Salt
		c.Salt = &salt
	}
	c.Components = append([]ComponentSlot(nil), f.Components...)
	return c
}

func (f *KeyFormat) hashSize() int {
	if f.Salt == nil {
		return 0
	}
	return f.Salt.HashSize
}
