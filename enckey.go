package keymatch

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"strings"
)

// Order-preserving component encoding. Integers are big-endian fixed-width
// two's complement with bit 7 of byte 0 flipped, which maps signed order onto
// unsigned byte-lexicographic order. Strings are raw UTF-8 bytes terminated
// by a single 0x00; the terminator keeps "ab" sorting before "b" while still
// delimiting variable-length components.

// maxHashSize bounds Salt.HashSize: the salt is a truncated md5 digest, so
// it can never exceed the digest length.
const maxHashSize = md5.Size

func appendInt32(buf []byte, v int32) []byte {
	off, buf := grow(buf, 4)
	binary.BigEndian.PutUint32(buf[off:], uint32(v)^0x80000000)
	return buf
}

func appendInt64(buf []byte, v int64) []byte {
	off, buf := grow(buf, 8)
	binary.BigEndian.PutUint64(buf[off:], uint64(v)^0x8000000000000000)
	return buf
}

func appendStringz(buf []byte, s string) []byte {
	buf = appendRaw(buf, []byte(s))
	off, buf := grow(buf, 1)
	buf[off] = 0
	return buf
}

// EncodeKey builds the encoded row key for the given tuple under the given
// format. Trailing components may be omitted (or passed as Unset), producing
// a shorter key; a gap before a later concrete value is an error because the
// key layout has no way to express it. This replicates the store's own key
// construction byte for byte and is what matchers are evaluated against.
func EncodeKey(f *KeyFormat, values ...Value) ([]byte, error) {
	if f.Encoding != FormattedEncoding {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedEncoding, f.Encoding)
	}
	n := len(f.Components)
	if len(values) == 0 || len(values) > n {
		return nil, fmt.Errorf("%w: got %d values for %d slots", ErrInvalidComponentCount, len(values), n)
	}

	var body []byte
	done := false // true once an unset position has been seen
	for i, v := range values {
		slot := f.Components[i]
		if !v.IsSet() {
			done = true
			continue
		}
		if done {
			return nil, fmt.Errorf("keymatch: component %q supplied after an omitted one", slot.Name)
		}
		if v.Kind() != slot.Type {
			return nil, fmt.Errorf("%w: component %q: got %v, wanted %v", ErrTypeMismatch, slot.Name, v.Kind(), slot.Type)
		}
		switch slot.Type {
		case TypeInt32:
			body = appendInt32(body, v.Int32())
		case TypeInt64:
			body = appendInt64(body, v.Int64())
		case TypeString:
			// An empty string encodes as a lone delimiter, which the
			// unset-string pattern (one or more non-zero bytes, then 0x00)
			// can never match; such a key would be invisible to prefix
			// matchers.
			if v.Str() == "" {
				return nil, fmt.Errorf("keymatch: component %q: empty string", slot.Name)
			}
			if strings.IndexByte(v.Str(), 0) >= 0 {
				return nil, fmt.Errorf("keymatch: component %q: string contains a zero byte", slot.Name)
			}
			body = appendStringz(body, v.Str())
		default:
			return nil, fmt.Errorf("%w: component %q: %v", ErrUnknownComponentType, slot.Name, slot.Type)
		}
	}
	if body == nil {
		return nil, fmt.Errorf("%w: first component must be set", ErrInvalidComponentCount)
	}

	if f.Salt == nil || f.Salt.HashSize == 0 {
		return body, nil
	}
	if f.Salt.HashSize < 0 || f.Salt.HashSize > maxHashSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSaltSize, f.Salt.HashSize)
	}
	sum := md5.Sum(body)
	key := appendRaw(nil, sum[:f.Salt.HashSize])
	if f.Salt.SuppressKeyMaterialization {
		return key, nil
	}
	return appendRaw(key, body), nil
}
