package keymatch

import "fmt"

// Pattern fragments are emitted for a text model where every key byte maps
// 1:1 to the character of the same code point, so a literal byte is always
// written as an explicit \x{..} escape. That sidesteps metacharacter escaping
// entirely: no byte value ever reaches the pattern verbatim.

const hexDigits = "0123456789abcdef"

func appendByteLiteral(p []byte, b byte) []byte {
	return append(p, '\\', 'x', '{', hexDigits[b>>4], hexDigits[b&0xf], '}')
}

func appendLiteralBytes(p []byte, data []byte) []byte {
	for _, b := range data {
		p = appendByteLiteral(p, b)
	}
	return p
}

// appendFragment appends the pattern fragment matching all and only the byte
// encodings consistent with v in a slot of the given type. Unset fragments
// carry a zero-length alternative: a trailing run of unset components may be
// missing from the key entirely.
func appendFragment(p []byte, typ ComponentType, v Value) []byte {
	switch typ {
	case TypeInt32:
		if v.IsSet() {
			return appendLiteralBytes(p, appendInt32(nil, v.Int32()))
		}
		return append(p, `(?:.{4})?`...)
	case TypeInt64:
		if v.IsSet() {
			return appendLiteralBytes(p, appendInt64(nil, v.Int64()))
		}
		return append(p, `(?:.{8})?`...)
	case TypeString:
		if v.IsSet() {
			p = appendLiteralBytes(p, []byte(v.Str()))
			return appendByteLiteral(p, 0)
		}
		return append(p, `(?:[^\x{00}]+\x{00})?`...)
	default:
		// NewMatcher validates slot types, so this is unreachable.
		panic(fmt.Errorf("%v: %v", ErrUnknownComponentType, typ))
	}
}
