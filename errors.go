package keymatch

import "errors"

// Matcher construction and decoding failures. All of these are permanent
// validation errors; none is retryable. Returned errors wrap one of these
// sentinels and add slot context, so test with errors.Is.
var (
	// ErrUnsupportedEncoding is returned when the key format is not the
	// formatted multi-component kind.
	ErrUnsupportedEncoding = errors.New("keymatch: unsupported key format encoding")

	// ErrComponentsNotRecoverable is returned when the salt suppresses key
	// materialization, leaving no component bytes to match against.
	ErrComponentsNotRecoverable = errors.New("keymatch: salt suppresses key materialization")

	// ErrInvalidComponentCount is returned when the tuple is empty or has
	// more values than the format has component slots.
	ErrInvalidComponentCount = errors.New("keymatch: invalid component count")

	// ErrTypeMismatch is returned when a supplied value's type disagrees
	// with its slot's declared type.
	ErrTypeMismatch = errors.New("keymatch: component type mismatch")

	// ErrUnknownComponentType is returned when a slot declares a component
	// type this package does not know how to encode.
	ErrUnknownComponentType = errors.New("keymatch: unknown component type")

	// ErrInvalidSaltSize is returned when a salt's hash size is negative or
	// larger than the hash the key construction scheme produces.
	ErrInvalidSaltSize = errors.New("keymatch: invalid salt hash size")

	// ErrMalformedInput is returned when a serialized matcher document
	// violates the expected JSON shape.
	ErrMalformedInput = errors.New("keymatch: malformed serialized matcher")
)
