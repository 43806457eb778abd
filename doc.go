/*
Package keymatch matches the encoded row keys of a sorted key-value store
against partially-specified component tuples.

Row keys use a formatted, multi-component encoding: an optional fixed-length
salt prefix followed by typed components, each encoded so that
byte-lexicographic order of the encoded key equals the natural order of the
original tuple.

	Key layout:
	+--------------------------+-------------+-------+-------------+
	| salt (hashSize bytes)    | component 1 |  ...  | component N |
	+--------------------------+-------------+-------+-------------+

	Int32 component:  4 bytes, big-endian two's complement, bit 7 of
	                  byte 0 flipped (signed order becomes byte order).
	Int64 component:  same, 8 bytes.
	String component: raw UTF-8 bytes followed by a single 0x00 byte.
	                  Strings must be non-empty and must not contain 0x00.

Trailing components may be omitted from a key entirely; a key for (42) sorts
immediately before every key for (42, ...).

# Matching

A Matcher pins some tuple positions to concrete values and leaves others
unset. Compile turns it into a single anchored regular expression over a text
model where every key byte maps 1:1 to the character of the same code point
(ISO-8859-1), so all 256 byte values are representable as pattern literals.
An unset position matches any value of the slot's type, including the case
where the slot and everything after it were omitted from the key.

Positions not supplied at construction are treated as unset, which makes a
short tuple a prefix matcher:

	m, err := keymatch.NewMatcher(format, keymatch.Int32Value(42))

matches every key whose first component is 42, regardless of the rest.

The compiled pattern is handed to whatever evaluates predicates against the
store; Match on CompiledPattern is the reference evaluation, and ScanBucket
applies it to a Bolt bucket directly.
*/
package keymatch
