package keymatch

import (
	"regexp"
	"strings"
)

// PatternCharset is the single-byte-per-character text model a compiled
// pattern assumes: every key byte maps to the character of the same code
// point, so all 256 byte values are representable. Evaluators that take the
// expression elsewhere must apply the same mapping.
const PatternCharset = "ISO-8859-1"

// CompiledPattern is the full-match byte pattern produced from a Matcher.
// The zero value is not valid; obtain one from Matcher.Compile.
type CompiledPattern struct {
	expr string
	re   *regexp.Regexp
}

func compilePattern(expr string) CompiledPattern {
	return CompiledPattern{expr: expr, re: regexp.MustCompile(expr)}
}

// Expr returns the pattern expression, to be interpreted under
// PatternCharset.
func (p CompiledPattern) Expr() string {
	return p.expr
}

// Charset returns the text model the expression assumes.
func (p CompiledPattern) Charset() string {
	return PatternCharset
}

// Match reports whether the candidate key, in its entirety, could have been
// produced from a tuple consistent with the matcher's pinned positions.
func (p CompiledPattern) Match(key []byte) bool {
	return p.re.MatchString(latin1(key))
}

// latin1 widens each key byte to the rune of the same value. Keys are raw
// bytes, not UTF-8; matching them as Go strings directly would mangle
// anything past 0x7f.
func latin1(key []byte) string {
	var sb strings.Builder
	sb.Grow(len(key) * 2)
	for _, b := range key {
		sb.WriteRune(rune(b))
	}
	return sb.String()
}

// Polarity says what a scan does with keys the pattern matches. The store's
// own filter convention is inverted (a filter excludes rows), so the mapping
// is explicit rather than assumed.
type Polarity int

const (
	IncludeMatches Polarity = iota
	ExcludeMatches
)

func (p Polarity) keep(matched bool) bool {
	if p == ExcludeMatches {
		return !matched
	}
	return matched
}
