package keymatch

import "testing"

func TestFragments(t *testing.T) {
	tests := []struct {
		typ      ComponentType
		value    Value
		expected string
	}{
		{TypeInt32, Int32Value(100), `\x{80}\x{00}\x{00}\x{64}`},
		{TypeInt32, Int32Value(-1), `\x{7f}\x{ff}\x{ff}\x{ff}`},
		{TypeInt32, Unset, `(?:.{4})?`},
		{TypeInt64, Int64Value(2000), `\x{80}\x{00}\x{00}\x{00}\x{00}\x{00}\x{07}\x{d0}`},
		{TypeInt64, Unset, `(?:.{8})?`},
		{TypeString, StringValue("ab"), `\x{61}\x{62}\x{00}`},
		{TypeString, StringValue(""), `\x{00}`},
		{TypeString, Unset, `(?:[^\x{00}]+\x{00})?`},

		// Regex metacharacters in string values come out as escapes, never
		// as operators.
		{TypeString, StringValue(".*"), `\x{2e}\x{2a}\x{00}`},
		{TypeString, StringValue("a|b"), `\x{61}\x{7c}\x{62}\x{00}`},

		// Non-ASCII text contributes its UTF-8 bytes, one escape per byte.
		{TypeString, StringValue("é"), `\x{c3}\x{a9}\x{00}`},
	}
	for _, tt := range tests {
		actual := string(appendFragment(nil, tt.typ, tt.value))
		if actual != tt.expected {
			t.Errorf("** fragment(%v, %v) = %s, wanted %s", tt.typ, tt.value, actual, tt.expected)
		}
	}
}

func TestFragmentUnknownTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("** fragment of unknown type did not panic")
		}
	}()
	appendFragment(nil, ComponentType(42), Unset)
}

func TestCompiledExpr(t *testing.T) {
	m := mustMatcher(t, fmtSaltedIIS(2), Int32Value(100), Unset, StringValue("value"))
	expected := `(?s)\A.{2}\x{80}\x{00}\x{00}\x{64}(?:.{8})?\x{76}\x{61}\x{6c}\x{75}\x{65}\x{00}\z`
	pat := m.Compile()
	if pat.Expr() != expected {
		t.Errorf("** Expr() = %s, wanted %s", pat.Expr(), expected)
	}
	if pat.Charset() != "ISO-8859-1" {
		t.Errorf("** Charset() = %s, wanted ISO-8859-1", pat.Charset())
	}
}
