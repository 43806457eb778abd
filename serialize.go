package keymatch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Serialized matcher document:
//
//	{
//	  "rowKeyFormat": { ... },
//	  "components": [ 100, 2000, "value", null ]
//	}
//
// Component entries are decoded by dispatching on the slot's declared type,
// never by inferring a type from the JSON value's shape: a null entry and an
// absent trailing entry are otherwise indistinguishable.
type matcherJSON struct {
	RowKeyFormat *KeyFormat        `json:"rowKeyFormat"`
	Components   []json.RawMessage `json:"components"`
}

var jsonNull = json.RawMessage("null")

func (m *Matcher) MarshalJSON() ([]byte, error) {
	// Trailing Unset positions are implied by normalization; keep at least
	// one entry so the document decodes even for an all-unset matcher.
	n := len(m.values)
	for n > 1 && !m.values[n-1].IsSet() {
		n--
	}
	comps := make([]json.RawMessage, n)
	for i, v := range m.values[:n] {
		switch v.kind {
		case typeUnset:
			comps[i] = jsonNull
		case TypeString:
			comps[i] = must(json.Marshal(v.str))
		default:
			comps[i] = strconv.AppendInt(nil, v.num, 10)
		}
	}
	return json.Marshal(matcherJSON{RowKeyFormat: m.format, Components: comps})
}

func (m *Matcher) UnmarshalJSON(data []byte) error {
	var doc matcherJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if doc.RowKeyFormat == nil {
		return fmt.Errorf("%w: missing rowKeyFormat", ErrMalformedInput)
	}
	if doc.Components == nil {
		return fmt.Errorf("%w: components is not an array", ErrMalformedInput)
	}

	slots := doc.RowKeyFormat.Components
	values := make([]Value, 0, len(doc.Components))
	for i, raw := range doc.Components {
		if i >= len(slots) {
			return fmt.Errorf("%w: got %d entries for %d slots", ErrInvalidComponentCount, len(doc.Components), len(slots))
		}
		v, err := decodeComponent(slots[i], raw)
		if err != nil {
			return err
		}
		values = append(values, v)
	}

	decoded, err := NewMatcher(doc.RowKeyFormat, values...)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}

func decodeComponent(slot ComponentSlot, raw json.RawMessage) (Value, error) {
	lit := string(bytes.TrimSpace(raw))
	if lit == "null" {
		return Unset, nil
	}
	switch slot.Type {
	case TypeInt32:
		n, err := strconv.ParseInt(lit, 10, 32)
		if err != nil {
			return Unset, fmt.Errorf("%w: component %q: %s is not an int32", ErrMalformedInput, slot.Name, lit)
		}
		return Int32Value(int32(n)), nil
	case TypeInt64:
		n, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return Unset, fmt.Errorf("%w: component %q: %s is not an int64", ErrMalformedInput, slot.Name, lit)
		}
		return Int64Value(n), nil
	case TypeString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Unset, fmt.Errorf("%w: component %q: %s is not a string", ErrMalformedInput, slot.Name, lit)
		}
		return StringValue(s), nil
	default:
		return Unset, fmt.Errorf("%w: component %q: %v", ErrUnknownComponentType, slot.Name, slot.Type)
	}
}
