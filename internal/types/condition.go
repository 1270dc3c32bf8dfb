package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Comparison represents a single predicate: a column, an operator and its operands.
// Operands are literal values or column references, never raw SQL.
type Comparison struct {
	Col  ColumnRef `json:"col"`
	Op   Operator  `json:"op"`
	Vals Values    `json:"vals,omitempty"`
}

// Values is the ordered operand list of a Comparison.
//
// Elements are string, bool, any Go integer or float kind, json.Number, or ColumnRef.
type Values []any

// UnmarshalJSON decodes an array of operands. A bare scalar decodes to a
// one-element list. Numbers decode as json.Number, objects as ColumnRef.
func (v *Values) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = nil
		return nil
	}

	var raw []json.RawMessage
	if len(data) > 0 && data[0] == '[' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		raw = []json.RawMessage{data}
	}

	out := make(Values, 0, len(raw))
	for i, item := range raw {
		val, err := decodeValue(item)
		if err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
		out = append(out, val)
	}
	*v = out
	return nil
}

func decodeValue(data json.RawMessage) (any, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var col ColumnRef
		if err := col.UnmarshalJSON(data); err != nil {
			return nil, err
		}
		return col, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var val any
	if err := dec.Decode(&val); err != nil {
		return nil, err
	}
	return val, nil
}
