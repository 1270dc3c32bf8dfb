package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TableRef represents a queryable relation, optionally aliased.
// This is exported from the internal package so dialects can use it,
// but external users cannot import this package.
type TableRef struct {
	Name  string `json:"name"`
	Alias string `json:"alias,omitempty"`
}

// GetName returns the table name.
func (t TableRef) GetName() string {
	return t.Name
}

// GetAlias returns the table alias.
func (t TableRef) GetAlias() string {
	return t.Alias
}

// UnmarshalJSON accepts either a bare table name or a {name, alias} object.
func (t *TableRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*t = TableRef{Name: name}
		return nil
	}

	type plain TableRef
	var obj plain
	if err := strictUnmarshal(data, &obj); err != nil {
		return fmt.Errorf("table: %w", err)
	}
	*t = TableRef(obj)
	return nil
}

// MarshalJSON writes the bare name when there is no alias.
func (t TableRef) MarshalJSON() ([]byte, error) {
	if t.Alias == "" {
		return json.Marshal(t.Name)
	}
	type plain TableRef
	return json.Marshal(plain(t))
}

// strictUnmarshal decodes an object, rejecting unknown fields.
func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
