package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ColumnRef references a column in one of two forms.
//
// The plain form carries Expr, a qualified string rendered as-is ("users.id",
// "COUNT(users.id)"). The named form carries TableAlias and Name, plus an
// optional output Alias. TableAlias must match a declared table's name or alias.
type ColumnRef struct {
	Expr       string `json:"-"`
	TableAlias string `json:"tableAlias,omitempty"`
	Name       string `json:"name,omitempty"`
	Alias      string `json:"alias,omitempty"`
}

// IsPlain reports whether the reference is a plain qualified string.
func (c ColumnRef) IsPlain() bool {
	return c.Expr != ""
}

// GetName returns the bare column name. For the plain form this is the text
// after the last dot.
func (c ColumnRef) GetName() string {
	if !c.IsPlain() {
		return c.Name
	}
	if i := lastDotIndex(c.Expr); i != -1 {
		return c.Expr[i+1:]
	}
	return c.Expr
}

// UnmarshalJSON accepts either a qualified string or a {tableAlias, name, alias} object.
func (c *ColumnRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var expr string
		if err := json.Unmarshal(data, &expr); err != nil {
			return err
		}
		*c = ColumnRef{Expr: expr}
		return nil
	}

	type plain ColumnRef
	var obj plain
	if err := strictUnmarshal(data, &obj); err != nil {
		return fmt.Errorf("column: %w", err)
	}
	*c = ColumnRef(obj)
	return nil
}

// MarshalJSON writes the plain form as a string.
func (c ColumnRef) MarshalJSON() ([]byte, error) {
	if c.IsPlain() {
		return json.Marshal(c.Expr)
	}
	type plain ColumnRef
	return json.Marshal(plain(c))
}

// lastDotIndex finds the last dot in a string.
func lastDotIndex(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return i
		}
	}
	return -1
}
