package types

import (
	"encoding/json"
	"strings"
)

// Operator represents query comparison operators.
type Operator string

const (
	// Basic comparison operators.
	EQ Operator = "="
	NE Operator = "!="
	GT Operator = ">"
	GE Operator = ">="
	LT Operator = "<"
	LE Operator = "<="

	// Extended operators.
	LIKE       Operator = "LIKE"
	NotLike    Operator = "NOT LIKE"
	IN         Operator = "IN"
	NotIn      Operator = "NOT IN"
	Between    Operator = "BETWEEN"
	NotBetween Operator = "NOT BETWEEN"
	IsNull     Operator = "IS NULL"
	IsNotNull  Operator = "IS NOT NULL"
)

// Split returns the base operator and whether it is negated.
// NOT IN splits to (IN, true); IS NOT NULL splits to (IS NULL, true).
func (o Operator) Split() (Operator, bool) {
	switch o {
	case NotLike:
		return LIKE, true
	case NotIn:
		return IN, true
	case NotBetween:
		return Between, true
	case IsNotNull:
		return IsNull, true
	default:
		return o, false
	}
}

// Valid reports whether o is a supported operator.
func (o Operator) Valid() bool {
	switch o {
	case EQ, NE, GT, GE, LT, LE,
		LIKE, NotLike, IN, NotIn, Between, NotBetween, IsNull, IsNotNull:
		return true
	}
	return false
}

// UnmarshalJSON normalizes case and inner whitespace ("not  in" -> "NOT IN").
func (o *Operator) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*o = Operator(strings.ToUpper(strings.Join(strings.Fields(s), " ")))
	return nil
}
