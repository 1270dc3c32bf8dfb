package types

import (
	"encoding/json"
	"strings"
)

// Dialect identifies the target SQL engine family.
type Dialect string

const (
	MySQL    Dialect = "mysql"
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
	MSSQL    Dialect = "mssql"
)

// JoinType represents the type of SQL join.
type JoinType string

const (
	InnerJoin JoinType = "inner"
	LeftJoin  JoinType = "left"
	RightJoin JoinType = "right"
	FullJoin  JoinType = "full"
)

// Valid reports whether j is a supported join type.
func (j JoinType) Valid() bool {
	switch j {
	case InnerJoin, LeftJoin, RightJoin, FullJoin:
		return true
	}
	return false
}

// UnmarshalJSON lower-cases the join type.
func (j *JoinType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*j = JoinType(strings.ToLower(strings.TrimSpace(s)))
	return nil
}

// Join represents a SQL JOIN clause. At least one On condition is required.
type Join struct {
	Table string       `json:"table"`
	Type  JoinType     `json:"type"`
	On    []Comparison `json:"on"`
}

// AggregateFunc represents SQL aggregate functions.
type AggregateFunc string

const (
	AggCount AggregateFunc = "COUNT"
	AggSum   AggregateFunc = "SUM"
	AggAvg   AggregateFunc = "AVG"
	AggMin   AggregateFunc = "MIN"
	AggMax   AggregateFunc = "MAX"
)

// Valid reports whether a is a supported aggregate function.
func (a AggregateFunc) Valid() bool {
	switch a {
	case AggCount, AggSum, AggAvg, AggMin, AggMax:
		return true
	}
	return false
}

// UnmarshalJSON upper-cases the function name.
func (a *AggregateFunc) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = AggregateFunc(strings.ToUpper(strings.TrimSpace(s)))
	return nil
}

// Aggregate represents an aggregate projection such as SUM(orders.total).
type Aggregate struct {
	Type AggregateFunc `json:"type"`
	Col  ColumnRef     `json:"col"`
}

// QuerySpec is the root description of a read query.
// This is exported from the internal package so dialects can use it,
// but external users cannot import this package.
//
//nolint:govet // fieldalignment: Logical grouping is preferred over memory optimization
type QuerySpec struct {
	Tables    []TableRef   `json:"tables"`
	Columns   []ColumnRef  `json:"columns,omitempty"`
	Distinct  bool         `json:"distinct,omitempty"`
	Aggregate *Aggregate   `json:"aggregate,omitempty"`
	Joins     []Join       `json:"joins,omitempty"`
	Wheres    []Comparison `json:"wheres,omitempty"`
	GroupBy   []ColumnRef  `json:"groupBy,omitempty"`
	Having    []Comparison `json:"having,omitempty"`
	OrderBy   []string     `json:"orderBy,omitempty"`
	Limit     *int         `json:"limit,omitempty"`
	Client    Dialect      `json:"client"`
}

// Clone returns a copy of the spec that shares no slices with the original.
func (s *QuerySpec) Clone() *QuerySpec {
	if s == nil {
		return nil
	}
	out := *s
	out.Tables = append([]TableRef(nil), s.Tables...)
	out.Columns = append([]ColumnRef(nil), s.Columns...)
	out.GroupBy = append([]ColumnRef(nil), s.GroupBy...)
	out.OrderBy = append([]string(nil), s.OrderBy...)
	out.Wheres = cloneComparisons(s.Wheres)
	out.Having = cloneComparisons(s.Having)
	if s.Joins != nil {
		out.Joins = make([]Join, len(s.Joins))
		for i, j := range s.Joins {
			j.On = cloneComparisons(j.On)
			out.Joins[i] = j
		}
	}
	if s.Aggregate != nil {
		agg := *s.Aggregate
		out.Aggregate = &agg
	}
	if s.Limit != nil {
		limit := *s.Limit
		out.Limit = &limit
	}
	return &out
}

func cloneComparisons(in []Comparison) []Comparison {
	if in == nil {
		return nil
	}
	out := make([]Comparison, len(in))
	for i, c := range in {
		c.Vals = append(Values(nil), c.Vals...)
		out[i] = c
	}
	return out
}
