// Package specql renders declarative query specs into read-only SQL SELECT statements.
//
// A QuerySpec names tables, columns, joins, predicates, grouping, ordering,
// a row limit and a target dialect. Render validates the spec, assembles the
// statement in SQL grammar order and runs the result through a safety guard
// that rejects anything other than a single SELECT.
//
// # Basic Usage
//
// Specs can be written by hand, decoded from JSON or YAML, or built fluently:
//
//	sql, err := specql.Select(specql.T("users")).
//		Columns(specql.C("users", "id"), specql.C("users", "name")).
//		Where(specql.Cmp(specql.C("users", "status"), specql.EQ, "active")).
//		For(specql.MySQL).
//		Render()
//	// SELECT users.id, users.name FROM users WHERE users.status = 'active'
//
// # Dialects
//
// Supported dialects are mysql, postgres, sqlite and mssql. Each dialect
// package declares its capabilities and rejects the features its engine
// cannot express. Row limits render as a LIMIT suffix everywhere except
// mssql, which uses SELECT TOP n.
//
// # Schema-Validated Usage
//
// For schema safety, create a SpecQL instance from a DBML project:
//
//	instance, err := specql.NewFromDBML(project)
//	if err != nil {
//		return err
//	}
//
//	// These panic if the table or column doesn't exist in the schema
//	users := instance.T("users")
//	email := instance.C("users", "email")
//
// # Errors
//
// Validation failures match ErrInvalidSpec and the sentinel of the rule that
// failed. Safety guard rejections match ErrUnsafeStatement. Both are
// reported through the returned error; no SQL is returned alongside one.
package specql

import (
	"github.com/zoobzio/specql/internal/render"
	"github.com/zoobzio/specql/internal/types"
)

// QuerySpec describes a read-only query.
// This is re-exported from internal/types for use by consumers.
type QuerySpec = types.QuerySpec

// TableRef names a table with an optional alias.
type TableRef = types.TableRef

// ColumnRef is a column reference: a plain expression or a named column.
type ColumnRef = types.ColumnRef

// Comparison is a single predicate: column, operator and operands.
type Comparison = types.Comparison

// Values holds the operands of a comparison.
type Values = types.Values

// Join describes a joined table.
type Join = types.Join

// Aggregate is the aggregate projection of a grouped query.
type Aggregate = types.Aggregate

// Dialect identifies a target SQL engine.
type Dialect = types.Dialect

// Re-export dialect constants for public API.
const (
	MySQL    = types.MySQL
	Postgres = types.Postgres
	SQLite   = types.SQLite
	MSSQL    = types.MSSQL
)

// Operator represents SQL comparison operators.
type Operator = types.Operator

// Re-export operator constants for public API.
const (
	// Basic comparison operators.
	EQ = types.EQ
	NE = types.NE
	GT = types.GT
	GE = types.GE
	LT = types.LT
	LE = types.LE

	// Extended operators.
	LIKE       = types.LIKE
	NotLike    = types.NotLike
	IN         = types.IN
	NotIn      = types.NotIn
	Between    = types.Between
	NotBetween = types.NotBetween
	IsNull     = types.IsNull
	IsNotNull  = types.IsNotNull
)

// JoinType represents the kind of join.
type JoinType = types.JoinType

// Re-export join type constants for public API.
const (
	InnerJoin = types.InnerJoin
	LeftJoin  = types.LeftJoin
	RightJoin = types.RightJoin
	FullJoin  = types.FullJoin
)

// AggregateFunc represents SQL aggregate functions.
type AggregateFunc = types.AggregateFunc

// Re-export aggregate function constants for public API.
const (
	AggCount = types.AggCount
	AggSum   = types.AggSum
	AggAvg   = types.AggAvg
	AggMin   = types.AggMin
	AggMax   = types.AggMax
)

// Renderer is implemented by each dialect package.
type Renderer = render.Renderer

// Capabilities describes the SQL features supported by a dialect.
type Capabilities = render.Capabilities

// RowLimitStyle indicates where a dialect places its row limit.
type RowLimitStyle = render.RowLimitStyle

// Re-export row limit styles for public API.
const (
	RowLimitSuffix = render.RowLimitSuffix
	RowLimitTop    = render.RowLimitTop
)

// ValidationError reports the rule a spec violates.
type ValidationError = render.ValidationError

// UnsupportedFeatureError indicates a feature not supported by the dialect.
type UnsupportedFeatureError = render.UnsupportedFeatureError

// UnsafeStatementError reports a safety guard rejection.
type UnsafeStatementError = render.UnsafeStatementError

// Re-export error classes and rule sentinels for use with errors.Is.
var (
	ErrInvalidSpec     = render.ErrInvalidSpec
	ErrUnsafeStatement = render.ErrUnsafeStatement

	ErrNoTables              = render.ErrNoTables
	ErrAggregateGroupBy      = render.ErrAggregateGroupBy
	ErrHavingRequiresGroupBy = render.ErrHavingRequiresGroupBy
	ErrDuplicateAlias        = render.ErrDuplicateAlias
	ErrUnknownTableAlias     = render.ErrUnknownTableAlias
	ErrUnsupportedDialect    = render.ErrUnsupportedDialect
	ErrUnsupportedFeature    = render.ErrUnsupportedFeature
	ErrUngroupedColumn       = render.ErrUngroupedColumn
	ErrJoinWithoutCondition  = render.ErrJoinWithoutCondition
	ErrWhereRequired         = render.ErrWhereRequired
	ErrMalformed             = render.ErrMalformed
	ErrSchemaMismatch        = render.ErrSchemaMismatch

	ErrUnsafeQuery = render.ErrUnsafeQuery
	ErrNotSelect   = render.ErrNotSelect
)
