package specql

import "github.com/zoobzio/specql/internal/types"

// T creates a table reference with an optional alias.
func T(name string, alias ...string) TableRef {
	t := types.TableRef{Name: name}
	if len(alias) > 0 {
		t.Alias = alias[0]
	}
	return t
}

// C creates a named column reference with an optional output alias.
func C(tableAlias, name string, alias ...string) ColumnRef {
	c := types.ColumnRef{TableAlias: tableAlias, Name: name}
	if len(alias) > 0 {
		c.Alias = alias[0]
	}
	return c
}

// Raw creates a plain column reference rendered exactly as given,
// such as "users.id" or "COUNT(users.id)".
func Raw(expr string) ColumnRef {
	return types.ColumnRef{Expr: expr}
}

// Cmp creates a comparison. Values may be scalars or ColumnRefs.
func Cmp(col ColumnRef, op Operator, vals ...any) Comparison {
	return types.Comparison{Col: col, Op: op, Vals: types.Values(vals)}
}

// Agg creates an aggregate projection.
func Agg(fn AggregateFunc, col ColumnRef) *Aggregate {
	return &types.Aggregate{Type: fn, Col: col}
}
