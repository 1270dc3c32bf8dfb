package specql

import (
	"fmt"

	"github.com/zoobzio/specql/internal/types"
)

// Builder provides a fluent API for constructing query specs.
type Builder struct {
	spec *types.QuerySpec
	err  error
}

// Select creates a new builder reading from the given tables.
func Select(tables ...TableRef) *Builder {
	return &Builder{
		spec: &types.QuerySpec{
			Tables: append([]types.TableRef(nil), tables...),
		},
	}
}

// Columns appends projected columns.
func (b *Builder) Columns(cols ...ColumnRef) *Builder {
	b.spec.Columns = append(b.spec.Columns, cols...)
	return b
}

// Distinct marks the query as SELECT DISTINCT.
func (b *Builder) Distinct() *Builder {
	b.spec.Distinct = true
	return b
}

// Aggregate sets the aggregate projection. It must be paired with GroupBy.
func (b *Builder) Aggregate(fn AggregateFunc, col ColumnRef) *Builder {
	if b.err != nil {
		return b
	}
	if b.spec.Aggregate != nil {
		b.err = fmt.Errorf("aggregate already set to %s", b.spec.Aggregate.Type)
		return b
	}
	b.spec.Aggregate = Agg(fn, col)
	return b
}

// Join appends a join of the given type.
func (b *Builder) Join(joinType JoinType, table string, on ...Comparison) *Builder {
	b.spec.Joins = append(b.spec.Joins, types.Join{
		Table: table,
		Type:  joinType,
		On:    append([]types.Comparison(nil), on...),
	})
	return b
}

// InnerJoin appends an INNER JOIN.
func (b *Builder) InnerJoin(table string, on ...Comparison) *Builder {
	return b.Join(types.InnerJoin, table, on...)
}

// LeftJoin appends a LEFT JOIN.
func (b *Builder) LeftJoin(table string, on ...Comparison) *Builder {
	return b.Join(types.LeftJoin, table, on...)
}

// RightJoin appends a RIGHT JOIN.
func (b *Builder) RightJoin(table string, on ...Comparison) *Builder {
	return b.Join(types.RightJoin, table, on...)
}

// FullJoin appends a FULL JOIN.
func (b *Builder) FullJoin(table string, on ...Comparison) *Builder {
	return b.Join(types.FullJoin, table, on...)
}

// Where appends WHERE conditions, combined with AND.
func (b *Builder) Where(conds ...Comparison) *Builder {
	b.spec.Wheres = append(b.spec.Wheres, conds...)
	return b
}

// GroupBy appends grouping columns.
func (b *Builder) GroupBy(cols ...ColumnRef) *Builder {
	b.spec.GroupBy = append(b.spec.GroupBy, cols...)
	return b
}

// Having appends HAVING conditions, combined with AND.
func (b *Builder) Having(conds ...Comparison) *Builder {
	b.spec.Having = append(b.spec.Having, conds...)
	return b
}

// OrderBy appends order expressions such as "users.name DESC".
func (b *Builder) OrderBy(exprs ...string) *Builder {
	b.spec.OrderBy = append(b.spec.OrderBy, exprs...)
	return b
}

// Limit sets the row limit.
func (b *Builder) Limit(n int) *Builder {
	b.spec.Limit = &n
	return b
}

// For sets the target dialect.
func (b *Builder) For(d Dialect) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := Lookup(d); err != nil {
		b.err = err
		return b
	}
	b.spec.Client = d
	return b
}

// Spec returns a copy of the spec built so far, without validating it.
func (b *Builder) Spec() *QuerySpec {
	return b.spec.Clone()
}

// Build validates and returns a copy of the spec.
func (b *Builder) Build() (*QuerySpec, error) {
	if b.err != nil {
		return nil, b.err
	}
	spec := b.spec.Clone()
	if err := Validate(spec); err != nil {
		return nil, err
	}
	return spec, nil
}

// MustBuild builds the spec and panics on error.
func (b *Builder) MustBuild() *QuerySpec {
	spec, err := b.Build()
	if err != nil {
		panic(err)
	}
	return spec
}

// Render builds the spec and renders it.
func (b *Builder) Render() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return Render(b.spec.Clone())
}

// MustRender renders the spec and panics on error.
func (b *Builder) MustRender() string {
	sql, err := b.Render()
	if err != nil {
		panic(err)
	}
	return sql
}
