package specql

import (
	"github.com/zoobzio/specql/internal/render"
	"github.com/zoobzio/specql/internal/types"
)

// Validate checks a spec against the structural rules in a fixed order and
// returns the first violation. The spec is never modified.
func Validate(spec *QuerySpec) error {
	if spec == nil {
		return render.Invalid(render.ErrMalformed, "nil spec")
	}

	if len(spec.Tables) == 0 {
		return &render.ValidationError{Rule: render.ErrNoTables}
	}

	if (spec.Aggregate != nil) != (len(spec.GroupBy) > 0) {
		return &render.ValidationError{Rule: render.ErrAggregateGroupBy}
	}

	if len(spec.Having) > 0 && (spec.Aggregate == nil || len(spec.GroupBy) == 0) {
		return &render.ValidationError{Rule: render.ErrHavingRequiresGroupBy}
	}

	if err := validateAliases(spec.Columns); err != nil {
		return err
	}

	if err := validateTableAliases(spec); err != nil {
		return err
	}

	renderer, err := Lookup(spec.Client)
	if err != nil {
		return err
	}
	if err := renderer.Validate(spec); err != nil {
		return err
	}

	for _, join := range spec.Joins {
		if len(join.On) == 0 {
			return render.Invalid(render.ErrJoinWithoutCondition, "%s", join.Table)
		}
	}

	if len(spec.Tables) > 1 && len(spec.Wheres) == 0 {
		return &render.ValidationError{Rule: render.ErrWhereRequired}
	}

	return validateFragments(spec)
}

func validateAliases(columns []types.ColumnRef) error {
	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if col.Alias == "" {
			continue
		}
		if _, dup := seen[col.Alias]; dup {
			return render.Invalid(render.ErrDuplicateAlias, "%s", col.Alias)
		}
		seen[col.Alias] = struct{}{}
	}
	return nil
}

// validateTableAliases resolves the table alias of every named column
// against declared table names, table aliases and joined tables. A named
// column without a table alias never resolves.
func validateTableAliases(spec *QuerySpec) error {
	declared := make(map[string]struct{}, len(spec.Tables)*2+len(spec.Joins))
	for _, t := range spec.Tables {
		declared[t.Name] = struct{}{}
		if t.Alias != "" {
			declared[t.Alias] = struct{}{}
		}
	}
	for _, j := range spec.Joins {
		declared[j.Table] = struct{}{}
	}

	check := func(col types.ColumnRef) error {
		if col.IsPlain() {
			return nil
		}
		if col.TableAlias == "" {
			return render.Invalid(render.ErrUnknownTableAlias, "column %s has no table alias", col.Name)
		}
		if _, ok := declared[col.TableAlias]; !ok {
			return render.Invalid(render.ErrUnknownTableAlias, "column %s references %q", col.Name, col.TableAlias)
		}
		return nil
	}
	checkAll := func(conds []types.Comparison) error {
		for _, c := range conds {
			if err := check(c.Col); err != nil {
				return err
			}
			for _, v := range c.Vals {
				if ref, ok := v.(types.ColumnRef); ok {
					if err := check(ref); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}

	for _, col := range spec.Columns {
		if err := check(col); err != nil {
			return err
		}
	}
	if spec.Aggregate != nil {
		if err := check(spec.Aggregate.Col); err != nil {
			return err
		}
	}
	if err := checkAll(spec.Wheres); err != nil {
		return err
	}
	for _, j := range spec.Joins {
		if err := checkAll(j.On); err != nil {
			return err
		}
	}
	for _, col := range spec.GroupBy {
		if err := check(col); err != nil {
			return err
		}
	}
	return checkAll(spec.Having)
}

// validateFragments rejects specs whose pieces cannot render as well-formed SQL.
func validateFragments(spec *QuerySpec) error {
	for _, t := range spec.Tables {
		if t.Name == "" {
			return render.Invalid(render.ErrMalformed, "empty table name")
		}
	}

	for _, col := range spec.Columns {
		if err := checkColumn(col); err != nil {
			return err
		}
	}

	if spec.Aggregate != nil {
		if !spec.Aggregate.Type.Valid() {
			return render.Invalid(render.ErrMalformed, "unknown aggregate function %q", string(spec.Aggregate.Type))
		}
		if err := checkColumn(spec.Aggregate.Col); err != nil {
			return err
		}
	}

	if err := checkComparisons(spec.Wheres); err != nil {
		return err
	}

	for _, j := range spec.Joins {
		if j.Table == "" {
			return render.Invalid(render.ErrMalformed, "empty join table")
		}
		if !j.Type.Valid() {
			return render.Invalid(render.ErrMalformed, "unknown join type %q", string(j.Type))
		}
		if err := checkComparisons(j.On); err != nil {
			return err
		}
	}

	for _, col := range spec.GroupBy {
		if err := checkColumn(col); err != nil {
			return err
		}
	}

	if err := checkComparisons(spec.Having); err != nil {
		return err
	}

	for _, expr := range spec.OrderBy {
		if expr == "" {
			return render.Invalid(render.ErrMalformed, "empty orderBy expression")
		}
	}

	if spec.Limit != nil && *spec.Limit < 0 {
		return render.Invalid(render.ErrMalformed, "negative limit %d", *spec.Limit)
	}

	return nil
}

func checkColumn(col types.ColumnRef) error {
	if !col.IsPlain() && col.Name == "" {
		return render.Invalid(render.ErrMalformed, "empty column name")
	}
	return nil
}

func checkComparisons(conds []types.Comparison) error {
	for _, c := range conds {
		if err := checkColumn(c.Col); err != nil {
			return err
		}
		if !c.Op.Valid() {
			return render.Invalid(render.ErrMalformed, "unknown operator %q", string(c.Op))
		}

		base, _ := c.Op.Split()
		want := 1
		switch base {
		case types.IsNull:
			want = 0
		case types.Between:
			want = 2
		}
		if len(c.Vals) < want {
			return render.Invalid(render.ErrMalformed, "%s needs %d operand(s), got %d", c.Op, want, len(c.Vals))
		}

		for _, v := range c.Vals {
			ref, isColumn := v.(types.ColumnRef)
			switch {
			case isColumn && base == types.LIKE:
				return render.Invalid(render.ErrMalformed, "%s operand must be a literal", c.Op)
			case isColumn:
				if err := checkColumn(ref); err != nil {
					return err
				}
			case !render.IsScalar(v):
				return render.Invalid(render.ErrMalformed, "unsupported value type %T", v)
			}
		}
	}
	return nil
}
