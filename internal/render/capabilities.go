package render

import "github.com/zoobzio/specql/internal/types"

// RowLimitStyle indicates where a dialect places its row limit.
type RowLimitStyle int

const (
	RowLimitSuffix RowLimitStyle = iota // ... LIMIT n
	RowLimitTop                         // SELECT TOP n ...
)

// Capabilities describes the SQL features supported by a dialect.
type Capabilities struct {
	RowLimit             RowLimitStyle // LIMIT n or TOP n
	Having               bool          // HAVING clause
	RightJoin            bool          // RIGHT JOIN
	FullJoin             bool          // FULL JOIN
	DistinctWithOrderBy  bool          // DISTINCT combined with ORDER BY
	LimitRequiresOrderBy bool          // row limit needs a deterministic order
	StrictGroupBy        bool          // selected columns must be grouped or aggregated
}

// Renderer is implemented by each dialect package.
type Renderer interface {
	// Name returns the dialect identifier used in QuerySpec.Client.
	Name() types.Dialect

	// Capabilities returns the features the dialect supports.
	Capabilities() Capabilities

	// Validate applies the dialect's restrictions to a spec.
	Validate(spec *types.QuerySpec) error
}

// CheckCapabilities rejects the parts of a spec that caps does not support.
// Dialect packages validate through it, so a dialect's restrictions are
// exactly what its Capabilities declare.
func CheckCapabilities(dialect types.Dialect, caps Capabilities, spec *types.QuerySpec) error {
	name := string(dialect)

	if !caps.Having && len(spec.Having) > 0 {
		return NewUnsupportedFeatureError(name, "HAVING",
			"filter the grouped rows in an outer query instead")
	}

	for _, join := range spec.Joins {
		switch {
		case join.Type == types.RightJoin && !caps.RightJoin:
			return NewUnsupportedFeatureError(name, "RIGHT JOIN",
				"swap the tables and use LEFT JOIN")
		case join.Type == types.FullJoin && !caps.FullJoin:
			return NewUnsupportedFeatureError(name, "FULL JOIN",
				"combine two LEFT JOINs with UNION")
		}
	}

	if !caps.DistinctWithOrderBy && spec.Distinct && len(spec.OrderBy) > 0 {
		return NewUnsupportedFeatureError(name, "DISTINCT with ORDER BY",
			"drop DISTINCT or group by the selected columns instead")
	}

	if caps.LimitRequiresOrderBy && spec.Limit != nil && len(spec.OrderBy) == 0 {
		return NewUnsupportedFeatureError(name, "LIMIT without ORDER BY",
			"add ORDER BY so the page is deterministic")
	}

	if caps.StrictGroupBy {
		return CheckGroupedColumns(spec)
	}
	return nil
}
