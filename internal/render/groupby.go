package render

import (
	"regexp"

	"github.com/zoobzio/specql/internal/types"
)

var aggregateCall = regexp.MustCompile(`(?i)^\s*(COUNT|SUM|AVG|MIN|MAX)\s*\(`)

// IsAggregateExpression reports whether a column is an aggregate-function call
// such as "COUNT(users.id)".
func IsAggregateExpression(col types.ColumnRef) bool {
	if col.IsPlain() {
		return aggregateCall.MatchString(col.Expr)
	}
	return aggregateCall.MatchString(col.Name)
}

// CheckGroupedColumns enforces strict GROUP BY validity: when both groupBy and
// columns are present, every selected column must appear in groupBy by name or
// be an aggregate expression.
func CheckGroupedColumns(spec *types.QuerySpec) error {
	if len(spec.GroupBy) == 0 || len(spec.Columns) == 0 {
		return nil
	}

	grouped := make(map[string]bool, len(spec.GroupBy)*2)
	for _, g := range spec.GroupBy {
		grouped[RenderColumn(g)] = true
		grouped[g.GetName()] = true
	}

	for _, col := range spec.Columns {
		if IsAggregateExpression(col) {
			continue
		}
		if grouped[RenderColumn(col)] || grouped[col.GetName()] {
			continue
		}
		return &ValidationError{Rule: ErrUngroupedColumn, Detail: RenderColumn(col)}
	}
	return nil
}
