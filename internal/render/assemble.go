package render

import (
	"strconv"
	"strings"

	"github.com/zoobzio/specql/internal/types"
)

// Assemble renders a validated spec into a single SELECT statement.
//
// Clauses are written in SQL grammar order and only when present. The row
// limit is placed according to caps.RowLimit: a TOP prefix or a LIMIT suffix,
// never both. Whitespace runs collapse to single spaces.
func Assemble(spec *types.QuerySpec, caps Capabilities) string {
	var sql strings.Builder

	sql.WriteString("SELECT ")

	if spec.Limit != nil && caps.RowLimit == RowLimitTop {
		sql.WriteString("TOP ")
		sql.WriteString(strconv.Itoa(*spec.Limit))
		sql.WriteString(" ")
	}

	if spec.Distinct {
		sql.WriteString("DISTINCT ")
	}

	switch {
	case spec.Aggregate != nil:
		sql.WriteString(RenderAggregate(*spec.Aggregate))
	case len(spec.Columns) > 0:
		selections := make([]string, 0, len(spec.Columns))
		for _, col := range spec.Columns {
			selections = append(selections, RenderColumnWithAlias(col))
		}
		sql.WriteString(strings.Join(selections, ", "))
	default:
		sql.WriteString("*")
	}

	sql.WriteString(" FROM ")
	tables := make([]string, 0, len(spec.Tables))
	for _, table := range spec.Tables {
		tables = append(tables, RenderTable(table))
	}
	sql.WriteString(strings.Join(tables, ", "))

	for _, join := range spec.Joins {
		sql.WriteString(" ")
		sql.WriteString(RenderJoin(join))
	}

	if len(spec.Wheres) > 0 {
		sql.WriteString(" WHERE ")
		sql.WriteString(RenderConjunction(spec.Wheres))
	}

	if len(spec.GroupBy) > 0 {
		sql.WriteString(" GROUP BY ")
		groupFields := make([]string, 0, len(spec.GroupBy))
		for _, col := range spec.GroupBy {
			groupFields = append(groupFields, RenderColumn(col))
		}
		sql.WriteString(strings.Join(groupFields, ", "))
	}

	if len(spec.Having) > 0 {
		sql.WriteString(" HAVING ")
		sql.WriteString(RenderConjunction(spec.Having))
	}

	if len(spec.OrderBy) > 0 {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(strings.Join(spec.OrderBy, ", "))
	}

	if spec.Limit != nil && caps.RowLimit == RowLimitSuffix {
		sql.WriteString(" LIMIT ")
		sql.WriteString(strconv.Itoa(*spec.Limit))
	}

	return strings.Join(strings.Fields(sql.String()), " ")
}
