// Package render turns validated query specs into SQL text.
//
// The fragment functions are pure and composable; Assemble joins their output
// in SQL grammar order and Guard checks the final statement.
package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/zoobzio/specql/internal/types"
)

// RenderTable renders a table reference: name, or "name AS alias".
func RenderTable(ref types.TableRef) string {
	if ref.Alias != "" {
		return fmt.Sprintf("%s AS %s", ref.Name, ref.Alias)
	}
	return ref.Name
}

// RenderColumn renders a column reference without its output alias.
func RenderColumn(ref types.ColumnRef) string {
	if ref.IsPlain() {
		return ref.Expr
	}
	return ref.TableAlias + "." + ref.Name
}

// RenderColumnWithAlias renders a projection entry, appending "AS alias" when present.
func RenderColumnWithAlias(ref types.ColumnRef) string {
	if ref.Alias != "" {
		return RenderColumn(ref) + " AS " + ref.Alias
	}
	return RenderColumn(ref)
}

// RenderValue renders a literal operand. Strings are single-quoted with
// embedded quotes doubled; numbers and booleans pass through unquoted.
func RenderValue(v any) string {
	switch val := v.(type) {
	case types.ColumnRef:
		return RenderColumn(val)
	case json.Number:
		return val.String()
	case string:
		return quote(val)
	case bool:
		return strconv.FormatBool(val)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	default:
		return quote(fmt.Sprint(val))
	}
}

// IsScalar reports whether RenderValue supports v natively.
func IsScalar(v any) bool {
	switch v.(type) {
	case types.ColumnRef, json.Number, string, bool, float32, float64,
		int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// RenderOperatorClause renders the operator and its operands.
// Negated operators share the rendering rule of their base operator.
func RenderOperatorClause(op types.Operator, vals types.Values) string {
	base, _ := op.Split()

	switch base {
	case types.IN:
		parts := make([]string, 0, len(vals))
		for _, v := range vals {
			parts = append(parts, RenderValue(v))
		}
		return fmt.Sprintf("%s (%s)", op, strings.Join(parts, ", "))
	case types.Between:
		return fmt.Sprintf("%s (%s AND %s)", op, RenderValue(valueAt(vals, 0)), RenderValue(valueAt(vals, 1)))
	case types.LIKE:
		return fmt.Sprintf("%s %s", op, quote("%"+patternText(valueAt(vals, 0))+"%"))
	case types.IsNull:
		return string(op)
	default:
		return fmt.Sprintf("%s %s", op, RenderValue(valueAt(vals, 0)))
	}
}

// valueAt returns vals[i], or an empty string when the list is too short.
// Validation rejects short operand lists before rendering.
func valueAt(vals types.Values, i int) any {
	if i < len(vals) {
		return vals[i]
	}
	return ""
}

func patternText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return RenderValue(v)
}

// RenderComparison renders "column OP operands".
func RenderComparison(c types.Comparison) string {
	return RenderColumn(c.Col) + " " + RenderOperatorClause(c.Op, c.Vals)
}

// RenderConjunction joins comparisons with AND.
func RenderConjunction(conds []types.Comparison) string {
	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		parts = append(parts, RenderComparison(c))
	}
	return strings.Join(parts, " AND ")
}

// RenderJoin renders "{TYPE} JOIN table ON cond AND cond".
func RenderJoin(j types.Join) string {
	return fmt.Sprintf("%s JOIN %s ON %s", strings.ToUpper(string(j.Type)), j.Table, RenderConjunction(j.On))
}

// RenderAggregate renders "TYPE(column)".
func RenderAggregate(agg types.Aggregate) string {
	return fmt.Sprintf("%s(%s)", agg.Type, RenderColumn(agg.Col))
}
