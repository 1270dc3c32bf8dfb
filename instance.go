package specql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/specql/internal/render"
	"github.com/zoobzio/specql/internal/types"
)

// SpecQL validates and renders query specs against a specific DBML schema.
type SpecQL struct {
	project *dbml.Project
	// Internal indexes for fast validation
	tables  map[string]*dbml.Table
	columns map[string]map[string]*dbml.Column // table -> column -> definition
}

// NewFromDBML creates a new SpecQL instance from a DBML project.
func NewFromDBML(project *dbml.Project) (*SpecQL, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &SpecQL{
		project: project,
		tables:  make(map[string]*dbml.Table),
		columns: make(map[string]map[string]*dbml.Column),
	}

	for _, table := range project.Tables {
		s.tables[table.Name] = table
		s.columns[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			s.columns[table.Name][col.Name] = col
		}
	}

	return s, nil
}

// Project returns the schema the instance was built from.
func (s *SpecQL) Project() *dbml.Project {
	return s.project
}

func (s *SpecQL) validateTable(name string) error {
	if _, ok := s.tables[name]; !ok {
		return render.Invalid(render.ErrSchemaMismatch, "table '%s' not found in schema", name)
	}
	return nil
}

func (s *SpecQL) validateColumn(table, name string) error {
	if _, ok := s.columns[table][name]; !ok {
		return render.Invalid(render.ErrSchemaMismatch, "column '%s' not found in table '%s'", name, table)
	}
	return nil
}

// Validate runs the structural checks, then checks every table and column
// the spec names against the schema.
func (s *SpecQL) Validate(spec *QuerySpec) error {
	if err := Validate(spec); err != nil {
		return err
	}

	// alias or table name -> table name
	scope := make(map[string]string, len(spec.Tables)+len(spec.Joins))
	for _, t := range spec.Tables {
		if err := s.validateTable(t.Name); err != nil {
			return err
		}
		scope[t.Name] = t.Name
		if t.Alias != "" {
			scope[t.Alias] = t.Name
		}
	}
	for _, j := range spec.Joins {
		if err := s.validateTable(j.Table); err != nil {
			return err
		}
		if _, taken := scope[j.Table]; !taken {
			scope[j.Table] = j.Table
		}
	}

	for _, col := range referencedColumns(spec) {
		if err := s.resolveColumn(scope, col); err != nil {
			return err
		}
	}
	return nil
}

// resolveColumn checks a column against the table its qualifier points at.
// Plain expressions are only checked when they are a simple "table.column".
func (s *SpecQL) resolveColumn(scope map[string]string, col types.ColumnRef) error {
	qualifier, name := col.TableAlias, col.Name
	if col.IsPlain() {
		var ok bool
		if qualifier, name, ok = splitQualified(col.Expr); !ok {
			return nil
		}
	}

	table, ok := scope[qualifier]
	if !ok {
		// Plain expressions bypass alias resolution in Validate.
		return render.Invalid(render.ErrSchemaMismatch, "table '%s' not in query", qualifier)
	}
	return s.validateColumn(table, name)
}

// splitQualified splits "table.column" when both parts are plain identifiers.
func splitQualified(expr string) (string, string, bool) {
	table, column, found := strings.Cut(expr, ".")
	if !found || !isIdentifier(table) || !isIdentifier(column) {
		return "", "", false
	}
	return table, column, true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9' && i > 0) ||
			ch == '_') {
			return false
		}
	}
	return true
}

func referencedColumns(spec *QuerySpec) []types.ColumnRef {
	var out []types.ColumnRef
	addAll := func(conds []types.Comparison) {
		for _, c := range conds {
			out = append(out, c.Col)
			for _, v := range c.Vals {
				if ref, ok := v.(types.ColumnRef); ok {
					out = append(out, ref)
				}
			}
		}
	}

	out = append(out, spec.Columns...)
	if spec.Aggregate != nil {
		out = append(out, spec.Aggregate.Col)
	}
	addAll(spec.Wheres)
	for _, j := range spec.Joins {
		addAll(j.On)
	}
	out = append(out, spec.GroupBy...)
	addAll(spec.Having)
	return out
}

// Render validates the spec against the schema and renders it.
func (s *SpecQL) Render(spec *QuerySpec) (string, error) {
	if err := s.Validate(spec); err != nil {
		return "", err
	}
	renderer, _ := Lookup(spec.Client)
	return assemble(spec, renderer)
}

// TryT creates a validated table reference, returning an error if invalid.
func (s *SpecQL) TryT(name string, alias ...string) (TableRef, error) {
	if err := s.validateTable(name); err != nil {
		return TableRef{}, fmt.Errorf("invalid table: %w", err)
	}
	if len(alias) > 1 {
		return TableRef{}, fmt.Errorf("only one alias allowed")
	}
	if len(alias) == 1 && !isIdentifier(alias[0]) {
		return TableRef{}, fmt.Errorf("invalid table alias: %q", alias[0])
	}
	return T(name, alias...), nil
}

// T creates a validated table reference.
func (s *SpecQL) T(name string, alias ...string) TableRef {
	t, err := s.TryT(name, alias...)
	if err != nil {
		panic(err)
	}
	return t
}

// TryC creates a validated named column reference, returning an error if invalid.
// The column is checked against table; tableAlias is what the reference renders with.
func (s *SpecQL) TryC(table, name string, tableAlias ...string) (ColumnRef, error) {
	if err := s.validateTable(table); err != nil {
		return ColumnRef{}, fmt.Errorf("invalid column: %w", err)
	}
	if err := s.validateColumn(table, name); err != nil {
		return ColumnRef{}, fmt.Errorf("invalid column: %w", err)
	}
	if len(tableAlias) > 1 {
		return ColumnRef{}, fmt.Errorf("only one table alias allowed")
	}
	qualifier := table
	if len(tableAlias) == 1 {
		qualifier = tableAlias[0]
	}
	return C(qualifier, name), nil
}

// C creates a validated named column reference.
func (s *SpecQL) C(table, name string, tableAlias ...string) ColumnRef {
	c, err := s.TryC(table, name, tableAlias...)
	if err != nil {
		panic(err)
	}
	return c
}
