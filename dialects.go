package specql

import (
	"sort"

	"github.com/zoobzio/specql/internal/render"
	"github.com/zoobzio/specql/mssql"
	"github.com/zoobzio/specql/mysql"
	"github.com/zoobzio/specql/postgres"
	"github.com/zoobzio/specql/sqlite"
)

// registry is built once and never mutated.
var registry = map[Dialect]Renderer{
	MySQL:    mysql.New(),
	Postgres: postgres.New(),
	SQLite:   sqlite.New(),
	MSSQL:    mssql.New(),
}

// Lookup returns the renderer for a dialect.
func Lookup(d Dialect) (Renderer, error) {
	r, ok := registry[d]
	if !ok {
		return nil, render.Invalid(render.ErrUnsupportedDialect, "%q", string(d))
	}
	return r, nil
}

// Dialects returns the supported dialects in sorted order.
func Dialects() []Dialect {
	out := make([]Dialect, 0, len(registry))
	for d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
