// Package postgres provides the PostgreSQL dialect for specql.
package postgres

import (
	"github.com/zoobzio/specql/internal/render"
	"github.com/zoobzio/specql/internal/types"
)

// Renderer implements the PostgreSQL dialect.
type Renderer struct{}

// New creates a new PostgreSQL renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the dialect identifier.
func (r *Renderer) Name() types.Dialect {
	return types.Postgres
}

// Validate checks for PostgreSQL-unsupported combinations.
func (r *Renderer) Validate(spec *types.QuerySpec) error {
	return render.CheckCapabilities(r.Name(), r.Capabilities(), spec)
}

// Capabilities returns the SQL features supported by PostgreSQL.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		RowLimit:             render.RowLimitSuffix,
		Having:               true,
		RightJoin:            true,
		FullJoin:             true,
		DistinctWithOrderBy:  true,
		LimitRequiresOrderBy: true,
		StrictGroupBy:        false,
	}
}
