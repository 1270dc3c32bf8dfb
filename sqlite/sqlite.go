// Package sqlite provides the SQLite dialect for specql.
package sqlite

import (
	"github.com/zoobzio/specql/internal/render"
	"github.com/zoobzio/specql/internal/types"
)

// Renderer implements the SQLite dialect.
type Renderer struct{}

// New creates a new SQLite renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the dialect identifier.
func (r *Renderer) Name() types.Dialect {
	return types.SQLite
}

// Validate checks for SQLite-unsupported features.
func (r *Renderer) Validate(spec *types.QuerySpec) error {
	return render.CheckCapabilities(r.Name(), r.Capabilities(), spec)
}

// Capabilities returns the SQL features supported by SQLite.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		RowLimit:             render.RowLimitSuffix,
		Having:               false,
		RightJoin:            false,
		FullJoin:             false,
		DistinctWithOrderBy:  true,
		LimitRequiresOrderBy: false,
		StrictGroupBy:        false,
	}
}
