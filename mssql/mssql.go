// Package mssql provides the SQL Server dialect for specql.
package mssql

import (
	"github.com/zoobzio/specql/internal/render"
	"github.com/zoobzio/specql/internal/types"
)

// Renderer implements the SQL Server dialect.
type Renderer struct{}

// New creates a new SQL Server renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the dialect identifier.
func (r *Renderer) Name() types.Dialect {
	return types.MSSQL
}

// Validate checks for SQL Server-unsupported combinations.
// TOP is emitted ahead of DISTINCT, so the two cannot be ordered together.
func (r *Renderer) Validate(spec *types.QuerySpec) error {
	return render.CheckCapabilities(r.Name(), r.Capabilities(), spec)
}

// Capabilities returns the SQL features supported by SQL Server.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		RowLimit:             render.RowLimitTop,
		Having:               true,
		RightJoin:            true,
		FullJoin:             true,
		DistinctWithOrderBy:  false,
		LimitRequiresOrderBy: true,
		StrictGroupBy:        true,
	}
}
