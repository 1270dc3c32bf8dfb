// Package mysql provides the MySQL dialect for specql.
//
// The same rules apply to MariaDB.
package mysql

import (
	"github.com/zoobzio/specql/internal/render"
	"github.com/zoobzio/specql/internal/types"
)

// Renderer implements the MySQL dialect.
type Renderer struct{}

// New creates a new MySQL renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the dialect identifier.
func (r *Renderer) Name() types.Dialect {
	return types.MySQL
}

// Validate applies the MySQL restrictions, including ONLY_FULL_GROUP_BY semantics.
func (r *Renderer) Validate(spec *types.QuerySpec) error {
	return render.CheckCapabilities(r.Name(), r.Capabilities(), spec)
}

// Capabilities returns the SQL features supported by MySQL.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		RowLimit:             render.RowLimitSuffix,
		Having:               true,
		RightJoin:            true,
		FullJoin:             true,
		DistinctWithOrderBy:  true,
		LimitRequiresOrderBy: false,
		StrictGroupBy:        true,
	}
}
