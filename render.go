package specql

import (
	"github.com/zoobzio/specql/internal/render"
)

// Render validates the spec, assembles the statement for its dialect and
// runs the safety guard. On any failure the returned SQL is empty.
func Render(spec *QuerySpec) (string, error) {
	if err := Validate(spec); err != nil {
		return "", err
	}
	// Validate resolved the dialect already.
	renderer, _ := Lookup(spec.Client)
	return assemble(spec, renderer)
}

// MustRender renders the spec and panics on error.
// Use this only when the spec is known to be valid.
func MustRender(spec *QuerySpec) string {
	sql, err := Render(spec)
	if err != nil {
		panic(err)
	}
	return sql
}

func assemble(spec *QuerySpec, renderer Renderer) (string, error) {
	sql := render.Assemble(spec, renderer.Capabilities())
	if err := render.Guard(sql); err != nil {
		return "", err
	}
	return sql, nil
}
