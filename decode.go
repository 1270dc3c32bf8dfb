package specql

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// Parse decodes a YAML or JSON document into a QuerySpec.
// Unknown fields are rejected. The result is not validated.
func Parse(data []byte) (*QuerySpec, error) {
	var spec QuerySpec
	if err := yaml.UnmarshalStrict(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse query spec: %w", err)
	}
	return &spec, nil
}
