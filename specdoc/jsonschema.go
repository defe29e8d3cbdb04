package specdoc

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// ToJSONSchema renders a best-effort JSON Schema describing the document's
// top-level record shape, the optional self-description SPEC_FULL.md's
// domain-stack section names for downstream validation tooling. Only
// top-level fields are described; nested structure is left unconstrained
// ("true" schema), since the spec document's own hint chains are already
// the richer source of truth.
func (d *Document) ToJSONSchema() *jsonschema.Schema {
	props := make(map[string]*jsonschema.Schema)

	for path := range d.Fields {
		if containsPathSeparator(path) {
			continue
		}

		props[path] = &jsonschema.Schema{}
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
	}
}

func containsPathSeparator(path string) bool {
	for _, r := range path {
		switch r {
		case '.', '[', '{', '#':
			return true
		}
	}

	return false
}
