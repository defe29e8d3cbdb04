package oracle

import "github.com/google/jsonschema-go/jsonschema"

// FromJSONSchema walks schema and marks every object subschema that
// declares AdditionalProperties/PatternProperties but no (or an empty)
// Properties map as a dynamic-key object — the structural analogue of the
// reference implementation's `dict[K, V]` Pydantic field check, reworked
// against the schema library this module (and its teacher) already
// depends on, per SPEC_FULL.md §4.9.
func FromJSONSchema(schema *jsonschema.Schema) Oracle {
	set := PathSet{}
	walkSchema(schema, "", set)

	return set
}

func walkSchema(s *jsonschema.Schema, path string, set PathSet) {
	if s == nil {
		return
	}

	if isDynamicKeySchema(s) {
		set[path] = true
	}

	for name, child := range s.Properties {
		walkSchema(child, joinPath(path, name), set)
	}

	if s.Items != nil {
		walkSchema(s.Items, path+"[]", set)
	}

	if isDynamicKeySchema(s) {
		for _, child := range s.PatternProperties {
			walkSchema(child, joinPath(path, "{}"), set)

			break
		}

		if ap, ok := s.AdditionalProperties.(*jsonschema.Schema); ok {
			walkSchema(ap, joinPath(path, "{}"), set)
		}
	}
}

func isDynamicKeySchema(s *jsonschema.Schema) bool {
	if s.Type != "object" {
		return false
	}

	if len(s.Properties) > 0 {
		return false
	}

	if len(s.PatternProperties) > 0 {
		return true
	}

	_, ok := s.AdditionalProperties.(*jsonschema.Schema)

	return ok
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}

	return path + "." + name
}
