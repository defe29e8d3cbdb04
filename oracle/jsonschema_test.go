package oracle_test

import (
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"

	"github.com/leeward-labs/fixtura/oracle"
	"github.com/leeward-labs/fixtura/value"
)

func TestFromJSONSchemaMarksAdditionalPropertiesObjects(t *testing.T) {
	schema := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"counts": {
				Type:                 "object",
				AdditionalProperties: &jsonschema.Schema{Type: "integer"},
			},
			"name": {Type: "string"},
		},
	}

	o := oracle.FromJSONSchema(schema)

	assert.True(t, o.IsDynamicKeyObject(value.ParsePath("counts")))
	assert.False(t, o.IsDynamicKeyObject(value.ParsePath("name")))
}

func TestDefaultOracleNeverMatches(t *testing.T) {
	o := oracle.Default()
	assert.False(t, o.IsDynamicKeyObject(value.ParsePath("anything")))
}

func TestFromPaths(t *testing.T) {
	o := oracle.FromPaths("a.b", "c")
	assert.True(t, o.IsDynamicKeyObject(value.ParsePath("a.b")))
	assert.False(t, o.IsDynamicKeyObject(value.ParsePath("a.b.c")))
}
