package value_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leeward-labs/fixtura/value"
)

func TestObjectPreservesInsertionOrder(t *testing.T) {
	o := value.NewObject()
	o.Set("b", 1.0)
	o.Set("a", 2.0)
	o.Set("b", 3.0)

	assert.Equal(t, []string{"b", "a"}, o.Keys())
	assert.Equal(t, 2, o.Len())

	v, ok := o.Get("b")
	require.True(t, ok)
	assert.Equal(t, 3.0, v)
}

func TestObjectMarshalJSONPreservesKeyOrder(t *testing.T) {
	o := value.NewObject()
	o.Set("z", 1.0)
	o.Set("a", 2.0)

	data, err := o.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":2}`, string(data))
}

func TestDecodeAllNDJSON(t *testing.T) {
	records, err := value.DecodeAll(strings.NewReader(`{"a":1}
{"a":2}`))
	require.NoError(t, err)
	require.Len(t, records, 2)

	obj0, ok := records[0].(*value.Object)
	require.True(t, ok)

	a, _ := obj0.Get("a")
	assert.Equal(t, 1.0, a)
}

func TestDecodeAllJSONArray(t *testing.T) {
	records, err := value.DecodeAll(strings.NewReader(`[{"a":1},{"a":2}]`))
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestDecodeAllEmptyInput(t *testing.T) {
	records, err := value.DecodeAll(strings.NewReader(``))
	require.NoError(t, err)
	assert.Nil(t, records)
}
