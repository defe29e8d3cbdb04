package factory_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leeward-labs/fixtura/factory"
	"github.com/leeward-labs/fixtura/hint"
	"github.com/leeward-labs/fixtura/specdoc"
	"github.com/leeward-labs/fixtura/value"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func doc(fields map[string][]specdoc.TaggedPayload) *specdoc.Document {
	return &specdoc.Document{Fields: fields}
}

func tp(tag hint.Tag, payload map[string]any) specdoc.TaggedPayload {
	return specdoc.TaggedPayload{Tag: tag, Payload: payload}
}

func TestBuildStaticObjectWithLeafFields(t *testing.T) {
	d := doc(map[string][]specdoc.TaggedPayload{
		"name": {tp(hint.Const, map[string]any{"val": "alice"})},
		"age":  {tp(hint.Number, map[string]any{"min": float64(1), "max": float64(1)})},
	})

	f, err := factory.New(d, nil)
	require.NoError(t, err)

	rec, err := f.Build(newRand(), nil)
	require.NoError(t, err)

	obj, ok := rec.(*value.Object)
	require.True(t, ok)

	name, _ := obj.Get("name")
	assert.Equal(t, "alice", name)

	age, _ := obj.Get("age")
	assert.Equal(t, float64(1), age)
}

func TestBuildArrayFixedSize(t *testing.T) {
	d := doc(map[string][]specdoc.TaggedPayload{
		"items":      {tp(hint.Array, map[string]any{}), tp(hint.Number, map[string]any{"min": float64(2), "max": float64(2)})},
		"items[].id": {tp(hint.Const, map[string]any{"val": float64(7)})},
	})

	f, err := factory.New(d, nil)
	require.NoError(t, err)

	rec, err := f.Build(newRand(), nil)
	require.NoError(t, err)

	obj := rec.(*value.Object)
	items, _ := obj.Get("items")

	arr, ok := items.([]value.Value)
	require.True(t, ok)
	require.Len(t, arr, 2)

	elem := arr[0].(*value.Object)
	id, _ := elem.Get("id")
	assert.Equal(t, float64(7), id)
}

func TestBuildArrayFixedZeroSkipsElementFactory(t *testing.T) {
	d := doc(map[string][]specdoc.TaggedPayload{
		"items": {tp(hint.Array, map[string]any{}), tp(hint.Number, map[string]any{"min": float64(0), "max": float64(0)})},
	})

	f, err := factory.New(d, nil)
	require.NoError(t, err)

	rec, err := f.Build(newRand(), nil)
	require.NoError(t, err)

	obj := rec.(*value.Object)
	items, _ := obj.Get("items")
	assert.Equal(t, []value.Value{}, items)
}

func TestBuildMissingFieldOmitsKey(t *testing.T) {
	d := doc(map[string][]specdoc.TaggedPayload{
		"name": {tp(hint.Const, map[string]any{"val": "alice"}), tp(hint.Missing, map[string]any{"pct": float64(100)})},
	})

	f, err := factory.New(d, nil)
	require.NoError(t, err)

	rec, err := f.Build(newRand(), nil)
	require.NoError(t, err)

	obj := rec.(*value.Object)
	_, exists := obj.Get("name")
	assert.False(t, exists)
}

func TestBuildNullFieldSetsNil(t *testing.T) {
	d := doc(map[string][]specdoc.TaggedPayload{
		"name": {tp(hint.Const, map[string]any{"val": "alice"}), tp(hint.Null, map[string]any{"pct": float64(100)})},
	})

	f, err := factory.New(d, nil)
	require.NoError(t, err)

	rec, err := f.Build(newRand(), nil)
	require.NoError(t, err)

	obj := rec.(*value.Object)
	v, exists := obj.Get("name")
	assert.True(t, exists)
	assert.Nil(t, v)
}

func TestScalarOverrideAppliesToTopLevelField(t *testing.T) {
	d := doc(map[string][]specdoc.TaggedPayload{
		"name": {tp(hint.Const, map[string]any{"val": "alice"})},
	})

	f, err := factory.New(d, nil)
	require.NoError(t, err)

	rec, err := f.Build(newRand(), map[string]any{"name": "bob"})
	require.NoError(t, err)

	obj := rec.(*value.Object)
	v, _ := obj.Get("name")
	assert.Equal(t, "bob", v)
}

func TestCallableOverrideReceivesCurrentValue(t *testing.T) {
	d := doc(map[string][]specdoc.TaggedPayload{
		"name": {tp(hint.Const, map[string]any{"val": "alice"})},
	})

	f, err := factory.New(d, nil)
	require.NoError(t, err)

	rec, err := f.Build(newRand(), map[string]any{
		"name": func(current value.Value) value.Value {
			return current.(string) + "!"
		},
	})
	require.NoError(t, err)

	obj := rec.(*value.Object)
	v, _ := obj.Get("name")
	assert.Equal(t, "alice!", v)
}

func TestOverrideBroadcastsAcrossArrayElements(t *testing.T) {
	d := doc(map[string][]specdoc.TaggedPayload{
		"items":      {tp(hint.Array, map[string]any{}), tp(hint.Number, map[string]any{"min": float64(2), "max": float64(2)})},
		"items[].id": {tp(hint.Const, map[string]any{"val": float64(7)})},
	})

	f, err := factory.New(d, nil)
	require.NoError(t, err)

	rec, err := f.Build(newRand(), map[string]any{"items.id": float64(99)})
	require.NoError(t, err)

	obj := rec.(*value.Object)
	items, _ := obj.Get("items")
	arr := items.([]value.Value)

	for _, elem := range arr {
		id, _ := elem.(*value.Object).Get("id")
		assert.Equal(t, float64(99), id)
	}
}

func TestDoubleUnderscoreOverrideNormalizesToIndexedPath(t *testing.T) {
	d := doc(map[string][]specdoc.TaggedPayload{
		"items":      {tp(hint.Array, map[string]any{}), tp(hint.Number, map[string]any{"min": float64(1), "max": float64(1)})},
		"items[].id": {tp(hint.Const, map[string]any{"val": float64(7)})},
	})

	f, err := factory.New(d, nil)
	require.NoError(t, err)

	rec, err := f.Build(newRand(), map[string]any{"items__0__id": float64(42)})
	require.NoError(t, err)

	obj := rec.(*value.Object)
	items, _ := obj.Get("items")
	arr := items.([]value.Value)
	id, _ := arr[0].(*value.Object).Get("id")
	assert.Equal(t, float64(42), id)
}

func TestRecordsIteratesNTimes(t *testing.T) {
	d := doc(map[string][]specdoc.TaggedPayload{
		"name": {tp(hint.Const, map[string]any{"val": "alice"})},
	})

	f, err := factory.New(d, nil)
	require.NoError(t, err)

	count := 0

	for rec, err := range f.Records(newRand(), 3) {
		require.NoError(t, err)
		require.NotNil(t, rec)

		count++
	}

	assert.Equal(t, 3, count)
}
