package analyze_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leeward-labs/fixtura/analyze"
	"github.com/leeward-labs/fixtura/extract"
	"github.com/leeward-labs/fixtura/hint"
	"github.com/leeward-labs/fixtura/oracle"
	"github.com/leeward-labs/fixtura/value"
)

func obj(pairs ...any) *value.Object {
	o := value.NewObject()
	for i := 0; i < len(pairs); i += 2 {
		o.Set(pairs[i].(string), pairs[i+1])
	}

	return o
}

func TestChoiceSingleValueIsConst(t *testing.T) {
	h := analyze.Choice(map[any]int{"x": 3}, []any{"x"})
	assert.Equal(t, hint.ConstHint{Val: "x"}, h)
}

func TestChoiceOrdersByDescendingWeight(t *testing.T) {
	counts := map[any]int{"a": 1, "b": 5, "c": 1}
	order := []any{"a", "b", "c"}

	h := analyze.Choice(counts, order)
	ch, ok := h.(hint.ChoiceHint)
	require.True(t, ok)

	assert.Equal(t, []value.Value{"b", "a", "c"}, ch.Choices)
	assert.InDelta(t, 0.714, ch.Weights[0], 0.001)
}

func TestNullScenarioFromWorkedExample(t *testing.T) {
	h, ok := analyze.Null(1, 7)
	require.True(t, ok)
	assert.InDelta(t, 14.286, h.(hint.NullHint).Pct, 0.001)
}

func TestNullDeclinesWhenNoNulls(t *testing.T) {
	_, ok := analyze.Null(0, 8)
	assert.False(t, ok)
}

func TestPresenceScenarioFromWorkedExample(t *testing.T) {
	h, ok := analyze.Presence(value.ParsePath("data"), 7, 8)
	require.True(t, ok)
	assert.InDelta(t, 12.5, h.(hint.MissingHint).Pct, 0.001)
}

func TestPresenceSuppressedForContainerMeta(t *testing.T) {
	_, ok := analyze.Presence(value.ParsePath("data.topList[]"), 3, 8)
	assert.False(t, ok)
}

func TestHintsForPathResolvesArrayBeforeValueHints(t *testing.T) {
	ev, err := extract.Extract(context.Background(), []value.Value{
		obj("timestamps", []value.Value{float64(1), float64(2)}),
	}, oracle.Default())
	require.NoError(t, err)

	chain := analyze.HintsForPath(ev, "timestamps")
	require.NotEmpty(t, chain)
	assert.Equal(t, hint.Array, chain[0].Tag())
}

func TestAnalyzeAllCoversEveryPath(t *testing.T) {
	ev, err := extract.Extract(context.Background(), []value.Value{
		obj("name", "alice"),
		obj("name", "bob"),
	}, oracle.Default())
	require.NoError(t, err)

	result, err := analyze.AnalyzeAll(context.Background(), ev)
	require.NoError(t, err)

	assert.Contains(t, result, "name")
	assert.NotEmpty(t, result["name"])
}
