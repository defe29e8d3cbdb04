package hint_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leeward-labs/fixtura/hint"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNumberHintClamps(t *testing.T) {
	h := hint.NumberHint{Min: 10, Max: 20}
	rng := newRand()

	for range 200 {
		v := h.Sample(rng)
		assert.GreaterOrEqual(t, v, 10.0)
		assert.LessOrEqual(t, v, 20.0)
	}
}

func TestNumberHintIntegerVariant(t *testing.T) {
	h := hint.NumberHint{Min: 0, Max: 5}
	rng := newRand()

	for range 50 {
		v := h.Sample(rng)
		assert.Equal(t, v, float64(int64(v)))
	}
}

func TestAlphaHintCharsetClosure(t *testing.T) {
	h := hint.AlphaHint{Chrs: map[string][]int{
		"ABC": {0, 1},
		"012": {2},
	}}
	rng := newRand()

	for range 100 {
		res := h.Process(rng, hint.Result{})
		s, ok := res.Value.(string)
		require.True(t, ok)
		require.Len(t, s, 3)
		assert.Contains(t, "ABC", string(s[0]))
		assert.Contains(t, "ABC", string(s[1]))
		assert.Contains(t, "012", string(s[2]))
	}
}

func TestChoiceHintWeighted(t *testing.T) {
	h := hint.ChoiceHint{
		Choices: []any{"a", "b"},
		Weights: []float64{1, 0},
	}
	rng := newRand()

	for range 50 {
		res := h.Process(rng, hint.Result{})
		assert.Equal(t, "a", res.Value)
	}
}

func TestNullAndMissingShortCircuit(t *testing.T) {
	chain := []hint.Hint{
		hint.ConstHint{Val: "x"},
		hint.NullHint{Pct: 100},
	}
	res := hint.Run(newRand(), chain)
	assert.Equal(t, hint.SentinelNull, res.Sentinel)

	chain = []hint.Hint{
		hint.ConstHint{Val: "x"},
		hint.MissingHint{Pct: 100},
	}
	res = hint.Run(newRand(), chain)
	assert.Equal(t, hint.SentinelMissing, res.Sentinel)
}

func TestRunPassesSeedThroughGenerators(t *testing.T) {
	chain := []hint.Hint{
		hint.ConstHint{Val: "first"},
		hint.NumberHint{Min: 1, Max: 2},
	}
	res := hint.Run(newRand(), chain)
	assert.Equal(t, "first", res.Value)
}

func TestDurationRendersHMS(t *testing.T) {
	h := hint.DurationHint{Fmt: hint.DurationHMS, Min: 0, Max: 0, Avg: 0}
	res := h.Process(newRand(), hint.Result{})
	s, ok := res.Value.(string)
	require.True(t, ok)
	assert.True(t, strings.Count(s, ":") == 2)
}

func TestFromSpecRoundTrip(t *testing.T) {
	h, err := hint.FromSpec(hint.Number, map[string]any{"min": 1.0, "max": 2.0})
	require.NoError(t, err)
	nh, ok := h.(hint.NumberHint)
	require.True(t, ok)
	assert.Equal(t, 1.0, nh.Min)
	assert.Equal(t, 2.0, nh.Max)

	_, err = hint.FromSpec("BOGUS", nil)
	require.ErrorIs(t, err, hint.ErrInvalidHint)
}
