package hint

import (
	"math/rand/v2"

	"github.com/leeward-labs/fixtura/value"
)

// ChoiceHint performs a weighted categorical draw. If Weights is absent the
// choices are drawn uniformly. Per spec.md invariant 6, when present,
// Weights has the same length as Choices.
type ChoiceHint struct {
	Choices []value.Value
	Weights []float64
}

// Tag implements Hint.
func (ChoiceHint) Tag() Tag { return Choice }

// Process implements Hint.
func (h ChoiceHint) Process(rng *rand.Rand, seed Result) Result {
	if seed.Set {
		return passThrough(seed)
	}

	if len(h.Choices) == 0 {
		return Result{Value: nil, Set: true}
	}

	if len(h.Weights) != len(h.Choices) {
		idx := rng.IntN(len(h.Choices))
		return Result{Value: h.Choices[idx], Set: true}
	}

	total := 0.0
	for _, w := range h.Weights {
		total += w
	}

	if total <= 0 {
		idx := rng.IntN(len(h.Choices))
		return Result{Value: h.Choices[idx], Set: true}
	}

	target := rng.Float64() * total
	acc := 0.0

	for i, w := range h.Weights {
		acc += w
		if target < acc {
			return Result{Value: h.Choices[i], Set: true}
		}
	}

	return Result{Value: h.Choices[len(h.Choices)-1], Set: true}
}
