package hint

import (
	"math/rand/v2"
	"strconv"
)

// NumStrHint generates a number exactly as NumberHint does, then renders it
// as a string (spec.md §3's NUMSTR variant).
type NumStrHint struct {
	NumberHint
}

// Tag implements Hint.
func (NumStrHint) Tag() Tag { return NumStr }

// Process implements Hint.
func (h NumStrHint) Process(rng *rand.Rand, seed Result) Result {
	if seed.Set {
		return passThrough(seed)
	}

	n := h.NumberHint.Sample(rng)

	prec := 0
	if h.Prec != nil {
		prec = *h.Prec
	}

	if h.Prec == nil && isIntegral(h.Min) && isIntegral(h.Max) {
		return Result{Value: strconv.FormatInt(int64(n), 10), Set: true}
	}

	return Result{Value: strconv.FormatFloat(n, 'f', prec, 64), Set: true}
}
