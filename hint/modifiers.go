package hint

import "math/rand/v2"

// NullHint emits an explicit null with probability Pct/100.
type NullHint struct {
	Pct float64
}

// Tag implements Hint.
func (h NullHint) Tag() Tag { return Null }

// Process implements Hint.
func (h NullHint) Process(rng *rand.Rand, seed Result) Result {
	if rng.Float64()*100 < h.Pct {
		return Result{Sentinel: SentinelNull}
	}

	return passThrough(seed)
}

// MissingHint omits the field entirely with probability Pct/100.
type MissingHint struct {
	Pct float64
}

// Tag implements Hint.
func (h MissingHint) Tag() Tag { return Missing }

// Process implements Hint.
func (h MissingHint) Process(rng *rand.Rand, seed Result) Result {
	if rng.Float64()*100 < h.Pct {
		return Result{Sentinel: SentinelMissing}
	}

	return passThrough(seed)
}
