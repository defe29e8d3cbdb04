// Package analyze implements the per-field analyzers (C5): Null, Presence,
// Choice, Numeric, StringPattern, Alphanumeric, Array, and Object, sharing
// the evidence stores the extractor (C4) populates, per spec.md §4.5.
package analyze

import (
	"math"
	"sort"

	"github.com/leeward-labs/fixtura/fit"
	"github.com/leeward-labs/fixtura/hint"
)

// Numeric delegates to the distribution fitter (C2) for a float-only value
// counter, falling back to a plain NUMBER hint with observed bounds and
// computed precision when no distribution qualifies.
func Numeric(counts map[any]int) (hint.Hint, bool) {
	samples, ok := floatSamples(counts)
	if !ok || len(samples) == 0 {
		return nil, false
	}

	return numberHintFromSamples(samples), true
}

// numberHintFromSamples is shared by the Numeric, Array, and Object
// analyzers: each ultimately fits a NUMBER hint over a sample of floats
// (scalar values, array lengths, or object sizes respectively).
func numberHintFromSamples(samples []float64) hint.Hint {
	if h, ok := fit.Fit(samples); ok {
		return h
	}

	lo, hi := minMax(samples)

	return hint.NumberHint{Min: lo, Max: hi, Prec: precPtr(fit.Precision(samples))}
}

func precPtr(p int) *int {
	if p < 0 {
		return nil
	}

	return &p
}

func floatSamples(counts map[any]int) ([]float64, bool) {
	samples := make([]float64, 0, len(counts))

	for v, n := range counts {
		f, ok := v.(float64)
		if !ok {
			return nil, false
		}

		for range n {
			samples = append(samples, f)
		}
	}

	return samples, true
}

func intCountsToSamples(counts map[int]int) []float64 {
	samples := make([]float64, 0, len(counts))

	for v, n := range counts {
		for range n {
			samples = append(samples, float64(v))
		}
	}

	sort.Float64s(samples)

	return samples
}

func minMax(samples []float64) (float64, float64) {
	if len(samples) == 0 {
		return 0, 0
	}

	lo, hi := samples[0], samples[0]

	for _, v := range samples[1:] {
		if v < lo {
			lo = v
		}

		if v > hi {
			hi = v
		}
	}

	return lo, hi
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
