package analyze

import (
	"github.com/leeward-labs/fixtura/hint"
	"github.com/leeward-labs/fixtura/pattern"
)

// Object builds the [ObjectMarker, sizeHint, keyPatternHint?] chain for a
// dynamic-key object field. The key pattern hint is optional: it is
// included only when the observed keys themselves match one of the C3
// detectors (e.g. the ISO date keys of spec.md §8's scenario 5), letting
// the factory (C7) generate realistic keys rather than opaque counters.
func Object(sizeCounts map[int]int, keyBag map[string]int) []hint.Hint {
	chain := []hint.Hint{hint.ObjectMarker{}}

	samples := intCountsToSamples(sizeCounts)
	if len(samples) > 0 {
		chain = append(chain, numberHintFromSamples(samples))
	}

	if keyHint, ok := pattern.Detect(keyBag); ok {
		chain = append(chain, keyHint)
	}

	return chain
}
