package analyze

import "github.com/leeward-labs/fixtura/hint"

// Array builds the [ArrayMarker, sizeHint] chain from a field's observed
// array-length distribution. It is the highest-priority analyzer in the
// resolution order (spec.md §4.5): once a field is seen carrying arrays, no
// other analyzer runs for it.
func Array(lengthCounts map[int]int) []hint.Hint {
	samples := intCountsToSamples(lengthCounts)
	if len(samples) == 0 {
		return []hint.Hint{hint.ArrayMarker{}}
	}

	return []hint.Hint{hint.ArrayMarker{}, numberHintFromSamples(samples)}
}
