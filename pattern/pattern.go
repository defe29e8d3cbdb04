// Package pattern implements the string pattern recognizer (C3): an
// ordered list of detectors run against the set of distinct observed
// string values, first match wins, per spec.md §4.3.
package pattern

import (
	"sort"

	"github.com/leeward-labs/fixtura/hint"
)

// Detector inspects the distinct set of observed string values and returns
// a hint when every value matches its pattern.
type Detector func(values []string) (hint.Hint, bool)

// Ordered is the fixed priority list spec.md §4.3 specifies.
var Ordered = []Detector{
	DetectDateTime,
	DetectDate,
	DetectDuration,
	DetectAuth0ID,
	DetectMAC,
	DetectUUID4,
	DetectVersion,
	DetectNumStr,
	func(values []string) (hint.Hint, bool) { return DetectAlpha(values, 0) },
	DetectText,
}

// Detect runs the ordered detector list against the distinct values seen
// for a field (counts are ignored, per spec.md §9's open question: pattern
// detectors operate on the set, not the frequency, of distinct values).
func Detect(counts map[string]int) (hint.Hint, bool) {
	values := distinctSorted(counts)
	if len(values) == 0 {
		return nil, false
	}

	for _, detector := range Ordered {
		if h, ok := detector(values); ok {
			return h, true
		}
	}

	return nil, false
}

func distinctSorted(counts map[string]int) []string {
	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}

	sort.Strings(values)

	return values
}
