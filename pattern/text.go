package pattern

import (
	"strings"

	"github.com/leeward-labs/fixtura/hint"
)

// DetectText fires when more than 25% of values exceed 30 characters and
// contain at least 5 spaces, per spec.md §4.3's free-text heuristic.
func DetectText(values []string) (hint.Hint, bool) {
	if len(values) == 0 {
		return nil, false
	}

	longAndSpaced := 0

	minLen, maxLen := len(values[0]), len(values[0])

	for _, v := range values {
		if len(v) < minLen {
			minLen = len(v)
		}

		if len(v) > maxLen {
			maxLen = len(v)
		}

		if len(v) > 30 && strings.Count(v, " ") >= 5 {
			longAndSpaced++
		}
	}

	if float64(longAndSpaced)/float64(len(values)) <= 0.25 {
		return nil, false
	}

	return hint.TextHint{NumberHint: hint.NumberHint{Min: float64(minLen), Max: float64(maxLen)}}, true
}
