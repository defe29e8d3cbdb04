package analyze

import (
	"github.com/leeward-labs/fixtura/hint"
	"github.com/leeward-labs/fixtura/pattern"
)

// StringPattern runs the ordered pattern detectors (C3) over a field's
// distinct string values, and is tried before the generic Alphanumeric and
// Choice/Const fallbacks, per spec.md §4.5's resolution order.
func StringPattern(counts map[any]int) (hint.Hint, bool) {
	strCounts, ok := stringCounts(counts)
	if !ok {
		return nil, false
	}

	return pattern.Detect(strCounts)
}

func stringCounts(counts map[any]int) (map[string]int, bool) {
	out := make(map[string]int, len(counts))

	for v, n := range counts {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}

		out[s] = n
	}

	return out, true
}
