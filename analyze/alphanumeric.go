package analyze

import (
	"github.com/leeward-labs/fixtura/hint"
	"github.com/leeward-labs/fixtura/pattern"
)

// alphaMinDistinct is the minimum number of distinct fixed-length values
// the Alphanumeric analyzer requires before it trusts a per-position
// charset inference over simply falling through to CHOICE, per spec.md
// §4.5's note that low-cardinality fixed-length fields are more likely
// enumerations than generated codes.
const alphaMinDistinct = 10

// Alphanumeric runs only once StringPattern has declined a field, and
// itself declines unless there are enough distinct fixed-length values to
// make a per-position charset a better model than an explicit CHOICE list.
func Alphanumeric(counts map[any]int) (hint.Hint, bool) {
	strCounts, ok := stringCounts(counts)
	if !ok {
		return nil, false
	}

	values := make([]string, 0, len(strCounts))
	for s := range strCounts {
		values = append(values, s)
	}

	return pattern.DetectAlpha(values, alphaMinDistinct)
}
