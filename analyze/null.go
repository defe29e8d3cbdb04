package analyze

import "github.com/leeward-labs/fixtura/hint"

// Null emits a NULL hint iff the field was null at least once. pct is
// nulls / appearances, where appearances counts every visit to the path
// including the null ones themselves (spec.md §4.5, verified against the
// §8 worked example: 1 null over 7 appearances is 14.286%).
func Null(nulls, appearances int) (hint.Hint, bool) {
	if nulls == 0 || appearances == 0 {
		return nil, false
	}

	pct := round3(float64(nulls) / float64(appearances) * 100)

	return hint.NullHint{Pct: pct}, true
}
