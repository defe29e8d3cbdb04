package pattern

import (
	"sort"
	"strings"

	"github.com/leeward-labs/fixtura/hint"
)

// charsetFor classifies a byte into the full alphabet of its class (upper
// case, lower case or digits), or the byte itself for any other character,
// matching the reference implementation's per-position bucketing.
func charsetFor(b byte) string {
	switch {
	case b >= 'A' && b <= 'Z':
		return "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	case b >= 'a' && b <= 'z':
		return "abcdefghijklmnopqrstuvwxyz"
	case b >= '0' && b <= '9':
		return "0123456789"
	default:
		return string(b)
	}
}

// DetectAlpha matches values that all share one length, recording the
// union of per-position charsets seen (spec.md §4.3/§4.5). minDistinct
// gates how many distinct values must be present before the detector
// fires; the dedicated AlphanumericAnalyzer (C5) uses a stricter threshold
// than the general pattern recognizer (C3).
func DetectAlpha(values []string, minDistinct int) (hint.Hint, bool) {
	if len(values) < minDistinct || len(values) == 0 {
		return nil, false
	}

	length := len(values[0])

	for _, v := range values {
		if len(v) != length || length == 0 {
			return nil, false
		}
	}

	positions := make([]map[string]bool, length)
	for i := range positions {
		positions[i] = make(map[string]bool)
	}

	for _, v := range values {
		for i := 0; i < length; i++ {
			positions[i][charsetFor(v[i])] = true
		}
	}

	chrs := make(map[string][]int)

	for i, set := range positions {
		key := charsetKey(set)
		chrs[key] = append(chrs[key], i)
	}

	return hint.AlphaHint{Chrs: chrs}, true
}

func charsetKey(set map[string]bool) string {
	parts := make([]string, 0, len(set))
	for k := range set {
		parts = append(parts, k)
	}

	sort.Strings(parts)

	return strings.Join(parts, "")
}
