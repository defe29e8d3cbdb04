package hint

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Version pattern types.
const (
	VersionFull  = "full"  // N.N.N
	VersionShort = "short" // N.N
)

// VersionHint generates a semantic-version-shaped string. When Examples is
// present, component ranges are learned and widened per spec.md §4.1;
// otherwise fixed defaults are used.
type VersionHint struct {
	PatternType string
	Examples    []string
}

// Tag implements Hint.
func (VersionHint) Tag() Tag { return Version }

// Process implements Hint.
func (h VersionHint) Process(rng *rand.Rand, seed Result) Result {
	if seed.Set {
		return passThrough(seed)
	}

	majMin, majMax, minMin, minMax, patMin, patMax := h.ranges()

	major := majMin + rng.IntN(majMax-majMin+1)
	minor := minMin + rng.IntN(minMax-minMin+1)

	if h.PatternType == VersionShort {
		return Result{Value: fmt.Sprintf("%d.%d", major, minor), Set: true}
	}

	patch := patMin + rng.IntN(patMax-patMin+1)

	return Result{Value: fmt.Sprintf("%d.%d.%d", major, minor, patch), Set: true}
}

// ranges computes the (min,max) bounds for each component, widened from
// Examples per spec.md: "major [min, max+1], minor [min, max+5], patch
// [min, max+10], major floored at 1"; defaults major in [1,5], minor in
// [0,20], patch in [0,50] when no examples are given.
func (h VersionHint) ranges() (majMin, majMax, minMin, minMax, patMin, patMax int) {
	if len(h.Examples) == 0 {
		return 1, 5, 0, 20, 0, 50
	}

	majMin, majMax = -1, -1
	minMin, minMax = -1, -1
	patMin, patMax = -1, -1

	for _, ex := range h.Examples {
		parts := strings.Split(ex, ".")
		vals := make([]int, 0, len(parts))

		for _, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil {
				continue
			}

			vals = append(vals, n)
		}

		if len(vals) > 0 {
			majMin, majMax = widen(majMin, majMax, vals[0])
		}

		if len(vals) > 1 {
			minMin, minMax = widen(minMin, minMax, vals[1])
		}

		if len(vals) > 2 {
			patMin, patMax = widen(patMin, patMax, vals[2])
		}
	}

	if majMin < 0 {
		majMin, majMax = 1, 5
	} else {
		majMax++

		if majMin < 1 {
			majMin = 1
		}
	}

	if minMin < 0 {
		minMin, minMax = 0, 20
	} else {
		minMax += 5
	}

	if patMin < 0 {
		patMin, patMax = 0, 50
	} else {
		patMax += 10
	}

	return majMin, majMax, minMin, minMax, patMin, patMax
}

func widen(curMin, curMax, v int) (int, int) {
	if curMin < 0 || v < curMin {
		curMin = v
	}

	if curMax < 0 || v > curMax {
		curMax = v
	}

	return curMin, curMax
}
