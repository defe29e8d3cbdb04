package hint

import "math/rand/v2"

const defaultAlphaCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// AlphaHint generates fixed-length strings position by position, drawing
// each character from the charset registered for that position (or the
// default charset when a position has none registered), per spec.md
// invariant 5.
type AlphaHint struct {
	// Chrs maps a charset string to the list of positions it applies to.
	Chrs map[string][]int
}

// Tag implements Hint.
func (AlphaHint) Tag() Tag { return Alpha }

// Process implements Hint.
func (h AlphaHint) Process(rng *rand.Rand, seed Result) Result {
	if seed.Set {
		return passThrough(seed)
	}

	byPosition := make(map[int]string)

	maxPos := -1

	for charset, positions := range h.Chrs {
		for _, p := range positions {
			byPosition[p] = charset

			if p > maxPos {
				maxPos = p
			}
		}
	}

	if maxPos < 0 {
		return Result{Value: "", Set: true}
	}

	out := make([]byte, maxPos+1)

	for i := 0; i <= maxPos; i++ {
		charset := byPosition[i]
		if charset == "" {
			charset = defaultAlphaCharset
		}

		out[i] = charset[rng.IntN(len(charset))]
	}

	return Result{Value: string(out), Set: true}
}
