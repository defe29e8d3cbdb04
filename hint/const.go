package hint

import (
	"math/rand/v2"

	"github.com/leeward-labs/fixtura/value"
)

// ConstHint always substitutes a fixed value, emitted when the field's
// analyzed sample had exactly one distinct value.
type ConstHint struct {
	Val value.Value
}

// Tag implements Hint.
func (ConstHint) Tag() Tag { return Const }

// Process implements Hint.
func (h ConstHint) Process(_ *rand.Rand, seed Result) Result {
	if seed.Set {
		return passThrough(seed)
	}

	return Result{Value: h.Val, Set: true}
}
