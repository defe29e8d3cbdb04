package hint

import (
	"math/rand/v2"
	"time"
)

const dateLayout = "2006-01-02"

// DateHint generates an ISO date string uniformly within [Min, Max].
type DateHint struct {
	Min string
	Max string
}

// Tag implements Hint.
func (DateHint) Tag() Tag { return Date }

// Process implements Hint.
func (h DateHint) Process(rng *rand.Rand, seed Result) Result {
	if seed.Set {
		return passThrough(seed)
	}

	lo, err1 := time.Parse(dateLayout, h.Min)
	hi, err2 := time.Parse(dateLayout, h.Max)

	if err1 != nil || err2 != nil || !hi.After(lo) {
		return Result{Value: h.Min, Set: true}
	}

	days := int64(hi.Sub(lo).Hours() / 24)
	offset := rng.Int64N(days + 1)
	d := lo.AddDate(0, 0, int(offset))

	return Result{Value: d.Format(dateLayout), Set: true}
}
