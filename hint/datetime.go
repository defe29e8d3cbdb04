package hint

import (
	"math/rand/v2"
	"time"
)

// DateTimeHint generates an ISO-8601 instant uniformly within [Min, Max],
// re-rendered preserving Min's timezone offset, per spec.md §4.1.
type DateTimeHint struct {
	Min string
	Max string
}

// Tag implements Hint.
func (DateTimeHint) Tag() Tag { return DateTime }

// Process implements Hint.
func (h DateTimeHint) Process(rng *rand.Rand, seed Result) Result {
	if seed.Set {
		return passThrough(seed)
	}

	lo, err1 := parseDateTime(h.Min)
	hi, err2 := parseDateTime(h.Max)

	if err1 != nil || err2 != nil || !hi.After(lo) {
		return Result{Value: h.Min, Set: true}
	}

	span := hi.Unix() - lo.Unix()
	offset := rng.Int64N(span + 1)
	t := time.Unix(lo.Unix()+offset, 0).In(lo.Location())

	return Result{Value: t.Format(time.RFC3339), Set: true}
}

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseDateTime(s string) (time.Time, error) {
	var (
		t   time.Time
		err error
	)

	for _, layout := range dateTimeLayouts {
		t, err = time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}

	return t, err
}
