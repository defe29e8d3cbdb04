package hint

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

// Duration format identifiers, matching the wire-format DURATION hint's
// "fmt" field (spec.md §4.1).
const (
	DurationHMS           = "HMS"
	DurationDHMS          = "D.HMS"
	DurationDHMSFractional = "D.HMS.F"
	DurationISO8601Days   = "ISO8601_Days"
	DurationISO8601Weeks  = "ISO8601_Weeks"
)

// DurationHint samples seconds from a normal approximation centered at Avg
// (sigma = (Max-Min)/6), clamped to [Min, Max], then renders per Fmt.
type DurationHint struct {
	Fmt string
	Min float64
	Max float64
	Avg float64
}

// Tag implements Hint.
func (DurationHint) Tag() Tag { return Duration }

// Process implements Hint.
func (h DurationHint) Process(rng *rand.Rand, seed Result) Result {
	if seed.Set {
		return passThrough(seed)
	}

	sigma := (h.Max - h.Min) / 6
	if sigma <= 0 {
		sigma = 1
	}

	secs := clamp(sampleNormal(rng, h.Avg, sigma), h.Min, h.Max)

	return Result{Value: renderDuration(secs, h.Fmt), Set: true}
}

func renderDuration(secs float64, format string) string {
	total := int64(math.Round(secs))
	neg := total < 0

	if neg {
		total = -total
	}

	days := total / 86400
	rem := total % 86400
	hours := rem / 3600
	rem %= 3600
	minutes := rem / 60
	seconds := rem % 60
	frac := secs - math.Trunc(secs)

	var out string

	switch format {
	case DurationDHMS:
		out = fmt.Sprintf("%d.%02d:%02d:%02d", days, hours, minutes, seconds)
	case DurationDHMSFractional:
		fracStr := strings.TrimRight(fmt.Sprintf("%.7f", math.Abs(frac)), "0")
		fracStr = strings.TrimPrefix(fracStr, "0")
		fracStr = strings.TrimSuffix(fracStr, ".")
		out = fmt.Sprintf("%d.%02d:%02d:%02d%s", days, hours, minutes, seconds, fracStr)
	case DurationISO8601Days:
		out = fmt.Sprintf("P%dD", total/86400)
	case DurationISO8601Weeks:
		out = fmt.Sprintf("P%dW", total/(86400*7))
	case DurationHMS:
		fallthrough
	default:
		totalHours := days*24 + hours
		out = fmt.Sprintf("%02d:%02d:%02d", totalHours, minutes, seconds)
	}

	if neg {
		return "-" + out
	}

	return out
}
