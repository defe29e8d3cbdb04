package pattern

import (
	"regexp"
	"strconv"
	"time"

	"github.com/leeward-labs/fixtura/hint"
)

// dateTimeFormat pairs a layout (or a unix-epoch kind) with the regex that
// gates it, in the priority order spec.md §4.3 lists.
type dateTimeFormat struct {
	re     *regexp.Regexp
	layout string
	unix   string // "seconds", "millis", or "" for a time.Parse layout
}

var dateTimeFormats = []dateTimeFormat{
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?[+-]\d{2}:\d{2}$`), time.RFC3339Nano, ""},
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?Z$`), time.RFC3339Nano, ""},
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}[+-]\d{2}:\d{2}$`), "2006-01-02T15:04:05.000000-07:00", ""},
	{regexp.MustCompile(`^\d{10}$`), "", "seconds"},
	{regexp.MustCompile(`^\d{13}$`), "", "millis"},
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`), "2006-01-02 15:04:05", ""},
	{regexp.MustCompile(`^\d{2}/\d{2}/\d{4} \d{2}:\d{2}:\d{2}$`), "01/02/2006 15:04:05", ""},
}

// DetectDateTime matches the first (highest-priority) format every value
// conforms to.
func DetectDateTime(values []string) (hint.Hint, bool) {
	for _, f := range dateTimeFormats {
		times, ok := parseAllDateTime(values, f)
		if !ok {
			continue
		}

		minT, maxT := times[0], times[0]

		for _, t := range times[1:] {
			if t.Before(minT) {
				minT = t
			}

			if t.After(maxT) {
				maxT = t
			}
		}

		return hint.DateTimeHint{
			Min: minT.Format(time.RFC3339),
			Max: maxT.Format(time.RFC3339),
		}, true
	}

	return nil, false
}

func parseAllDateTime(values []string, f dateTimeFormat) ([]time.Time, bool) {
	times := make([]time.Time, 0, len(values))

	for _, v := range values {
		if !f.re.MatchString(v) {
			return nil, false
		}

		var (
			t   time.Time
			err error
		)

		switch f.unix {
		case "seconds":
			var n int64
			n, err = strconv.ParseInt(v, 10, 64)
			t = time.Unix(n, 0).UTC()
		case "millis":
			var n int64
			n, err = strconv.ParseInt(v, 10, 64)
			t = time.UnixMilli(n).UTC()
		default:
			t, err = time.Parse(f.layout, v)
		}

		if err != nil {
			return nil, false
		}

		times = append(times, t)
	}

	return times, true
}
