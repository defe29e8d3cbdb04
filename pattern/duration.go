package pattern

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/leeward-labs/fixtura/hint"
)

var (
	hmsRE        = regexp.MustCompile(`^-?(\d+):(\d{2}):(\d{2})$`)
	dhmsRE       = regexp.MustCompile(`^-?(\d+)\.(\d{2}):(\d{2}):(\d{2})$`)
	dhmsFracRE   = regexp.MustCompile(`^-?(\d+)\.(\d{2}):(\d{2}):(\d{2})\.(\d+)$`)
	iso8601DaysRE  = regexp.MustCompile(`^P(\d+)D$`)
	iso8601WeeksRE = regexp.MustCompile(`^P(\d+)W$`)
)

type durationParser struct {
	format string
	parse  func(string) (float64, bool)
}

var durationParsers = []durationParser{
	{hint.DurationHMS, parseHMS},
	{hint.DurationDHMS, parseDHMS},
	{hint.DurationDHMSFractional, parseDHMSFractional},
	{hint.DurationISO8601Days, parseISO8601Days},
	{hint.DurationISO8601Weeks, parseISO8601Weeks},
}

// DetectDuration tries each duration rendering format in priority order;
// the first one every value parses under wins.
func DetectDuration(values []string) (hint.Hint, bool) {
	for _, dp := range durationParsers {
		secs, ok := parseAllDuration(values, dp.parse)
		if !ok {
			continue
		}

		minS, maxS, sum := secs[0], secs[0], 0.0

		for _, s := range secs {
			if s < minS {
				minS = s
			}

			if s > maxS {
				maxS = s
			}

			sum += s
		}

		return hint.DurationHint{
			Fmt: dp.format,
			Min: minS,
			Max: maxS,
			Avg: sum / float64(len(secs)),
		}, true
	}

	return nil, false
}

func parseAllDuration(values []string, parse func(string) (float64, bool)) ([]float64, bool) {
	out := make([]float64, 0, len(values))

	for _, v := range values {
		secs, ok := parse(v)
		if !ok {
			return nil, false
		}

		out = append(out, secs)
	}

	return out, true
}

func parseHMS(s string) (float64, bool) {
	m := hmsRE.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	sec, _ := strconv.Atoi(m[3])

	secs := float64(h*3600 + mi*60 + sec)
	if strings.HasPrefix(s, "-") {
		secs = -secs
	}

	return secs, true
}

func parseDHMS(s string) (float64, bool) {
	m := dhmsRE.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	d, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	mi, _ := strconv.Atoi(m[3])
	sec, _ := strconv.Atoi(m[4])

	secs := float64(d*86400 + h*3600 + mi*60 + sec)
	if strings.HasPrefix(s, "-") {
		secs = -secs
	}

	return secs, true
}

func parseDHMSFractional(s string) (float64, bool) {
	m := dhmsFracRE.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	d, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	mi, _ := strconv.Atoi(m[3])
	sec, _ := strconv.Atoi(m[4])
	frac, _ := strconv.ParseFloat("0."+m[5], 64)

	secs := float64(d*86400+h*3600+mi*60+sec) + frac
	if strings.HasPrefix(s, "-") {
		secs = -secs
	}

	return secs, true
}

func parseISO8601Days(s string) (float64, bool) {
	m := iso8601DaysRE.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	d, _ := strconv.Atoi(m[1])

	return float64(d * 86400), true
}

func parseISO8601Weeks(s string) (float64, bool) {
	m := iso8601WeeksRE.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	w, _ := strconv.Atoi(m[1])

	return float64(w * 86400 * 7), true
}
