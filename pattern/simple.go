package pattern

import (
	"regexp"
	"time"

	"github.com/leeward-labs/fixtura/hint"
)

var dateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DetectDate matches "YYYY-MM-DD" strings.
func DetectDate(values []string) (hint.Hint, bool) {
	var minS, maxS string

	for i, v := range values {
		if !dateRE.MatchString(v) {
			return nil, false
		}

		if _, err := time.Parse(dateLayoutLocal, v); err != nil {
			return nil, false
		}

		if i == 0 || v < minS {
			minS = v
		}

		if i == 0 || v > maxS {
			maxS = v
		}
	}

	return hint.DateHint{Min: minS, Max: maxS}, true
}

const dateLayoutLocal = "2006-01-02"

var auth0RE = regexp.MustCompile(`^auth0\|[0-9a-fA-F]+$`)

// DetectAuth0ID matches `auth0|`-prefixed identifiers.
func DetectAuth0ID(values []string) (hint.Hint, bool) {
	for _, v := range values {
		if !auth0RE.MatchString(v) {
			return nil, false
		}
	}

	return hint.Auth0IDHint{}, true
}

var macRE = regexp.MustCompile(`^([0-9a-fA-F]{2}[:-]){5}[0-9a-fA-F]{2}$`)

// DetectMAC matches six colon- or hyphen-separated hex octet pairs.
func DetectMAC(values []string) (hint.Hint, bool) {
	for _, v := range values {
		if !macRE.MatchString(v) {
			return nil, false
		}
	}

	return hint.MACHint{}, true
}

var uuid4RE = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// DetectUUID4 matches canonical hex 8-4-4-4-12 UUID v4 strings.
func DetectUUID4(values []string) (hint.Hint, bool) {
	for _, v := range values {
		if !uuid4RE.MatchString(v) {
			return nil, false
		}
	}

	return hint.UUID4Hint{}, true
}

var (
	versionFullRE  = regexp.MustCompile(`^\d+\.\d+\.\d+(\.\d+)?$`)
	versionShortRE = regexp.MustCompile(`^\d+\.\d+$`)
)

// DetectVersion matches "N.N.N[.N]" (full) or "N.N" (short) version strings.
func DetectVersion(values []string) (hint.Hint, bool) {
	allFull := true
	allShort := true

	for _, v := range values {
		if !versionFullRE.MatchString(v) {
			allFull = false
		}

		if !versionShortRE.MatchString(v) {
			allShort = false
		}
	}

	switch {
	case allFull:
		return hint.VersionHint{PatternType: hint.VersionFull, Examples: values}, true
	case allShort:
		return hint.VersionHint{PatternType: hint.VersionShort, Examples: values}, true
	default:
		return nil, false
	}
}

var numStrRE = regexp.MustCompile(`^\d+$`)

// DetectNumStr matches all-digit strings.
func DetectNumStr(values []string) (hint.Hint, bool) {
	var minV, maxV float64

	for i, v := range values {
		if !numStrRE.MatchString(v) {
			return nil, false
		}

		n := digitsToFloat(v)

		if i == 0 || n < minV {
			minV = n
		}

		if i == 0 || n > maxV {
			maxV = n
		}
	}

	return hint.NumStrHint{NumberHint: hint.NumberHint{Min: minV, Max: maxV}}, true
}

func digitsToFloat(s string) float64 {
	var n float64
	for _, c := range s {
		n = n*10 + float64(c-'0')
	}

	return n
}
