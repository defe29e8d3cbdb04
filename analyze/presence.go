package analyze

import (
	"github.com/leeward-labs/fixtura/hint"
	"github.com/leeward-labs/fixtura/value"
)

// Presence emits a MISSING hint iff path was present in fewer records than
// its parent was, and path does not itself name an array element or
// dynamic-object value position (those never go "missing" independently of
// their container, per spec.md §4.5).
func Presence(path value.Path, presence, parentPresence int) (hint.Hint, bool) {
	if path.IsContainerMeta() {
		return nil, false
	}

	if parentPresence == 0 || presence >= parentPresence {
		return nil, false
	}

	pct := round3((1 - float64(presence)/float64(parentPresence)) * 100)

	return hint.MissingHint{Pct: pct}, true
}
