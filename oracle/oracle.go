// Package oracle implements the dynamic-key oracle (C8): a pure,
// idempotent, side-effect-free predicate the extractor consults to decide
// whether an object's keys are data rather than schema, per spec.md §4.8.
package oracle

import "github.com/leeward-labs/fixtura/value"

// Oracle answers whether the object at a canonical path should be treated
// as a dynamic-key object.
type Oracle interface {
	IsDynamicKeyObject(path value.Path) bool
}

type alwaysFalse struct{}

func (alwaysFalse) IsDynamicKeyObject(value.Path) bool { return false }

// Default returns the oracle that never marks a path dynamic, the baseline
// behavior spec.md §4.8 requires in the absence of an external schema.
func Default() Oracle {
	return alwaysFalse{}
}

// PathSet is an Oracle backed by a precomputed set of canonical paths,
// the representation spec.md §9 recommends ("a pre-computed set of
// canonical paths rather than an interface hook in the hot path").
type PathSet map[string]bool

// IsDynamicKeyObject implements Oracle.
func (s PathSet) IsDynamicKeyObject(path value.Path) bool {
	return s[path.String()]
}

// FromPaths builds a PathSet oracle from canonical path strings.
func FromPaths(paths ...string) PathSet {
	s := make(PathSet, len(paths))
	for _, p := range paths {
		s[p] = true
	}

	return s
}
