package hint

import "math/rand/v2"

// ArrayMarker flags a field's hint list as describing an array container.
// Its presence changes how factory.Node interprets its sibling hints; see
// spec.md §4.7. It is a pass-through in the chain itself.
type ArrayMarker struct{}

// Tag implements Hint.
func (ArrayMarker) Tag() Tag { return Array }

// Process implements Hint.
func (ArrayMarker) Process(_ *rand.Rand, seed Result) Result { return passThrough(seed) }

// ObjectMarker flags a field's hint list as describing a dynamic-key object
// container. See ArrayMarker and spec.md §4.7.
type ObjectMarker struct{}

// Tag implements Hint.
func (ObjectMarker) Tag() Tag { return Object }

// Process implements Hint.
func (ObjectMarker) Process(_ *rand.Rand, seed Result) Result { return passThrough(seed) }
