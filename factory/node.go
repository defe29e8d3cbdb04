// Package factory implements the spec parser and generator (C7): it turns
// a spec document's flat field-hint map into a tree of field factories and
// drives value generation from it, per spec.md §4.7.
package factory

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/leeward-labs/fixtura/hint"
	"github.com/leeward-labs/fixtura/value"
)

// Sentinel errors surfaced by spec validation and generation, per spec.md §7.
var (
	// ErrMissingChildFactory indicates an ARRAY or OBJECT node has no
	// element sub-factory to build from.
	ErrMissingChildFactory = errors.New("missing child factory")
	// ErrMissingSizeHint indicates an ARRAY or OBJECT node produced a
	// non-numeric size from its hint chain.
	ErrMissingSizeHint = errors.New("missing size hint")
)

// Node is one field factory in the generation tree: a chain of hints plus
// either an array/object element sub-factory or a set of static children.
// A Node is built once by NewNode and is safe for concurrent Build calls —
// unlike the reference implementation's lazily-prepared tree, the whole
// tree is constructed eagerly so it can be shared across goroutines without
// synchronization, per spec.md §5 ("hints are immutable and shareable
// across generations").
type Node struct {
	fieldPath string
	hints     []hint.Hint

	isArray  bool
	isObject bool

	arrayElem  *Node
	objectElem *Node

	children   map[string]*Node
	childOrder []string
}

// FieldHints is a flat field-path → hint-chain map, the parsed form of a
// spec document's "fields" block.
type FieldHints map[string][]hint.Hint

// NewNode recursively builds the factory tree for fieldHints, rooted at
// fieldPath (empty for the record root).
func NewNode(fieldHints FieldHints, fieldPath string) (*Node, error) {
	selfHints, childGroups := splitFieldPaths(fieldHints)

	n := &Node{fieldPath: fieldPath, hints: selfHints}
	n.isArray = hasTag(selfHints, hint.Array)
	n.isObject = hasTag(selfHints, hint.Object)

	switch {
	case n.isArray:
		if fixedZero(selfHints) {
			return n, nil
		}

		own, ok := childGroups[""]
		if !ok {
			return nil, fmt.Errorf("%w: array field %q", ErrMissingChildFactory, displayPath(fieldPath))
		}

		elem, err := NewNode(stripPrefix(own, "[]"), fieldPath+"[]")
		if err != nil {
			return nil, err
		}

		n.arrayElem = elem

	case n.isObject:
		if fixedZero(selfHints) {
			return n, nil
		}

		own, ok := childGroups[""]
		if !ok {
			return nil, fmt.Errorf("%w: object field %q", ErrMissingChildFactory, displayPath(fieldPath))
		}

		elem, err := NewNode(stripPrefix(own, "{}"), fieldPath+"{}")
		if err != nil {
			return nil, err
		}

		n.objectElem = elem

	default:
		if len(childGroups) == 0 {
			break
		}

		n.children = make(map[string]*Node, len(childGroups))
		n.childOrder = make([]string, 0, len(childGroups))

		for name := range childGroups {
			n.childOrder = append(n.childOrder, name)
		}

		sort.Strings(n.childOrder)

		for _, name := range n.childOrder {
			childPath := name
			if fieldPath != "" {
				childPath = fieldPath + "." + name
			}

			child, err := NewNode(childGroups[name], childPath)
			if err != nil {
				return nil, err
			}

			n.children[name] = child
		}
	}

	return n, nil
}

func displayPath(p string) string {
	if p == "" {
		return "<root>"
	}

	return p
}

func hasTag(hints []hint.Hint, tag hint.Tag) bool {
	for _, h := range hints {
		if h.Tag() == tag {
			return true
		}
	}

	return false
}

// fixedZero reports whether hints carries a NUMBER hint whose Min and Max
// are both zero, the case spec.md §4.7 tells the generator to shortcut:
// no element sub-factory is ever needed because the container is always
// empty.
func fixedZero(hints []hint.Hint) bool {
	for _, h := range hints {
		if nh, ok := h.(hint.NumberHint); ok {
			return nh.Min == 0 && nh.Max == 0
		}
	}

	return false
}

// splitFieldPaths partitions a flat field-hint map into the hints that
// belong to this node itself (the "" key) and the remaining paths grouped
// by their immediate child segment, per spec.md §4.7.
func splitFieldPaths(fieldHints FieldHints) ([]hint.Hint, map[string]FieldHints) {
	var self []hint.Hint

	children := make(map[string]FieldHints)

	for path, hints := range fieldHints {
		if path == "" {
			self = append(self, hints...)
			continue
		}

		childName, remainder := splitFieldPathComponents(path)

		if children[childName] == nil {
			children[childName] = make(FieldHints)
		}

		children[childName][remainder] = hints
	}

	return self, children
}

// splitFieldPathComponents splits path into its immediate child segment
// and the remainder to recurse with, honoring the "." / "[]" / "{}"
// delimiters spec.md §4.7 names.
func splitFieldPathComponents(path string) (string, string) {
	if path == "[]" || path == "{}" {
		return "", path
	}

	dotPos := strings.Index(path, ".")
	bracketPos := strings.Index(path, "[]")
	bracePos := strings.Index(path, "{}")

	best := -1
	kind := ""

	for _, cand := range []struct {
		pos  int
		kind string
	}{{dotPos, "dot"}, {bracketPos, "bracket"}, {bracePos, "brace"}} {
		if cand.pos == -1 {
			continue
		}

		if best == -1 || cand.pos < best {
			best = cand.pos
			kind = cand.kind
		}
	}

	if best == -1 {
		return path, ""
	}

	switch kind {
	case "dot":
		parts := strings.SplitN(path, ".", 2)
		return parts[0], parts[1]
	case "bracket":
		parts := strings.SplitN(path, "[]", 2)
		return parts[0], "[]" + parts[1]
	default:
		parts := strings.SplitN(path, "{}", 2)
		return parts[0], "{}" + parts[1]
	}
}

// stripPrefix removes the "[]" or "{}" element-position marker (and a
// following dot) from each path in group, the transform spec.md §4.7
// applies before constructing an array/object's element sub-factory.
func stripPrefix(group FieldHints, marker string) FieldHints {
	out := make(FieldHints, len(group))

	for path, hints := range group {
		if strings.HasPrefix(path, marker) {
			path = strings.TrimPrefix(path, marker)
			path = strings.TrimPrefix(path, ".")
		}

		out[path] = hints
	}

	return out
}

// Build generates a value for this node. The second return value reports
// whether the field should be omitted from its parent entirely (a MISSING
// sentinel), distinct from an explicit JSON null.
func (n *Node) Build(rng *rand.Rand) (value.Value, bool, error) {
	switch {
	case n.isArray:
		return n.buildArray(rng)
	case n.isObject:
		return n.buildObject(rng)
	case len(n.children) > 0:
		return n.buildStaticObject(rng)
	default:
		return n.buildLeaf(rng)
	}
}

func (n *Node) buildArray(rng *rand.Rand) (value.Value, bool, error) {
	res := hint.Run(rng, n.hints)

	switch res.Sentinel {
	case hint.SentinelMissing:
		return nil, true, nil
	case hint.SentinelNull:
		return nil, false, nil
	}

	size, ok := asInt(res.Value)
	if !ok {
		return nil, false, fmt.Errorf("%w: array field %q", ErrMissingSizeHint, displayPath(n.fieldPath))
	}

	if size <= 0 {
		return []value.Value{}, false, nil
	}

	if n.arrayElem == nil {
		return nil, false, fmt.Errorf("%w: array field %q", ErrMissingChildFactory, displayPath(n.fieldPath))
	}

	out := make([]value.Value, size)

	for i := range out {
		v, missing, err := n.arrayElem.Build(rng)
		if err != nil {
			return nil, false, err
		}

		if missing {
			v = nil
		}

		out[i] = v
	}

	return out, false, nil
}

func (n *Node) buildObject(rng *rand.Rand) (value.Value, bool, error) {
	res := hint.Run(rng, n.hints)

	switch res.Sentinel {
	case hint.SentinelMissing:
		return nil, true, nil
	case hint.SentinelNull:
		return nil, false, nil
	}

	count, ok := asInt(res.Value)
	if !ok {
		return nil, false, fmt.Errorf("%w: object field %q", ErrMissingSizeHint, displayPath(n.fieldPath))
	}

	out := value.NewObject()
	if count <= 0 {
		return out, false, nil
	}

	if n.objectElem == nil {
		return nil, false, fmt.Errorf("%w: object field %q", ErrMissingChildFactory, displayPath(n.fieldPath))
	}

	keyHints := keyOnlyHints(n.hints)
	attempts := count * 2

	for i := 0; i < count; i++ {
		key, found := generateUniqueKey(rng, keyHints, out, attempts)
		if !found {
			break
		}

		v, missing, err := n.objectElem.Build(rng)
		if err != nil {
			return nil, false, err
		}

		if missing {
			v = nil
		}

		out.Set(key, v)
	}

	return out, false, nil
}

func (n *Node) buildStaticObject(rng *rand.Rand) (value.Value, bool, error) {
	if len(n.hints) > 0 {
		res := hint.Run(rng, n.hints)

		switch res.Sentinel {
		case hint.SentinelMissing:
			return nil, true, nil
		case hint.SentinelNull:
			return nil, false, nil
		}
	}

	out := value.NewObject()

	for _, name := range n.childOrder {
		v, missing, err := n.children[name].Build(rng)
		if err != nil {
			return nil, false, err
		}

		if missing {
			continue
		}

		out.Set(name, v)
	}

	return out, false, nil
}

func (n *Node) buildLeaf(rng *rand.Rand) (value.Value, bool, error) {
	res := hint.Run(rng, n.hints)

	switch res.Sentinel {
	case hint.SentinelMissing:
		return nil, true, nil
	case hint.SentinelNull:
		return nil, false, nil
	}

	return res.Value, false, nil
}

// keyOnlyHints returns the subset of a dynamic-object node's hints used to
// generate keys rather than control container shape, per spec.md §4.7.
func keyOnlyHints(hints []hint.Hint) []hint.Hint {
	out := make([]hint.Hint, 0, len(hints))

	for _, h := range hints {
		switch h.Tag() {
		case hint.Object, hint.Number, hint.Null, hint.Missing:
			continue
		default:
			out = append(out, h)
		}
	}

	return out
}

const fallbackKeyAlphabet = "abcdefghijklmnopqrstuvwxyz"

func generateUniqueKey(rng *rand.Rand, keyHints []hint.Hint, existing *value.Object, attempts int) (string, bool) {
	for i := 0; i < attempts; i++ {
		var key string

		if len(keyHints) > 0 {
			res := hint.Run(rng, keyHints)
			key, _ = res.Value.(string)
		} else {
			key = randomLowerString(rng, 3, 8)
		}

		if _, exists := existing.Get(key); !exists {
			return key, true
		}
	}

	return "", false
}

func randomLowerString(rng *rand.Rand, minLen, maxLen int) string {
	n := minLen + rng.IntN(maxLen-minLen+1)
	b := make([]byte, n)

	for i := range b {
		b[i] = fallbackKeyAlphabet[rng.IntN(len(fallbackKeyAlphabet))]
	}

	return string(b)
}

func asInt(v value.Value) (int, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}

	return int(f), true
}
