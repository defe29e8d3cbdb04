package value

import "strings"

// SegmentKind identifies the role a path segment plays.
type SegmentKind int

const (
	// SegmentKey addresses a named child of a static object.
	SegmentKey SegmentKind = iota
	// SegmentArray addresses the shared element position of an array.
	SegmentArray
	// SegmentDynamic addresses the shared value position of a dynamic-key object.
	SegmentDynamic
	// SegmentMeta addresses the aggregate (length/size) of the preceding container.
	SegmentMeta
)

// Segment is one step of a Path.
type Segment struct {
	Kind SegmentKind
	Key  string // only meaningful when Kind == SegmentKey
}

// Path is the parsed, immutable form of a canonical field path such as
// "a.b[].c.{}#". The zero Path is the record root.
type Path struct {
	segs []Segment
}

// Root is the empty path, naming the record itself.
var Root = Path{}

// Child returns the path to a static object's child key.
func (p Path) Child(key string) Path {
	return p.append(Segment{Kind: SegmentKey, Key: key})
}

// ArrayElem returns the path to the shared element position of the array at p.
func (p Path) ArrayElem() Path {
	return p.append(Segment{Kind: SegmentArray})
}

// DynamicValue returns the path to the shared value position of the
// dynamic-key object at p.
func (p Path) DynamicValue() Path {
	return p.append(Segment{Kind: SegmentDynamic})
}

// Meta returns the meta path for the container at p.
func (p Path) Meta() Path {
	return p.append(Segment{Kind: SegmentMeta})
}

func (p Path) append(s Segment) Path {
	segs := make([]Segment, len(p.segs)+1)
	copy(segs, p.segs)
	segs[len(p.segs)] = s

	return Path{segs: segs}
}

// Segments returns the path's segments.
func (p Path) Segments() []Segment {
	return p.segs
}

// Empty reports whether p is the record root.
func (p Path) Empty() bool {
	return len(p.segs) == 0
}

// IsContainerMeta reports whether p ends in "[]" or "{}" (an array element
// or dynamic-object value position), the case spec.md §4.5 tells the
// Presence analyzer to suppress entirely.
func (p Path) IsContainerMeta() bool {
	if len(p.segs) == 0 {
		return false
	}

	last := p.segs[len(p.segs)-1]

	return last.Kind == SegmentArray || last.Kind == SegmentDynamic
}

// Parent returns the path's parent per spec.md §4.5: the parent of "a.b.c"
// is "a.b"; the parent of a top-level field is the record root.
func (p Path) Parent() Path {
	if len(p.segs) == 0 {
		return p
	}

	return Path{segs: p.segs[:len(p.segs)-1]}
}

// String renders the canonical textual coordinate.
func (p Path) String() string {
	var sb strings.Builder

	for i, s := range p.segs {
		switch s.Kind {
		case SegmentKey:
			if i > 0 {
				sb.WriteByte('.')
			}

			sb.WriteString(s.Key)
		case SegmentArray:
			sb.WriteString("[]")
		case SegmentDynamic:
			if i > 0 {
				sb.WriteByte('.')
			}

			sb.WriteString("{}")
		case SegmentMeta:
			sb.WriteByte('#')
		}
	}

	return sb.String()
}

// ParsePath parses a canonical textual coordinate back into a Path. It is
// the inverse of Path.String and is used by the spec parser (C7) to rebuild
// paths read from a serialized spec document.
func ParsePath(s string) Path {
	var p Path

	i := 0
	for i < len(s) {
		switch {
		case strings.HasPrefix(s[i:], "[]"):
			p = p.ArrayElem()
			i += 2
		case strings.HasPrefix(s[i:], "{}"):
			p = p.DynamicValue()
			i += 2
		case s[i] == '#':
			p = p.Meta()
			i++
		case s[i] == '.':
			i++
		default:
			j := i
			for j < len(s) && s[j] != '.' && s[j] != '[' && s[j] != '{' && s[j] != '#' {
				j++
			}

			p = p.Child(s[i:j])
			i = j
		}
	}

	return p
}
