// Package extract implements the extractor (C4): a recursive traversal
// over sample records that populates per-field evidence stores, consulting
// the dynamic-key oracle (C8) to distinguish static objects from
// dynamic-key ones, per spec.md §4.4.
package extract

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/leeward-labs/fixtura/oracle"
	"github.com/leeward-labs/fixtura/value"
)

// Evidence holds the per-field counters spec.md §3 names, accumulated
// during one or more extraction passes. Its counters compose: Merge sums
// and unions two Evidence values, per spec.md §5's partition-merge model.
type Evidence struct {
	ItemCount        int
	DataPointCount   int
	FieldPaths       map[string]struct{}
	FieldValueCounts map[string]map[any]int
	FieldValueOrder  map[string][]any
	ArrayLengthCounts map[string]map[int]int
	ObjectSizeCounts map[string]map[int]int
	ObjectKeyBag     map[string]map[string]int
	// AppearanceCounts counts every visit to a path regardless of value,
	// including null: the NULL-hint denominator (spec.md §4.5/§8).
	AppearanceCounts map[string]int
	// PresenceCounts counts only non-null visits: the asymmetric
	// non-null-only denominator §9 requires for a field's own ParentPresence.
	PresenceCounts map[string]int
	NullCounts     map[string]int
}

// New returns an empty Evidence store.
func New() *Evidence {
	return &Evidence{
		FieldPaths:        make(map[string]struct{}),
		FieldValueCounts:  make(map[string]map[any]int),
		FieldValueOrder:   make(map[string][]any),
		ArrayLengthCounts: make(map[string]map[int]int),
		ObjectSizeCounts:  make(map[string]map[int]int),
		ObjectKeyBag:      make(map[string]map[string]int),
		AppearanceCounts:  make(map[string]int),
		PresenceCounts:    make(map[string]int),
		NullCounts:        make(map[string]int),
	}
}

// FieldPathList returns the observed field paths in lexical order.
func (e *Evidence) FieldPathList() []string {
	paths := make([]string, 0, len(e.FieldPaths))
	for p := range e.FieldPaths {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	return paths
}

// ParentPresence returns how many times path's parent was present and
// non-null: the record count itself for a top-level field, per spec.md
// §4.5/§9's documented asymmetry.
func (e *Evidence) ParentPresence(path value.Path) int {
	parent := path.Parent()
	if parent.Empty() {
		return e.ItemCount
	}

	return e.PresenceCounts[parent.String()]
}

// Extract runs the recursive traversal (spec.md §4.4) over records,
// consulting o for dynamic-key detection, and returns the accumulated
// Evidence. ctx is accepted for cancellation of very large input
// iterators; extraction itself has no suspension points.
func Extract(ctx context.Context, records []value.Value, o oracle.Oracle) (*Evidence, error) {
	if o == nil {
		o = oracle.Default()
	}

	e := New()

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		e.ItemCount++
		e.visit(value.Root, rec, o)
	}

	return e, nil
}

// ExtractAll partitions records across GOMAXPROCS workers, extracting each
// partition concurrently and merging the results, the parallelism spec.md
// §5 explicitly sanctions ("embarrassingly parallel across disjoint record
// partitions").
func ExtractAll(ctx context.Context, records []value.Value, o oracle.Oracle) (*Evidence, error) {
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 || len(records) < workers*2 {
		return Extract(ctx, records, o)
	}

	chunkSize := (len(records) + workers - 1) / workers
	results := make([]*Evidence, workers)

	g, gctx := errgroup.WithContext(ctx)

	for i := range workers {
		start := i * chunkSize
		if start >= len(records) {
			break
		}

		end := min(start+chunkSize, len(records))

		g.Go(func() error {
			ev, err := Extract(gctx, records[start:end], o)
			if err != nil {
				return err
			}

			results[i] = ev

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := New()
	for _, r := range results {
		if r != nil {
			merged = Merge(merged, r)
		}
	}

	return merged, nil
}

func (e *Evidence) visit(path value.Path, v value.Value, o oracle.Oracle) {
	if !path.Empty() {
		e.FieldPaths[path.String()] = struct{}{}
		e.AppearanceCounts[path.String()]++

		if v == nil {
			e.NullCounts[path.String()]++
		} else {
			e.PresenceCounts[path.String()]++
		}
	}

	switch vv := v.(type) {
	case nil:
		e.DataPointCount++

	case *value.Object:
		if o.IsDynamicKeyObject(path) {
			e.bumpObjectSize(path.String(), vv.Len())

			for _, k := range vv.Keys() {
				e.bumpObjectKey(path.String(), k)
				child, _ := vv.Get(k)
				e.visit(path.DynamicValue(), child, o)
			}
		} else {
			for _, k := range vv.Keys() {
				child, _ := vv.Get(k)
				e.visit(path.Child(k), child, o)
			}
		}

	case []value.Value:
		e.bumpArrayLength(path.String(), len(vv))

		for _, elem := range vv {
			e.visit(path.ArrayElem(), elem, o)
		}

	default:
		e.bumpValue(path.String(), vv)
		e.DataPointCount++
	}
}

func (e *Evidence) bumpValue(path string, v value.Value) {
	m, ok := e.FieldValueCounts[path]
	if !ok {
		m = make(map[any]int)
		e.FieldValueCounts[path] = m
	}

	if _, seen := m[v]; !seen {
		e.FieldValueOrder[path] = append(e.FieldValueOrder[path], v)
	}

	m[v]++
}

func (e *Evidence) bumpArrayLength(path string, n int) {
	m, ok := e.ArrayLengthCounts[path]
	if !ok {
		m = make(map[int]int)
		e.ArrayLengthCounts[path] = m
	}

	m[n]++
}

func (e *Evidence) bumpObjectSize(path string, n int) {
	m, ok := e.ObjectSizeCounts[path]
	if !ok {
		m = make(map[int]int)
		e.ObjectSizeCounts[path] = m
	}

	m[n]++
}

func (e *Evidence) bumpObjectKey(path, key string) {
	m, ok := e.ObjectKeyBag[path]
	if !ok {
		m = make(map[string]int)
		e.ObjectKeyBag[path] = m
	}

	m[key]++
}

// Merge sums counters and unions sets across a and b, the commutative,
// associative operation spec.md §5 requires for partitioned extraction.
func Merge(a, b *Evidence) *Evidence {
	out := New()
	out.ItemCount = a.ItemCount + b.ItemCount
	out.DataPointCount = a.DataPointCount + b.DataPointCount

	for _, src := range []*Evidence{a, b} {
		for p := range src.FieldPaths {
			out.FieldPaths[p] = struct{}{}
		}

		for p, m := range src.FieldValueCounts {
			dst := out.FieldValueCounts[p]
			if dst == nil {
				dst = make(map[any]int)
				out.FieldValueCounts[p] = dst
			}

			for k, c := range m {
				if _, seen := dst[k]; !seen {
					out.FieldValueOrder[p] = append(out.FieldValueOrder[p], k)
				}

				dst[k] += c
			}
		}

		for p, m := range src.ArrayLengthCounts {
			dst := out.ArrayLengthCounts[p]
			if dst == nil {
				dst = make(map[int]int)
				out.ArrayLengthCounts[p] = dst
			}

			for k, c := range m {
				dst[k] += c
			}
		}

		for p, m := range src.ObjectSizeCounts {
			dst := out.ObjectSizeCounts[p]
			if dst == nil {
				dst = make(map[int]int)
				out.ObjectSizeCounts[p] = dst
			}

			for k, c := range m {
				dst[k] += c
			}
		}

		for p, m := range src.ObjectKeyBag {
			dst := out.ObjectKeyBag[p]
			if dst == nil {
				dst = make(map[string]int)
				out.ObjectKeyBag[p] = dst
			}

			for k, c := range m {
				dst[k] += c
			}
		}

		for p, c := range src.AppearanceCounts {
			out.AppearanceCounts[p] += c
		}

		for p, c := range src.PresenceCounts {
			out.PresenceCounts[p] += c
		}

		for p, c := range src.NullCounts {
			out.NullCounts[p] += c
		}
	}

	return out
}
