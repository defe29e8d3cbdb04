package factory

import (
	"iter"
	"math/rand/v2"

	"github.com/leeward-labs/fixtura/specdoc"
	"github.com/leeward-labs/fixtura/value"
)

// Factory generates records from a parsed spec document, with an optional
// set of baked-in field overrides applied to every build, per spec.md
// §4.7's generator and the Factory ergonomics SPEC_FULL.md's supplemented
// features section adds on top of it.
type Factory struct {
	root      *Node
	overrides map[string]any
}

// New parses doc into a factory tree and returns a Factory carrying the
// given baked-in overrides (nil for none).
func New(doc *specdoc.Document, overrides map[string]any) (*Factory, error) {
	root, err := FromDocument(doc)
	if err != nil {
		return nil, err
	}

	return &Factory{root: root, overrides: cloneOverrides(overrides)}, nil
}

// Build generates one record, applying the factory's baked-in overrides
// plus any passed for this call (call-site overrides win on conflict).
// Overrides are applied only after the full record is built, per spec.md
// §5's ordering rule ("user overrides must see a deterministic snapshot").
func (f *Factory) Build(rng *rand.Rand, overrides map[string]any) (value.Value, error) {
	rec, missing, err := f.root.Build(rng)
	if err != nil {
		return nil, err
	}

	if missing {
		rec = nil
	}

	combined := mergeOverrides(f.overrides, overrides)
	if len(combined) == 0 {
		return rec, nil
	}

	return ApplyOverrides(rec, combined)
}

// Records returns an iterator yielding n generated records, short-circuiting
// on the first build error, the Go 1.23+ range-over-func idiom standing in
// for the reference implementation's Python iterator protocol.
func (f *Factory) Records(rng *rand.Rand, n int) iter.Seq2[value.Value, error] {
	return func(yield func(value.Value, error) bool) {
		for range n {
			rec, err := f.Build(rng, nil)
			if !yield(rec, err) {
				return
			}

			if err != nil {
				return
			}
		}
	}
}

// Clone returns a new Factory sharing this one's parsed tree with
// additional overrides merged in, the copy-on-write ergonomic spec.md §9's
// design notes describe for building variant factories cheaply.
func (f *Factory) Clone(overrides map[string]any) *Factory {
	return &Factory{root: f.root, overrides: mergeOverrides(f.overrides, overrides)}
}

func cloneOverrides(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

func mergeOverrides(base, extra map[string]any) map[string]any {
	if len(base) == 0 {
		return cloneOverrides(extra)
	}

	out := make(map[string]any, len(base)+len(extra))

	for k, v := range base {
		out[k] = v
	}

	for k, v := range extra {
		out[k] = v
	}

	return out
}
