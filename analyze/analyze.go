package analyze

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/leeward-labs/fixtura/extract"
	"github.com/leeward-labs/fixtura/hint"
	"github.com/leeward-labs/fixtura/value"
)

// HintsForPath runs the full analyzer resolution order spec.md §4.5 defines
// for a single field path against a finished Evidence store: ARRAY, then
// OBJECT, then the value-hint cascade (NUMBER, StringPattern, ALPHA,
// CHOICE/CONST), then NULL, then MISSING. Earlier analyzers that match
// short-circuit everything below them except NULL/MISSING, which always
// apply last regardless of which value hint fired.
func HintsForPath(ev *extract.Evidence, pathStr string) []hint.Hint {
	path := value.ParsePath(pathStr)

	var chain []hint.Hint

	switch {
	case len(ev.ArrayLengthCounts[pathStr]) > 0:
		chain = Array(ev.ArrayLengthCounts[pathStr])

	case len(ev.ObjectSizeCounts[pathStr]) > 0:
		chain = Object(ev.ObjectSizeCounts[pathStr], ev.ObjectKeyBag[pathStr])

	default:
		if h := valueHint(ev, pathStr); h != nil {
			chain = []hint.Hint{h}
		}
	}

	appearance := ev.AppearanceCounts[pathStr]
	parentPresence := ev.ParentPresence(path)

	if nullHint, ok := Null(ev.NullCounts[pathStr], appearance); ok {
		chain = append(chain, nullHint)
	}

	if missingHint, ok := Presence(path, appearance, parentPresence); ok {
		chain = append(chain, missingHint)
	}

	return chain
}

// valueHint runs the NUMBER / StringPattern / ALPHA / CHOICE-or-CONST
// cascade for a scalar-valued field, the portion of the resolution order
// that only applies once ARRAY and OBJECT have both declined.
func valueHint(ev *extract.Evidence, pathStr string) hint.Hint {
	counts := ev.FieldValueCounts[pathStr]
	if len(counts) == 0 {
		return nil
	}

	if h, ok := Numeric(counts); ok {
		return h
	}

	if h, ok := StringPattern(counts); ok {
		return h
	}

	if h, ok := Alphanumeric(counts); ok {
		return h
	}

	return Choice(counts, ev.FieldValueOrder[pathStr])
}

// AnalyzeAll runs HintsForPath over every field path in ev concurrently,
// the per-field parallelism spec.md §5 sanctions for C5 ("fields are
// independent once extraction has finished").
func AnalyzeAll(ctx context.Context, ev *extract.Evidence) (map[string][]hint.Hint, error) {
	paths := ev.FieldPathList()
	results := make([][]hint.Hint, len(paths))

	g, gctx := errgroup.WithContext(ctx)

	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = HintsForPath(ev, p)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string][]hint.Hint, len(paths))
	for i, p := range paths {
		out[p] = results[i]
	}

	return out, nil
}
