// Package fixtura turns a set of sample JSON-like records into a portable
// spec document describing their shape, and turns that spec document back
// into a generator of synthetic records, per spec.md §1-2.
//
// [CreateSpec] wires the extractor (C4), per-field analyzers (C5), and spec
// builder (C6) together: extraction, which consults the dynamic-key oracle
// (C8), runs concurrently across record partitions, analysis runs
// concurrently across field paths, and phase boundaries are logged. [NewFactory]
// wires the spec parser and generator (C7).
package fixtura

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leeward-labs/fixtura/extract"
	"github.com/leeward-labs/fixtura/factory"
	"github.com/leeward-labs/fixtura/oracle"
	"github.com/leeward-labs/fixtura/specdoc"
	"github.com/leeward-labs/fixtura/value"
)

// CreateSpec runs the full extract -> analyze -> build pipeline over
// records and returns the resulting spec document. o selects the dynamic-key
// oracle; nil uses [oracle.Default]. Phase boundaries are logged at
// slog.LevelInfo on logger (a nil logger uses [slog.Default]).
func CreateSpec(ctx context.Context, records []value.Value, o oracle.Oracle, logger *slog.Logger) (*specdoc.Document, error) {
	if logger == nil {
		logger = slog.Default()
	}

	ev, err := extract.ExtractAll(ctx, records, o)
	if err != nil {
		return nil, fmt.Errorf("fixtura: extract: %w", err)
	}

	logger.Info("extraction done", "records", ev.ItemCount, "fields", len(ev.FieldPathList()), "data_points", ev.DataPointCount)

	doc, err := specdoc.Build(ctx, ev)
	if err != nil {
		return nil, fmt.Errorf("fixtura: analyze: %w", err)
	}

	logger.Info("analysis done", "fields_with_hints", len(doc.Fields))
	logger.Info("spec built", "samples_analyzed", doc.Metadata.SamplesAnalyzed, "data_points", doc.Metadata.DataPoints)

	return doc, nil
}

// NewFactory parses doc into a record [factory.Factory], carrying the given
// baked-in field overrides (nil for none).
func NewFactory(doc *specdoc.Document, overrides map[string]any) (*factory.Factory, error) {
	f, err := factory.New(doc, overrides)
	if err != nil {
		return nil, fmt.Errorf("fixtura: build factory: %w", err)
	}

	return f, nil
}
