// Package specdoc implements the spec builder (C6): it turns a finished
// per-field analysis into the stable wire-format spec document spec.md §6
// defines, and parses that document back into hint chains for the factory
// (C7), per spec.md §4.6.
package specdoc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/leeward-labs/fixtura/analyze"
	"github.com/leeward-labs/fixtura/extract"
	"github.com/leeward-labs/fixtura/hint"
)

// Metadata carries summary statistics about the analyzed sample, surfaced
// both in the wire document and the CLI's human-readable summary.
type Metadata struct {
	SamplesAnalyzed int `json:"samples_analyzed"`
	DataPoints      int `json:"data_points"`
	FieldsObserved  int `json:"fields_observed"`
}

// Document is the in-memory form of the spec document, the stable artifact
// spec.md §6 promises across implementations.
type Document struct {
	Metadata Metadata
	Fields   map[string][]TaggedPayload
}

// TaggedPayload is one entry of a field's hint chain, keyed by its catalog
// tag, preserving the resolution order spec.md §4.6 requires ("preserving
// insertion order of the resolution above").
type TaggedPayload struct {
	Tag     hint.Tag
	Payload map[string]any
}

// Build runs the per-field analyzers (C5) over ev and assembles the spec
// document, omitting fields with no hints per spec.md §4.6.
func Build(ctx context.Context, ev *extract.Evidence) (*Document, error) {
	chains, err := analyze.AnalyzeAll(ctx, ev)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Metadata: Metadata{
			SamplesAnalyzed: ev.ItemCount,
			DataPoints:      ev.DataPointCount,
			FieldsObserved:  len(ev.FieldPaths),
		},
		Fields: make(map[string][]TaggedPayload),
	}

	for path, chain := range chains {
		if len(chain) == 0 {
			continue
		}

		payloads := make([]TaggedPayload, len(chain))
		for i, h := range chain {
			// Pass each payload through JSON so it holds the same
			// float64/[]any/map[string]any shapes UnmarshalJSON produces
			// and hint.FromSpec reads.
			raw, err := json.Marshal(hint.ToPayload(h))
			if err != nil {
				return nil, fmt.Errorf("specdoc: field %q: %w", path, err)
			}

			var payload map[string]any
			if err := json.Unmarshal(raw, &payload); err != nil {
				return nil, fmt.Errorf("specdoc: field %q: %w", path, err)
			}

			payloads[i] = TaggedPayload{Tag: h.Tag(), Payload: payload}
		}

		doc.Fields[path] = payloads
	}

	return doc, nil
}

// MarshalJSON renders the document in the exact wire shape spec.md §6
// specifies: fields as an object keyed by path, each field as an object
// keyed by tag, preserving resolution order by writing each field's tag
// object from the ordered TaggedPayload slice (see marshalFieldOrdered).
func (d *Document) MarshalJSON() ([]byte, error) {
	type wire struct {
		Metadata Metadata                  `json:"metadata"`
		Fields   map[string]json.RawMessage `json:"fields"`
	}

	w := wire{Metadata: d.Metadata, Fields: make(map[string]json.RawMessage, len(d.Fields))}

	for path, chain := range d.Fields {
		raw, err := marshalFieldOrdered(chain)
		if err != nil {
			return nil, fmt.Errorf("specdoc: field %q: %w", path, err)
		}

		w.Fields[path] = raw
	}

	return json.Marshal(w)
}

// marshalFieldOrdered writes a field's tagged payload list as a JSON object
// with keys in chain order, since encoding/json's map marshaling would
// otherwise sort tags alphabetically and lose the resolution order.
func marshalFieldOrdered(chain []TaggedPayload) ([]byte, error) {
	var buf []byte

	buf = append(buf, '{')

	for i, tp := range chain {
		if i > 0 {
			buf = append(buf, ',')
		}

		key, err := json.Marshal(string(tp.Tag))
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(tp.Payload)
		if err != nil {
			return nil, err
		}

		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, val...)
	}

	buf = append(buf, '}')

	return buf, nil
}

// UnmarshalJSON parses a spec document from the wire shape, preserving the
// per-field tag order as written (Go's json.Decoder visits object keys in
// source order via Token-based decoding).
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw struct {
		Metadata Metadata                   `json:"metadata"`
		Fields   map[string]json.RawMessage `json:"fields"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.Metadata = raw.Metadata
	d.Fields = make(map[string][]TaggedPayload, len(raw.Fields))

	for path, fieldRaw := range raw.Fields {
		chain, err := unmarshalFieldOrdered(fieldRaw)
		if err != nil {
			return fmt.Errorf("specdoc: field %q: %w", path, err)
		}

		d.Fields[path] = chain
	}

	return nil
}

func unmarshalFieldOrdered(data []byte) ([]TaggedPayload, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("specdoc: expected object, got %v", tok)
	}

	var chain []TaggedPayload

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, _ := keyTok.(string)

		var payload map[string]any
		if err := dec.Decode(&payload); err != nil {
			return nil, err
		}

		chain = append(chain, TaggedPayload{Tag: hint.Tag(key), Payload: payload})
	}

	return chain, nil
}

// FieldPathsSorted returns the document's field paths in lexical order, for
// callers that need a deterministic iteration order over Fields.
func (d *Document) FieldPathsSorted() []string {
	paths := make([]string, 0, len(d.Fields))
	for p := range d.Fields {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	return paths
}
