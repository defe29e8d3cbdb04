package factory

import (
	"fmt"

	"github.com/leeward-labs/fixtura/hint"
	"github.com/leeward-labs/fixtura/specdoc"
)

// FromDocument materializes a hint chain for every field of doc via the
// hint catalog (C1), then builds the factory tree rooted at the record,
// the "parsing" half of spec.md §4.7.
func FromDocument(doc *specdoc.Document) (*Node, error) {
	fieldHints := make(FieldHints, len(doc.Fields))

	for path, chain := range doc.Fields {
		hints := make([]hint.Hint, 0, len(chain))

		for _, tp := range chain {
			h, err := hint.FromSpec(tp.Tag, tp.Payload)
			if err != nil {
				return nil, fmt.Errorf("factory: field %q: %w", path, err)
			}

			hints = append(hints, h)
		}

		fieldHints[path] = hints
	}

	return NewNode(fieldHints, "")
}
