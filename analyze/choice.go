package analyze

import (
	"sort"

	"github.com/leeward-labs/fixtura/hint"
	"github.com/leeward-labs/fixtura/value"
)

// Choice is invoked only once Numeric, StringPattern, and Alphanumeric
// have all declined a field. With a single distinct value it emits CONST;
// with two or more it emits a weighted CHOICE ordered by descending weight,
// ties broken by first appearance, per spec.md §4.5.
func Choice(counts map[any]int, order []any) hint.Hint {
	if len(order) == 1 {
		return hint.ConstHint{Val: order[0]}
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	type weighted struct {
		val   value.Value
		count int
		pos   int
	}

	items := make([]weighted, len(order))
	for i, v := range order {
		items[i] = weighted{val: v, count: counts[v], pos: i}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].count > items[j].count
	})

	choices := make([]value.Value, len(items))
	weights := make([]float64, len(items))

	for i, it := range items {
		choices[i] = it.val
		weights[i] = round3(float64(it.count) / float64(total))
	}

	return hint.ChoiceHint{Choices: choices, Weights: weights}
}
