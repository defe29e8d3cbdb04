package hint

import (
	"math/rand/v2"
	"strings"
)

// loremWords is the fixed word bank TextHint cycles through, matching the
// reference implementation's lorem-ipsum generator.
var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing",
	"elit", "sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore",
	"et", "dolore", "magna", "aliqua", "enim", "ad", "minim", "veniam",
	"quis", "nostrud", "exercitation", "ullamco", "laboris", "nisi",
	"aliquip", "ex", "ea", "commodo", "consequat", "duis", "aute", "irure",
	"in", "reprehenderit", "voluptate", "velit", "esse", "cillum", "fugiat",
	"nulla", "pariatur", "excepteur", "sint", "occaecat", "cupidatat",
	"non", "proident", "sunt", "culpa", "qui", "officia", "deserunt",
	"mollit", "anim", "id", "est", "laborum",
}

// TextHint samples a target length from the embedded NumberHint, then
// appends lorem words cyclically until the next word would exceed it
// (spec.md §4.1).
type TextHint struct {
	NumberHint
}

// Tag implements Hint.
func (TextHint) Tag() Tag { return Text }

// Process implements Hint.
func (h TextHint) Process(rng *rand.Rand, seed Result) Result {
	if seed.Set {
		return passThrough(seed)
	}

	length := int(h.NumberHint.Sample(rng))
	if length <= 0 {
		return Result{Value: "", Set: true}
	}

	var sb strings.Builder

	idx := rng.IntN(len(loremWords))

	for sb.Len() < length {
		word := loremWords[idx%len(loremWords)]
		idx++

		if sb.Len() == 0 {
			if len(word) > length {
				word = word[:length]
			}

			sb.WriteString(word)

			continue
		}

		if sb.Len()+1+len(word) > length {
			break
		}

		sb.WriteByte(' ')
		sb.WriteString(word)
	}

	return Result{Value: sb.String(), Set: true}
}
