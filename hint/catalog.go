package hint

import (
	"fmt"

	"github.com/leeward-labs/fixtura/value"
)

// FromSpec materializes a Hint from its wire-format tag and payload
// (spec.md §6), as read back from a serialized spec document. Numbers in
// payload are the plain float64/[]any/map[string]any shapes encoding/json
// produces when unmarshaling into any.
func FromSpec(tag Tag, payload map[string]any) (Hint, error) {
	switch tag {
	case Missing:
		return MissingHint{Pct: num(payload, "pct")}, nil
	case Null:
		return NullHint{Pct: num(payload, "pct")}, nil
	case Const:
		return ConstHint{Val: payload["val"]}, nil
	case Choice:
		return parseChoice(payload), nil
	case Number:
		return parseNumber(payload), nil
	case NumStr:
		return NumStrHint{NumberHint: parseNumber(payload)}, nil
	case Text:
		return TextHint{NumberHint: parseNumber(payload)}, nil
	case Alpha:
		return parseAlpha(payload), nil
	case Date:
		return DateHint{Min: str(payload, "min"), Max: str(payload, "max")}, nil
	case DateTime:
		return DateTimeHint{Min: str(payload, "min"), Max: str(payload, "max")}, nil
	case Duration:
		return DurationHint{
			Fmt: str(payload, "fmt"),
			Min: num(payload, "min"),
			Max: num(payload, "max"),
			Avg: num(payload, "avg"),
		}, nil
	case UUID4:
		return UUID4Hint{}, nil
	case MAC:
		return MACHint{}, nil
	case Auth0ID:
		return Auth0IDHint{}, nil
	case Version:
		return parseVersion(payload), nil
	case Array:
		return ArrayMarker{}, nil
	case Object:
		return ObjectMarker{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown tag %q", ErrInvalidHint, tag)
	}
}

func num(m map[string]any, key string) float64 {
	v, ok := m[key]
	if !ok {
		return 0
	}

	f, _ := v.(float64)

	return f
}

func str(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}

func parseChoice(m map[string]any) ChoiceHint {
	var h ChoiceHint

	if raw, ok := m["choices"].([]any); ok {
		h.Choices = make([]value.Value, len(raw))
		for i, v := range raw {
			h.Choices[i] = v
		}
	}

	if raw, ok := m["weights"].([]any); ok {
		h.Weights = make([]float64, len(raw))
		for i, v := range raw {
			f, _ := v.(float64)
			h.Weights[i] = f
		}
	}

	return h
}

func parseNumber(m map[string]any) NumberHint {
	h := NumberHint{Min: num(m, "min"), Max: num(m, "max")}

	if p, ok := m["prec"]; ok {
		f, _ := p.(float64)
		pi := int(f)
		h.Prec = &pi
	}

	for _, kind := range []DistKind{
		DistNormal, DistUniform, DistGamma, DistLogNormal,
		DistExponential, DistBeta, DistWeibull,
	} {
		if raw, ok := m[string(kind)].([]any); ok {
			params := make([]float64, len(raw))
			for i, v := range raw {
				f, _ := v.(float64)
				params[i] = f
			}

			h.Dist = &Distribution{Kind: kind, Params: params}

			break
		}
	}

	return h
}

func parseAlpha(m map[string]any) AlphaHint {
	h := AlphaHint{Chrs: make(map[string][]int)}

	raw, ok := m["chrs"].(map[string]any)
	if !ok {
		return h
	}

	for charset, positions := range raw {
		posList, ok := positions.([]any)
		if !ok {
			continue
		}

		ints := make([]int, len(posList))

		for i, p := range posList {
			f, _ := p.(float64)
			ints[i] = int(f)
		}

		h.Chrs[charset] = ints
	}

	return h
}

func parseVersion(m map[string]any) VersionHint {
	h := VersionHint{PatternType: str(m, "pattern_type")}

	if raw, ok := m["examples"].([]any); ok {
		h.Examples = make([]string, len(raw))
		for i, v := range raw {
			s, _ := v.(string)
			h.Examples[i] = s
		}
	}

	return h
}
