package hint

// ToPayload renders a Hint into its wire-format payload (spec.md §6),
// omitting nulls. Slices and integers keep their Go types here; once
// encoded to JSON and decoded again the payload is what FromSpec reads,
// so the pair round-trips through the wire format. Markers (ARRAY, OBJECT) and
// fixed-alphabet generators (UUID4, MAC, AUTH0_ID) carry no parameters and
// render as an empty object.
func ToPayload(h Hint) map[string]any {
	switch v := h.(type) {
	case MissingHint:
		return map[string]any{"pct": v.Pct}
	case NullHint:
		return map[string]any{"pct": v.Pct}
	case ConstHint:
		return map[string]any{"val": v.Val}
	case ChoiceHint:
		m := map[string]any{"choices": v.Choices}
		if len(v.Weights) == len(v.Choices) {
			m["weights"] = v.Weights
		}

		return m
	case NumberHint:
		return numberPayload(v)
	case NumStrHint:
		return numberPayload(v.NumberHint)
	case TextHint:
		return numberPayload(v.NumberHint)
	case AlphaHint:
		return map[string]any{"chrs": v.Chrs}
	case DateHint:
		return map[string]any{"min": v.Min, "max": v.Max}
	case DateTimeHint:
		return map[string]any{"min": v.Min, "max": v.Max}
	case DurationHint:
		return map[string]any{"fmt": v.Fmt, "min": v.Min, "max": v.Max, "avg": v.Avg}
	case VersionHint:
		m := map[string]any{"pattern_type": v.PatternType}
		if len(v.Examples) > 0 {
			m["examples"] = v.Examples
		}

		return m
	case UUID4Hint, MACHint, Auth0IDHint, ArrayMarker, ObjectMarker:
		return map[string]any{}
	default:
		return map[string]any{}
	}
}

func numberPayload(h NumberHint) map[string]any {
	m := map[string]any{"min": h.Min, "max": h.Max}

	if h.Prec != nil {
		m["prec"] = *h.Prec
	}

	if h.Dist != nil {
		m[string(h.Dist.Kind)] = h.Dist.Params
	}

	return m
}
