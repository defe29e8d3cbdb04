package factory

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/leeward-labs/fixtura/hint"
	"github.com/leeward-labs/fixtura/value"
)

// ApplyOverrides applies a parallel, user-provided map of dotted/indexed
// paths to a fully-built record, per spec.md §4.7's "Overrides" note.
// Overrides are applied in sorted-path order so callers see deterministic
// results regardless of map iteration order.
func ApplyOverrides(rec value.Value, overrides map[string]any) (value.Value, error) {
	if len(overrides) == 0 {
		return rec, nil
	}

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, rawKey := range keys {
		path := normalizeOverrideKey(rawKey)

		parts := parseFieldPath(path)
		if len(parts) == 0 {
			continue
		}

		current := getNestedValue(rec, parts)

		resolved, err := resolveOverride(overrides[rawKey], current, rec)
		if err != nil {
			return nil, fmt.Errorf("factory: override %q: %w", rawKey, err)
		}

		rec = setNestedValue(rec, parts, resolved)
	}

	return rec, nil
}

// normalizeOverrideKey rewrites a double-underscore-joined key (the form
// forced on the reference implementation by Python's keyword-argument
// identifier rules, e.g. "data__0__name") into the dotted/indexed path form
// "data[0].name". Keys that already use dots and brackets pass through
// unchanged, since Go map keys carry no such identifier restriction.
func normalizeOverrideKey(key string) string {
	fieldPath := strings.ReplaceAll(key, "__", ".")

	parts := strings.Split(fieldPath, ".")
	processed := make([]string, 0, len(parts))

	for _, part := range parts {
		if isAllDigits(part) {
			if len(processed) > 0 {
				processed[len(processed)-1] = processed[len(processed)-1] + "[" + part + "]"
			} else {
				processed = append(processed, "["+part+"]")
			}

			continue
		}

		processed = append(processed, part)
	}

	return strings.Join(processed, ".")
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// pathPart is either a string object key or an int array index.
type pathPart any

// parseFieldPath walks path character by character, splitting on "." and
// recognizing "[N]" index brackets wherever they appear (not only after a
// dot), matching spec.md §4.7's override path grammar.
func parseFieldPath(path string) []pathPart {
	var parts []pathPart

	var cur strings.Builder

	i := 0
	for i < len(path) {
		c := path[i]

		switch c {
		case '.':
			if cur.Len() > 0 {
				parts = append(parts, cur.String())
				cur.Reset()
			}
		case '[':
			if cur.Len() > 0 {
				parts = append(parts, cur.String())
				cur.Reset()
			}

			j := i + 1
			for j < len(path) && path[j] != ']' {
				j++
			}

			if j < len(path) {
				idxStr := path[i+1 : j]
				if n, err := strconv.Atoi(idxStr); err == nil {
					parts = append(parts, n)
				}

				i = j
			} else {
				cur.WriteByte(c)
			}
		default:
			cur.WriteByte(c)
		}

		i++
	}

	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}

	return parts
}

func getNestedValue(data value.Value, parts []pathPart) value.Value {
	cur := data

	for _, part := range parts {
		switch p := part.(type) {
		case int:
			arr, ok := cur.([]value.Value)
			if !ok || p < 0 || p >= len(arr) {
				return nil
			}

			cur = arr[p]
		case string:
			obj, ok := cur.(*value.Object)
			if !ok {
				return nil
			}

			v, exists := obj.Get(p)
			if !exists {
				return nil
			}

			cur = v
		}
	}

	return cur
}

// setNestedValue sets val at parts within data, returning the (possibly
// new, for arrays that needed growing) root container. A string segment
// reached while data is an array broadcasts the remaining path to every
// element whose structure permits the assignment; a nil element along that
// broadcast is skipped, per spec.md §4.7's "Nulls short-circuit broadcast".
func setNestedValue(data value.Value, parts []pathPart, val value.Value) value.Value {
	if len(parts) == 0 {
		return data
	}

	if len(parts) == 1 {
		return setFinal(data, parts[0], val)
	}

	head := parts[0]
	rest := parts[1:]

	switch h := head.(type) {
	case int:
		arr, ok := data.([]value.Value)
		if !ok || h < 0 {
			return data
		}

		if h >= len(arr) {
			grown := make([]value.Value, h+1)
			copy(grown, arr)
			arr = grown
		}

		arr[h] = setNestedValue(arr[h], rest, val)

		return arr
	case string:
		if arr, ok := data.([]value.Value); ok {
			broadcastParts := append([]pathPart{h}, rest...)

			for i, elem := range arr {
				if elem == nil {
					continue
				}

				arr[i] = setNestedValue(elem, broadcastParts, val)
			}

			return arr
		}

		obj, ok := data.(*value.Object)
		if !ok || obj == nil {
			return data
		}

		child, exists := obj.Get(h)
		if !exists {
			if _, nextIsIndex := rest[0].(int); nextIsIndex {
				child = []value.Value{}
			} else {
				child = value.NewObject()
			}
		}

		obj.Set(h, setNestedValue(child, rest, val))

		return obj
	}

	return data
}

func setFinal(data value.Value, part pathPart, val value.Value) value.Value {
	switch p := part.(type) {
	case int:
		arr, ok := data.([]value.Value)
		if !ok {
			return data
		}

		if p < 0 {
			return data
		}

		if p >= len(arr) {
			grown := make([]value.Value, p+1)
			copy(grown, arr)
			arr = grown
		}

		arr[p] = val

		return arr
	case string:
		if arr, ok := data.([]value.Value); ok {
			for _, elem := range arr {
				if obj, ok2 := elem.(*value.Object); ok2 {
					obj.Set(p, val)
				}
			}

			return arr
		}

		obj, ok := data.(*value.Object)
		if !ok || obj == nil {
			return data
		}

		obj.Set(p, val)

		return obj
	}

	return data
}

// resolveOverride evaluates an override value: a plain scalar/container
// passes through unchanged; a func is invoked with 0, 1 (current value), or
// 2 (current value, whole record) positional arguments depending on its
// arity, per spec.md §4.7. A func declaring any other arity is an
// invocation error (spec.md §7's "unknown override parameter", the closest
// Go-idiomatic analogue of the reference implementation's named-keyword
// check, since Go funcs carry no parameter names at runtime).
func resolveOverride(override any, current, record value.Value) (value.Value, error) {
	rv := reflect.ValueOf(override)
	if !rv.IsValid() || rv.Kind() != reflect.Func {
		return override, nil
	}

	t := rv.Type()
	if t.IsVariadic() {
		return nil, fmt.Errorf("%w: variadic override callables are not supported", hint.ErrOverrideParameter)
	}

	switch t.NumIn() {
	case 0:
		return callOverride(rv, nil)
	case 1:
		return callOverride(rv, []any{current})
	case 2:
		return callOverride(rv, []any{current, record})
	default:
		return nil, fmt.Errorf("%w: callable override has %d positional parameters, maximum is 2", hint.ErrOverrideParameter, t.NumIn())
	}
}

func callOverride(rv reflect.Value, args []any) (value.Value, error) {
	t := rv.Type()
	in := make([]reflect.Value, len(args))

	for i, a := range args {
		paramType := t.In(i)
		if a == nil {
			in[i] = reflect.Zero(paramType)
			continue
		}

		in[i] = reflect.ValueOf(a)
	}

	out := rv.Call(in)
	if len(out) == 0 {
		return nil, nil
	}

	return out[0].Interface(), nil
}
