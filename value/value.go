// Package value defines the JSON-like tree shape shared by the extractor,
// spec builder, and generator, along with the canonical field-path grammar
// used to address locations within it.
package value

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Value is any node in a sample or generated record: nil, bool, float64,
// string, []Value, or *Object. Integral JSON numbers are still decoded as
// float64 (matching encoding/json) so analyzers treat "3" and "3.0"
// identically, per the numeric evidence store in spec.md §3.
type Value = any

// Object is an order-preserving string-keyed map, so decoded and generated
// records serialize with a deterministic key order (the factory sets a
// static object's children in lexical order) even though key order carries
// no semantic weight for unordered-map comparisons.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set assigns v to k, appending k to the key order on first use.
func (o *Object) Set(k string, v Value) {
	if _, ok := o.values[k]; !ok {
		o.keys = append(o.keys, k)
	}

	o.values[k] = v
}

// Get returns the value at k and whether k is present.
func (o *Object) Get(k string) (Value, bool) {
	v, ok := o.values[k]
	return v, ok
}

// Keys returns the object's keys in insertion order.
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of keys in the object.
func (o *Object) Len() int {
	return len(o.keys)
}

// MarshalJSON renders the object preserving key order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf []byte
	buf = append(buf, '{')

	for i, k := range o.keys {
		if i > 0 {
			buf = append(buf, ',')
		}

		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		buf = append(buf, kb...)
		buf = append(buf, ':')

		vb, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}

		buf = append(buf, vb...)
	}

	buf = append(buf, '}')

	return buf, nil
}

// ErrDecode wraps any error encountered while decoding a record stream.
var ErrDecode = errors.New("decode value")

// DecodeAll reads a stream of whitespace/newline-separated JSON values (or a
// single top-level JSON array of records) from r, preserving object key
// order via *Object.
func DecodeAll(r io.Reader) ([]Value, error) {
	dec := json.NewDecoder(r)

	first, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if delim, ok := first.(json.Delim); ok && delim == '[' {
		var records []Value

		for dec.More() {
			v, decErr := decodeValue(dec)
			if decErr != nil {
				return nil, fmt.Errorf("%w: %w", ErrDecode, decErr)
			}

			records = append(records, v)
		}

		_, err = dec.Token() // consume closing ]
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}

		return records, nil
	}

	// Not an array: the first token already belongs to the first record.
	v, err := decodeValueFromToken(dec, first)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	records := []Value{v}

	for dec.More() {
		v, err = decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}

		records = append(records, v)
	}

	return records, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	return decodeValueFromToken(dec, tok)
}

func decodeValueFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()

			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}

				key, _ := keyTok.(string)

				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}

				obj.Set(key, val)
			}

			_, err := dec.Token() // consume closing }

			return obj, err

		case '[':
			var arr []Value

			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}

				arr = append(arr, val)
			}

			_, err := dec.Token() // consume closing ]

			return arr, err
		}

		return nil, fmt.Errorf("unexpected delimiter %v", t)

	case nil, bool, float64, json.Number, string:
		return t, nil

	default:
		return nil, fmt.Errorf("unexpected token %v (%T)", t, t)
	}
}
