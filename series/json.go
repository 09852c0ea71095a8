// Copyright 2023 Seriate Authors.

package series

// Mapping of JSON documents onto the dynamic value union. Arrays of one
// scalar kind become flat vectors with nulls as missing markers; objects
// and mixed or nested arrays become lists; the document order of object
// members is preserved.

import (
	"bytes"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// ValueFromJSON parses a JSON document into a dynamic value.
func ValueFromJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, "parsing json")
	}
	v, _, err := decodeFromToken(dec, tok)
	return v, err
}

// decodeFromToken converts the value starting at tok. The second result
// reports whether the value was a scalar token, which is what array
// coalescing needs to know.
func decodeFromToken(dec *json.Decoder, tok json.Token) (Value, bool, error) {
	switch t := tok.(type) {
	case nil:
		return NullValue{}, true, nil
	case bool:
		return Logicals{Values: []bool{t}}, true, nil
	case float64:
		return Doubles{Values: []float64{t}}, true, nil
	case string:
		return Strings{Values: []string{t}}, true, nil
	case json.Delim:
		switch t {
		case '[':
			v, err := decodeArray(dec)
			return v, false, err
		case '{':
			v, err := decodeObject(dec)
			return v, false, err
		}
	}
	return nil, false, errors.Errorf("unexpected json token %v", tok)
}

func decodeArray(dec *json.Decoder) (Value, error) {
	var items []Value
	allScalar := true
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "parsing json array")
		}
		v, scalar, err := decodeFromToken(dec, tok)
		if err != nil {
			return nil, err
		}
		allScalar = allScalar && scalar
		items = append(items, v)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return nil, errors.Wrap(err, "parsing json array")
	}
	if len(items) == 0 {
		return ListValue{}, nil
	}
	if allScalar {
		if flat, ok := coalesceScalars(items); ok {
			return flat, nil
		}
	}
	return ListValue{Items: items}, nil
}

func decodeObject(dec *json.Decoder) (Value, error) {
	var names []string
	var items []Value
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "parsing json object")
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.Errorf("unexpected json object key %v", keyTok)
		}
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "parsing json object")
		}
		v, _, err := decodeFromToken(dec, tok)
		if err != nil {
			return nil, err
		}
		names = append(names, key)
		items = append(items, v)
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, errors.Wrap(err, "parsing json object")
	}
	return ListValue{Names: names, Items: items}, nil
}

// coalesceScalars folds an array of one-element scalar vectors of one
// kind, plus nulls, into a single flat vector with a missing mask. An
// array of mixed kinds, or of nothing but nulls, stays a list.
func coalesceScalars(items []Value) (Value, bool) {
	kind := Value(nil)
	for _, item := range items {
		if _, isNull := item.(NullValue); isNull {
			continue
		}
		if kind == nil {
			kind = item
		} else if kind.shape() != item.shape() {
			return nil, false
		}
	}
	missing := make([]bool, len(items))
	switch kind.(type) {
	case Doubles:
		values := make([]float64, len(items))
		for i, item := range items {
			if d, ok := item.(Doubles); ok {
				values[i] = d.Values[0]
			} else {
				missing[i] = true
			}
		}
		return Doubles{Values: values, Missing: missing}, true
	case Strings:
		values := make([]string, len(items))
		for i, item := range items {
			if s, ok := item.(Strings); ok {
				values[i] = s.Values[0]
			} else {
				missing[i] = true
			}
		}
		return Strings{Values: values, Missing: missing}, true
	case Logicals:
		values := make([]bool, len(items))
		for i, item := range items {
			if l, ok := item.(Logicals); ok {
				values[i] = l.Values[0]
			} else {
				missing[i] = true
			}
		}
		return Logicals{Values: values, Missing: missing}, true
	}
	return nil, false
}
