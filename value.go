// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"bytes"
	"fmt"
	"io"
	"math/big"

	json "github.com/goccy/go-json"
)

// absent is a distinguished marker, not a JSON value, used in positions
// where an object lookup or array index yields nothing. Schemas never
// constrain an absent instance.
type absentT struct{}

var absent = absentT{}

func isAbsent(v any) bool {
	_, ok := v.(absentT)
	return ok
}

// jsonType returns the JSON type name of v: "null", "boolean", "number",
// "string", "array" or "object". It panics with *InvalidJSONTypeError
// for any Go type other than nil, bool, json.Number, float64, int,
// int32, int64, string, []any and map[string]any, since that is a bug
// in the caller, not a condition instances should ever need to validate.
func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number, float64, int, int32, int64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	panic(&InvalidJSONTypeError{Value: v})
}

// isInteger reports whether v, a JSON number, has no fractional part.
func isInteger(v any) bool {
	num := toRat(v)
	return num.IsInt()
}

// toRat converts a decoded JSON number (json.Number, float64 or a native
// int kind) into an arbitrary-precision rational, so that multipleOf and
// numeric comparisons never lose precision to float64 rounding.
func toRat(v any) *big.Rat {
	switch v := v.(type) {
	case json.Number:
		r, ok := new(big.Rat).SetString(string(v))
		if !ok {
			r, _ = new(big.Rat).SetString(fmt.Sprint(v))
		}
		return r
	default:
		r, _ := new(big.Rat).SetString(fmt.Sprint(v))
		return r
	}
}

// equals reports whether two decoded JSON values are JSON-equal: arrays
// compare elementwise, objects compare by key-set and per-key equality,
// and numbers compare as exact rationals so Integer(1) equals Number(1.0).
func equals(v1, v2 any) bool {
	t1 := jsonType(v1)
	if t1 != jsonType(v2) {
		return false
	}
	switch t1 {
	case "array":
		a1, a2 := v1.([]any), v2.([]any)
		if len(a1) != len(a2) {
			return false
		}
		for i := range a1 {
			if !equals(a1[i], a2[i]) {
				return false
			}
		}
		return true
	case "object":
		o1, o2 := v1.(map[string]any), v2.(map[string]any)
		if len(o1) != len(o2) {
			return false
		}
		for k, e1 := range o1 {
			e2, ok := o2[k]
			if !ok || !equals(e1, e2) {
				return false
			}
		}
		return true
	case "number":
		return toRat(v1).Cmp(toRat(v2)) == 0
	default:
		return v1 == v2
	}
}

// DecodeJSON decodes a single JSON document from r, preserving number
// precision via json.Number so multipleOf and integer checks never
// round-trip through float64.
func DecodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("jsonschema: unexpected data after top-level value")
	}
	return doc, nil
}

// decodeJSONBytes is a convenience wrapper over DecodeJSON for in-memory
// buffers, used by the content-schema pipeline and tests.
func decodeJSONBytes(b []byte) (any, error) {
	return DecodeJSON(bytes.NewReader(b))
}
