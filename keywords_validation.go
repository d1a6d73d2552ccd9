// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"math/big"

	json "github.com/goccy/go-json"
)

func asNumber(v any) (*big.Rat, bool) {
	switch v.(type) {
	case json.Number, float64, int, int32, int64:
		return toRat(v), true
	default:
		return nil, false
	}
}

func asInt(v any) (int, bool) {
	r, ok := asNumber(v)
	if !ok || !r.IsInt() {
		return 0, false
	}
	return int(r.Num().Int64() / r.Denom().Int64()), true
}

func asStringSlice(v any) ([]string, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func init() {
	registerKeyword("validation", "type", compileType)
	registerKeyword("validation", "enum", compileEnum)
	registerKeyword("validation", "const", compileConst)
	registerKeyword("validation", "multipleOf", compileMultipleOf)
	registerKeyword("validation", "maximum", compileMaximum)
	registerKeyword("validation", "minimum", compileMinimum)
	registerKeyword("validation", "exclusiveMaximum", compileExclusiveMaximum)
	registerKeyword("validation", "exclusiveMinimum", compileExclusiveMinimum)
	registerKeyword("validation", "maxLength", compileMaxLength)
	registerKeyword("validation", "minLength", compileMinLength)
	registerKeyword("validation", "pattern", compilePattern)
	registerKeyword("validation", "maxItems", compileMaxItems)
	registerKeyword("validation", "minItems", compileMinItems)
	registerKeyword("validation", "uniqueItems", compileUniqueItems)
	registerKeyword("validation", "minContains", compileMinContains)
	registerKeyword("validation", "maxContains", compileMaxContains)
	registerKeyword("validation", "maxProperties", compileMaxProperties)
	registerKeyword("validation", "minProperties", compileMinProperties)
	registerKeyword("validation", "required", compileRequired)
	registerKeyword("validation", "dependentRequired", compileDependentRequired)
}

func compileType(k *kwctx, m map[string]any) error {
	v, ok := m["type"]
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case string:
		k.s.types = []string{t}
	case []any:
		types, ok := asStringSlice(t)
		if !ok {
			return fmt.Errorf("must be a string or array of strings")
		}
		k.s.types = types
	default:
		return fmt.Errorf("must be a string or array of strings")
	}
	return nil
}

func compileEnum(k *kwctx, m map[string]any) error {
	v, ok := m["enum"]
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return fmt.Errorf("must be an array")
	}
	k.s.enum = arr
	return nil
}

func compileConst(k *kwctx, m map[string]any) error {
	v, ok := m["const"]
	if !ok {
		return nil
	}
	k.s.hasConst = true
	k.s.constVal = v
	return nil
}

func compileMultipleOf(k *kwctx, m map[string]any) error {
	v, ok := m["multipleOf"]
	if !ok {
		return nil
	}
	n, ok := asNumber(v)
	if !ok || n.Sign() <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	k.s.multipleOf = n
	return nil
}

func compileMaximum(k *kwctx, m map[string]any) error {
	v, ok := m["maximum"]
	if !ok {
		return nil
	}
	n, ok := asNumber(v)
	if !ok {
		return fmt.Errorf("must be a number")
	}
	k.s.maximum = n
	if k.draft().version == 4 {
		if b, _ := m["exclusiveMaximum"].(bool); b {
			k.s.exclusiveMaximum = n
			k.s.maximum = nil
		}
	}
	return nil
}

func compileMinimum(k *kwctx, m map[string]any) error {
	v, ok := m["minimum"]
	if !ok {
		return nil
	}
	n, ok := asNumber(v)
	if !ok {
		return fmt.Errorf("must be a number")
	}
	k.s.minimum = n
	if k.draft().version == 4 {
		if b, _ := m["exclusiveMinimum"].(bool); b {
			k.s.exclusiveMinimum = n
			k.s.minimum = nil
		}
	}
	return nil
}

func compileExclusiveMaximum(k *kwctx, m map[string]any) error {
	if k.draft().version == 4 {
		return nil // draft4's boolean form is handled inside compileMaximum
	}
	v, ok := m["exclusiveMaximum"]
	if !ok {
		return nil
	}
	n, ok := asNumber(v)
	if !ok {
		return fmt.Errorf("must be a number")
	}
	k.s.exclusiveMaximum = n
	return nil
}

func compileExclusiveMinimum(k *kwctx, m map[string]any) error {
	if k.draft().version == 4 {
		return nil
	}
	v, ok := m["exclusiveMinimum"]
	if !ok {
		return nil
	}
	n, ok := asNumber(v)
	if !ok {
		return fmt.Errorf("must be a number")
	}
	k.s.exclusiveMinimum = n
	return nil
}

func compileMaxLength(k *kwctx, m map[string]any) error {
	return compileIntField(m, "maxLength", &k.s.maxLength)
}

func compileMinLength(k *kwctx, m map[string]any) error {
	return compileIntField(m, "minLength", &k.s.minLength)
}

func compileIntField(m map[string]any, key string, dst **int) error {
	v, ok := m[key]
	if !ok {
		return nil
	}
	n, ok := asInt(v)
	if !ok || n < 0 {
		return fmt.Errorf("must be a non-negative integer")
	}
	*dst = &n
	return nil
}

func compilePattern(k *kwctx, m map[string]any) error {
	v, ok := m["pattern"].(string)
	if !ok {
		return nil
	}
	re, err := compileECMARegexp(v)
	if err != nil {
		return err
	}
	k.s.pattern = re
	return nil
}

func compileMaxItems(k *kwctx, m map[string]any) error {
	return compileIntField(m, "maxItems", &k.s.maxItems)
}

func compileMinItems(k *kwctx, m map[string]any) error {
	return compileIntField(m, "minItems", &k.s.minItems)
}

func compileUniqueItems(k *kwctx, m map[string]any) error {
	if b, ok := m["uniqueItems"].(bool); ok {
		k.s.uniqueItems = b
	}
	return nil
}

func compileMinContains(k *kwctx, m map[string]any) error {
	return compileIntField(m, "minContains", &k.s.minContains)
}

func compileMaxContains(k *kwctx, m map[string]any) error {
	return compileIntField(m, "maxContains", &k.s.maxContains)
}

func compileMaxProperties(k *kwctx, m map[string]any) error {
	return compileIntField(m, "maxProperties", &k.s.maxProperties)
}

func compileMinProperties(k *kwctx, m map[string]any) error {
	return compileIntField(m, "minProperties", &k.s.minProperties)
}

func compileRequired(k *kwctx, m map[string]any) error {
	v, ok := m["required"]
	if !ok {
		return nil
	}
	names, ok := asStringSlice(v)
	if !ok {
		return fmt.Errorf("must be an array of strings")
	}
	k.s.required = names
	return nil
}

func compileDependentRequired(k *kwctx, m map[string]any) error {
	v, ok := m["dependentRequired"].(map[string]any)
	if !ok {
		return nil
	}
	out := map[string][]string{}
	for prop, deps := range v {
		names, ok := asStringSlice(deps)
		if !ok {
			return fmt.Errorf("dependentRequired[%s] must be an array of strings", prop)
		}
		out[prop] = names
	}
	k.s.dependentRequired = out
	return nil
}
