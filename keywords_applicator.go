// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import "fmt"

func init() {
	registerKeyword("applicator", "properties", compileProperties)
	registerKeyword("applicator", "patternProperties", compilePatternProperties)
	registerKeyword("applicator", "additionalProperties", compileAdditionalProperties)
	registerKeyword("applicator", "propertyNames", compilePropertyNames)
	registerKeyword("applicator", "dependentSchemas", compileDependentSchemas)
	registerKeyword("applicator", "dependencies", compileDependencies)
	registerKeyword("applicator", "propertyDependencies", compilePropertyDependencies)

	registerKeyword("applicator", "prefixItems", compilePrefixItems)
	registerKeyword("applicator", "items", compileItems)
	registerKeyword("applicator", "additionalItems", compileAdditionalItems)
	registerKeyword("applicator", "contains", compileContains)

	registerKeyword("applicator", "allOf", compileAllOf)
	registerKeyword("applicator", "anyOf", compileAnyOf)
	registerKeyword("applicator", "oneOf", compileOneOf)
	registerKeyword("applicator", "not", compileNot)

	registerKeyword("applicator", "if", compileIf)
	registerKeyword("applicator", "then", compileThen)
	registerKeyword("applicator", "else", compileElse)

	registerKeyword("applicator", "extends", compileExtends)
	registerKeyword("applicator", "disallow", compileDisallow)
	registerKeyword("applicator", "divisibleBy", compileDivisibleBy)
}

func compileProperties(k *kwctx, m map[string]any) error {
	v, ok := m["properties"].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]*Schema, len(v))
	var required3 []string
	for name := range v {
		child, err := k.childAt("/properties/" + escape(name))
		if err != nil {
			return fmt.Errorf("properties[%s]: %w", name, err)
		}
		out[name] = child
		if k.draft().version == 3 {
			if pm, ok := v[name].(map[string]any); ok {
				if b, _ := pm["required"].(bool); b {
					required3 = append(required3, name)
				}
			}
		}
	}
	k.s.properties = out
	if len(required3) > 0 {
		k.s.required = append(k.s.required, required3...)
	}
	return nil
}

func compilePatternProperties(k *kwctx, m map[string]any) error {
	v, ok := m["patternProperties"].(map[string]any)
	if !ok {
		return nil
	}
	out := make([]patternSchema, 0, len(v))
	for pattern := range v {
		re, err := compileECMARegexp(pattern)
		if err != nil {
			return fmt.Errorf("patternProperties: %w", err)
		}
		child, err := k.childAt("/patternProperties/" + escape(pattern))
		if err != nil {
			return fmt.Errorf("patternProperties[%s]: %w", pattern, err)
		}
		out = append(out, patternSchema{name: pattern, regex: re, schema: child})
	}
	k.s.patternProperties = out
	return nil
}

func compileAdditionalProperties(k *kwctx, m map[string]any) error {
	if _, ok := m["additionalProperties"]; !ok {
		return nil
	}
	child, err := k.child("additionalProperties")
	if err != nil {
		return fmt.Errorf("additionalProperties: %w", err)
	}
	k.s.additionalProperties = child
	return nil
}

func compilePropertyNames(k *kwctx, m map[string]any) error {
	if _, ok := m["propertyNames"]; !ok {
		return nil
	}
	child, err := k.child("propertyNames")
	if err != nil {
		return fmt.Errorf("propertyNames: %w", err)
	}
	k.s.propertyNames = child
	return nil
}

func compileDependentSchemas(k *kwctx, m map[string]any) error {
	v, ok := m["dependentSchemas"].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]*Schema, len(v))
	for name := range v {
		child, err := k.childAt("/dependentSchemas/" + escape(name))
		if err != nil {
			return fmt.Errorf("dependentSchemas[%s]: %w", name, err)
		}
		out[name] = child
	}
	k.s.dependentSchemas = out
	return nil
}

// compileDependencies handles draft4-7's single "dependencies" keyword,
// whose per-property value is either an array of required property
// names or a schema, distinguished by the JSON type of each entry.
func compileDependencies(k *kwctx, m map[string]any) error {
	v, ok := m["dependencies"].(map[string]any)
	if !ok {
		return nil
	}
	required := map[string][]string{}
	schemas := map[string]*Schema{}
	for name, dep := range v {
		switch dep.(type) {
		case []any:
			names, ok := asStringSlice(dep)
			if !ok {
				return fmt.Errorf("dependencies[%s]: must be an array of strings", name)
			}
			required[name] = names
		default:
			child, err := k.cc.compileRawAt(k.res, k.s.ptr+"/dependencies/"+escape(name), dep)
			if err != nil {
				return fmt.Errorf("dependencies[%s]: %w", name, err)
			}
			schemas[name] = child
		}
	}
	if len(required) > 0 {
		k.s.dependentRequired = required
	}
	if len(schemas) > 0 {
		k.s.dependentSchemas = schemas
	}
	return nil
}

// compilePropertyDependencies handles the draft-next value-conditioned
// sibling of dependentSchemas: {"prop": {"value": <schema-if-prop==value>}}.
func compilePropertyDependencies(k *kwctx, m map[string]any) error {
	v, ok := m["propertyDependencies"].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]map[string]*Schema, len(v))
	for prop, byValue := range v {
		bv, ok := byValue.(map[string]any)
		if !ok {
			return fmt.Errorf("propertyDependencies[%s]: must be an object", prop)
		}
		values := make(map[string]*Schema, len(bv))
		for val := range bv {
			child, err := k.cc.compileRawAt(k.res, k.s.ptr+"/propertyDependencies/"+escape(prop)+"/"+escape(val), bv[val])
			if err != nil {
				return fmt.Errorf("propertyDependencies[%s][%s]: %w", prop, val, err)
			}
			values[val] = child
		}
		out[prop] = values
	}
	k.s.propertyDependencies = out
	return nil
}

func compilePrefixItems(k *kwctx, m map[string]any) error {
	v, ok := m["prefixItems"].([]any)
	if !ok {
		return nil
	}
	out := make([]*Schema, len(v))
	for i := range v {
		child, err := k.childAt(fmt.Sprintf("/prefixItems/%d", i))
		if err != nil {
			return fmt.Errorf("prefixItems[%d]: %w", i, err)
		}
		out[i] = child
	}
	k.s.prefixItems = out
	return nil
}

func compileItems(k *kwctx, m map[string]any) error {
	v, ok := m["items"]
	if !ok {
		return nil
	}
	if arr, ok := v.([]any); ok && k.draft().version < 2020 {
		out := make([]*Schema, len(arr))
		for i := range arr {
			child, err := k.childAt(fmt.Sprintf("/items/%d", i))
			if err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}
			out[i] = child
		}
		k.s.itemsArray = out
		return nil
	}
	child, err := k.child("items")
	if err != nil {
		return fmt.Errorf("items: %w", err)
	}
	k.s.items = child
	return nil
}

func compileAdditionalItems(k *kwctx, m map[string]any) error {
	if _, ok := m["additionalItems"]; !ok {
		return nil
	}
	child, err := k.child("additionalItems")
	if err != nil {
		return fmt.Errorf("additionalItems: %w", err)
	}
	k.s.additionalItems = child
	return nil
}

func compileContains(k *kwctx, m map[string]any) error {
	if _, ok := m["contains"]; !ok {
		return nil
	}
	child, err := k.child("contains")
	if err != nil {
		return fmt.Errorf("contains: %w", err)
	}
	k.s.contains = child
	return nil
}

func compileSchemaArray(k *kwctx, m map[string]any, key string) ([]*Schema, error) {
	v, ok := m[key].([]any)
	if !ok {
		return nil, nil
	}
	out := make([]*Schema, len(v))
	for i := range v {
		child, err := k.childAt(fmt.Sprintf("/%s/%d", key, i))
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		out[i] = child
	}
	return out, nil
}

func compileAllOf(k *kwctx, m map[string]any) error {
	v, err := compileSchemaArray(k, m, "allOf")
	if err != nil {
		return err
	}
	k.s.allOf = v
	return nil
}

func compileAnyOf(k *kwctx, m map[string]any) error {
	v, err := compileSchemaArray(k, m, "anyOf")
	if err != nil {
		return err
	}
	k.s.anyOf = v
	return nil
}

func compileOneOf(k *kwctx, m map[string]any) error {
	v, err := compileSchemaArray(k, m, "oneOf")
	if err != nil {
		return err
	}
	k.s.oneOf = v
	return nil
}

func compileNot(k *kwctx, m map[string]any) error {
	if _, ok := m["not"]; !ok {
		return nil
	}
	child, err := k.child("not")
	if err != nil {
		return fmt.Errorf("not: %w", err)
	}
	k.s.not = child
	return nil
}

func compileIf(k *kwctx, m map[string]any) error {
	if _, ok := m["if"]; !ok {
		return nil
	}
	child, err := k.child("if")
	if err != nil {
		return fmt.Errorf("if: %w", err)
	}
	k.s.ifSchema = child
	return nil
}

func compileThen(k *kwctx, m map[string]any) error {
	if _, ok := m["then"]; !ok {
		return nil
	}
	child, err := k.child("then")
	if err != nil {
		return fmt.Errorf("then: %w", err)
	}
	k.s.thenSchema = child
	return nil
}

func compileElse(k *kwctx, m map[string]any) error {
	if _, ok := m["else"]; !ok {
		return nil
	}
	child, err := k.child("else")
	if err != nil {
		return fmt.Errorf("else: %w", err)
	}
	k.s.elseSchema = child
	return nil
}

// compileExtends implements draft3's "extends", semantically an allOf
// over a single schema or an array of schemas.
func compileExtends(k *kwctx, m map[string]any) error {
	if k.draft().version != 3 {
		return nil
	}
	v, ok := m["extends"]
	if !ok {
		return nil
	}
	if arr, ok := v.([]any); ok {
		out := make([]*Schema, len(arr))
		for i := range arr {
			child, err := k.childAt(fmt.Sprintf("/extends/%d", i))
			if err != nil {
				return fmt.Errorf("extends[%d]: %w", i, err)
			}
			out[i] = child
		}
		k.s.extends = out
		return nil
	}
	child, err := k.child("extends")
	if err != nil {
		return fmt.Errorf("extends: %w", err)
	}
	k.s.extends = []*Schema{child}
	return nil
}

// compileDisallow implements draft3's "disallow": the inverse of "type".
func compileDisallow(k *kwctx, m map[string]any) error {
	if k.draft().version != 3 {
		return nil
	}
	v, ok := m["disallow"]
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case string:
		k.s.disallow = []string{t}
	case []any:
		names, ok := asStringSlice(t)
		if !ok {
			return fmt.Errorf("disallow: must be a string or array of strings")
		}
		k.s.disallow = names
	default:
		return fmt.Errorf("disallow: must be a string or array of strings")
	}
	return nil
}

// compileDivisibleBy implements draft3's name for multipleOf.
func compileDivisibleBy(k *kwctx, m map[string]any) error {
	if k.draft().version != 3 {
		return nil
	}
	v, ok := m["divisibleBy"]
	if !ok {
		return nil
	}
	n, ok := asNumber(v)
	if !ok || n.Sign() <= 0 {
		return fmt.Errorf("divisibleBy: must be a positive number")
	}
	k.s.multipleOf = n
	return nil
}
