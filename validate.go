// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"math/big"

	"github.com/schemaflow/jsonschema/msg"
)

// validate runs every compiled keyword on s against v, located at
// docPath in the overall instance. It returns the set of this node's
// own direct children (properties/items) that no keyword here or in a
// nested applicator evaluated, for the caller's unevaluatedProperties/
// unevaluatedItems to consult (additionalProperties and additionalItems
// do not use it: they look only at this node's own properties/items).
func (s *Schema) validate(sc *rtScope, docPath path, v any) (uneval, []*Error) {
	if s.boolean != nil {
		if *s.boolean {
			return uneval{}, nil
		}
		return uneval{}, []*Error{newError(s, docPath, "", msg.False{})}
	}

	ue := newUneval(v)
	var errs []*Error
	add := func(e *Error) { errs = append(errs, e) }

	// with optExhaustive=false (the default), the fold over this node's
	// keywords short-circuits on the first failing one; optExhaustive=true
	// keeps going to collect every error.
	stop := func() bool { return !s.optExhaustive && len(errs) > 0 }

	// applicator scope push for $recursiveAnchor/$dynamicAnchor: this
	// resource becomes part of the dynamic path seen by any nested
	// $recursiveRef/$dynamicRef (§4.3).
	if s.recursiveAnchor || s.dynamicAnchor != "" {
		sc = sc.push(s)
	}

	typ := jsonType(v)

	if len(s.types) > 0 {
		if !matchesAnyType(s.types, typ, v) {
			add(newError(s, docPath, "type", msg.Type{Got: typ, Want: s.types}))
		}
	}
	if !stop() && len(s.disallow) > 0 && matchesAnyType(s.disallow, typ, v) {
		add(newError(s, docPath, "disallow", msgf("type %s is disallowed", typ)))
	}

	if !stop() && s.hasConst && !equals(s.constVal, v) {
		add(newError(s, docPath, "const", msg.Const{Got: v, Want: s.constVal}))
	}
	if !stop() && s.enum != nil {
		ok := false
		for _, want := range s.enum {
			if equals(want, v) {
				ok = true
				break
			}
		}
		if !ok {
			add(newError(s, docPath, "enum", msg.Enum{Got: v, Want: s.enum}))
		}
	}

	if !stop() && typ == "number" {
		errs = append(errs, s.validateNumber(docPath, v)...)
	}
	if !stop() && typ == "string" {
		if es := s.validateString(docPath, v.(string)); len(es) > 0 {
			errs = append(errs, es...)
		}
	}
	if !stop() && typ == "array" {
		arr := v.([]any)
		itemErrs := s.validateArray(sc, docPath, arr, ue)
		errs = append(errs, itemErrs...)
	}
	if !stop() && typ == "object" {
		obj := v.(map[string]any)
		objErrs := s.validateObject(sc, docPath, obj, ue)
		errs = append(errs, objErrs...)
	}

	// composition
	if !stop() && s.not != nil {
		if _, nerrs := s.not.validate(sc, docPath, v); len(nerrs) == 0 {
			add(newError(s, docPath, "not", msg.Not{}))
		}
	}
	if !stop() && len(s.allOf) > 0 {
		for _, sub := range s.allOf {
			cue, serrs := sub.validate(sc, docPath, v)
			if len(serrs) == 0 {
				mergeInto(ue, cue)
			} else {
				errs = append(errs, serrs...)
			}
			if stop() {
				break
			}
		}
	}
	if !stop() && len(s.anyOf) > 0 {
		matched := false
		for _, sub := range s.anyOf {
			cue, serrs := sub.validate(sc, docPath, v)
			if len(serrs) == 0 {
				mergeInto(ue, cue)
				matched = true
			}
		}
		if !matched {
			add(newError(s, docPath, "anyOf", msg.AnyOf{}))
		}
	}
	if !stop() && len(s.oneOf) > 0 {
		var matched []int
		var matchedUE []uneval
		for i, sub := range s.oneOf {
			cue, serrs := sub.validate(sc, docPath, v)
			if len(serrs) == 0 {
				matched = append(matched, i)
				matchedUE = append(matchedUE, cue)
			}
		}
		switch len(matched) {
		case 1:
			mergeInto(ue, matchedUE[0])
		case 0:
			add(newError(s, docPath, "oneOf", msg.OneOf{}))
		default:
			add(newError(s, docPath, "oneOf", msg.OneOf{Got: matched[:2]}))
		}
	}
	if !stop() && len(s.extends) > 0 {
		for _, sub := range s.extends {
			if _, serrs := sub.validate(sc, docPath, v); len(serrs) > 0 {
				errs = append(errs, serrs...)
			}
			if stop() {
				break
			}
		}
	}

	if !stop() && s.ifSchema != nil {
		if _, ierrs := s.ifSchema.validate(sc, docPath, v); len(ierrs) == 0 {
			if s.thenSchema != nil {
				cue, terrs := s.thenSchema.validate(sc, docPath, v)
				if len(terrs) > 0 {
					add(newError(s, docPath, "then", msg.Then{}).wrap("", terrs...))
				} else {
					mergeInto(ue, cue)
				}
			}
		} else if s.elseSchema != nil {
			cue, eerrs := s.elseSchema.validate(sc, docPath, v)
			if len(eerrs) > 0 {
				add(newError(s, docPath, "else", msg.Else{}).wrap("", eerrs...))
			} else {
				mergeInto(ue, cue)
			}
		}
	}

	// referencing
	if !stop() && s.ref != nil {
		cue, rerrs := s.ref.validate(sc, docPath, v)
		if len(rerrs) > 0 {
			add(newError(s, docPath, "$ref", msg.Schema{Want: s.ref.url}).wrap("", rerrs...))
		} else {
			mergeInto(ue, cue)
		}
	}
	if !stop() && s.recursiveRef != nil {
		target := s.recursiveRef
		if s.recursiveRef.recursiveAnchor {
			target = sc.resolveRecursive(target)
		}
		cue, rerrs := target.validate(sc, docPath, v)
		if len(rerrs) > 0 {
			add(newError(s, docPath, "$recursiveRef", msg.Schema{Want: target.url}).wrap("", rerrs...))
		} else {
			mergeInto(ue, cue)
		}
	}
	if !stop() && s.dynamicRef != nil {
		target := sc.resolveDynamic(s.dynamicRefAnchor, s.dynamicRef)
		cue, rerrs := target.validate(sc, docPath, v)
		if len(rerrs) > 0 {
			add(newError(s, docPath, "$dynamicRef", msg.Schema{Want: target.url}).wrap("", rerrs...))
		} else {
			mergeInto(ue, cue)
		}
	}

	// content pipeline (§4.6): decode, then media-type check, then
	// recurse contentSchema against the decoded value. Always an
	// annotation unless AssertContent was requested.
	if !stop() && typ == "string" && (s.contentEncoding != "" || s.contentMediaType != "" || s.hasContentSchema) {
		if cerrs := s.validateContent(sc, docPath, v.(string)); s.optAssertContent {
			errs = append(errs, cerrs...)
		}
	}

	if !stop() && s.format != nil {
		ok := s.format.Validate(v)
		if !ok && (s.optAssertFormat || s.draft.version < 2019) {
			add(newError(s, docPath, "format", msg.Format{Got: v, Want: s.formatName}))
		}
	}

	if !stop() {
		for _, ext := range s.ext {
			vc := &ValidationContext{scope: sc, path: docPath}
			if err := ext.ext.Validate(vc, v); err != nil {
				if e, ok := err.(*Error); ok {
					add(e)
				} else {
					add(newError(s, docPath, ext.name, msgf("%v", err)))
				}
			}
			if stop() {
				break
			}
		}
	}

	if !stop() && s.unevaluatedProperties != nil && typ == "object" {
		obj := v.(map[string]any)
		var bad []string
		for name := range ue.props {
			_, cerrs := s.unevaluatedProperties.validate(sc, docPath.append(prop(name)), obj[name])
			if len(cerrs) > 0 {
				bad = append(bad, name)
			} else {
				ue.evalProp(name)
			}
		}
		if len(bad) > 0 {
			add(newError(s, docPath, "unevaluatedProperties", msg.UnevaluatedProperties{Got: bad}))
		}
	}
	if !stop() && s.unevaluatedItems != nil && typ == "array" {
		arr := v.([]any)
		var bad []int
		for i := range ue.items {
			_, cerrs := s.unevaluatedItems.validate(sc, docPath.append(idx(i)), arr[i])
			if len(cerrs) > 0 {
				bad = append(bad, i)
			} else {
				ue.evalItem(i)
			}
		}
		if len(bad) > 0 {
			add(newError(s, docPath, "unevaluatedItems", msg.UnevaluatedItems{Got: bad}))
		}
	}

	return ue, errs
}

// resolveRecursive implements $recursiveRef's draft-2019 outermost-wins
// rule: walk the dynamic scope stack to its outermost frame that also
// declared $recursiveAnchor, and use its corresponding schema.
func (sc *rtScope) resolveRecursive(fallback *Schema) *Schema {
	for _, s := range sc.dynamicPath {
		if s.recursiveAnchor {
			return s
		}
	}
	return fallback
}

func matchesAnyType(types []string, typ string, v any) bool {
	for _, want := range types {
		if want == typ {
			return true
		}
		if want == "integer" && typ == "number" && isInteger(v) {
			return true
		}
	}
	return false
}

func (s *Schema) validateNumber(docPath path, v any) []*Error {
	var errs []*Error
	n := toRat(v)
	if s.minimum != nil && n.Cmp(s.minimum) < 0 {
		errs = append(errs, newError(s, docPath, "minimum", msg.Minimum{Got: v, Want: s.minimum}))
	}
	if s.maximum != nil && n.Cmp(s.maximum) > 0 {
		errs = append(errs, newError(s, docPath, "maximum", msg.Maximum{Got: v, Want: s.maximum}))
	}
	if s.exclusiveMinimum != nil && n.Cmp(s.exclusiveMinimum) <= 0 {
		errs = append(errs, newError(s, docPath, "exclusiveMinimum", msg.ExclusiveMinimum{Got: v, Want: s.exclusiveMinimum}))
	}
	if s.exclusiveMaximum != nil && n.Cmp(s.exclusiveMaximum) >= 0 {
		errs = append(errs, newError(s, docPath, "exclusiveMaximum", msg.ExclusiveMaximum{Got: v, Want: s.exclusiveMaximum}))
	}
	if s.multipleOf != nil {
		q := new(big.Rat).Quo(n, s.multipleOf)
		if !q.IsInt() {
			errs = append(errs, newError(s, docPath, "multipleOf", msg.MultipleOf{Got: v, Want: s.multipleOf}))
		}
	}
	return errs
}

func (s *Schema) validateString(docPath path, v string) []*Error {
	var errs []*Error
	length := runeCount(v)
	if s.minLength != nil && length < *s.minLength {
		errs = append(errs, newError(s, docPath, "minLength", msg.MinLength{Got: length, Want: *s.minLength}))
	}
	if s.maxLength != nil && length > *s.maxLength {
		errs = append(errs, newError(s, docPath, "maxLength", msg.MaxLength{Got: length, Want: *s.maxLength}))
	}
	if s.pattern != nil && !s.pattern.MatchString(v) {
		errs = append(errs, newError(s, docPath, "pattern", msg.Pattern{Got: v, Want: s.pattern.String()}))
	}
	return errs
}

func (s *Schema) validateArray(sc *rtScope, docPath path, arr []any, ue uneval) []*Error {
	var errs []*Error
	n := len(arr)
	if s.minItems != nil && n < *s.minItems {
		errs = append(errs, newError(s, docPath, "minItems", msg.MinItems{Got: n, Want: *s.minItems}))
	}
	if s.maxItems != nil && n > *s.maxItems {
		errs = append(errs, newError(s, docPath, "maxItems", msg.MaxItems{Got: n, Want: *s.maxItems}))
	}
	if s.uniqueItems {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if equals(arr[i], arr[j]) {
					errs = append(errs, newError(s, docPath, "uniqueItems", msg.UniqueItems{Got: [2]int{i, j}}))
				}
			}
		}
	}

	tuple := s.prefixItems
	tupleLen := len(tuple)
	if tupleLen == 0 && len(s.itemsArray) > 0 {
		tuple = s.itemsArray
		tupleLen = len(tuple)
	}
	for i := 0; i < n && i < tupleLen; i++ {
		_, cerrs := tuple[i].validate(sc, docPath.append(idx(i)), arr[i])
		if len(cerrs) > 0 {
			errs = append(errs, cerrs...)
		} else {
			ue.evalItem(i)
		}
	}
	rest := s.items
	if rest == nil && len(s.itemsArray) > 0 {
		rest = s.additionalItems
	}
	if rest != nil {
		for i := tupleLen; i < n; i++ {
			_, cerrs := rest.validate(sc, docPath.append(idx(i)), arr[i])
			if len(cerrs) > 0 {
				errs = append(errs, cerrs...)
			} else {
				ue.evalItem(i)
			}
		}
	}

	if s.contains != nil {
		var matchedIdx []int
		for i, item := range arr {
			if _, cerrs := s.contains.validate(sc, docPath.append(idx(i)), item); len(cerrs) == 0 {
				matchedIdx = append(matchedIdx, i)
				ue.evalItem(i)
			}
		}
		switch {
		case s.minContains != nil && len(matchedIdx) < *s.minContains:
			errs = append(errs, newError(s, docPath, "minContains", msg.MinContains{Got: matchedIdx, Want: *s.minContains}))
		case s.maxContains != nil && len(matchedIdx) > *s.maxContains:
			errs = append(errs, newError(s, docPath, "maxContains", msg.MaxContains{Got: matchedIdx, Want: *s.maxContains}))
		case s.minContains == nil && len(matchedIdx) == 0:
			errs = append(errs, newError(s, docPath, "contains", msg.Contains{}))
		}
	}
	return errs
}

func (s *Schema) validateObject(sc *rtScope, docPath path, obj map[string]any, ue uneval) []*Error {
	var errs []*Error
	n := len(obj)
	if s.minProperties != nil && n < *s.minProperties {
		errs = append(errs, newError(s, docPath, "minProperties", msg.MinProperties{Got: n, Want: *s.minProperties}))
	}
	if s.maxProperties != nil && n > *s.maxProperties {
		errs = append(errs, newError(s, docPath, "maxProperties", msg.MaxProperties{Got: n, Want: *s.maxProperties}))
	}
	if len(s.required) > 0 {
		var missing []string
		for _, req := range s.required {
			if _, ok := obj[req]; !ok {
				missing = append(missing, req)
			}
		}
		if len(missing) > 0 {
			errs = append(errs, newError(s, docPath, "required", msg.Required{Want: missing}))
		}
	}
	for pname, deps := range s.dependentRequired {
		if _, ok := obj[pname]; !ok {
			continue
		}
		for _, dep := range deps {
			if _, ok := obj[dep]; !ok {
				errs = append(errs, newError(s, docPath, "dependentRequired", msg.DependentRequired{Want: dep, Got: pname}))
			}
		}
	}
	for propName, sub := range s.dependentSchemas {
		if _, ok := obj[propName]; !ok {
			continue
		}
		cue, cerrs := sub.validate(sc, docPath, obj)
		if len(cerrs) > 0 {
			errs = append(errs, cerrs...)
		} else {
			mergeInto(ue, cue)
		}
	}
	for propName, byValue := range s.propertyDependencies {
		val, ok := obj[propName]
		s2, ok2 := val.(string)
		if !ok || !ok2 {
			continue
		}
		if sub, ok := byValue[s2]; ok {
			if _, cerrs := sub.validate(sc, docPath, obj); len(cerrs) > 0 {
				errs = append(errs, cerrs...)
			}
		}
	}

	if s.propertyNames != nil {
		for name := range obj {
			if _, nerrs := s.propertyNames.validate(sc, docPath.append(prop(name)), name); len(nerrs) > 0 {
				errs = append(errs, newError(s, docPath, "propertyNames", msg.PropertyNames{Got: name}).wrap("", nerrs...))
			}
		}
	}

	// additionalProperties, per its own definition, only excludes names
	// claimed by "properties"/"patternProperties" — not by dependentSchemas,
	// allOf, $ref or any other applicator. Track that narrower set
	// separately from ue, which unevaluatedProperties consults instead.
	own := newUneval(obj)
	for name, sub := range s.properties {
		val, ok := obj[name]
		if !ok {
			continue
		}
		_, cerrs := sub.validate(sc, docPath.append(prop(name)), val)
		if len(cerrs) > 0 {
			errs = append(errs, cerrs...)
		} else {
			ue.evalProp(name)
			own.evalProp(name)
		}
	}
	for _, pp := range s.patternProperties {
		for name, val := range obj {
			if !pp.regex.MatchString(name) {
				continue
			}
			_, cerrs := pp.schema.validate(sc, docPath.append(prop(name)), val)
			if len(cerrs) > 0 {
				errs = append(errs, cerrs...)
			} else {
				ue.evalProp(name)
				own.evalProp(name)
			}
		}
	}
	if s.additionalProperties != nil {
		var bad []string
		for name := range own.props {
			val := obj[name]
			_, cerrs := s.additionalProperties.validate(sc, docPath.append(prop(name)), val)
			if len(cerrs) > 0 {
				bad = append(bad, name)
			} else {
				ue.evalProp(name)
			}
		}
		if len(bad) > 0 {
			errs = append(errs, newError(s, docPath, "additionalProperties", msg.AdditionalProperties{Got: bad}))
		}
	}
	return errs
}

func (s *Schema) validateContent(sc *rtScope, docPath path, v string) []*Error {
	var errs []*Error
	raw := []byte(v)
	if s.contentEncoding != "" {
		dec, ok := getDecoder(s.contentEncoding)
		if !ok {
			return nil
		}
		decoded, err := dec(v)
		if err != nil {
			return []*Error{newError(s, docPath, "contentEncoding", msg.ContentEncoding{Got: v, Want: s.contentEncoding})}
		}
		raw = decoded
	}
	if s.contentMediaType != "" {
		mt, ok := getMediaType(s.contentMediaType)
		if ok {
			if err := mt(raw); err != nil {
				errs = append(errs, newError(s, docPath, "contentMediaType", msg.ContentMediaType{Got: raw, Want: s.contentMediaType}))
				return errs
			}
		}
	}
	if s.hasContentSchema {
		decoded, err := decodeJSONBytes(raw)
		if err != nil {
			errs = append(errs, newError(s, docPath, "contentSchema", msg.ContentSchema{Got: raw}))
			return errs
		}
		if _, cerrs := s.contentSchema.validate(sc, docPath, decoded); len(cerrs) > 0 {
			errs = append(errs, cerrs...)
		}
	}
	return errs
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
