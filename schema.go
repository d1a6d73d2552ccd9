// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import "math/big"

// Schema is one compiled schema node. It is built once by Compiler.Compile
// and is safe to call Validate on from multiple goroutines concurrently:
// every field below is written only during compilation and only read
// afterwards. Fields are zero/nil when the corresponding keyword was
// absent from the source document.
type Schema struct {
	url  string
	ptr  string
	path path // schema-path prefix used when this node reports an Error
	draft *Draft

	boolean *bool // non-nil for a `true`/`false` schema

	// core / referencing
	ref          *Schema
	recursiveRef *Schema
	dynamicRef   *Schema
	dynamicRefAnchor string // $dynamicAnchor name to re-resolve per outermost scope
	recursiveAnchor  bool
	dynamicAnchor    string
	ext []extCompiled

	// meta-data (kept for annotation collection / output, never asserted)
	title, description string
	defaultValue        any
	hasDefault           bool
	deprecated, readOnly, writeOnly bool
	examples             []any

	// validation: any instance
	types     []string
	hasConst  bool
	constVal  any
	enum      []any

	// validation: numbers
	minimum, maximum                   *big.Rat
	exclusiveMinimum, exclusiveMaximum *big.Rat
	multipleOf                         *big.Rat

	// validation: strings
	minLength, maxLength *int
	pattern              *ecmaRegexp

	// validation: arrays
	minItems, maxItems *int
	uniqueItems        bool
	minContains, maxContains *int

	// validation: objects
	minProperties, maxProperties *int
	required                     []string
	dependentRequired             map[string][]string
	propertyDependencies          map[string]map[string]*Schema

	// applicator: arrays
	prefixItems     []*Schema
	items           *Schema // draft2020 "items", or draft<=2019 singular-schema "items"
	itemsArray      []*Schema // draft<=2019 tuple-style "items": [...]
	additionalItems *Schema
	contains        *Schema
	unevaluatedItems *Schema

	// applicator: objects
	properties        map[string]*Schema
	patternProperties []patternSchema
	additionalProperties *Schema
	dependentSchemas  map[string]*Schema
	propertyNames     *Schema
	unevaluatedProperties *Schema

	// applicator: composition
	allOf, anyOf, oneOf []*Schema
	not                 *Schema
	ifSchema, thenSchema, elseSchema *Schema

	// content
	contentEncoding  string
	contentMediaType string
	hasContentSchema bool
	contentSchema    *Schema

	// format
	formatName string
	format     *Format

	// draft3 legacy
	disallow []string
	extends  []*Schema

	// runtime options copied from the Compiler that compiled this node,
	// so Schema.validate never needs a back-reference to it.
	optExhaustive   bool
	optAssertFormat bool
	optAssertContent bool
}

type patternSchema struct {
	name   string
	regex  *ecmaRegexp
	schema *Schema
}

// uneval tracks, within one Schema.validate call, which of the
// instance's own direct child keys (for an object) or indices (for an
// array) have not yet been accounted for by any keyword. additionalProperties,
// unevaluatedProperties, and their array counterparts consult it; every
// applicator that visits a child through allOf/anyOf/oneOf/$ref/if-then-else
// merges its nested uneval back into the caller's via mergeInto, which is
// precisely the annotation-propagation rule in §3.4/§4.7: a key counts as
// evaluated in the parent if it was evaluated in the child.
type uneval struct {
	props map[string]bool
	items map[int]bool
}

func newUneval(v any) uneval {
	u := uneval{}
	switch v := v.(type) {
	case map[string]any:
		u.props = make(map[string]bool, len(v))
		for k := range v {
			u.props[k] = true
		}
	case []any:
		u.items = make(map[int]bool, len(v))
		for i := range v {
			u.items[i] = true
		}
	}
	return u
}

func (u uneval) evalProp(name string)  { delete(u.props, name) }
func (u uneval) evalItem(i int)        { delete(u.items, i) }

func (u uneval) unevaluatedProps() []string {
	out := make([]string, 0, len(u.props))
	for k := range u.props {
		out = append(out, k)
	}
	return out
}

func (u uneval) unevaluatedItems() []int {
	out := make([]int, 0, len(u.items))
	for i := range u.items {
		out = append(out, i)
	}
	return out
}

// mergeInto removes, from parent, every key/index that child did NOT
// leave unevaluated — i.e. every key child's subtree did evaluate.
func mergeInto(parent, child uneval) {
	for k := range parent.props {
		if !child.props[k] {
			delete(parent.props, k)
		}
	}
	for i := range parent.items {
		if !child.items[i] {
			delete(parent.items, i)
		}
	}
}

// rtScope carries the per-Validate-call state that must stay coherent
// across a whole document walk but isn't owned by any single Schema
// node: the $recursiveAnchor/$dynamicAnchor outermost-scope stack
// (§4.3). Formats and decoders are resolved at compile time, so it
// holds nothing else.
type rtScope struct {
	dynamicPath []*Schema // schemas encountered so far, outermost first
}

func (sc *rtScope) push(s *Schema) *rtScope {
	n := &rtScope{dynamicPath: append(append([]*Schema{}, sc.dynamicPath...), s)}
	return n
}

// resolveDynamic implements $dynamicRef's outermost-wins lookup: walk the
// scope stack from the outermost frame inward, returning the first
// schema whose resource declares a $dynamicAnchor matching name.
func (sc *rtScope) resolveDynamic(name string, fallback *Schema) *Schema {
	for _, s := range sc.dynamicPath {
		if s.dynamicAnchor == name {
			return s
		}
	}
	return fallback
}

// Validate checks doc, which must have been produced by decoding JSON
// with UseNumber (see DecodeJSON), against s. It returns nil on success,
// the *Error itself when exactly one failure was found at the top
// level, or else one *Error for s whose Children are those failures.
func (s *Schema) Validate(doc any) error {
	sc := &rtScope{}
	if s.recursiveAnchor || s.dynamicAnchor != "" {
		sc = sc.push(s)
	}
	_, errs := s.validate(sc, nil, doc)
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	root := newError(s, nil, "", msgf("%d errors occurred", len(errs)))
	root.Children = errs
	return root
}

// ValidateInterface is Validate for values built by hand (not decoded
// JSON): map[string]any, []any, string, bool, nil, json.Number, float64,
// int, int32 and int64 are accepted; float64 and the int kinds are
// treated as JSON numbers the same as json.Number. Any other Go type
// inside doc makes it return an *InvalidJSONTypeError.
func (s *Schema) ValidateInterface(doc any) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if invalid, ok := rec.(*InvalidJSONTypeError); ok {
				err = invalid
				return
			}
			panic(rec)
		}
	}()
	return s.Validate(doc)
}
