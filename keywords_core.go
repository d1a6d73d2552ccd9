// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

func init() {
	registerKeyword("core", "$ref", compileDollarRef)
	registerKeyword("core", "$recursiveRef", compileRecursiveRef)
	registerKeyword("core", "$recursiveAnchor", compileRecursiveAnchor)
	registerKeyword("core", "$dynamicRef", compileDynamicRef)
	registerKeyword("core", "$dynamicAnchor", compileDynamicAnchor)
}

// compileDollarRef handles $ref for draft >= 2019-09, where it behaves
// as an ordinary applicator alongside its siblings. draft <= 7's
// "siblings are ignored" rule is handled earlier, in compileCtx.compileInto,
// before the dialect loop ever reaches this entry.
func compileDollarRef(k *kwctx, m map[string]any) error {
	ref, ok := m["$ref"].(string)
	if !ok {
		return nil
	}
	target, err := k.cc.resolveRefString(k.s, ref)
	if err != nil {
		return err
	}
	k.s.ref = target
	return nil
}

func compileRecursiveRef(k *kwctx, m map[string]any) error {
	ref, ok := m["$recursiveRef"].(string)
	if !ok {
		return nil
	}
	target, err := k.cc.resolveRefString(k.s, ref)
	if err != nil {
		return err
	}
	k.s.recursiveRef = target
	return nil
}

func compileRecursiveAnchor(k *kwctx, m map[string]any) error {
	if b, ok := m["$recursiveAnchor"].(bool); ok {
		k.s.recursiveAnchor = b
	}
	return nil
}

func compileDynamicRef(k *kwctx, m map[string]any) error {
	ref, ok := m["$dynamicRef"].(string)
	if !ok {
		return nil
	}
	target, err := k.cc.resolveRefString(k.s, ref)
	if err != nil {
		return err
	}
	k.s.dynamicRef = target
	_, frag := splitFragment(ref)
	k.s.dynamicRefAnchor = frag
	return nil
}

func compileDynamicAnchor(k *kwctx, m map[string]any) error {
	if a, ok := m["$dynamicAnchor"].(string); ok {
		k.s.dynamicAnchor = a
	}
	return nil
}
