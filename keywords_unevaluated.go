// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import "fmt"

func init() {
	registerKeyword("unevaluated", "unevaluatedItems", compileUnevaluatedItems)
	registerKeyword("unevaluated", "unevaluatedProperties", compileUnevaluatedProperties)
}

func compileUnevaluatedItems(k *kwctx, m map[string]any) error {
	if _, ok := m["unevaluatedItems"]; !ok {
		return nil
	}
	child, err := k.child("unevaluatedItems")
	if err != nil {
		return fmt.Errorf("unevaluatedItems: %w", err)
	}
	k.s.unevaluatedItems = child
	return nil
}

func compileUnevaluatedProperties(k *kwctx, m map[string]any) error {
	if _, ok := m["unevaluatedProperties"]; !ok {
		return nil
	}
	child, err := k.child("unevaluatedProperties")
	if err != nil {
		return fmt.Errorf("unevaluatedProperties: %w", err)
	}
	k.s.unevaluatedProperties = child
	return nil
}
