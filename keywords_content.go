// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import "fmt"

func init() {
	registerKeyword("content", "contentEncoding", compileContentEncoding)
	registerKeyword("content", "contentMediaType", compileContentMediaType)
	registerKeyword("content", "contentSchema", compileContentSchema)
}

func compileContentEncoding(k *kwctx, m map[string]any) error {
	if s, ok := m["contentEncoding"].(string); ok {
		k.s.contentEncoding = s
	}
	return nil
}

func compileContentMediaType(k *kwctx, m map[string]any) error {
	if s, ok := m["contentMediaType"].(string); ok {
		k.s.contentMediaType = s
	}
	return nil
}

func compileContentSchema(k *kwctx, m map[string]any) error {
	if _, ok := m["contentSchema"]; !ok {
		return nil
	}
	child, err := k.child("contentSchema")
	if err != nil {
		return fmt.Errorf("contentSchema: %w", err)
	}
	k.s.hasContentSchema = true
	k.s.contentSchema = child
	return nil
}
