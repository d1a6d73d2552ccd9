// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

func init() {
	registerKeyword("metadata", "title", func(k *kwctx, m map[string]any) error {
		if s, ok := m["title"].(string); ok {
			k.s.title = s
		}
		return nil
	})
	registerKeyword("metadata", "description", func(k *kwctx, m map[string]any) error {
		if s, ok := m["description"].(string); ok {
			k.s.description = s
		}
		return nil
	})
	registerKeyword("metadata", "default", func(k *kwctx, m map[string]any) error {
		if v, ok := m["default"]; ok {
			k.s.defaultValue = v
			k.s.hasDefault = true
		}
		return nil
	})
	registerKeyword("metadata", "examples", func(k *kwctx, m map[string]any) error {
		if v, ok := m["examples"].([]any); ok {
			k.s.examples = v
		}
		return nil
	})
	registerKeyword("metadata", "deprecated", func(k *kwctx, m map[string]any) error {
		if b, ok := m["deprecated"].(bool); ok {
			k.s.deprecated = b
		}
		return nil
	})
	registerKeyword("metadata", "readOnly", func(k *kwctx, m map[string]any) error {
		if b, ok := m["readOnly"].(bool); ok {
			k.s.readOnly = b
		}
		return nil
	})
	registerKeyword("metadata", "writeOnly", func(k *kwctx, m map[string]any) error {
		if b, ok := m["writeOnly"].(bool); ok {
			k.s.writeOnly = b
		}
		return nil
	})
}
