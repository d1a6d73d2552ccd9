// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

func init() {
	registerKeyword("format", "format", func(k *kwctx, m map[string]any) error {
		name, ok := m["format"].(string)
		if !ok {
			return nil
		}
		k.s.formatName = name
		k.s.format = k.format(name)
		return nil
	})
}
