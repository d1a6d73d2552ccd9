// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

// MediaType validates that b conforms to a content media type named by
// contentMediaType (§4.6).
type MediaType func([]byte) error

var mediaTypes = map[string]MediaType{
	"application/json": func(b []byte) error {
		_, err := decodeJSONBytes(b)
		return err
	},
	"text/plain": func([]byte) error { return nil },
}

// RegisterMediaType installs a contentMediaType validator under name.
func RegisterMediaType(name string, m MediaType) { mediaTypes[name] = m }

func getMediaType(name string) (MediaType, bool) {
	m, ok := mediaTypes[name]
	return m, ok
}
