// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"encoding/base32"
	"encoding/base64"
	"io"
	"mime/quotedprintable"
	"strings"
)

// Decoder turns the raw string found in an instance into the bytes that
// contentMediaType/contentSchema then inspect, per the contentEncoding
// keyword (§4.6).
type Decoder func(string) ([]byte, error)

var decoders = map[string]Decoder{
	"identity": func(s string) ([]byte, error) { return []byte(s), nil },
	"base64": base64.StdEncoding.DecodeString,
	"base64url": base64.URLEncoding.DecodeString,
	"base32": base32.StdEncoding.DecodeString,
	"quoted-printable": func(s string) ([]byte, error) {
		return io.ReadAll(quotedprintable.NewReader(strings.NewReader(s)))
	},
}

// RegisterDecoder installs a contentEncoding decoder under name, for
// embedders whose instances use an encoding this package doesn't know.
func RegisterDecoder(name string, d Decoder) { decoders[name] = d }

func getDecoder(name string) (Decoder, bool) {
	d, ok := decoders[name]
	return d, ok
}
