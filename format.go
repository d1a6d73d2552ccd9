// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import "github.com/schemaflow/jsonschema/formats"

// Format is a named instance predicate for the `format` keyword.
// Validate receives the raw instance value (only strings are ever
// checked; every other JSON type vacuously passes per §4.6) and reports
// whether it satisfies the format.
type Format struct {
	Name     string
	Validate func(v any) bool
}

// formatRegistry is draft-indexed because a handful of formats were
// renamed or retired across drafts (draft3's "host-name" became
// "hostname" in draft4, "color"/"style"/"phone"/"utc-millisec" didn't
// survive past draft3 at all).
var formatRegistry = map[int]map[string]*Format{}

func registerFormat(minDraft, maxDraft int, f *Format) {
	for _, d := range allDrafts {
		if d.version >= minDraft && (maxDraft == 0 || d.version <= maxDraft) {
			m := formatRegistry[d.version]
			if m == nil {
				m = map[string]*Format{}
				formatRegistry[d.version] = m
			}
			m[f.Name] = f
		}
	}
}

func lookupFormat(draft *Draft, name string) *Format {
	if m := formatRegistry[draft.version]; m != nil {
		return m[name]
	}
	return nil
}

func init() {
	reg := func(name string, fn func(string) bool) *Format {
		return &Format{Name: name, Validate: func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return true
			}
			return fn(s)
		}}
	}

	// formats shared by every draft
	for _, name := range []string{"date-time", "email", "ipv4", "ipv6", "uri", "regex"} {
		name := name
		registerFormat(3, 0, reg(name, func(s string) bool { return formats.Get(name)(s) }))
	}

	// draft3-only spellings
	registerFormat(3, 3, reg("host-name", formats.IsHostname))
	registerFormat(3, 3, reg("ip-address", formats.Get("ipv4")))
	registerFormat(3, 3, reg("color", formats.IsColor))
	registerFormat(3, 3, reg("style", formats.IsCSSStyle))
	registerFormat(3, 3, reg("phone", formats.IsPhone))
	registerFormat(3, 3, reg("utc-millisec", formats.IsUTCMillisec))

	// draft4 onward
	registerFormat(4, 0, reg("hostname", formats.IsHostname))

	// draft6 onward
	registerFormat(6, 0, reg("uri-reference", formats.IsURIReference))
	registerFormat(6, 0, reg("uri-template", formats.IsURITemplate))
	registerFormat(6, 0, reg("json-pointer", formats.IsJSONPointer))

	// draft7 onward
	registerFormat(7, 0, reg("date", formats.IsDate))
	registerFormat(7, 0, reg("time", formats.IsTime))
	registerFormat(7, 0, reg("iri", formats.IsIRI))
	registerFormat(7, 0, reg("iri-reference", formats.IsIRIReference))
	registerFormat(7, 0, reg("idn-hostname", isIDNHostname))
	registerFormat(7, 0, reg("idn-email", formats.IsIDNEmail))
	registerFormat(7, 0, reg("relative-json-pointer", formats.IsRelativeJSONPointer))

	// 2019-09 onward
	registerFormat(2019, 0, reg("duration", formats.IsDuration))
	registerFormat(2019, 0, &Format{Name: "uuid", Validate: func(v any) bool {
		s, ok := v.(string)
		if !ok {
			return true
		}
		return formats.IsUUID(s)
	}})
}
