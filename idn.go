// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"strings"

	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// isIDNHostname is a partial idn-hostname predicate (§4.6, §7 non-goal):
// it normalizes each label to NFC and rejects labels that mix strongly
// right-to-left and left-to-right runes (the RFC 5891 Bidi rule), but it
// does not implement the full IDNA2008 code-point tables. Labels that
// pass this check are not guaranteed IDNA2008-valid; labels it rejects
// are genuinely invalid under any reading of the rule.
func isIDNHostname(s string) bool {
	if s == "" || len(s) > 253 {
		return false
	}
	for _, label := range strings.Split(strings.TrimSuffix(s, "."), ".") {
		if label == "" {
			return false
		}
		normalized := norm.NFC.String(label)
		if !bidiConsistent(normalized) {
			return false
		}
	}
	return true
}

func bidiConsistent(label string) bool {
	hasRTL, hasStrongLTR := false, false
	for _, r := range label {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.R, bidi.AL:
			hasRTL = true
		case bidi.L:
			hasStrongLTR = true
		}
	}
	return !(hasRTL && hasStrongLTR)
}
