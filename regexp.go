// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// ecmaRegexp wraps an ECMA-262 regular expression, since JSON Schema's
// `pattern` and `patternProperties` keywords are defined in terms of
// ECMA-262 regex semantics (§5), which differ from Go's RE2 on lookahead,
// backreferences and the continuation-of-` \d`/`\w` Unicode classes that
// the test suite's "ECMA 262 regex" cases exercise. regexp2.Regexp is
// documented as safe for concurrent MatchString calls once compiled, so a
// compiled *Schema can be shared across goroutines per §5's requirement.
type ecmaRegexp struct {
	src string
	re  *regexp2.Regexp
}

func compileECMARegexp(pattern string) (*ecmaRegexp, error) {
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}
	return &ecmaRegexp{src: pattern, re: re}, nil
}

func (r *ecmaRegexp) MatchString(s string) bool {
	ok, err := r.re.MatchString(s)
	return err == nil && ok
}

func (r *ecmaRegexp) String() string { return r.src }
