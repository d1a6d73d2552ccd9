// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"strconv"
	"strings"
)

// segment is one token of a JSON-pointer-shaped path: either a property
// name or an array index. Both schema paths and document paths are
// built from these, per §3.6.
type segment struct {
	name    string
	index   int
	isIndex bool
}

func prop(name string) segment  { return segment{name: name} }
func idx(i int) segment         { return segment{index: i, isIndex: true} }
func (s segment) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.name
}

type path []segment

func (p path) String() string {
	if len(p) == 0 {
		return ""
	}
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return "/" + strings.Join(parts, "/")
}

func (p path) append(s segment) path {
	out := make(path, len(p)+1)
	copy(out, p)
	out[len(p)] = s
	return out
}

// Error is the structured validation failure record described in §3.6.
// then/else, $ref/$recursiveRef/$dynamicRef and propertyNames wrap
// their children's errors as Children of one Error for that keyword;
// allOf, properties, items and the other applicators add their
// children's errors directly to the parent's list instead. Each Error
// carries its own SchemaPath and DocumentPath either way.
type Error struct {
	SchemaPath   path   // path within the compiled schema to the failing keyword
	DocumentPath path   // path within the instance to the offending value
	Message      string // human-readable description
	Schema       *Schema
	Document     any
	Children     []*Error
}

func newError(s *Schema, docPath path, kw string, m msger) *Error {
	sp := s.path
	if kw != "" {
		sp = sp.append(prop(kw))
	}
	return &Error{SchemaPath: sp, DocumentPath: docPath, Message: m.String(), Schema: s}
}

func (e *Error) wrap(kw string, causes ...*Error) *Error {
	e.Children = append(e.Children, causes...)
	return e
}

func (e *Error) Error() string {
	loc := e.SchemaPath.String()
	if loc == "" {
		loc = "/"
	}
	return fmt.Sprintf("jsonschema: %q does not validate with %q: %s", e.DocumentPath.String(), loc, e.Message)
}

// flatten returns e and every descendant in depth-first order, useful
// for callers that want a linear list instead of the nested tree.
func (e *Error) flatten() []*Error {
	out := []*Error{e}
	for _, c := range e.Children {
		out = append(out, c.flatten()...)
	}
	return out
}

// msger is implemented by the typed message kinds in package msg; it
// lets a keyword factory build an Error without formatting a string by
// hand at the call site (mirrors how the teacher's msg package works).
type msger interface {
	String() string
}

// plainMsg adapts a plain format string into a msger, for keywords
// whose wording doesn't warrant its own typed kind.
type plainMsg string

func (m plainMsg) String() string { return string(m) }

func msgf(format string, args ...any) plainMsg {
	return plainMsg(fmt.Sprintf(format, args...))
}

// SchemaError is returned by Compiler.Compile when a schema document
// itself could not be turned into a runnable validator: a malformed
// keyword value, a $ref that no registered resource, embedded
// metaschema or LoadURL can supply, or an anchor that was never
// declared. A $schema naming an unknown draft is not an error (the
// compiler's DefaultDraft is used instead).
type SchemaError struct {
	URL string
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("jsonschema: compiling %q: %v", e.URL, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// InvalidJSONTypeError is raised (as a panic, recovered at the API
// boundary by Compile and ValidateInterface) when a schema or document
// holds a Go value that is not one of the JSON value types jsonType
// accepts.
type InvalidJSONTypeError struct{ Value any }

func (e *InvalidJSONTypeError) Error() string {
	return fmt.Sprintf("jsonschema: invalid json value of type %T", e.Value)
}

// InfiniteLoopError names a $ref chain that cycles back onto a schema
// node already being compiled. Compile does not return it: such cycles
// are broken by compileAt's memoization instead.
type InfiniteLoopError string

func (e InfiniteLoopError) Error() string {
	return "jsonschema: infinite loop compiling " + string(e)
}

// AnchorNotFoundError is returned by the resolver when a URI names an
// anchor fragment that was never registered during the identifier
// pre-scan (§4.2).
type AnchorNotFoundError struct {
	URL       string
	Reference string
}

func (e *AnchorNotFoundError) Error() string {
	return fmt.Sprintf("jsonschema: anchor not found: %q in %q", e.Reference, e.URL)
}

// UnsupportedDraftError names a $schema URI this compiler doesn't
// recognise. Compile does not return it: such a resource is compiled
// under the compiler's DefaultDraft.
type UnsupportedDraftError string

func (e UnsupportedDraftError) Error() string {
	return "jsonschema: unsupported draft " + string(e)
}
