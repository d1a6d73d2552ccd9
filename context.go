// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"strings"
)

// compileCtx is threaded through one top-level Compiler.Compile call. It
// owns nothing mutable that recursive compilation would race on: every
// resource it touches is cached on the Compiler itself, and cycles are
// broken by registering a *Schema in resource.schemas before recursing
// into its body (§4.3).
type compileCtx struct {
	c     *Compiler
	stack map[string]*Schema // unused beyond documentation today; kept for InfiniteLoopError wiring

	// curPtr is set only while an ExtCompiler.Compile call is in
	// progress, so CompilerContext.Compile knows where to recurse from.
	curRes *resource
	curPtr string
}

var metaDocCache = map[string]any{}

func metaDocFor(base string) any {
	if doc, ok := metaDocCache[base]; ok {
		return doc
	}
	for _, d := range allDrafts {
		if d.metaSchema == "" {
			continue
		}
		mbase := normalize(d.metaURL)
		if mbase == base || httpVariant(mbase) == httpVariant(base) {
			doc, err := decodeJSONBytes([]byte(d.metaSchema))
			if err != nil {
				return nil
			}
			metaDocCache[base] = doc
			return doc
		}
	}
	return nil
}

func detectDraft(doc any, def *Draft) *Draft {
	if m, ok := doc.(map[string]any); ok {
		if s, ok := m["$schema"].(string); ok {
			if d := draftByMetaURL(s); d != nil {
				return d
			}
		}
	}
	return def
}

func vocabMapFrom(doc any) map[string]bool {
	m, ok := doc.(map[string]any)
	if !ok {
		return nil
	}
	vm, ok := m["$vocabulary"].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]bool, len(vm))
	for k, v := range vm {
		b, _ := v.(bool)
		out[k] = b
	}
	return out
}

// getResource fetches (or returns the cached) resource whose identity is
// base: first a document explicitly registered via AddResource or one
// already known as a nested $id inside some other fetched resource, then
// an embedded metaschema, then the configured URLLoader.
func (cc *compileCtx) getResource(base string) (*resource, error) {
	base = normalize(base)
	if r, ok := cc.c.resources[base]; ok {
		return r, nil
	}
	// base may be the identity of a sub-resource embedded inside a
	// document already fetched under a different top-level url: $ref
	// chasing within one physical document never needs the loader.
	for _, r := range cc.c.resources {
		if _, ok := r.ids[base]; ok {
			cc.c.resources[base] = r
			return r, nil
		}
	}
	doc, ok := cc.c.docs[base]
	if !ok {
		if md := metaDocFor(base); md != nil {
			doc, ok = md, true
		}
	}
	if !ok {
		if cc.c.LoadURL == nil {
			return nil, fmt.Errorf("jsonschema: no resource registered for %q and no URLLoader configured", base)
		}
		loaded, err := cc.c.LoadURL.Load(base)
		if err != nil {
			return nil, fmt.Errorf("jsonschema: loading %q: %w", base, err)
		}
		doc, ok = loaded, true
	}
	draft := detectDraft(doc, cc.c.DefaultDraft)
	r := newResource(base, doc)
	r.draft = draft
	r.baseAt = map[string]string{}
	r.prescan(draft)
	r.dialect = buildDialect(draft, vocabMapFrom(doc))
	cc.c.resources[base] = r
	return r, nil
}

// locate turns a URI fragment (either a JSON pointer or a plain anchor
// name) into a JSON pointer relative to res.doc. base is the identifier
// (res's own url, or a nested $id within it) the fragment is relative
// to: a JSON pointer fragment is resolved starting from wherever base
// was declared, not necessarily the top of the physical document.
func (cc *compileCtx) locate(res *resource, base, frag string) (string, error) {
	root := res.ids[normalize(base)] // "" when base is res's own top-level url
	if frag == "" {
		return root, nil
	}
	if strings.HasPrefix(frag, "/") {
		return root + frag, nil
	}
	if ptr, ok := res.ids[normalize(base+"#"+frag)]; ok {
		return ptr, nil
	}
	return "", &AnchorNotFoundError{URL: base, Reference: frag}
}

// resolveSchema is the entry point for Compiler.Compile: url may carry a
// fragment naming a sub-schema within the resource.
func (cc *compileCtx) resolveSchema(url string) (*Schema, error) {
	base, frag := splitFragment(url)
	res, err := cc.getResource(base)
	if err != nil {
		return nil, err
	}
	ptr, err := cc.locate(res, base, frag)
	if err != nil {
		return nil, err
	}
	return cc.compileAt(res, ptr)
}

// resolveRefString resolves ref against the base URI in effect at s,
// then compiles (or fetches from memo/cycle-break) the target schema.
func (cc *compileCtx) resolveRefString(s *Schema, ref string) (*Schema, error) {
	resolved := resolveRef(s.url, ref)
	base, frag := splitFragment(resolved)
	res, err := cc.getResource(base)
	if err != nil {
		return nil, err
	}
	ptr, err := cc.locate(res, base, frag)
	if err != nil {
		return nil, err
	}
	return cc.compileAt(res, ptr)
}

// compileAt compiles (or returns the memoized) schema at ptr within res.
func (cc *compileCtx) compileAt(res *resource, ptr string) (*Schema, error) {
	key := res.url + "#" + ptr
	if s, ok := res.schemas[key]; ok {
		return s, nil
	}
	raw, err := resolvePtr(res.doc, ptr)
	if err != nil {
		return nil, err
	}
	s := &Schema{ptr: ptr, draft: res.draftFor(ptr), path: ptrToPath(ptr)}
	if base, ok := res.baseAt[ptr]; ok {
		s.url = base
	} else {
		s.url = res.url
	}
	cc.applyOptions(s)
	res.schemas[key] = s // register before recursing: breaks $ref cycles
	if err := cc.compileInto(res, s, raw); err != nil {
		return nil, err
	}
	return s, nil
}

func ptrToPath(ptr string) path {
	if ptr == "" {
		return nil
	}
	toks := strings.Split(strings.TrimPrefix(ptr, "/"), "/")
	p := make(path, len(toks))
	for i, t := range toks {
		p[i] = prop(unescapeToken(t))
	}
	return p
}

// compileInto fills in s's fields from raw, the decoded JSON at s's
// location. A boolean schema short-circuits immediately; an object
// schema is compiled keyword by keyword using res's active dialect,
// except that draft ≤ 7 ignores every sibling of $ref entirely (§4.2).
func (cc *compileCtx) compileInto(res *resource, s *Schema, raw any) error {
	if b, ok := raw.(bool); ok {
		s.boolean = &b
		return nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return fmt.Errorf("schema at %q must be an object or boolean, got %s", s.ptr, jsonType(raw))
	}

	k := &kwctx{cc: cc, res: res, s: s}

	if s.draft.version < 2019 {
		if ref, ok := m["$ref"].(string); ok {
			target, err := cc.resolveRefString(s, ref)
			if err != nil {
				return err
			}
			s.ref = target
			return nil
		}
	}

	for _, entry := range res.dialectFor(s.ptr) {
		if err := entry.compile(k, m); err != nil {
			return fmt.Errorf("%s: %w", entry.keyword, err)
		}
	}

	for name, ext := range cc.c.extensions {
		prevRes, prevPtr := cc.curRes, cc.curPtr
		cc.curRes, cc.curPtr = res, s.ptr
		compiled, err := ext.compiler.Compile(&CompilerContext{cc: cc}, m)
		cc.curRes, cc.curPtr = prevRes, prevPtr
		if err != nil {
			return fmt.Errorf("extension %s: %w", name, err)
		}
		if compiled != nil {
			s.ext = append(s.ext, extCompiled{name: name, ext: compiled})
		}
	}
	return nil
}

// compileValue lets CompilerContext.Compile (the extension hook) recurse
// into an arbitrary nested schema value the same way a keyword compiler
// does, resolving relative to the resource currently being compiled.
func (cc *compileCtx) compileValue(v any, fromPtr string) (*Schema, error) {
	if cc.curRes == nil {
		return nil, fmt.Errorf("jsonschema: compileValue called outside a Compile pass")
	}
	return cc.compileRawAt(cc.curRes, fromPtr, v)
}

// compileRawAt compiles v as if it were found at ptr within res, without
// requiring it actually be there (used for extension-owned schema
// values that don't occupy a predictable pointer). It does not memoize:
// every call compiles v afresh, since different values may be compiled
// at the same (res, ptr).
func (cc *compileCtx) compileRawAt(res *resource, ptr string, v any) (*Schema, error) {
	s := &Schema{ptr: ptr, draft: res.draftFor(ptr), path: ptrToPath(ptr), url: res.url}
	cc.applyOptions(s)
	if err := cc.compileInto(res, s, v); err != nil {
		return nil, err
	}
	return s, nil
}

// applyOptions copies the subset of Compiler configuration that
// Schema.validate needs at runtime onto the node being compiled, so
// validate never has to reach back through compileCtx/Compiler.
func (cc *compileCtx) applyOptions(s *Schema) {
	s.optExhaustive = cc.c.Exhaustive
	s.optAssertFormat = cc.c.AssertFormat
	s.optAssertContent = cc.c.AssertContent
}

// kwctx is the per-node handle given to every keywordCompiler.
type kwctx struct {
	cc  *compileCtx
	res *resource
	s   *Schema
}

// child compiles the schema at property key of the current node.
func (k *kwctx) child(key string) (*Schema, error) {
	return k.cc.compileAt(k.res, k.s.ptr+"/"+escape(key))
}

// childAt compiles the schema at an explicit sub-pointer of the current
// node (used for array-indexed children like items[i]).
func (k *kwctx) childAt(suffix string) (*Schema, error) {
	return k.cc.compileAt(k.res, k.s.ptr+suffix)
}

// childValue compiles v directly without it needing to live at a
// resolvable pointer. No keyword compiler in this package calls it;
// draft3 "extends" compiles its entries in place via child/childAt.
func (k *kwctx) childValue(ptrSuffix string, v any) (*Schema, error) {
	return k.cc.compileRawAt(k.res, k.s.ptr+ptrSuffix, v)
}

func (k *kwctx) draft() *Draft { return k.s.draft }

func (k *kwctx) format(name string) *Format {
	return k.cc.c.formatFor(k.s.draft, name)
}
