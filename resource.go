// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// resource is one fetched schema document. A document may still carry
// several embedded sub-resources delimited by nested $id; those share
// the same resource (and the same underlying doc), since $ref chasing
// within one physical document never needs the loader.
type resource struct {
	url   string // base url of the document, fragment-free
	doc   any
	draft *Draft

	// ids maps a normalized absolute URI (resource id or $anchor) to the
	// JSON pointer, relative to doc, where it was declared. Populated by
	// the identifier pre-scan (§4.2) before compilation starts.
	ids map[string]string

	// dynamicAnchors maps a $dynamicAnchor name to its JSON pointer, for
	// the first declaration seen by walk, which visits object keys in
	// sorted order (first write wins, matching §4.2).
	dynamicAnchors map[string]string

	// schemas memoises compiled schemas by resolved absolute URI, so that
	// repeated $refs to the same target return the identical *Schema and
	// cyclic graphs terminate (§4.3 "Lazy ref expansion" breaks cycles by
	// returning the still-being-compiled entry as a forward reference).
	schemas map[string]*Schema

	// baseAt records, for every JSON pointer visited during prescan, the
	// base URI in effect there (the nearest enclosing $id, or the
	// resource's own url if none). compileAt uses it to give a compiled
	// Schema the right identity for resolving its own relative $refs.
	baseAt map[string]string

	// dialect is this resource's active keyword table, computed once
	// from its draft and (for >=2019-09) its root $vocabulary.
	dialect Dialect

	// draftAt/dialectAt record, for a JSON pointer where a nested $id
	// subtree declares its own $schema, the draft/dialect that subtree
	// (and everything beneath it, until the next such boundary) compiles
	// and validates under. A bundled document can mix drafts this way;
	// draftFor/dialectFor walk up from a pointer to the nearest boundary.
	draftAt   map[string]*Draft
	dialectAt map[string]Dialect
}

func newResource(url string, doc any) *resource {
	return &resource{
		url:            url,
		doc:            doc,
		ids:            map[string]string{},
		dynamicAnchors: map[string]string{},
		schemas:        map[string]*Schema{},
		baseAt:         map[string]string{},
		draftAt:        map[string]*Draft{},
		dialectAt:      map[string]Dialect{},
	}
}

// draftFor returns the draft in effect at ptr: the nearest enclosing
// sub-resource's own $schema if it declared one, else the resource's
// top-level draft.
func (r *resource) draftFor(ptr string) *Draft {
	for p := ptr; ; {
		if d, ok := r.draftAt[p]; ok {
			return d
		}
		i := strings.LastIndexByte(p, '/')
		if i < 0 {
			break
		}
		p = p[:i]
	}
	return r.draft
}

// dialectFor mirrors draftFor for the active keyword table.
func (r *resource) dialectFor(ptr string) Dialect {
	for p := ptr; ; {
		if d, ok := r.dialectAt[p]; ok {
			return d
		}
		i := strings.LastIndexByte(p, '/')
		if i < 0 {
			break
		}
		p = p[:i]
	}
	return r.dialect
}

// prescan walks doc once, before compilation, registering every $id and
// $anchor (and, for drafts before $id existed, "id") it finds so that
// anchors can be resolved from inside $refs before the referent's
// siblings are visited (§4.2 invariant). It does not interpret
// identifiers nested inside enum/const values; see the Open Question
// in DESIGN.md about keeping that bug-compatible.
func (r *resource) prescan(draft *Draft) {
	r.walk(draft, r.url, r.doc, "")
}

func (r *resource) walk(draft *Draft, base string, v any, ptr string) {
	m, ok := v.(map[string]any)
	if !ok {
		r.baseAt[ptr] = base
		if arr, ok := v.([]any); ok {
			for i, item := range arr {
				r.walk(draft, base, item, ptr+"/"+strconv.Itoa(i))
			}
		}
		return
	}

	if id, ok := m[draft.idKey].(string); ok && id != "" {
		resolved := resolveRef(base, id)
		b, _ := splitFragment(resolved)
		base = b
		r.ids[normalize(resolved)] = ptr
		// an $id with a non-empty fragment that is a plain name, not a
		// pointer, is itself a legacy anchor (draft ≤ 7 convention).
		if _, frag := splitFragment(resolved); frag != "" && !strings.HasPrefix(frag, "/") {
			r.ids[normalize(base+"#"+frag)] = ptr
		}
		// a sub-resource boundary that declares its own $schema may run
		// under a different draft/dialect than the document enclosing it
		// (a bundled older-draft schema embedded in a newer one). The new
		// draft takes over $id-detection for everything beneath it too.
		if sschema, ok := m["$schema"].(string); ok && ptr != "" {
			subDraft := draftByMetaURL(sschema)
			if subDraft == nil {
				subDraft = draft
			}
			r.draftAt[ptr] = subDraft
			r.dialectAt[ptr] = buildDialect(subDraft, vocabMapFrom(m))
			draft = subDraft
		}
	}
	r.baseAt[ptr] = base
	if anchor, ok := m["$anchor"].(string); ok && anchor != "" {
		r.ids[normalize(base+"#"+anchor)] = ptr
	}
	if anchor, ok := m["$dynamicAnchor"].(string); ok && anchor != "" {
		r.ids[normalize(base+"#"+anchor)] = ptr
		if _, exists := r.dynamicAnchors[anchor]; !exists {
			r.dynamicAnchors[anchor] = ptr
		}
	}

	// keys are visited in sorted order so that "first write wins" for
	// dynamicAnchors does not depend on Go's random map iteration.
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		child := m[k]
		switch k {
		case "enum", "const":
			// §4.2: identifiers inside enum/const are data, not schema.
			continue
		}
		childPtr := ptr + "/" + escape(k)
		r.walk(draft, base, child, childPtr)
	}
}

// resolvePtr walks a (possibly empty) JSON pointer fragment, decoding
// ~1/~0 and %xx escapes, through doc starting at ptr. It implements
// try_path from §4.1.
func resolvePtr(doc any, ptr string) (any, error) {
	if ptr == "" || ptr == "/" {
		if ptr == "/" {
			// single "/" means the empty-named top-level property
		} else {
			return doc, nil
		}
	}
	tokens := strings.Split(strings.TrimPrefix(ptr, "/"), "/")
	cur := doc
	for _, tok := range tokens {
		tok = unescapeToken(tok)
		switch c := cur.(type) {
		case map[string]any:
			v, ok := c[tok]
			if !ok {
				return nil, fmt.Errorf("jsonschema: json-pointer %q: property %q not found", ptr, tok)
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(tok)
			if err != nil || i < 0 || i >= len(c) {
				return nil, fmt.Errorf("jsonschema: json-pointer %q: index %q out of range", ptr, tok)
			}
			cur = c[i]
		default:
			return nil, fmt.Errorf("jsonschema: json-pointer %q: cannot descend into %T", ptr, cur)
		}
	}
	return cur, nil
}

func unescapeToken(tok string) string {
	tok = strings.ReplaceAll(tok, "~1", "/")
	tok = strings.ReplaceAll(tok, "~0", "~")
	if unescaped, err := pctDecode(tok); err == nil {
		return unescaped
	}
	return tok
}

func pctDecode(s string) (string, error) {
	if !strings.ContainsRune(s, '%') {
		return s, nil
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			b, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil {
				return s, err
			}
			sb.WriteByte(byte(b))
			i += 2
		} else {
			sb.WriteByte(s[i])
		}
	}
	return sb.String(), nil
}

// escape converts a raw object key into a valid JSON-pointer token.
func escape(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	token = strings.ReplaceAll(token, "/", "~1")
	return token
}

