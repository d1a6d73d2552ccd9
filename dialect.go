// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import "strings"

// keywordCompiler reads a single keyword out of m, if present, and
// records whatever it compiles into s. It returns an error only for a
// malformed schema (wrong type, unparsable pattern, ...); a missing
// keyword is simply a no-op.
type keywordCompiler func(k *kwctx, m map[string]any) error

type dialectEntry struct {
	keyword  string
	category string // core, applicator, validation, metadata, format, content, unevaluated
	compile  keywordCompiler
}

// Dialect is the ordered set of keyword compilers active for one schema
// resource. Order matters only for compilation bookkeeping ($id is not
// a dialect keyword: the identifier pre-scan handles it first); runtime
// evaluation order is fixed by JSON Schema's own semantics and lives in
// Schema.validate, not here.
type Dialect []dialectEntry

// registry is the master table of every keyword this package knows how
// to compile, grouped by the vocabulary category that owns it. Entries
// added through registerVocabulary append here too.
var registry = map[string][]dialectEntry{}

func registerKeyword(category, keyword string, fn keywordCompiler) {
	registry[category] = append(registry[category], dialectEntry{keyword: keyword, category: category, compile: fn})
}

// categoryFromVocabURI returns the trailing path segment of a
// vocabulary URI, folding the 2019-09 "meta-data" spelling and the
// format-annotation/format-assertion split down to this package's
// internal category names.
func categoryFromVocabURI(u string) string {
	u = strings.TrimSuffix(u, "/")
	i := strings.LastIndexByte(u, '/')
	seg := u
	if i >= 0 {
		seg = u[i+1:]
	}
	switch seg {
	case "meta-data":
		return "metadata"
	case "format-annotation", "format-assertion":
		return "format"
	default:
		return seg
	}
}

// categoriesForDraft lists, in a fixed order, which vocabulary
// categories exist at all for a given draft generation. draft3/4/6/7
// have no $vocabulary mechanism, so every category they define is
// always active; 2019-09 onward can selectively disable one via
// $vocabulary.
func categoriesForDraft(d *Draft) []string {
	switch {
	case d.version < 2019:
		if d.version < 7 {
			return []string{"core", "applicator", "validation", "metadata", "format"}
		}
		return []string{"core", "applicator", "validation", "metadata", "format", "content"}
	default:
		return []string{"core", "applicator", "unevaluated", "validation", "metadata", "format", "content"}
	}
}

func buildDefaultDialect(d *Draft) Dialect {
	return buildDialect(d, nil)
}

// buildDialect assembles the active keyword table for a draft, honoring
// an explicit $vocabulary map when present (§4.5). Unknown vocabulary
// URIs are ignored rather than rejected: a schema naming a vocabulary
// this package has never heard of still compiles using the categories
// it does recognise, consistent with the "degrade gracefully" stance in
// §4.8.
func buildDialect(d *Draft, vocabMap map[string]bool) Dialect {
	on := map[string]bool{}
	for _, cat := range categoriesForDraft(d) {
		on[cat] = true
	}
	on["core"] = true
	if vocabMap != nil && d.vocab {
		for uri, enabled := range vocabMap {
			cat := categoryFromVocabURI(uri)
			if _, known := registry[cat]; known {
				on[cat] = enabled
			}
		}
		on["core"] = true
	}

	var out Dialect
	for _, cat := range categoriesForDraft(d) {
		if !on[cat] {
			continue
		}
		out = append(out, registry[cat]...)
	}
	return out
}

// registerVocabulary installs keyword compilers under a new category so
// that a schema whose $vocabulary map names vocabURI can turn them on.
// Nothing in this package calls it (its own keywords use registerKeyword
// directly); a consumer
// wanting a genuinely custom vocabulary does so via ExtCompiler/ExtSchema
// (extension.go) instead, since a category name here is only as good as
// every draft's categoriesForDraft list knowing to look for it.
func registerVocabulary(category string, keywords map[string]keywordCompiler) {
	for kw, fn := range keywords {
		registerKeyword(category, kw, fn)
	}
}
