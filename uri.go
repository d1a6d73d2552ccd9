// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"strings"
)

// uriKind discriminates the four shapes a reference or $id can take.
type uriKind int

const (
	kindURL uriKind = iota
	kindURN
	kindPath
	kindFragment
)

// uri is a parsed schema identifier: a urn, an absolute url, a path
// relative reference (a scheme-relative "//host/..." is parsed as one
// too), or a bare fragment. It never retains percent-encoding state
// beyond what was given; parseURI and normalize lower-case the scheme
// only, matching §4.1.
type uri struct {
	kind     uriKind
	origin   string // scheme:authority, or for urns the whole "urn:<nid>:<nss>" (nid and nss are not split)
	path     string // path component, without leading "/" marker stripped
	absPath  bool   // path begins with "/"
	fragment string // without leading "#"
	hasFrag  bool
}

// parseURI recognises four shapes, per §4.1:
//
//	scheme:rest            -> kindURL, or kindURN when scheme == "urn"
//	/path[#frag]           -> kindPath, absolute
//	path[#frag]            -> kindPath, relative
//	#frag                  -> kindFragment
func parseURI(s string) uri {
	if s == "" {
		return uri{kind: kindPath}
	}
	if s[0] == '#' {
		return uri{kind: kindFragment, fragment: s[1:], hasFrag: true}
	}
	if i := strings.IndexByte(s, ':'); i > 0 && isSchemeLike(s[:i]) {
		scheme := strings.ToLower(s[:i])
		rest := s[i+1:]
		if scheme == "urn" {
			nss, frag, hasFrag := cutFragment(rest)
			return uri{kind: kindURN, origin: "urn:" + nss, hasFrag: hasFrag, fragment: frag}
		}
		path, frag, hasFrag := cutFragment(rest)
		// rest is typically "//authority/path"; origin captures
		// scheme+authority, path captures everything after the authority.
		origin, p := splitAuthority(path)
		return uri{kind: kindURL, origin: scheme + ":" + origin, path: p, absPath: strings.HasPrefix(p, "/"), hasFrag: hasFrag, fragment: frag}
	}
	path, frag, hasFrag := cutFragment(s)
	return uri{kind: kindPath, path: path, absPath: strings.HasPrefix(path, "/"), hasFrag: hasFrag, fragment: frag}
}

func isSchemeLike(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

func cutFragment(s string) (rest, frag string, hasFrag bool) {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

func splitAuthority(s string) (origin, path string) {
	if !strings.HasPrefix(s, "//") {
		return "", s
	}
	rest := s[2:]
	i := strings.IndexByte(rest, '/')
	if i < 0 {
		return "//" + rest, ""
	}
	return "//" + rest[:i], rest[i:]
}

func (u uri) isZero() bool {
	return u.kind == kindPath && u.origin == "" && u.path == "" && !u.hasFrag
}

// inherit resolves child against parent following RFC-3986-style
// precedence: a fragment-only child inherits the base; a relative path
// replaces the last segment; an absolute path keeps the origin; an
// absolute url/urn discards the parent outright. See §4.1.
func inherit(parent, child uri) uri {
	switch child.kind {
	case kindFragment:
		out := parent
		out.fragment, out.hasFrag = child.fragment, true
		return out
	case kindURL, kindURN:
		return child
	case kindPath:
		if child.path == "" {
			out := parent
			out.fragment, out.hasFrag = child.fragment, child.hasFrag
			return out
		}
		if child.absPath {
			out := parent
			out.path, out.absPath = child.path, true
			out.fragment, out.hasFrag = child.fragment, child.hasFrag
			return out
		}
		out := parent
		out.path = replaceLastSegment(parent.path, child.path)
		out.absPath = parent.absPath
		out.fragment, out.hasFrag = child.fragment, child.hasFrag
		return out
	}
	return child
}

func replaceLastSegment(base, rel string) string {
	i := strings.LastIndexByte(base, '/')
	if i < 0 {
		return rel
	}
	return resolveDots(base[:i+1] + rel)
}

// resolveDots collapses "." and ".." segments, RFC-3986 §5.2.4 style.
func resolveDots(p string) string {
	absolute := strings.HasPrefix(p, "/")
	parts := strings.Split(p, "/")
	out := make([]string, 0, len(parts))
	for _, seg := range parts {
		switch seg {
		case ".":
		case "..":
			if len(out) > 0 && out[len(out)-1] != ".." {
				out = out[:len(out)-1]
			} else if !absolute {
				out = append(out, seg)
			}
		default:
			out = append(out, seg)
		}
	}
	joined := strings.Join(out, "/")
	if absolute && !strings.HasPrefix(joined, "/") {
		joined = "/" + joined
	}
	return joined
}

// base strips the fragment from u, giving the resource identity.
func (u uri) base() uri {
	u.hasFrag = false
	u.fragment = ""
	return u
}

// String renders u back into its textual form.
func (u uri) String() string {
	var sb strings.Builder
	switch u.kind {
	case kindURN:
		sb.WriteString(u.origin)
	case kindURL:
		sb.WriteString(u.origin)
		sb.WriteString(u.path)
	case kindPath:
		sb.WriteString(u.path)
	}
	if u.hasFrag {
		sb.WriteByte('#')
		sb.WriteString(u.fragment)
	}
	return sb.String()
}

// normalize gives a canonical string usable as a map key: lower-cases
// the scheme and drops an empty trailing fragment ("x#" names the same
// resource as "x"); everything else, a non-empty fragment included, is
// left untouched (schema authors rely on case-sensitive paths and
// fragments).
func normalize(s string) string {
	u := parseURI(s)
	if u.fragment == "" {
		u = u.base()
	}
	return u.String()
}

// resolveRef parses ref and inherits it against the base URI string.
func resolveRef(baseStr, ref string) string {
	if ref == "" {
		return baseStr
	}
	base := parseURI(baseStr)
	child := parseURI(ref)
	return inherit(base, child).String()
}

// splitFragment divides a uri string into its base (pre-#) and fragment
// (post-#, without the marker) components.
func splitFragment(s string) (base, frag string) {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}
