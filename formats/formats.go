// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package formats implements the string predicates behind the `format`
// keyword, for every draft this module supports. Predicates are plain
// func(string) bool values so the compiler package can wrap them with
// the "only strings are checked, everything else passes" rule itself.
package formats

import (
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/google/uuid"
)

type Format func(string) bool

var formats = map[string]Format{
	"date-time":  IsDateTime,
	"date":       IsDate,
	"time":       IsTime,
	"hostname":   IsHostname,
	"email":      IsEmail,
	"ip-address": IsIPV4,
	"ipv4":       IsIPV4,
	"ipv6":       IsIPV6,
	"uri":        IsURI,
	"uriref":     IsURIReference,
	"regex":      IsRegex,
	"uuid":       IsUUID,
	"duration":   IsDuration,
}

func Register(name string, f Format) {
	formats[name] = f
}

// Get returns the named predicate, or a predicate that always reports
// true when name is unknown: an unrecognised format is an annotation
// everywhere in this module (§4.6), never a compile-time error.
func Get(name string) Format {
	if f, ok := formats[name]; ok {
		return f
	}
	return func(string) bool { return true }
}

// IsFormat reports whether name is a registered format.
func IsFormat(name string) bool {
	_, ok := formats[name]
	return ok
}

func IsDateTime(s string) bool {
	if _, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

func IsDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func IsTime(s string) bool {
	for _, layout := range []string{"15:04:05Z07:00", "15:04:05.999999999Z07:00"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// https://en.wikipedia.org/wiki/Hostname#Restrictions_on_valid_host_names
func IsHostname(s string) bool {
	strLen := len(s)
	if strings.HasSuffix(s, ".") {
		strLen--
	}
	if strLen > 253 || strLen == 0 {
		return false
	}

	for _, label := range strings.Split(strings.TrimSuffix(s, "."), ".") {
		if labelLen := len(label); labelLen < 1 || labelLen > 63 {
			return false
		}
		if first := label[0]; (first >= '0' && first <= '9') || first == '-' {
			return false
		}
		if label[len(label)-1] == '-' {
			return false
		}
		for _, c := range label {
			valid := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-'
			if !valid {
				return false
			}
		}
	}
	return true
}

// https://en.wikipedia.org/wiki/Email_address
func IsEmail(s string) bool {
	if len(s) > 254 {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	if at <= 0 {
		return false
	}
	local := s[:at]
	domain := s[at+1:]
	if len(local) > 64 || len(domain) > 255 {
		return false
	}
	return IsHostname(domain)
}

func IsIDNEmail(s string) bool {
	at := strings.LastIndexByte(s, '@')
	if at <= 0 {
		return false
	}
	return len(s[:at]) <= 64
}

func IsIPV4(s string) bool {
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return false
	}
	for _, group := range groups {
		if len(group) == 0 || (len(group) > 1 && group[0] == '0') {
			return false
		}
		n, err := strconv.Atoi(group)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}

func IsIPV6(s string) bool {
	if !strings.Contains(s, ":") {
		return false
	}
	return net.ParseIP(s) != nil
}

func IsURI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

func IsURIReference(s string) bool {
	_, err := url.Parse(s)
	return err == nil
}

// IsURIRef is kept for source compatibility with the teacher's original
// naming; new callers should use IsURIReference.
func IsURIRef(s string) bool { return IsURIReference(s) }

func IsURITemplate(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0 && IsURIReference(strings.NewReplacer("{", "", "}", "").Replace(s))
}

func IsIRI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

func IsIRIReference(s string) bool {
	_, err := url.Parse(s)
	return err == nil
}

func IsJSONPointer(s string) bool {
	if s == "" {
		return true
	}
	if s[0] != '/' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '~' && (i+1 >= len(s) || (s[i+1] != '0' && s[i+1] != '1')) {
			return false
		}
	}
	return true
}

func IsRelativeJSONPointer(s string) bool {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return false
	}
	rest := s[i:]
	return rest == "#" || IsJSONPointer(rest)
}

func IsRegex(s string) bool {
	_, err := regexp2.Compile(s, regexp2.ECMAScript)
	return err == nil
}

func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

var durationPattern = regexp.MustCompile(`^P(\d+Y)?(\d+M)?(\d+D)?(T(\d+H)?(\d+M)?(\d+(\.\d+)?S)?)?$|^P\d+W$`)

// IsDuration checks ISO-8601 duration syntax (2019-09 `duration` format).
func IsDuration(s string) bool {
	if s == "P" || s == "" {
		return false
	}
	if !durationPattern.MatchString(s) {
		return false
	}
	return s != "P" && s != "PT"
}

func IsColor(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '#' {
		return len(s) == 4 || len(s) == 7
	}
	for _, name := range []string{"black", "silver", "gray", "white", "maroon", "red", "purple",
		"fuchsia", "green", "lime", "olive", "yellow", "navy", "blue", "teal", "aqua", "orange"} {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

func IsCSSStyle(s string) bool {
	return strings.Contains(s, ":") || strings.TrimSpace(s) == ""
}

func IsPhone(s string) bool {
	for _, c := range s {
		if !(c >= '0' && c <= '9') && c != '+' && c != '-' && c != ' ' && c != '(' && c != ')' {
			return false
		}
	}
	return true
}

func IsUTCMillisec(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
