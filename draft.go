// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

// Draft identifies one JSON Schema dialect generation. The zero value is
// never valid; use one of the package-level Draft3 ... DraftNext values,
// or Latest, which aliases DraftNext's predecessor per the test suite's
// own convention (§2 glossary, "latest").
type Draft struct {
	name     string
	version  int // sortable: 3,4,6,7,2019,2020,2021 (draft-next)
	idKey    string
	vocab    bool // true once a schema may carry $vocabulary (>=2019)
	metaURL  string
	metaSchema string // embedded metaschema JSON text, "" if not bundled
	dialect  Dialect
}

func (d *Draft) String() string { return d.name }

var (
	Draft3    = &Draft{name: "draft3", version: 3, idKey: "id", metaURL: "http://json-schema.org/draft-03/schema#"}
	Draft4    = &Draft{name: "draft4", version: 4, idKey: "id", metaURL: "http://json-schema.org/draft-04/schema#", metaSchema: metaschemaDraft4}
	Draft6    = &Draft{name: "draft6", version: 6, idKey: "$id", metaURL: "http://json-schema.org/draft-06/schema#", metaSchema: metaschemaDraft6}
	Draft7    = &Draft{name: "draft7", version: 7, idKey: "$id", metaURL: "http://json-schema.org/draft-07/schema#", metaSchema: metaschemaDraft7}
	Draft2019 = &Draft{name: "2019-09", version: 2019, idKey: "$id", vocab: true, metaURL: "https://json-schema.org/draft/2019-09/schema", metaSchema: metaschemaDraft2019}
	Draft2020 = &Draft{name: "2020-12", version: 2020, idKey: "$id", vocab: true, metaURL: "https://json-schema.org/draft/2020-12/schema", metaSchema: metaschemaDraft2020}
	DraftNext = &Draft{name: "draft-next", version: 2021, idKey: "$id", vocab: true, metaURL: "https://json-schema.org/draft/next/schema", metaSchema: metaschemaDraft2020}

	// Latest is the alias the test suite and most embedders mean when
	// they just say "the latest draft" (§2 glossary).
	Latest = Draft2020
)

var allDrafts = []*Draft{Draft3, Draft4, Draft6, Draft7, Draft2019, Draft2020, DraftNext}

func init() {
	for _, d := range allDrafts {
		d.dialect = buildDefaultDialect(d)
	}
}

// draftByMetaURL recognises a $schema value, tolerating both http/https
// and a trailing fragment, per the test suite's remotes.
func draftByMetaURL(s string) *Draft {
	base, _ := splitFragment(s)
	for _, d := range allDrafts {
		dbase, _ := splitFragment(d.metaURL)
		if base == dbase {
			return d
		}
		// draft<=7 metaschema URIs are published only as http.
		if httpVariant(base) == httpVariant(dbase) {
			return d
		}
	}
	return nil
}

func httpVariant(s string) string {
	if len(s) >= 8 && s[:8] == "https://" {
		return "http://" + s[8:]
	}
	return s
}
