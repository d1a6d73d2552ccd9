package jsonschema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrescanRegistersNestedID(t *testing.T) {
	doc, err := DecodeJSON(strings.NewReader(`{
		"$id": "http://example.com/root.json",
		"properties": {
			"a": {
				"$id": "http://example.com/sub.json",
				"$anchor": "thing"
			}
		}
	}`))
	require.NoError(t, err)

	r := newResource("http://example.com/root.json", doc)
	r.prescan(Draft2020)

	_, ok := r.ids[normalize("http://example.com/sub.json")]
	require.True(t, ok, "nested $id should be registered")
	_, ok = r.ids[normalize("http://example.com/sub.json#thing")]
	require.True(t, ok, "$anchor should resolve against the nearest enclosing $id")
}

func TestPrescanSkipsEnumAndConst(t *testing.T) {
	doc, err := DecodeJSON(strings.NewReader(`{
		"$id": "http://example.com/root.json",
		"enum": [{"$id": "http://example.com/not-a-resource.json"}],
		"const": {"$anchor": "not-an-anchor"}
	}`))
	require.NoError(t, err)

	r := newResource("http://example.com/root.json", doc)
	r.prescan(Draft2020)

	_, ok := r.ids[normalize("http://example.com/not-a-resource.json")]
	require.False(t, ok, "an $id nested inside enum data must not be treated as a resource boundary")
	_, ok = r.ids[normalize("http://example.com/root.json#not-an-anchor")]
	require.False(t, ok, "an $anchor nested inside const data must not be registered")
}

func TestPrescanDynamicAnchorFirstWriteWins(t *testing.T) {
	doc, err := DecodeJSON(strings.NewReader(`{
		"$id": "http://example.com/root.json",
		"$defs": {
			"a": {"$dynamicAnchor": "node"},
			"b": {"$dynamicAnchor": "node"}
		}
	}`))
	require.NoError(t, err)

	r := newResource("http://example.com/root.json", doc)
	r.prescan(Draft2020)

	require.Equal(t, "/$defs/a", r.dynamicAnchors["node"])
}

func TestPrescanRecordsPerSubtreeDraftAtIDSchemaBoundary(t *testing.T) {
	doc, err := DecodeJSON(strings.NewReader(`{
		"$id": "http://example.com/root.json",
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$defs": {
			"legacy": {
				"$id": "http://example.com/legacy.json",
				"$schema": "http://json-schema.org/draft-07/schema#",
				"type": "string"
			}
		}
	}`))
	require.NoError(t, err)

	r := newResource("http://example.com/root.json", doc)
	r.draft = Draft2020
	r.prescan(Draft2020)

	require.Equal(t, Draft2020, r.draftFor(""))
	require.Equal(t, Draft7, r.draftFor("/$defs/legacy"))
	require.Equal(t, Draft7, r.draftFor("/$defs/legacy/type"), "a pointer beneath the boundary inherits its draft")
}

func TestResolvePtrWalksObjectsAndArrays(t *testing.T) {
	doc, err := DecodeJSON(strings.NewReader(`{"a": [1, {"b": "x"}]}`))
	require.NoError(t, err)

	v, err := resolvePtr(doc, "/a/1/b")
	require.NoError(t, err)
	require.Equal(t, "x", v)
}

func TestResolvePtrMissingKey(t *testing.T) {
	doc, err := DecodeJSON(strings.NewReader(`{"a": 1}`))
	require.NoError(t, err)

	_, err = resolvePtr(doc, "/b")
	require.Error(t, err)
}

func TestEscapeRoundTrip(t *testing.T) {
	raw := "a/b~c"
	require.Equal(t, "a~1b~0c", escape(raw))
	require.Equal(t, raw, unescapeToken(escape(raw)))
}
