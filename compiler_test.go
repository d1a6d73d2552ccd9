package jsonschema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRefCycleBreaks(t *testing.T) {
	c := NewCompiler()
	s, err := c.CompileString("http://example.com/cycle.json", `{
		"$id": "http://example.com/cycle.json",
		"properties": {
			"next": {"$ref": "#"}
		}
	}`)
	require.NoError(t, err)
	require.Same(t, s, s.properties["next"].ref, "a $ref back to the root must return the identical memoized *Schema")
}

func TestDynamicRefOutermostWins(t *testing.T) {
	c := NewCompiler()
	require.NoError(t, c.AddResource("http://example.com/base.json", strings.NewReader(`{
		"$id": "http://example.com/base.json",
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$dynamicAnchor": "node",
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"children": {"type": "array", "items": {"$dynamicRef": "#node"}}
		}
	}`)))
	s, err := c.CompileString("http://example.com/extended.json", `{
		"$id": "http://example.com/extended.json",
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$ref": "http://example.com/base.json",
		"$dynamicAnchor": "node",
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"extra": {"type": "string"}
		}
	}`)
	require.NoError(t, err)

	doc, err := DecodeJSON(strings.NewReader(`{"name": "x", "extra": "y"}`))
	require.NoError(t, err)
	require.NoError(t, s.Validate(doc))

	// base's "#node" resolves to the outermost scope's anchor, extended,
	// so a child's "extra" must be a string there too.
	bad, err := DecodeJSON(strings.NewReader(`{"name": "x", "children": [{"extra": 1}]}`))
	require.NoError(t, err)
	require.Error(t, s.Validate(bad))
}

func TestCrossDraftRef(t *testing.T) {
	c := NewCompiler()
	require.NoError(t, c.AddResource("http://example.com/legacy.json", strings.NewReader(`{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"$id": "http://example.com/legacy.json",
		"type": "string"
	}`)))
	s, err := c.CompileString("http://example.com/root.json", `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$id": "http://example.com/root.json",
		"properties": {
			"x": {"$ref": "http://example.com/legacy.json"}
		}
	}`)
	require.NoError(t, err)

	good, err := DecodeJSON(strings.NewReader(`{"x": "hi"}`))
	require.NoError(t, err)
	require.NoError(t, s.Validate(good))

	bad, err := DecodeJSON(strings.NewReader(`{"x": 1}`))
	require.NoError(t, err)
	require.Error(t, s.Validate(bad))
}

func TestRefToNestedIDWithinSameDocument(t *testing.T) {
	s, err := CompileString("http://x/root.json", `{
		"$id": "http://x/root.json",
		"$defs": {
			"A": {"$id": "http://x/child.json", "$anchor": "t", "type": "string"}
		},
		"properties": {
			"y": {"$ref": "http://x/child.json#t"}
		}
	}`)
	require.NoError(t, err)

	good, err := DecodeJSON(strings.NewReader(`{"y": "hi"}`))
	require.NoError(t, err)
	require.NoError(t, s.Validate(good))

	bad, err := DecodeJSON(strings.NewReader(`{"y": 1}`))
	require.NoError(t, err)
	require.Error(t, s.Validate(bad))
}

func TestRefFromInsideNestedIDResolvesPointerAgainstItsOwnRoot(t *testing.T) {
	s, err := CompileString("http://x/root.json", `{
		"$id": "http://x/root.json",
		"$defs": {
			"A": {
				"$id": "http://x/child.json",
				"type": "object",
				"properties": {
					"self": {"$ref": "#/properties/name"},
					"name": {"type": "string"}
				}
			}
		},
		"properties": {
			"y": {"$ref": "http://x/child.json"}
		}
	}`)
	require.NoError(t, err)

	good, err := DecodeJSON(strings.NewReader(`{"y": {"self": "a", "name": "b"}}`))
	require.NoError(t, err)
	require.NoError(t, s.Validate(good))

	bad, err := DecodeJSON(strings.NewReader(`{"y": {"self": 1, "name": "b"}}`))
	require.NoError(t, err)
	require.Error(t, s.Validate(bad))
}

func TestNestedIDSubtreeWithOwnSchemaUsesItsOwnDialect(t *testing.T) {
	// draft4's boolean-form exclusiveMinimum only folds under draft4; if
	// the nested $defs/legacy subtree were compiled under the enclosing
	// document's 2020-12 dialect instead of its own declared draft4
	// dialect, "exclusiveMinimum": true would fail asNumber and the
	// compile itself would error.
	s, err := CompileString("http://x/bundle.json", `{
		"$id": "http://x/bundle.json",
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$defs": {
			"legacy": {
				"$id": "http://x/legacy.json",
				"$schema": "http://json-schema.org/draft-04/schema#",
				"type": "integer",
				"minimum": 0,
				"exclusiveMinimum": true
			}
		},
		"properties": {
			"n": {"$ref": "http://x/legacy.json"}
		}
	}`)
	require.NoError(t, err)

	good, err := DecodeJSON(strings.NewReader(`{"n": 1}`))
	require.NoError(t, err)
	require.NoError(t, s.Validate(good))

	bad, err := DecodeJSON(strings.NewReader(`{"n": 0}`))
	require.NoError(t, err)
	require.Error(t, s.Validate(bad), "draft4's boolean exclusiveMinimum form must apply inside the nested subtree")
}

func TestCompileStringInvalidSchemaType(t *testing.T) {
	_, err := CompileString("http://example.com/bad.json", `{"type": 5}`)
	require.Error(t, err)
}

func TestMustCompilePanicsOnInvalidSchema(t *testing.T) {
	require.Panics(t, func() {
		MustCompileString("http://example.com/bad2.json", `{"type": 5}`)
	})
}
