package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContentIsAnnotationOnlyByDefault(t *testing.T) {
	s := MustCompileString("http://example.com/content1.json", `{
		"type": "string",
		"contentMediaType": "application/json"
	}`)
	require.NoError(t, s.Validate(mustDecode(t, `"not json at all"`)))
}

func TestContentAssertedWhenOptedIn(t *testing.T) {
	c := NewCompiler()
	c.AssertContent = true
	s, err := c.CompileString("http://example.com/content2.json", `{
		"type": "string",
		"contentMediaType": "application/json"
	}`)
	require.NoError(t, err)
	require.Error(t, s.Validate(mustDecode(t, `"not json at all"`)))
	require.NoError(t, s.Validate(mustDecode(t, `"{\"a\":1}"`)))
}

func TestContentSchemaAssertedWhenOptedIn(t *testing.T) {
	c := NewCompiler()
	c.AssertContent = true
	s, err := c.CompileString("http://example.com/content3.json", `{
		"type": "string",
		"contentMediaType": "application/json",
		"contentSchema": {"type": "object", "required": ["a"]}
	}`)
	require.NoError(t, err)
	require.Error(t, s.Validate(mustDecode(t, `"{}"`)))
	require.NoError(t, s.Validate(mustDecode(t, `"{\"a\":1}"`)))
}

func TestContentEncodingBase64Asserted(t *testing.T) {
	c := NewCompiler()
	c.AssertContent = true
	s, err := c.CompileString("http://example.com/content4.json", `{
		"type": "string",
		"contentEncoding": "base64"
	}`)
	require.NoError(t, err)
	require.Error(t, s.Validate(mustDecode(t, `"not-base64!!"`)))
	require.NoError(t, s.Validate(mustDecode(t, `"aGVsbG8="`)))
}
