package jsonschema

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// evenLengthCompiler compiles a toy "x-evenLength": true keyword that
// requires string instances to have an even rune count.
type evenLengthCompiler struct{}

func (evenLengthCompiler) Compile(ctx *CompilerContext, m map[string]any) (ExtSchema, error) {
	v, ok := m["x-evenLength"].(bool)
	if !ok || !v {
		return nil, nil
	}
	return evenLengthSchema{}, nil
}

type evenLengthSchema struct{}

func (evenLengthSchema) Validate(ctx *ValidationContext, v any) error {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	if len([]rune(s))%2 != 0 {
		return fmt.Errorf("must have an even number of characters")
	}
	return nil
}

func TestExtensionRoundTrip(t *testing.T) {
	c := NewCompiler()
	c.RegisterExtension("evenLength", evenLengthCompiler{})

	s, err := c.CompileString("http://example.com/ext.json", `{"type": "string", "x-evenLength": true}`)
	require.NoError(t, err)

	good, err := DecodeJSON(strings.NewReader(`"abcd"`))
	require.NoError(t, err)
	require.NoError(t, s.Validate(good))

	bad, err := DecodeJSON(strings.NewReader(`"abc"`))
	require.NoError(t, err)
	require.Error(t, s.Validate(bad))
}

func TestExtensionAbsentKeywordIsNoop(t *testing.T) {
	c := NewCompiler()
	c.RegisterExtension("evenLength", evenLengthCompiler{})

	s, err := c.CompileString("http://example.com/ext2.json", `{"type": "string"}`)
	require.NoError(t, err)

	doc, err := DecodeJSON(strings.NewReader(`"abc"`))
	require.NoError(t, err)
	require.NoError(t, s.Validate(doc))
}
