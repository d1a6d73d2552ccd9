package jsonschema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqualsIntegerVsFloat(t *testing.T) {
	doc, err := DecodeJSON(strings.NewReader(`[1, 1.0, 1.00]`))
	require.NoError(t, err)
	arr := doc.([]any)
	require.True(t, equals(arr[0], arr[1]))
	require.True(t, equals(arr[1], arr[2]))
}

func TestEqualsArraysAndObjects(t *testing.T) {
	doc, err := DecodeJSON(strings.NewReader(`[
		{"a": [1, 2], "b": "x"},
		{"b": "x", "a": [1, 2.0]}
	]`))
	require.NoError(t, err)
	arr := doc.([]any)
	require.True(t, equals(arr[0], arr[1]))
}

func TestEqualsDifferentTypes(t *testing.T) {
	require.False(t, equals("1", 1))
	require.False(t, equals(nil, false))
}

func TestIsIntegerFractional(t *testing.T) {
	doc, err := DecodeJSON(strings.NewReader(`[1, 1.0, 1.5, -3]`))
	require.NoError(t, err)
	arr := doc.([]any)
	require.True(t, isInteger(arr[0]))
	require.True(t, isInteger(arr[1]))
	require.False(t, isInteger(arr[2]))
	require.True(t, isInteger(arr[3]))
}

func TestJSONTypeNames(t *testing.T) {
	doc, err := DecodeJSON(strings.NewReader(`{"n": null, "b": true, "i": 1, "s": "x", "a": [], "o": {}}`))
	require.NoError(t, err)
	m := doc.(map[string]any)
	require.Equal(t, "null", jsonType(m["n"]))
	require.Equal(t, "boolean", jsonType(m["b"]))
	require.Equal(t, "number", jsonType(m["i"]))
	require.Equal(t, "string", jsonType(m["s"]))
	require.Equal(t, "array", jsonType(m["a"]))
	require.Equal(t, "object", jsonType(m["o"]))
}

func TestDecodeJSONRejectsTrailingData(t *testing.T) {
	_, err := DecodeJSON(strings.NewReader(`{} {}`))
	require.Error(t, err)
}

func TestDecodeJSONPreservesBigIntegers(t *testing.T) {
	doc, err := DecodeJSON(strings.NewReader(`123456789012345678901234567890`))
	require.NoError(t, err)
	require.True(t, isInteger(doc))
}
