package jsonschema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, s string) any {
	t.Helper()
	v, err := DecodeJSON(strings.NewReader(s))
	require.NoError(t, err)
	return v
}

func TestScenarioStringValid(t *testing.T) {
	s := MustCompileString("http://example.com/s1.json", `{"type":"string"}`)
	require.NoError(t, s.Validate(mustDecode(t, `"hello"`)))
}

func TestScenarioStringInvalid(t *testing.T) {
	s := MustCompileString("http://example.com/s2.json", `{"type":"string"}`)
	err := s.Validate(mustDecode(t, `0`))
	require.Error(t, err)
	ve, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, "/type", ve.SchemaPath.String())
	require.Equal(t, "", ve.DocumentPath.String())
}

func TestScenarioArrayItemTypeError(t *testing.T) {
	s := MustCompileString("http://example.com/s3.json", `{"type":"array","items":{"type":"string"}}`)
	err := s.Validate(mustDecode(t, `["hello", 0]`))
	require.Error(t, err)

	var found *Error
	for _, e := range err.(*Error).flatten() {
		if e.DocumentPath.String() == "/1" {
			found = e
		}
	}
	require.NotNil(t, found, "expected an error blaming document path /1")
	require.Equal(t, "/items/type", found.SchemaPath.String())
}

func TestScenarioFormatDateDefaultAssertsOnOldDrafts(t *testing.T) {
	s := MustCompileString("http://example.com/s4.json", `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "string",
		"format": "date"
	}`)
	require.Error(t, s.Validate(mustDecode(t, `"2025/01/01"`)))
}

func TestScenarioFormatAnnotationOnly2020(t *testing.T) {
	c := NewCompiler()
	s, err := c.CompileString("http://example.com/s4b.json", `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "string",
		"format": "date"
	}`)
	require.NoError(t, err)
	require.NoError(t, s.Validate(mustDecode(t, `"2025/01/01"`)), "format is annotation-only by default on 2020-12")
}

func TestScenarioFormatAssertionOptIn2020(t *testing.T) {
	c := NewCompiler()
	c.AssertFormat = true
	s, err := c.CompileString("http://example.com/s4c.json", `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "string",
		"format": "date"
	}`)
	require.NoError(t, err)
	require.Error(t, s.Validate(mustDecode(t, `"2025/01/01"`)))
}

func TestScenarioOneOfMatchesBooleanBranch(t *testing.T) {
	s := MustCompileString("http://example.com/s5.json", `{
		"oneOf": [
			{"type":"string","format":"date"},
			{"type":"integer"},
			{"type":"array"},
			{"type":"boolean"}
		]
	}`)
	require.NoError(t, s.Validate(mustDecode(t, `false`)))
}

func TestScenarioRequiredMissing(t *testing.T) {
	s := MustCompileString("http://example.com/s6.json", `{
		"type":"object",
		"properties":{"name":{"type":"string"}},
		"required":["name"]
	}`)
	err := s.Validate(mustDecode(t, `{"age":30}`))
	require.Error(t, err)
}

func TestScenarioRefIntoDefs(t *testing.T) {
	s := MustCompileString("http://example.com/s7.json", `{
		"$defs":{"c":{"type":"string","enum":["red","green","blue"]}},
		"type":"object",
		"properties":{"primary":{"$ref":"#/$defs/c"}}
	}`)
	require.Error(t, s.Validate(mustDecode(t, `{"primary":"yellow"}`)))
	require.NoError(t, s.Validate(mustDecode(t, `{"primary":"red"}`)))
}

func TestBoundaryMinLengthCountsGraphemesNotBytes(t *testing.T) {
	s := MustCompileString("http://example.com/b1.json", `{"minLength": 2}`)
	require.NoError(t, s.Validate(mustDecode(t, `"😀a"`)))
	require.Error(t, s.Validate(mustDecode(t, `"😀"`)))
}

func TestBoundaryUniqueItemsJSONEqual(t *testing.T) {
	s := MustCompileString("http://example.com/b2.json", `{"uniqueItems": true}`)
	require.Error(t, s.Validate(mustDecode(t, `[1, 1.0]`)))
}

func TestBoundaryOneOfExactlyTwoMatchesFails(t *testing.T) {
	s := MustCompileString("http://example.com/b3.json", `{
		"oneOf": [{"type": "number"}, {"minimum": 2}]
	}`)
	require.Error(t, s.Validate(mustDecode(t, `5`)))
}

func TestBoundaryMaxContainsZeroFailsOnMatch(t *testing.T) {
	s := MustCompileString("http://example.com/b4.json", `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"contains": {"type": "number"},
		"maxContains": 0
	}`)
	require.Error(t, s.Validate(mustDecode(t, `[1, "x"]`)))
}

func TestBoundaryMinContainsZeroAlwaysPasses(t *testing.T) {
	s := MustCompileString("http://example.com/b5.json", `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"contains": {"type": "number"},
		"minContains": 0
	}`)
	require.NoError(t, s.Validate(mustDecode(t, `["a", "b"]`)))
}

func TestBoundaryRefToSelfRecursesOnFiniteDocument(t *testing.T) {
	s := MustCompileString("http://example.com/b6.json", `{
		"$id": "http://example.com/b6.json",
		"type": "object",
		"properties": {
			"child": {"$ref": "#"}
		},
		"additionalProperties": false
	}`)
	require.NoError(t, s.Validate(mustDecode(t, `{"child": {"child": {}}}`)))
	require.Error(t, s.Validate(mustDecode(t, `{"child": {"other": 1}}`)))
}

func TestAnnotationContainmentAllOfUnionsEvaluated(t *testing.T) {
	s := MustCompileString("http://example.com/ac1.json", `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"allOf": [
			{"properties": {"a": {"type": "string"}}},
			{"properties": {"b": {"type": "string"}}}
		],
		"unevaluatedProperties": false
	}`)
	require.NoError(t, s.Validate(mustDecode(t, `{"a": "x", "b": "y"}`)))
	require.Error(t, s.Validate(mustDecode(t, `{"a": "x", "b": "y", "c": "z"}`)))
}

func TestAdditionalPropertiesDoesNotHonorDependentSchemas(t *testing.T) {
	s := MustCompileString("http://example.com/ap1.json", `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"properties": {"a": {"type": "string"}},
		"dependentSchemas": {
			"a": {"properties": {"b": {"type": "string"}}}
		},
		"additionalProperties": false
	}`)
	err := s.Validate(mustDecode(t, `{"a": "x", "b": "y"}`))
	require.Error(t, err, "additionalProperties must still exclude b, since dependentSchemas is not properties/patternProperties")
}

func TestUnevaluatedPropertiesDoesHonorDependentSchemas(t *testing.T) {
	s := MustCompileString("http://example.com/up1.json", `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"properties": {"a": {"type": "string"}},
		"dependentSchemas": {
			"a": {"properties": {"b": {"type": "string"}}}
		},
		"unevaluatedProperties": false
	}`)
	require.NoError(t, s.Validate(mustDecode(t, `{"a": "x", "b": "y"}`)), "unevaluatedProperties considers every applicator, unlike additionalProperties")
}

func TestIntegerCompatibilityAcceptsWholeFloat(t *testing.T) {
	s := MustCompileString("http://example.com/ic1.json", `{"type": "integer"}`)
	require.NoError(t, s.Validate(mustDecode(t, `1.0`)))
	require.Error(t, s.Validate(mustDecode(t, `1.5`)))
}

func TestDraftMonotonicityUnevaluatedIsNoopPreVocabularyDraft(t *testing.T) {
	s := MustCompileString("http://example.com/dm1.json", `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"unevaluatedProperties": false
	}`)
	require.NoError(t, s.Validate(mustDecode(t, `{"a": 1}`)), "unevaluatedProperties isn't in draft7's vocabulary, so it's inert there")
}

func TestExhaustiveFalseShortCircuitsOnFirstFailingKeyword(t *testing.T) {
	s := MustCompileString("http://example.com/ex1.json", `{"type": "string", "const": "hello"}`)
	err := s.Validate(mustDecode(t, `5`))
	require.Error(t, err)
	flat := err.(*Error).flatten()
	require.Len(t, flat, 1, "non-exhaustive mode stops after the first failing sibling keyword")
	require.Equal(t, "/type", flat[0].SchemaPath.String())
}

func TestExhaustiveTrueCollectsEveryFailingKeyword(t *testing.T) {
	c := NewCompiler()
	c.Exhaustive = true
	s, err := c.CompileString("http://example.com/ex2.json", `{"type": "string", "const": "hello"}`)
	require.NoError(t, err)
	verr := s.Validate(mustDecode(t, `5`))
	require.Error(t, verr)
	flat := verr.(*Error).flatten()
	var kws []string
	for _, e := range flat {
		kws = append(kws, e.SchemaPath.String())
	}
	require.Contains(t, kws, "/type")
	require.Contains(t, kws, "/const")
}

func TestRoundTripValidatingTwiceDoesNotMutate(t *testing.T) {
	s := MustCompileString("http://example.com/rt1.json", `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"properties": {"a": {"type": "string"}},
		"unevaluatedProperties": false
	}`)
	doc := mustDecode(t, `{"a": "x"}`)
	require.NoError(t, s.Validate(doc))
	require.NoError(t, s.Validate(doc))
}
