package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func hasKeyword(d Dialect, keyword string) bool {
	for _, e := range d {
		if e.keyword == keyword {
			return true
		}
	}
	return false
}

func TestBuildDefaultDialectDraft7HasNoUnevaluated(t *testing.T) {
	d := buildDefaultDialect(Draft7)
	require.True(t, hasKeyword(d, "properties"))
	require.False(t, hasKeyword(d, "unevaluatedProperties"))
}

func TestBuildDefaultDialect2020HasUnevaluated(t *testing.T) {
	d := buildDefaultDialect(Draft2020)
	require.True(t, hasKeyword(d, "unevaluatedProperties"))
	require.True(t, hasKeyword(d, "unevaluatedItems"))
}

func TestBuildDialectHonorsExplicitVocabulary(t *testing.T) {
	vocab := map[string]bool{
		"https://json-schema.org/draft/2020-12/vocab/core":       true,
		"https://json-schema.org/draft/2020-12/vocab/applicator": true,
		"https://json-schema.org/draft/2020-12/vocab/validation": false,
	}
	d := buildDialect(Draft2020, vocab)
	require.True(t, hasKeyword(d, "allOf"))
	require.False(t, hasKeyword(d, "maxLength"))
}

func TestBuildDialectUnknownVocabularyDegradesGracefully(t *testing.T) {
	vocab := map[string]bool{
		"https://example.com/vocab/nonexistent": true,
	}
	d := buildDialect(Draft2020, vocab)
	require.True(t, hasKeyword(d, "properties"), "known categories stay active even when an unknown vocabulary URI is also named")
}

func TestCategoryFromVocabURIFoldsFormatSplit(t *testing.T) {
	require.Equal(t, "format", categoryFromVocabURI("https://json-schema.org/draft/2020-12/vocab/format-assertion"))
	require.Equal(t, "format", categoryFromVocabURI("https://json-schema.org/draft/2019-09/vocab/format-annotation"))
	require.Equal(t, "metadata", categoryFromVocabURI("https://json-schema.org/draft/2019-09/vocab/meta-data"))
}
