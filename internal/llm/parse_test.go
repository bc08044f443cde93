package llm

import (
	"testing"

	"github.com/learnhubhq/docsearch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchPayload_Valid(t *testing.T) {
	text := `{
		"results": [
			{"path": "/docs/python/variables", "title": "Python Variables & Data Types", "category": "python", "relevance": "high", "snippet": "Lists and dicts."}
		],
		"aiSummary": "Start with the variables page."
	}`

	payload, err := ParseSearchPayload(text)
	require.NoError(t, err)
	require.Len(t, payload.Results, 1)
	assert.Equal(t, domain.RelevanceHigh, payload.Results[0].Relevance)
	assert.Equal(t, "Start with the variables page.", payload.AISummary)
}

func TestParseSearchPayload_FencedJSON(t *testing.T) {
	text := "```json\n{\"results\": [], \"aiSummary\": \"Nothing matched.\"}\n```"

	payload, err := ParseSearchPayload(text)
	require.NoError(t, err)
	assert.Empty(t, payload.Results)
	assert.Equal(t, "Nothing matched.", payload.AISummary)
}

func TestParseSearchPayload_NotJSON(t *testing.T) {
	_, err := ParseSearchPayload("I recommend the Python variables page.")
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestParseSearchPayload_MissingResults(t *testing.T) {
	_, err := ParseSearchPayload(`{"aiSummary": "no results field"}`)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestParseSearchPayload_UnknownTier(t *testing.T) {
	text := `{"results": [{"path": "/docs/x", "title": "X", "relevance": "colossal"}], "aiSummary": ""}`

	_, err := ParseSearchPayload(text)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestParseSearchPayload_TierNormalized(t *testing.T) {
	text := `{"results": [{"path": "/docs/x", "title": "X", "relevance": " HIGH "}], "aiSummary": ""}`

	payload, err := ParseSearchPayload(text)
	require.NoError(t, err)
	assert.Equal(t, domain.RelevanceHigh, payload.Results[0].Relevance)
}

func TestParseSearchPayload_MissingTierDefaultsMedium(t *testing.T) {
	text := `{"results": [{"path": "/docs/x", "title": "X"}], "aiSummary": ""}`

	payload, err := ParseSearchPayload(text)
	require.NoError(t, err)
	assert.Equal(t, domain.RelevanceMedium, payload.Results[0].Relevance)
}

func TestParseSearchPayload_ResultMissingPath(t *testing.T) {
	text := `{"results": [{"title": "X", "relevance": "low"}], "aiSummary": ""}`

	_, err := ParseSearchPayload(text)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences(`{"a":1}`))
}
