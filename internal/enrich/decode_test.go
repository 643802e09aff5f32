package enrich

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_CompleteResponse(t *testing.T) {
	raw := `{
		"summary": "Acme builds warehouse robots.",
		"whatTheyDo": ["Autonomous picking", "Fleet software"],
		"keywords": ["robotics", "logistics"],
		"signals": ["Careers page detected"]
	}`

	result, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, "Acme builds warehouse robots.", result.Summary)
	assert.Equal(t, []string{"Autonomous picking", "Fleet software"}, result.WhatTheyDo)
	assert.Equal(t, []string{"robotics", "logistics"}, result.Keywords)
	assert.Equal(t, []string{"Careers page detected"}, result.Signals)
}

func TestDecode_MarkdownFencedResponse(t *testing.T) {
	raw := "```json\n{\"summary\": \"Fenced response\", \"keywords\": [\"k1\"]}\n```"

	result, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, "Fenced response", result.Summary)
	assert.Equal(t, []string{"k1"}, result.Keywords)
}

func TestDecode_MissingFieldsDefault(t *testing.T) {
	result, err := Decode(`{"summary": "Only a summary"}`)
	require.NoError(t, err)

	assert.Equal(t, "Only a summary", result.Summary)
	assert.Equal(t, []string{}, result.WhatTheyDo)
	assert.Equal(t, []string{}, result.Keywords)
	assert.Equal(t, []string{}, result.Signals)
}

func TestDecode_WrongTypedFieldsDefault(t *testing.T) {
	raw := `{
		"summary": 42,
		"whatTheyDo": "not an array",
		"keywords": ["valid"],
		"signals": ["ok", 7, "also ok"]
	}`

	result, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, "", result.Summary)
	assert.Equal(t, []string{}, result.WhatTheyDo)
	assert.Equal(t, []string{"valid"}, result.Keywords)
	// An array with a wrong-typed item resets to the default.
	assert.Equal(t, []string{}, result.Signals)
}

func TestDecode_ExtraKeysIgnored(t *testing.T) {
	result, err := Decode(`{"summary": "s", "confidence": 0.9, "nested": {"a": 1}}`)
	require.NoError(t, err)

	assert.Equal(t, "s", result.Summary)
}

func TestDecode_InvalidJSON(t *testing.T) {
	result, err := Decode("The company appears to be a robotics startup.")

	assert.Nil(t, result)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
}

func TestDecode_EmptyResponse(t *testing.T) {
	result, err := Decode("")

	assert.Nil(t, result)
	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestDecode_SourcesLeftToCaller(t *testing.T) {
	result, err := Decode(`{"summary": "s", "sources": [{"url": "https://x"}]}`)
	require.NoError(t, err)

	assert.Nil(t, result.Sources)
}
