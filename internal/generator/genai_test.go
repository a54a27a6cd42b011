package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenAIParsesJSONReply(t *testing.T) {
	mock := &MockLLMClient{Responses: []string{`{"city": "Lisbon", "population": 545000}`}}
	g, err := NewGenAIGenerator(mock, "Generate a city", "")
	require.NoError(t, err)

	records, err := g.GenerateData(context.Background(), 3, nil)
	require.NoError(t, err)
	require.Len(t, records, 3)

	v, ok := records[0].Get("city")
	assert.True(t, ok)
	assert.Equal(t, "Lisbon", v)
	assert.Equal(t, []string{"city", "population"}, records[0].Keys())
}

func TestGenAIFallsBackToTextResponse(t *testing.T) {
	mock := &MockLLMClient{Responses: []string{"I prefer interpretive dance."}}
	g, err := NewGenAIGenerator(mock, "Generate a city", "")
	require.NoError(t, err)

	records, err := g.GenerateData(context.Background(), 1, nil)
	require.NoError(t, err)

	v, ok := records[0].Get("text_response")
	assert.True(t, ok)
	assert.Equal(t, "I prefer interpretive dance.", v)
}

func TestGenAIPropagatesClientError(t *testing.T) {
	mock := &MockLLMClient{Err: errors.New("rate limited")}
	g, err := NewGenAIGenerator(mock, "Generate a city", "")
	require.NoError(t, err)

	_, err = g.GenerateData(context.Background(), 2, nil)
	assert.ErrorContains(t, err, "rate limited")
}

func TestGenAISchemaAppendedToPrompt(t *testing.T) {
	schemaPath := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{"type": "object"}`), 0o644))

	mock := &MockLLMClient{Responses: []string{`{}`}}
	g, err := NewGenAIGenerator(mock, "Generate a city", schemaPath)
	require.NoError(t, err)

	assert.Contains(t, g.prompt, "Generate a city")
	assert.Contains(t, g.prompt, `{"type": "object"}`)
}

func TestGenAIMissingSchemaFile(t *testing.T) {
	mock := &MockLLMClient{Responses: []string{`{}`}}
	_, err := NewGenAIGenerator(mock, "p", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
