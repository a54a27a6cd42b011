package generator

import (
	"context"
	"fmt"
	"os"

	"github.com/apollolabs/apollo/internal/llm"
	"github.com/apollolabs/apollo/internal/record"
)

// GenAIGenerator produces records from a generative model. Unlike the
// value-object generators it can fail per sample, so its batch method
// takes a context and returns an error instead of satisfying Generator.
type GenAIGenerator struct {
	client llm.Client
	prompt string
}

// NewGenAIGenerator builds the prompt once. When schemaPath is non-empty
// the file's contents are appended as a JSON-schema instruction.
func NewGenAIGenerator(client llm.Client, prompt string, schemaPath string) (*GenAIGenerator, error) {
	if schemaPath != "" {
		schema, err := os.ReadFile(schemaPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema file '%s': %w", schemaPath, err)
		}
		prompt = fmt.Sprintf("%s\n\nRespond with a single JSON object matching this JSON schema:\n%s", prompt, schema)
	}
	return &GenAIGenerator{client: client, prompt: prompt}, nil
}

// GenerateRecord sends the prompt once. A JSON-object reply becomes the
// record; anything else is kept under text_response rather than failing
// the batch.
func (g *GenAIGenerator) GenerateRecord(ctx context.Context) (*record.Record, error) {
	text, err := g.client.Generate(ctx, g.prompt)
	if err != nil {
		return nil, err
	}
	return record.FromLLMResponse(text), nil
}

// GenerateData collects numSamples records, invoking hook (when non-nil)
// after each one.
func (g *GenAIGenerator) GenerateData(ctx context.Context, numSamples int, hook func(i int)) ([]*record.Record, error) {
	records := make([]*record.Record, 0, numSamples)
	for i := 0; i < numSamples; i++ {
		r, err := g.GenerateRecord(ctx)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
		if hook != nil {
			hook(i)
		}
	}
	return records, nil
}
