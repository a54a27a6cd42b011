package llm

import (
	"context"
	"encoding/json"
	"sync/atomic"
)

// PlaceholderClient is the offline default model. It emits deterministic
// JSON so the genai pipeline can be exercised end to end without
// credentials or network.
type PlaceholderClient struct {
	counter atomic.Int64
}

func NewPlaceholderClient() *PlaceholderClient {
	return &PlaceholderClient{}
}

func (c *PlaceholderClient) Generate(ctx context.Context, prompt string) (string, error) {
	sample := c.counter.Add(1)
	out, err := json.Marshal(map[string]any{
		"sample": sample,
		"text":   "placeholder response for: " + prompt,
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}
