package llm

import (
	"context"
	"fmt"
)

// Client is the one capability the genai generator needs: prompt in,
// text out. Network behavior (auth, retries) belongs to the SDKs behind
// each implementation.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ConfigurationError reports a provider that cannot be constructed,
// typically a missing credential. It aborts the batch, not the process.
type ConfigurationError struct {
	Provider string
	Missing  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s not set", e.Provider, e.Missing)
}
