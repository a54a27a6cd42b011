package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/apollolabs/apollo/internal/config"
)

// NewClient builds the provider named in cfg. An empty provider means
// placeholder, keeping generation usable with no configuration at all.
func NewClient(ctx context.Context, cfg config.LLMConfig) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "placeholder":
		return NewPlaceholderClient(), nil

	case "gemini":
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model)

	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL)

	case "claude":
		return NewClaudeClient(cfg.APIKey, cfg.Model, cfg.BaseURL)

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}
