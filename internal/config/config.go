package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is probed when no --config flag is given.
const DefaultPath = "apollo.toml"

type DefaultsConfig struct {
	Format     string `toml:"format"`
	NumEntries int    `toml:"num_entries"`
}

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type ExportConfig struct {
	Neo4jURI      string `toml:"neo4j_uri"`
	Neo4jUser     string `toml:"neo4j_user"`
	Neo4jPassword string `toml:"neo4j_password"`
}

type Config struct {
	Defaults DefaultsConfig    `toml:"defaults"`
	LLM      LLMConfig         `toml:"llm"`
	Export   ExportConfig      `toml:"export"`
	Prompts  map[string]string `toml:"prompts"`
}

func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Format:     "csv",
			NumEntries: 100,
		},
		Export: ExportConfig{
			Neo4jURI: "bolt://localhost:7687",
		},
	}
}

// Load reads a TOML config file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault returns defaults when the file is absent, but still fails
// on a present-but-broken file so typos do not pass silently.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// ApplyEnv overrides file values with environment variables when set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("NEO4J_URI"); v != "" {
		c.Export.Neo4jURI = v
	}
	if v := os.Getenv("NEO4J_USER"); v != "" {
		c.Export.Neo4jUser = v
	}
	if v := os.Getenv("NEO4J_PASSWORD"); v != "" {
		c.Export.Neo4jPassword = v
	}
}

// ResolvePrompt expands "@name" references against the [prompts] table;
// anything else is returned verbatim.
func (c *Config) ResolvePrompt(prompt string) (string, error) {
	name, ok := strings.CutPrefix(prompt, "@")
	if !ok {
		return prompt, nil
	}
	text, ok := c.Prompts[name]
	if !ok {
		return "", fmt.Errorf("prompt template '@%s' not found in config", name)
	}
	return text, nil
}
