package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTOML = `
[defaults]
format = "jsonl"
num_entries = 250

[llm]
provider = "gemini"
model = "gemini-pro"

[export]
neo4j_uri = "bolt://graph:7687"
neo4j_user = "neo4j"

[prompts]
cities = "Generate a JSON object describing a world city."
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apollo.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleTOML))
	require.NoError(t, err)

	assert.Equal(t, "jsonl", cfg.Defaults.Format)
	assert.Equal(t, 250, cfg.Defaults.NumEntries)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "bolt://graph:7687", cfg.Export.Neo4jURI)
}

func TestLoadKeepsDefaultsForOmittedSections(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[llm]\nprovider = \"openai\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.Defaults.Format)
	assert.Equal(t, 100, cfg.Defaults.NumEntries)
	assert.Equal(t, "openai", cfg.LLM.Provider)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.Defaults.Format)

	_, err = LoadOrDefault(writeConfig(t, "not toml ["))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "claude")
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("NEO4J_URI", "bolt://override:7687")

	cfg, err := Load(writeConfig(t, sampleTOML))
	require.NoError(t, err)
	cfg.ApplyEnv()

	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "bolt://override:7687", cfg.Export.Neo4jURI)
	// Unset vars leave file values alone.
	assert.Equal(t, "gemini-pro", cfg.LLM.Model)
}

func TestResolvePrompt(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleTOML))
	require.NoError(t, err)

	text, err := cfg.ResolvePrompt("@cities")
	require.NoError(t, err)
	assert.Equal(t, "Generate a JSON object describing a world city.", text)

	text, err = cfg.ResolvePrompt("literal prompt")
	require.NoError(t, err)
	assert.Equal(t, "literal prompt", text)

	_, err = cfg.ResolvePrompt("@missing")
	assert.ErrorContains(t, err, "@missing")
}
