package guardrail

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_NestedAndFlattened(t *testing.T) {
	data := []byte(`
agents:
  defaults:
    maxConsecutiveToolErrors: 10
    toolErrorAction: warn
    toolGuardrails:
      maxToolCallsPerTurn: 20
`)

	cfg, err := ParseConfig(data)
	require.NoError(t, err)

	resolved := ResolveToolGuardrails(cfg)
	assert.Equal(t, 10, resolved.MaxConsecutiveToolErrors)
	assert.Equal(t, 20, resolved.MaxToolCallsPerTurn)
	assert.Equal(t, ActionWarn, resolved.ToolErrorAction)
}

func TestParseConfig_MalformedValuesSurviveDecoding(t *testing.T) {
	// Wrong-typed guardrail values must decode (not fail) and resolve to
	// defaults.
	data := []byte(`
agents:
  defaults:
    maxConsecutiveToolErrors: lots
    maxToolCallsPerTurn: true
    toolErrorAction: 42
`)

	cfg, err := ParseConfig(data)
	require.NoError(t, err)

	resolved := ResolveToolGuardrails(cfg)
	assert.Equal(t, 3, resolved.MaxConsecutiveToolErrors)
	assert.Equal(t, 50, resolved.MaxToolCallsPerTurn)
	assert.Equal(t, ActionAbort, resolved.ToolErrorAction)
}

func TestParseConfig_UnknownFieldsIgnored(t *testing.T) {
	// A full host config file can be passed as-is.
	data := []byte(`
model:
  name: some-model
agents:
  defaults:
    maxToolCallsPerTurn: 5
    workspace: /tmp
channels:
  enabled: true
`)

	cfg, err := ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, 5, ResolveToolGuardrails(cfg).MaxToolCallsPerTurn)
}

func TestParseConfig_EmptyDocument(t *testing.T) {
	cfg, err := ParseConfig([]byte(""))
	require.NoError(t, err)

	resolved := ResolveToolGuardrails(cfg)
	assert.Equal(t, 3, resolved.MaxConsecutiveToolErrors)
}

func TestParseConfig_InvalidYAML(t *testing.T) {
	_, err := ParseConfig([]byte("agents: [unclosed"))
	assert.Error(t, err)
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
agents:
  defaults:
    toolGuardrails:
      maxConsecutiveToolErrors: 4
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, ResolveToolGuardrails(cfg).MaxConsecutiveToolErrors)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
