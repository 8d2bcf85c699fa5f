package guardrail

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------
// Configuration Fragment
// -----------------------------------------------------------------------------
//
// The guardrail engine consumes a loosely-typed fragment of the host's
// configuration. Guardrail fields may appear nested under
// agents.defaults.toolGuardrails or flattened directly under
// agents.defaults; nested fields take precedence. Values are deliberately
// untyped (any) so that malformed input survives decoding and can be
// resolved to a safe default instead of failing the load.

// Config is the root of the configuration fragment consumed by
// [ResolveToolGuardrails]. Hosts typically decode it from a larger config
// file; only the agents.defaults subtree is read.
type Config struct {
	Agents *AgentsConfig `yaml:"agents" json:"agents"`
}

// AgentsConfig holds agent-wide configuration.
type AgentsConfig struct {
	Defaults *AgentDefaults `yaml:"defaults" json:"defaults"`
}

// AgentDefaults holds per-agent default settings. Guardrail fields may be
// set here directly (flattened) or under ToolGuardrails (nested). Nested
// fields win.
type AgentDefaults struct {
	MaxConsecutiveToolErrors any `yaml:"maxConsecutiveToolErrors" json:"maxConsecutiveToolErrors"`
	MaxToolCallsPerTurn      any `yaml:"maxToolCallsPerTurn" json:"maxToolCallsPerTurn"`
	ToolErrorAction          any `yaml:"toolErrorAction" json:"toolErrorAction"`

	ToolGuardrails *ToolGuardrailsConfig `yaml:"toolGuardrails" json:"toolGuardrails"`
}

// ToolGuardrailsConfig is the dedicated guardrail section of the agent
// defaults.
type ToolGuardrailsConfig struct {
	MaxConsecutiveToolErrors any `yaml:"maxConsecutiveToolErrors" json:"maxConsecutiveToolErrors"`
	MaxToolCallsPerTurn      any `yaml:"maxToolCallsPerTurn" json:"maxToolCallsPerTurn"`
	ToolErrorAction          any `yaml:"toolErrorAction" json:"toolErrorAction"`
}

// ParseConfig decodes a YAML document into a Config fragment. Unknown
// fields are ignored so a full host configuration file can be passed
// as-is.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// LoadConfig reads and decodes a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}
