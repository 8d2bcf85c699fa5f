package guardrail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfigRaw_ValidFragment(t *testing.T) {
	raw := map[string]any{
		"agents": map[string]any{
			"defaults": map[string]any{
				"maxConsecutiveToolErrors": 5.0,
				"toolErrorAction":          "warn",
				"toolGuardrails": map[string]any{
					"maxToolCallsPerTurn": 20.0,
				},
			},
		},
	}

	assert.NoError(t, ValidateConfigRaw(raw))
}

func TestValidateConfigRaw_NilAndEmpty(t *testing.T) {
	assert.NoError(t, ValidateConfigRaw(nil))
	assert.NoError(t, ValidateConfigRaw(map[string]any{}))
}

func TestValidateConfigRaw_WrongType(t *testing.T) {
	raw := map[string]any{
		"agents": map[string]any{
			"defaults": map[string]any{
				"maxConsecutiveToolErrors": "lots",
			},
		},
	}

	err := ValidateConfigRaw(raw)
	require.Error(t, err)

	var validationErr *ConfigValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.NotNil(t, validationErr.Unwrap())
}

func TestValidateConfigRaw_UnrecognizedAction(t *testing.T) {
	raw := map[string]any{
		"agents": map[string]any{
			"defaults": map[string]any{
				"toolGuardrails": map[string]any{
					"toolErrorAction": "explode",
				},
			},
		},
	}

	assert.Error(t, ValidateConfigRaw(raw))
}

func TestValidateConfigRaw_AdvisoryOnly(t *testing.T) {
	// A fragment that fails validation still resolves to a usable policy;
	// validation never gates resolution.
	cfg := &Config{Agents: &AgentsConfig{Defaults: &AgentDefaults{
		MaxConsecutiveToolErrors: "lots",
	}}}

	resolved := ResolveToolGuardrails(cfg)
	assert.Equal(t, 3, resolved.MaxConsecutiveToolErrors)
}
