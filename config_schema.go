package guardrail

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// -----------------------------------------------------------------------------
// Config Fragment Schema
// -----------------------------------------------------------------------------
//
// Resolution never fails: malformed guardrail configuration is silently
// resolved to defaults so a typo can never break a run. That also means a
// typo is silently ignored. ValidateConfigRaw is the advisory counterpart:
// hosts can run it at load time to surface wrong types or unrecognized
// action literals as diagnostics, while runtime behavior stays defined by
// ResolveToolGuardrails alone.

// ConfigSchema returns the raw JSON Schema describing the guardrail
// configuration fragment. Useful for embedding in a host's larger config
// schema.
func ConfigSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"agents": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"defaults": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"maxConsecutiveToolErrors": limitSchema(),
							"maxToolCallsPerTurn":      limitSchema(),
							"toolErrorAction":          actionSchema(),
							"toolGuardrails": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"maxConsecutiveToolErrors": limitSchema(),
									"maxToolCallsPerTurn":      limitSchema(),
									"toolErrorAction":          actionSchema(),
								},
							},
						},
					},
				},
			},
		},
	}
}

func limitSchema() map[string]any {
	return map[string]any{"type": "number"}
}

func actionSchema() map[string]any {
	return map[string]any{
		"type": "string",
		"enum": []any{string(ActionWarn), string(ActionEscalate), string(ActionAbort)},
	}
}

// ConfigValidationError wraps a JSON Schema validation error with a cleaner
// message.
type ConfigValidationError struct {
	Err error
}

func (e *ConfigValidationError) Error() string {
	return fmt.Sprintf("guardrail config validation failed: %v", e.Err)
}

func (e *ConfigValidationError) Unwrap() error {
	return e.Err
}

var (
	configSchemaOnce     sync.Once
	configSchemaCompiled *jsonschema.Schema
	configSchemaErr      error
)

// compiledConfigSchema compiles ConfigSchema once and caches the result.
func compiledConfigSchema() (*jsonschema.Schema, error) {
	configSchemaOnce.Do(func() {
		schemaJSON, err := json.Marshal(ConfigSchema())
		if err != nil {
			configSchemaErr = fmt.Errorf("failed to marshal schema: %w", err)
			return
		}

		schemaData, err := jsonschema.UnmarshalJSON(strings.NewReader(string(schemaJSON)))
		if err != nil {
			configSchemaErr = fmt.Errorf("failed to parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("guardrails.json", schemaData); err != nil {
			configSchemaErr = fmt.Errorf("failed to add schema resource: %w", err)
			return
		}

		configSchemaCompiled, configSchemaErr = c.Compile("guardrails.json")
	})
	return configSchemaCompiled, configSchemaErr
}

// ValidateConfigRaw validates a raw configuration fragment (as decoded
// from JSON into maps) against [ConfigSchema]. Returns nil if valid, or a
// [ConfigValidationError] describing the first violation.
func ValidateConfigRaw(raw map[string]any) error {
	if raw == nil {
		return nil
	}
	schema, err := compiledConfigSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(raw); err != nil {
		return &ConfigValidationError{Err: err}
	}
	return nil
}
