package guardrail

import "math"

// Built-in defaults and clamp bounds for the resolved guardrail policy.
const (
	// DefaultMaxConsecutiveToolErrors is the consecutive-error limit used
	// when the configuration does not provide a valid value.
	DefaultMaxConsecutiveToolErrors = 3

	// DefaultMaxToolCallsPerTurn is the per-turn tool-call budget used when
	// the configuration does not provide a valid value.
	DefaultMaxToolCallsPerTurn = 50

	// DefaultToolErrorAction is the action used when the configuration does
	// not provide a recognized value.
	DefaultToolErrorAction = ActionAbort

	minToolErrors = 1
	maxToolErrors = 25
	minToolCalls  = 1
	maxToolCalls  = 200
)

// ToolGuardrailsResolved is a fully-populated, validated guardrail policy.
// It is immutable once produced and owned by the monitor for the lifetime
// of one subscription.
type ToolGuardrailsResolved struct {
	// MaxConsecutiveToolErrors is the number of identical consecutive tool
	// failures that triggers a breach. Always in [1, 25].
	MaxConsecutiveToolErrors int

	// MaxToolCallsPerTurn is the number of tool calls within one assistant
	// turn that triggers a breach. Always in [1, 200].
	MaxToolCallsPerTurn int

	// ToolErrorAction is attached to every emitted guardrail event.
	ToolErrorAction GuardrailAction
}

// ResolveToolGuardrails turns an optional, partially-specified configuration
// fragment into a fully-populated guardrail policy.
//
// Precedence per field: agents.defaults.toolGuardrails, then the flattened
// agents.defaults value, then the built-in default. The highest-precedence
// value that is present is validated; if it fails validation the built-in
// default is used. Numeric fields accept only finite numbers, which are
// floored and clamped to the documented range. The action field accepts
// only "warn", "escalate", and "abort".
//
// The function is pure and never fails: misconfigured guardrails must never
// themselves break a run.
func ResolveToolGuardrails(cfg *Config) ToolGuardrailsResolved {
	var flat *AgentDefaults
	var nested *ToolGuardrailsConfig
	if cfg != nil && cfg.Agents != nil {
		flat = cfg.Agents.Defaults
	}
	if flat != nil {
		nested = flat.ToolGuardrails
	}

	var maxErrors, maxCalls, action any
	if flat != nil {
		maxErrors = flat.MaxConsecutiveToolErrors
		maxCalls = flat.MaxToolCallsPerTurn
		action = flat.ToolErrorAction
	}
	if nested != nil {
		maxErrors = firstPresent(nested.MaxConsecutiveToolErrors, maxErrors)
		maxCalls = firstPresent(nested.MaxToolCallsPerTurn, maxCalls)
		action = firstPresent(nested.ToolErrorAction, action)
	}

	return ToolGuardrailsResolved{
		MaxConsecutiveToolErrors: resolveLimit(
			maxErrors, DefaultMaxConsecutiveToolErrors,
			minToolErrors, maxToolErrors),
		MaxToolCallsPerTurn: resolveLimit(
			maxCalls, DefaultMaxToolCallsPerTurn,
			minToolCalls, maxToolCalls),
		ToolErrorAction: resolveAction(action, DefaultToolErrorAction),
	}
}

// firstPresent returns a if it is present (non-nil), otherwise b.
func firstPresent(a, b any) any {
	if a != nil {
		return a
	}
	return b
}

// resolveLimit validates a raw limit value. Finite numbers are floored and
// clamped to [min, max]; anything else yields def.
func resolveLimit(raw any, def, min, max int) int {
	f, ok := asFloat(raw)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	n := int(math.Floor(f))
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// resolveAction validates a raw action value against the recognized
// literals; anything else yields def.
func resolveAction(raw any, def GuardrailAction) GuardrailAction {
	s, ok := raw.(string)
	if !ok {
		return def
	}
	switch GuardrailAction(s) {
	case ActionWarn, ActionEscalate, ActionAbort:
		return GuardrailAction(s)
	}
	return def
}

// asFloat converts any Go numeric kind to float64. YAML decodes numbers as
// int or float64, JSON as float64; the remaining kinds cover fragments
// built programmatically.
func asFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
