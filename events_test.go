package guardrail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionEvent_MarkerInterface(t *testing.T) {
	// All session event types implement SessionEvent (compile-time check
	// enforced by the slice type).
	events := []SessionEvent{
		&MessageStartEvent{},
		&ToolExecutionEndEvent{},
	}

	for _, e := range events {
		assert.NotNil(t, e)
	}
}

func TestGuardrailEventTypes(t *testing.T) {
	assert.Equal(t, GuardrailEventType("consecutive_error_limit"), GuardrailConsecutiveErrorLimit)
	assert.Equal(t, GuardrailEventType("tool_call_budget_exceeded"), GuardrailToolCallBudgetExceeded)
}

func TestGuardrailActions(t *testing.T) {
	assert.Equal(t, GuardrailAction("warn"), ActionWarn)
	assert.Equal(t, GuardrailAction("escalate"), ActionEscalate)
	assert.Equal(t, GuardrailAction("abort"), ActionAbort)
}
