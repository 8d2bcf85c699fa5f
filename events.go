package guardrail

import "github.com/tmc/langchaingo/llms"

// -----------------------------------------------------------------------------
// Session Event Interface
// -----------------------------------------------------------------------------

// SessionEvent is a marker interface for all events delivered by a Session.
type SessionEvent interface {
	sessionEvent()
}

// MessageStartEvent is emitted when a new message begins in the session.
//
// Only assistant-authored messages ([llms.ChatMessageTypeAI]) mark a turn
// boundary for the tool-call budget. Messages with any other role are
// observed and ignored.
type MessageStartEvent struct {
	// Role is the author of the message that is starting.
	Role llms.ChatMessageType
}

func (MessageStartEvent) sessionEvent() {}

// ToolExecutionEndEvent is emitted when a tool execution completes,
// successfully or not.
type ToolExecutionEndEvent struct {
	// ToolName is the name of the tool that was executed.
	ToolName string

	// ToolCallID identifies the specific tool invocation within the session.
	ToolCallID string

	// IsError reports whether the execution failed.
	IsError bool

	// Result is the raw tool result. When IsError is true, an error message
	// is derived from it (a string, an error value, or a map with a nested
	// "error" field).
	Result any
}

func (ToolExecutionEndEvent) sessionEvent() {}

// -----------------------------------------------------------------------------
// Guardrail Events
// -----------------------------------------------------------------------------

// GuardrailEventType identifies which limit a ToolGuardrailEvent reports.
type GuardrailEventType string

const (
	// GuardrailConsecutiveErrorLimit means the same tool failed with the
	// same normalized error message enough times in a row to reach the
	// configured limit.
	GuardrailConsecutiveErrorLimit GuardrailEventType = "consecutive_error_limit"

	// GuardrailToolCallBudgetExceeded means the number of tool calls within
	// the current assistant turn reached the configured per-turn budget.
	GuardrailToolCallBudgetExceeded GuardrailEventType = "tool_call_budget_exceeded"
)

// GuardrailAction is the host-facing directive attached to a breach event.
// The guardrail engine never acts on it; interpretation is entirely the
// host's responsibility.
type GuardrailAction string

const (
	// ActionWarn suggests the host surface a warning and continue.
	ActionWarn GuardrailAction = "warn"

	// ActionEscalate suggests the host hand control to a human or a
	// supervising agent.
	ActionEscalate GuardrailAction = "escalate"

	// ActionAbort suggests the host terminate the run.
	ActionAbort GuardrailAction = "abort"
)

// ToolGuardrailEvent is delivered to the host callback when a configured
// limit is reached. It is produced once per breach and not retained.
type ToolGuardrailEvent struct {
	// Type identifies which limit was reached.
	Type GuardrailEventType

	// RunID correlates the event with the caller's bookkeeping. It is not
	// interpreted by the guardrail logic.
	RunID string

	// ToolName is the tool involved in the breach. Empty for budget
	// breaches, which are not tied to a single tool.
	ToolName string

	// ErrorMessage is the normalized error key of the failing streak.
	// Empty for budget breaches.
	ErrorMessage string

	// Count is the counter value that reached the limit.
	Count int

	// Limit is the configured threshold that was reached.
	Limit int

	// Action is the resolved guardrail action for the host to apply.
	Action GuardrailAction
}
