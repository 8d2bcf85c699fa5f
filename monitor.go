package guardrail

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
)

// Session is the event source the monitor observes. Subscribe registers a
// handler for every session event and returns a function that cancels the
// subscription. Implementations must deliver events in order and run
// handlers to completion before delivering the next event; [SessionHub]
// satisfies this.
type Session interface {
	Subscribe(handler func(SessionEvent)) UnsubscribeFunc
}

// MonitorConfig configures one guardrail subscription.
type MonitorConfig struct {
	// Session is the event source to observe. Required.
	Session Session

	// RunID is an opaque identifier carried on every emitted event for the
	// caller's bookkeeping. A random one is generated when empty.
	RunID string

	// ToolGuardrails is the resolved policy to enforce. Obtain it from
	// [ResolveToolGuardrails].
	ToolGuardrails ToolGuardrailsResolved

	// OnToolGuardrailTriggered receives breach events synchronously, at
	// most once per qualifying threshold crossing. Required for the monitor
	// to be useful, but may be nil; tracking still runs.
	OnToolGuardrailTriggered func(event *ToolGuardrailEvent)
}

// Monitor subscribes guardrail tracking to a live session and returns the
// unsubscribe function for the subscription. The returned function is
// idempotent.
//
// The monitor watches two independent limits:
//
//   - Consecutive identical tool failures across the whole run. The streak
//     survives turn boundaries; an agent that fails the same way turn
//     after turn is still caught. Successful calls are invisible to the
//     streak and do not reset it.
//
//   - Tool calls within one assistant turn. Every completed tool
//     execution counts, successful or not. The counter resets when an
//     assistant-authored message starts.
//
// When a counter reaches its configured limit a [ToolGuardrailEvent] is
// delivered once for that breach; subsequent calls within the same
// still-over-limit streak or turn do not re-emit. The monitor only
// classifies and signals. It never cancels the session or the tool call;
// acting on the event's Action is the host's responsibility.
func Monitor(config MonitorConfig) UnsubscribeFunc {
	if config.Session == nil {
		return func() {}
	}
	runID := config.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	m := &monitor{
		policy: config.ToolGuardrails,
		runID:  runID,
		notify: config.OnToolGuardrailTriggered,
	}
	return config.Session.Subscribe(m.handle)
}

// monitor holds the per-subscription mutable state. It is exclusively
// owned by the subscription created in Monitor and is never exposed for
// external mutation.
type monitor struct {
	policy ToolGuardrailsResolved
	runID  string
	notify func(event *ToolGuardrailEvent)

	turn   TurnBudget
	streak *ErrorStreak

	// Fire-once latches. budgetReported re-arms at the next assistant turn
	// boundary; streakReported re-arms when the streak identity changes.
	budgetReported bool
	streakReported bool
}

func (m *monitor) handle(event SessionEvent) {
	switch e := event.(type) {
	case *MessageStartEvent:
		m.handleMessageStart(e)
	case *ToolExecutionEndEvent:
		m.handleToolExecutionEnd(e)
	}
}

func (m *monitor) handleMessageStart(e *MessageStartEvent) {
	if e.Role != llms.ChatMessageTypeAI {
		return
	}
	m.turn.ResetTurn()
	m.budgetReported = false
}

func (m *monitor) handleToolExecutionEnd(e *ToolExecutionEndEvent) {
	calls := m.turn.RecordCall()

	if e.IsError {
		next := NextErrorStreak(m.streak, e.ToolName, errorMessageFromResult(e.Result))
		if next.Count == 1 {
			// New identity, re-arm the consecutive-error latch.
			m.streakReported = false
		}
		m.streak = &next

		if next.Count == m.policy.MaxConsecutiveToolErrors && !m.streakReported {
			m.streakReported = true
			m.emit(&ToolGuardrailEvent{
				Type:         GuardrailConsecutiveErrorLimit,
				RunID:        m.runID,
				ToolName:     next.ToolName,
				ErrorMessage: next.ErrorKey,
				Count:        next.Count,
				Limit:        m.policy.MaxConsecutiveToolErrors,
				Action:       m.policy.ToolErrorAction,
			})
		}
	}

	if calls == m.policy.MaxToolCallsPerTurn && !m.budgetReported {
		m.budgetReported = true
		m.emit(&ToolGuardrailEvent{
			Type:   GuardrailToolCallBudgetExceeded,
			RunID:  m.runID,
			Count:  calls,
			Limit:  m.policy.MaxToolCallsPerTurn,
			Action: m.policy.ToolErrorAction,
		})
	}
}

func (m *monitor) emit(event *ToolGuardrailEvent) {
	if m.notify != nil {
		m.notify(event)
	}
}

// errorMessageFromResult derives a raw error message from a failing tool
// result. Hosts report failures in different shapes: a bare string, an
// error value, or a structured result with a nested "error" field.
func errorMessageFromResult(result any) string {
	switch v := result.(type) {
	case nil:
		return ""
	case string:
		return v
	case error:
		return v.Error()
	case map[string]any:
		if nested, ok := v["error"]; ok {
			return errorMessageFromResult(nested)
		}
		return ""
	default:
		return fmt.Sprint(v)
	}
}
