package guardrail

// TurnBudget counts tool invocations within the current assistant turn.
// All completed tool executions count against the budget, successful or
// not.
//
// TurnBudget is not safe for concurrent use. The monitor that owns it
// processes session events strictly in order, so no locking is needed.
type TurnBudget struct {
	calls int
}

// ResetTurn sets the counter back to zero. Called at each assistant turn
// boundary.
func (b *TurnBudget) ResetTurn() {
	b.calls = 0
}

// RecordCall increments the counter and returns the new value.
func (b *TurnBudget) RecordCall() int {
	b.calls++
	return b.calls
}

// Calls returns the number of tool calls recorded in the current turn.
func (b *TurnBudget) Calls() int {
	return b.calls
}
