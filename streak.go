package guardrail

// ErrorStreak records the latest run of identical consecutive tool
// failures: same tool name, same normalized error message. It lives for
// the duration of a run and is not reset at turn boundaries.
type ErrorStreak struct {
	// ToolName is the name of the failing tool.
	ToolName string

	// ErrorKey is the normalized error message (see [NormalizeErrorKey]).
	ErrorKey string

	// Count is the length of the streak. Always >= 1.
	Count int
}

// NextErrorStreak returns the streak that follows prev after observing a
// failing tool outcome. If prev matches the current tool name and
// normalized error message exactly, the streak grows by one; any
// difference starts a new streak of one with the new identity.
//
// Pure function: the caller replaces its stored streak with the result.
// A nil prev (first observed failure) always starts a streak of one.
func NextErrorStreak(prev *ErrorStreak, toolName, errorMessage string) ErrorStreak {
	key := NormalizeErrorKey(errorMessage)
	if prev != nil && prev.ToolName == toolName && prev.ErrorKey == key {
		return ErrorStreak{ToolName: toolName, ErrorKey: key, Count: prev.Count + 1}
	}
	return ErrorStreak{ToolName: toolName, ErrorKey: key, Count: 1}
}
