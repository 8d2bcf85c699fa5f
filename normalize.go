package guardrail

import (
	"strings"
	"unicode/utf8"
)

// maxErrorKeyRunes caps how much of an error message participates in
// identity comparison. Long messages (stack traces, dumped payloads) are
// identical in their prefix when they describe the same failure.
const maxErrorKeyRunes = 500

// NormalizeErrorKey canonicalizes a raw error message into the key used for
// equality comparison between tool failures.
//
// Absent or all-whitespace input yields the empty string. Otherwise the
// message is trimmed, truncated to the first 500 characters, and
// lowercased, in that order. Two differently-capitalized or
// differently-whitespaced messages with identical truncated content are
// the same error.
func NormalizeErrorKey(message string) string {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return ""
	}
	if utf8.RuneCountInString(trimmed) > maxErrorKeyRunes {
		runes := []rune(trimmed)
		trimmed = string(runes[:maxErrorKeyRunes])
	}
	return strings.ToLower(trimmed)
}
