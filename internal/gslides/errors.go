package gslides

import (
	"fmt"
	"unicode/utf8"
)

// AuthError indicates missing or rejected cloud credentials. Not retried.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	if e.StatusCode == 0 {
		return "auth: " + e.Message
	}
	return fmt.Sprintf("auth rejected (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}

// RateLimitError indicates API throttling or a transient server failure.
// Retried with bounded backoff before being surfaced.
type RateLimitError struct {
	StatusCode int
	Message    string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}

// truncate cuts s to at most n bytes on a rune boundary and appends an
// ellipsis.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
