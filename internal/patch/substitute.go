// Package patch applies fixed, ordered edit plans to source text. Every
// edit either matches the text exactly as the plan expects or fails with
// a diagnosis of how the text drifted.
package patch

import (
	"fmt"
	"strings"
)

// Substitute replaces the literal pattern in text with replacement. The
// pattern must occur exactly expected times (non-overlapping); zero
// matches fail with PatternNotFound and any other count with
// OccurrenceMismatch. Replacement is inserted verbatim.
func Substitute(text, pattern, replacement string, expected int, label string) (string, error) {
	if pattern == "" {
		return "", &Error{Kind: PatternNotFound, Step: label, Message: "empty pattern"}
	}

	occurrences := strings.Count(text, pattern)
	if occurrences == 0 {
		return "", &Error{
			Kind:     PatternNotFound,
			Step:     label,
			Message:  "pattern not found",
			Preview:  preview(pattern),
			Expected: expected,
		}
	}

	if occurrences != expected {
		return "", &Error{
			Kind:     OccurrenceMismatch,
			Step:     label,
			Message:  fmt.Sprintf("expected %d occurrence%s, found %d", expected, plural(expected), occurrences),
			Preview:  preview(pattern),
			Expected: expected,
			Actual:   occurrences,
		}
	}

	return strings.Replace(text, pattern, replacement, expected), nil
}

// ReplaceAll replaces every occurrence of pattern and returns how many
// there were. It never fails; callers decide what a count means.
func ReplaceAll(text, pattern, replacement string) (string, int) {
	if pattern == "" {
		return text, 0
	}
	occurrences := strings.Count(text, pattern)
	if occurrences == 0 {
		return text, 0
	}
	return strings.ReplaceAll(text, pattern, replacement), occurrences
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
