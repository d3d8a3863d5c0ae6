package patch

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Kind classifies a patch failure.
type Kind string

const (
	UsageError         Kind = "USAGE_ERROR"
	InvalidArgument    Kind = "INVALID_ARGUMENT"
	PatternNotFound    Kind = "PATTERN_NOT_FOUND"
	OccurrenceMismatch Kind = "OCCURRENCE_MISMATCH"
	AnchorNotFound     Kind = "ANCHOR_NOT_FOUND"
)

// previewLen bounds how much of a pattern is echoed back in diagnostics.
const previewLen = 50

// Error is a structured patch failure. Step and File are filled in as the
// error travels up from the primitive to the orchestrator.
type Error struct {
	Kind     Kind
	Step     string
	File     string
	Message  string
	Preview  string
	Expected int
	Actual   int
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Preview != "" {
		msg += fmt.Sprintf(": %q", e.Preview)
	}
	switch {
	case e.File != "" && e.Step != "":
		return fmt.Sprintf("[%s] %s: step %s: %s", e.Kind, e.File, e.Step, msg)
	case e.Step != "":
		return fmt.Sprintf("[%s] step %s: %s", e.Kind, e.Step, msg)
	case e.File != "":
		return fmt.Sprintf("[%s] %s: %s", e.Kind, e.File, msg)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, msg)
}

// IsKind reports whether err carries a patch Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}

// NewUsageError reports a malformed invocation.
func NewUsageError(msg string) *Error {
	return &Error{Kind: UsageError, Message: msg}
}

// NewInvalidArgument reports a parameter rejected before any file is read.
func NewInvalidArgument(msg string) *Error {
	return &Error{Kind: InvalidArgument, Message: msg}
}

// preview truncates a pattern for display without splitting a rune.
func preview(pattern string) string {
	if len(pattern) <= previewLen {
		return pattern
	}
	cut := previewLen
	for cut > 0 && !utf8.RuneStart(pattern[cut]) {
		cut--
	}
	return pattern[:cut] + "..."
}
