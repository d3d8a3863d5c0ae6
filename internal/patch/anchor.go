package patch

import (
	"strings"

	"github.com/taigrr/webchat-preview/internal/types"
)

// SplitLines splits text into lines, each keeping its "\n" terminator.
// A final line without a terminator is kept as is.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// LocateLast returns the 0-based index of the last line whose trimmed
// form starts with the rule's prefix.
func LocateLast(text string, rule types.AnchorRule, label string) (int, error) {
	if rule.Prefix == "" {
		return -1, &Error{Kind: AnchorNotFound, Step: label, Message: "anchor rule has no prefix"}
	}

	index := -1
	for i, line := range SplitLines(text) {
		if strings.HasPrefix(strings.TrimSpace(line), rule.Prefix) {
			index = i
		}
	}

	if index == -1 {
		return -1, &Error{
			Kind:    AnchorNotFound,
			Step:    label,
			Message: "no line starts with anchor prefix",
			Preview: preview(rule.Prefix),
		}
	}
	return index, nil
}

// InsertAfter splices block in as new line(s) directly after line index.
// Every other byte of text is preserved. When the anchor line ends in
// "\r\n" the block's lines are written with "\r\n" too.
func InsertAfter(text string, index int, block string) string {
	lines := SplitLines(text)
	if index < 0 || index >= len(lines) {
		return text
	}

	anchor := lines[index]
	if strings.HasSuffix(anchor, "\r\n") {
		block = strings.ReplaceAll(strings.ReplaceAll(block, "\r\n", "\n"), "\n", "\r\n")
	} else if !strings.HasSuffix(anchor, "\n") {
		anchor += "\n"
	}

	var b strings.Builder
	b.Grow(len(text) + len(block) + 1)
	for _, line := range lines[:index] {
		b.WriteString(line)
	}
	b.WriteString(anchor)
	b.WriteString(block)
	for _, line := range lines[index+1:] {
		b.WriteString(line)
	}
	return b.String()
}
