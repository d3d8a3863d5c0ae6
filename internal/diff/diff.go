// Package diff renders line diffs of patched files for dry runs.
package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineType represents the type of a diff line.
type LineType int

const (
	LineContext LineType = iota
	LineAdded
	LineRemoved
)

// Line is one line of a hunk, without its terminator.
type Line struct {
	Type    LineType
	Content string
}

// Hunk is a group of changes with surrounding context. Starts are 1-based.
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []Line
}

// FileDiff is the set of hunks for one file.
type FileDiff struct {
	Path  string
	Hunks []Hunk
}

// ContextLines is how many unchanged lines surround each change.
const ContextLines = 3

type op struct {
	typ     LineType
	content string
	oldLine int
	newLine int
}

// Compute diffs before and after line by line.
func Compute(path, before, after string) FileDiff {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0

	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	return FileDiff{Path: path, Hunks: group(operations(diffs), ContextLines)}
}

func operations(diffs []diffmatchpatch.Diff) []op {
	var ops []op
	oldLine, newLine := 1, 1
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		if d.Text == "" {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				ops = append(ops, op{LineContext, line, oldLine, newLine})
				oldLine++
				newLine++
			case diffmatchpatch.DiffDelete:
				ops = append(ops, op{LineRemoved, line, oldLine, newLine})
				oldLine++
			case diffmatchpatch.DiffInsert:
				ops = append(ops, op{LineAdded, line, oldLine, newLine})
				newLine++
			}
		}
	}
	return ops
}

// group keeps changed lines plus up to context unchanged lines around
// them, merging changes whose context overlaps.
func group(ops []op, context int) []Hunk {
	var hunks []Hunk
	i := 0
	for i < len(ops) {
		if ops[i].typ == LineContext {
			i++
			continue
		}

		start := max(i-context, 0)
		end := i
		for end < len(ops) {
			if ops[end].typ != LineContext {
				end++
				continue
			}
			// Look ahead for another change within 2*context lines
			run := end
			for run < len(ops) && ops[run].typ == LineContext {
				run++
			}
			if run < len(ops) && run-end <= 2*context {
				end = run
				continue
			}
			end = min(end+context, len(ops))
			break
		}

		hunk := Hunk{OldStart: ops[start].oldLine, NewStart: ops[start].newLine}
		for _, o := range ops[start:end] {
			hunk.Lines = append(hunk.Lines, Line{Type: o.typ, Content: o.content})
			switch o.typ {
			case LineContext:
				hunk.OldCount++
				hunk.NewCount++
			case LineRemoved:
				hunk.OldCount++
			case LineAdded:
				hunk.NewCount++
			}
		}
		hunks = append(hunks, hunk)
		i = end
	}
	return hunks
}

var (
	addedColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgRed)
	headerColor  = color.New(color.FgCyan)
	fileColor    = color.New(color.Bold)
)

// Render writes fd in unified format. Colors follow fatih/color's
// terminal detection unless plain is set.
func Render(w io.Writer, fd FileDiff, plain bool) {
	paint := func(c *color.Color, s string) string {
		if plain {
			return s
		}
		return c.Sprint(s)
	}

	fmt.Fprintln(w, paint(fileColor, "--- a/"+fd.Path))
	fmt.Fprintln(w, paint(fileColor, "+++ b/"+fd.Path))
	for _, h := range fd.Hunks {
		fmt.Fprintln(w, paint(headerColor, fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldCount, h.NewStart, h.NewCount)))
		for _, l := range h.Lines {
			switch l.Type {
			case LineAdded:
				fmt.Fprintln(w, paint(addedColor, "+"+l.Content))
			case LineRemoved:
				fmt.Fprintln(w, paint(removedColor, "-"+l.Content))
			default:
				fmt.Fprintln(w, " "+l.Content)
			}
		}
	}
}

// String renders fd without colors.
func (fd FileDiff) String() string {
	var b strings.Builder
	Render(&b, fd, true)
	return b.String()
}
