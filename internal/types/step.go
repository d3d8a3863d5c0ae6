// Package types defines all data structures shared by the patch engine,
// the orchestrator and the command surfaces.
package types

// StepKind identifies how an EditStep changes the text.
type StepKind string

const (
	// KindExactReplace replaces a literal pattern that must occur exactly
	// Expected times.
	KindExactReplace StepKind = "exact-replace"
	// KindAnchorInsert splices a new line after a structural anchor.
	KindAnchorInsert StepKind = "anchor-insert"
	// KindUncheckedReplace replaces every occurrence of a pattern and
	// tolerates zero matches.
	KindUncheckedReplace StepKind = "unchecked-replace"
	// KindPrepend puts the replacement text in front of the whole file.
	KindPrepend StepKind = "prepend"
)

// Mode selects how strictly exact-replace steps are validated.
type Mode string

const (
	ModeStrict     Mode = "strict"
	ModeBestEffort Mode = "best-effort"
)

// Valid reports whether m names a known mode.
func (m Mode) Valid() bool {
	return m == ModeStrict || m == ModeBestEffort
}

type (
	// AnchorRule describes a structural insertion point.
	AnchorRule struct {
		// Prefix is matched against the whitespace-trimmed form of each line.
		Prefix string `json:"prefix" yaml:"prefix"`
	}

	// EditStep is one named edit of a patch plan. Steps are immutable once
	// built and run in declared order.
	EditStep struct {
		Name        string     `json:"name" yaml:"name"`
		Kind        StepKind   `json:"kind" yaml:"kind"`
		Pattern     string     `json:"pattern,omitempty" yaml:"pattern,omitempty"`
		Anchor      AnchorRule `json:"anchor,omitzero" yaml:"anchor,omitempty"`
		Replacement string     `json:"replacement" yaml:"replacement"`
		Expected    int        `json:"expected,omitempty" yaml:"expected,omitempty"`
	}

	// Plan is the fixed, ordered list of edits for one target file.
	Plan struct {
		Name  string     `json:"name" yaml:"name"`
		Path  string     `json:"path" yaml:"path"`
		Steps []EditStep `json:"steps" yaml:"steps"`
	}
)
