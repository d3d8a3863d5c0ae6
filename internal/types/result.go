package types

type (
	// StepResult records what one step did to the text.
	StepResult struct {
		Name    string   `json:"name" yaml:"name"`
		Kind    StepKind `json:"kind" yaml:"kind"`
		Matches int      `json:"matches" yaml:"matches"`
		Line    int      `json:"line,omitempty" yaml:"line,omitempty"` // 1-based anchor line
		Skipped bool     `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	}

	// FileResult is the outcome of one plan.
	FileResult struct {
		Plan    string       `json:"plan" yaml:"plan"`
		Path    string       `json:"path" yaml:"path"`
		Success bool         `json:"success" yaml:"success"`
		Written bool         `json:"written" yaml:"written"`
		Steps   []StepResult `json:"steps" yaml:"steps"`
		Failure string       `json:"failure,omitempty" yaml:"failure,omitempty"`
	}

	// RunResult is the outcome of a whole orchestrator run.
	RunResult struct {
		Success bool         `json:"success" yaml:"success"`
		Mode    Mode         `json:"mode" yaml:"mode"`
		DryRun  bool         `json:"dryRun,omitempty" yaml:"dry_run,omitempty"`
		Files   []FileResult `json:"files" yaml:"files"`
		Error   string       `json:"error,omitempty" yaml:"error,omitempty"`
	}
)
