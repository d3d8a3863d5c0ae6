package patch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/taigrr/webchat-preview/internal/types"
)

func testPlan() types.Plan {
	return types.Plan{
		Name: "test",
		Path: "src/App.jsx",
		Steps: []types.EditStep{
			{
				Name:        "config",
				Kind:        types.KindAnchorInsert,
				Anchor:      types.AnchorRule{Prefix: "import "},
				Replacement: "const CFG = { on: true };\n",
			},
			{
				Name:        "use-config",
				Kind:        types.KindExactReplace,
				Pattern:     "const enabled = false;",
				Replacement: "const enabled = CFG.on;",
				Expected:    1,
			},
			{
				Name:        "title",
				Kind:        types.KindExactReplace,
				Pattern:     "<h1>Old</h1>",
				Replacement: "<h1>New</h1>",
				Expected:    1,
			},
		},
	}
}

const testSource = "import a from \"a\";\n\nconst enabled = false;\nexport const T = () => <h1>Old</h1>;\n"

func TestApply(t *testing.T) {
	opts := Options{Mode: types.ModeStrict, Logger: zap.NewNop()}

	t.Run("all steps in order", func(t *testing.T) {
		got, results, err := Apply(testSource, testPlan(), opts)
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}

		want := "import a from \"a\";\nconst CFG = { on: true };\n\nconst enabled = CFG.on;\nexport const T = () => <h1>New</h1>;\n"
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Apply() text mismatch (-want +got):\n%s", diff)
		}

		wantResults := []types.StepResult{
			{Name: "config", Kind: types.KindAnchorInsert, Matches: 1, Line: 1},
			{Name: "use-config", Kind: types.KindExactReplace, Matches: 1},
			{Name: "title", Kind: types.KindExactReplace, Matches: 1},
		}
		if diff := cmp.Diff(wantResults, results); diff != "" {
			t.Errorf("Apply() results mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("first failure stops the plan", func(t *testing.T) {
		src := "import a from \"a\";\nexport const T = () => <h1>Old</h1>;\n"
		got, results, err := Apply(src, testPlan(), opts)
		if !IsKind(err, PatternNotFound) {
			t.Fatalf("Apply() error = %v, want PatternNotFound", err)
		}
		if got != "" {
			t.Errorf("Apply() text = %q, want empty on failure", got)
		}
		if len(results) != 1 {
			t.Errorf("len(results) = %d, want 1", len(results))
		}

		pe := err.(*Error)
		if pe.Step != "use-config" || pe.File != "src/App.jsx" {
			t.Errorf("Step/File = %q/%q, want use-config/src/App.jsx", pe.Step, pe.File)
		}
	})

	t.Run("anchor missing", func(t *testing.T) {
		_, _, err := Apply("const enabled = false;\n", testPlan(), opts)
		if !IsKind(err, AnchorNotFound) {
			t.Fatalf("Apply() error = %v, want AnchorNotFound", err)
		}
	})

	t.Run("duplicate pattern", func(t *testing.T) {
		src := testSource + "const other = () => <h1>Old</h1>;\n"
		_, _, err := Apply(src, testPlan(), opts)
		if !IsKind(err, OccurrenceMismatch) {
			t.Fatalf("Apply() error = %v, want OccurrenceMismatch", err)
		}
	})

	t.Run("later step sees earlier edits", func(t *testing.T) {
		plan := types.Plan{Path: "x.js", Steps: []types.EditStep{
			{Name: "one", Kind: types.KindExactReplace, Pattern: "a", Replacement: "bb", Expected: 1},
			{Name: "two", Kind: types.KindExactReplace, Pattern: "bb", Replacement: "c", Expected: 1},
		}}
		got, _, err := Apply("a", plan, opts)
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if got != "c" {
			t.Errorf("Apply() = %q, want %q", got, "c")
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		plan := types.Plan{Path: "x.js", Steps: []types.EditStep{{Name: "odd", Kind: "rewrite"}}}
		if _, _, err := Apply("a", plan, opts); err == nil {
			t.Error("Apply() error = nil, want error for unknown kind")
		}
	})

	t.Run("nil logger and empty mode", func(t *testing.T) {
		if _, _, err := Apply(testSource, testPlan(), Options{}); err != nil {
			t.Errorf("Apply() error = %v", err)
		}
	})
}

func TestApply_BestEffort(t *testing.T) {
	opts := Options{Mode: types.ModeBestEffort, Logger: zap.NewNop()}

	t.Run("missing pattern is skipped", func(t *testing.T) {
		src := "import a from \"a\";\nconst enabled = false;\n"
		got, results, err := Apply(src, testPlan(), opts)
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if got != "import a from \"a\";\nconst CFG = { on: true };\nconst enabled = CFG.on;\n" {
			t.Errorf("Apply() = %q", got)
		}
		if !results[2].Skipped {
			t.Error("title step should be skipped")
		}
	})

	t.Run("duplicates are all replaced", func(t *testing.T) {
		src := testSource + "const other = () => <h1>Old</h1>;\n"
		_, results, err := Apply(src, testPlan(), opts)
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if results[2].Matches != 2 {
			t.Errorf("Matches = %d, want 2", results[2].Matches)
		}
	})

	t.Run("anchor still required", func(t *testing.T) {
		_, _, err := Apply("const enabled = false;\n", testPlan(), opts)
		if !IsKind(err, AnchorNotFound) {
			t.Fatalf("Apply() error = %v, want AnchorNotFound", err)
		}
	})
}

func TestApply_UncheckedAndPrepend(t *testing.T) {
	plan := types.Plan{Path: "x", Steps: []types.EditStep{
		{Name: "opt", Kind: types.KindUncheckedReplace, Pattern: "{list}", Replacement: "<first/>{list}"},
		{Name: "head", Kind: types.KindPrepend, Replacement: "/* banner */\n"},
	}}

	tests := []struct {
		name    string
		src     string
		want    string
		matches int
	}{
		{"absent", "body\n", "/* banner */\nbody\n", 0},
		{"once", "{list}\n", "/* banner */\n<first/>{list}\n", 1},
		{"twice", "{list}{list}", "/* banner */\n<first/>{list}<first/>{list}", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, results, err := Apply(tt.src, plan, Options{Logger: zap.NewNop()})
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
			if results[0].Matches != tt.matches {
				t.Errorf("Matches = %d, want %d", results[0].Matches, tt.matches)
			}
		})
	}
}
