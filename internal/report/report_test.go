package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/taigrr/webchat-preview/internal/types"
)

var sample = types.RunResult{
	Success: false,
	Mode:    types.ModeStrict,
	Files: []types.FileResult{
		{
			Plan:    "app",
			Path:    "src/App.jsx",
			Success: false,
			Steps: []types.StepResult{
				{Name: "insert-pr-config", Kind: types.KindAnchorInsert, Matches: 1, Line: 3},
			},
			Failure: "[PATTERN_NOT_FOUND] step namespace-endpoint-storage-key: pattern not found",
		},
	},
	Error: "[PATTERN_NOT_FOUND] step namespace-endpoint-storage-key: pattern not found",
}

func TestWrite_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	if err := Write(path, sample); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "name: insert-pr-config") {
		t.Errorf("report missing step name:\n%s", data)
	}

	var got types.RunResult
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(sample, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := Write(path, sample); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if got["mode"] != "strict" {
		t.Errorf("mode = %v, want strict", got["mode"])
	}
}

func TestMarshal_UnknownFormat(t *testing.T) {
	if _, err := Marshal(sample, "toml"); err == nil {
		t.Error("Marshal() error = nil, want unsupported format")
	}
}
