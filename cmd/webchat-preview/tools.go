package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/webchat-preview/internal/types"
)

type (
	// PatchInput contains parameters for patching a testing app checkout.
	PatchInput struct {
		Dir       string `json:"dir,omitempty" jsonschema:"Testing app directory (default: the directory the server was started with)"`
		PRNumber  string `json:"prNumber" jsonschema:"Pull request number (digits only)"`
		CommitSha string `json:"commitSha" jsonschema:"Commit SHA of the PR build"`
		Endpoint  string `json:"endpoint" jsonschema:"Endpoint URL the preview should default to"`
		BasePath  string `json:"basePath" jsonschema:"Vite base path the preview is served from"`
		Mode      string `json:"mode,omitempty" jsonschema:"strict or best-effort (default: strict)"`
		DryRun    bool   `json:"dryRun,omitempty" jsonschema:"Return diffs without writing files (default: false)"`
		Banner    bool   `json:"banner,omitempty" jsonschema:"Add the PR banner and its styles (default: false)"`
	}

	// PatchOutput contains the result of a patch run.
	PatchOutput struct {
		Success bool               `json:"success"`
		DryRun  bool               `json:"dryRun,omitempty"`
		Files   []types.FileResult `json:"files"`
		Diffs   []string           `json:"diffs,omitempty"`
		Error   string             `json:"error,omitempty"`
	}

	// StepsInput contains parameters for listing plan steps.
	StepsInput struct {
		Banner bool `json:"banner,omitempty" jsonschema:"Include the banner steps (default: false)"`
	}

	// StepInfo describes one authored edit.
	StepInfo struct {
		Name     string `json:"name"`
		Kind     string `json:"kind"`
		Expected int    `json:"expected,omitempty"`
	}

	// PlanInfo describes one target file's plan.
	PlanInfo struct {
		Name  string     `json:"name"`
		Path  string     `json:"path"`
		Steps []StepInfo `json:"steps"`
	}

	// StepsOutput lists every plan in execution order.
	StepsOutput struct {
		Plans []PlanInfo `json:"plans"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "patch",
		Description: "Patch the webchat testing app for a PR preview. Every edit must match exactly; on any mismatch nothing is written and the failing step is reported. Use dryRun=true to preview the diff.",
	}, handlePatch)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "steps",
		Description: "List the ordered edit steps applied to each target file, with their kind and expected match count.",
	}, handleSteps)
}
