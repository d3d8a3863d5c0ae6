package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/webchat-preview/internal/diff"
	"github.com/taigrr/webchat-preview/internal/plans"
	"github.com/taigrr/webchat-preview/internal/preview"
	"github.com/taigrr/webchat-preview/internal/types"
)

func handlePatch(ctx context.Context, req *mcp.CallToolRequest, input PatchInput) (*mcp.CallToolResult, PatchOutput, error) {
	dir := strings.TrimSpace(input.Dir)
	if dir == "" {
		dir = serveDir
	}

	cfg := serveConfig
	if input.Mode != "" {
		cfg.Mode = types.Mode(input.Mode)
	}
	if input.Banner {
		cfg.Banner = true
	}
	if err := cfg.Validate(); err != nil {
		return &mcp.CallToolResult{IsError: true}, PatchOutput{Error: err.Error()}, err
	}

	params := types.PatchParameters{
		PRNumber:  strings.TrimSpace(input.PRNumber),
		CommitSha: input.CommitSha,
		Endpoint:  input.Endpoint,
		BasePath:  input.BasePath,
	}

	runner := preview.New(cfg, logger, nil)
	outcome, err := runner.Run(dir, params, input.DryRun)

	output := PatchOutput{
		Success: outcome.Result.Success,
		DryRun:  input.DryRun,
		Files:   outcome.Result.Files,
		Error:   outcome.Result.Error,
	}
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, output, err
	}

	if input.DryRun {
		for _, file := range outcome.Files {
			output.Diffs = append(output.Diffs, diff.Compute(file.Path, file.Before, file.After).String())
		}
	}

	return nil, output, nil
}

func handleSteps(ctx context.Context, req *mcp.CallToolRequest, input StepsInput) (*mcp.CallToolResult, StepsOutput, error) {
	settings := serveConfig.Settings()
	settings.Banner = settings.Banner || input.Banner

	// Step lists do not depend on the values injected, only on settings
	all, err := plans.All(types.PatchParameters{PRNumber: "0"}, settings)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, StepsOutput{}, fmt.Errorf("failed to build plans: %w", err)
	}

	output := StepsOutput{Plans: make([]PlanInfo, 0, len(all))}
	for _, plan := range all {
		info := PlanInfo{Name: plan.Name, Path: plan.Path}
		for _, step := range plan.Steps {
			info.Steps = append(info.Steps, StepInfo{
				Name:     step.Name,
				Kind:     string(step.Kind),
				Expected: step.Expected,
			})
		}
		output.Plans = append(output.Plans, info)
	}

	return nil, output, nil
}
