package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/webchat-preview/internal/diff"
	"github.com/taigrr/webchat-preview/internal/patch"
	"github.com/taigrr/webchat-preview/internal/preview"
	"github.com/taigrr/webchat-preview/internal/report"
	"github.com/taigrr/webchat-preview/internal/types"
)

func runPatch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) < 5 {
		fmt.Fprintln(out, usageLine)
		return patch.NewUsageError(fmt.Sprintf("expected 5 arguments, got %d", len(args)))
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	params := types.PatchParameters{
		PRNumber:  args[1],
		CommitSha: args[2],
		Endpoint:  args[3],
		BasePath:  args[4],
	}

	runner := preview.New(cfg, logger, out)
	outcome, runErr := runner.Run(args[0], params, dryRun)

	if cfg.Report != "" {
		if err := report.Write(cfg.Report, outcome.Result); err != nil {
			if runErr == nil {
				return err
			}
			logger.Error("failed to write report", zap.Error(err))
		}
	}

	if runErr != nil {
		return runErr
	}

	if dryRun {
		for _, file := range outcome.Files {
			diff.Render(out, diff.Compute(file.Path, file.Before, file.After), false)
		}
		return nil
	}

	fmt.Fprintln(out, "Done!")
	return nil
}
