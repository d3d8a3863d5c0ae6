// Package preview runs every patch plan against a checkout of the
// webchat testing app. Files are only written once every plan has
// succeeded, so a failed run leaves the checkout exactly as it was.
package preview

import (
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/taigrr/webchat-preview/internal/config"
	"github.com/taigrr/webchat-preview/internal/filesystem"
	"github.com/taigrr/webchat-preview/internal/patch"
	"github.com/taigrr/webchat-preview/internal/pathfilter"
	"github.com/taigrr/webchat-preview/internal/plans"
	"github.com/taigrr/webchat-preview/internal/types"
)

// Runner orchestrates a patch run.
type Runner struct {
	cfg    config.Config
	logger *zap.Logger
	out    io.Writer
}

// Outcome is the result of a run plus the text of every file it patched.
type Outcome struct {
	Result types.RunResult
	Files  []types.TargetFile
}

// New creates a Runner. Confirmation lines go to out.
func New(cfg config.Config, logger *zap.Logger, out io.Writer) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}
	if cfg.Mode == "" {
		cfg.Mode = types.ModeStrict
	}
	return &Runner{cfg: cfg, logger: logger, out: out}
}

// Run validates params, applies every plan under targetDir and, unless
// dryRun is set, writes the patched files. The returned error is the
// first failure; Outcome.Result describes the run either way.
func (r *Runner) Run(targetDir string, params types.PatchParameters, dryRun bool) (Outcome, error) {
	outcome := Outcome{Result: types.RunResult{Mode: r.cfg.Mode, DryRun: dryRun}}
	fail := func(err error) (Outcome, error) {
		outcome.Result.Error = err.Error()
		r.logger.Error("patch run failed", zap.Error(err))
		return outcome, err
	}

	all, err := plans.All(params, r.cfg.Settings())
	if err != nil {
		return fail(err)
	}

	fs := filesystem.New(targetDir, pathfilter.New(r.cfg.PathFilter))
	opts := patch.Options{Mode: r.cfg.Mode, Logger: r.logger}

	targets := make(map[string]string, len(all))
	for _, plan := range all {
		clean := filepath.Clean(plan.Path)
		if other, ok := targets[clean]; ok {
			return fail(patch.NewInvalidArgument(fmt.Sprintf("plans %s and %s both target %s", other, plan.Name, clean)))
		}
		targets[clean] = plan.Name
	}

	for _, plan := range all {
		fileResult := types.FileResult{Plan: plan.Name, Path: plan.Path}

		before, err := fs.Read(plan.Path)
		if err != nil {
			fileResult.Failure = err.Error()
			outcome.Result.Files = append(outcome.Result.Files, fileResult)
			return fail(fmt.Errorf("plan %s: %w", plan.Name, err))
		}

		after, steps, err := patch.Apply(before, plan, opts)
		fileResult.Steps = steps
		if err != nil {
			fileResult.Failure = err.Error()
			outcome.Result.Files = append(outcome.Result.Files, fileResult)
			return fail(err)
		}

		fileResult.Success = true
		outcome.Result.Files = append(outcome.Result.Files, fileResult)
		outcome.Files = append(outcome.Files, types.TargetFile{Path: plan.Path, Before: before, After: after})
		r.logger.Debug("plan applied", zap.String("plan", plan.Name), zap.Int("steps", len(steps)))
	}

	if dryRun {
		outcome.Result.Success = true
		return outcome, nil
	}

	staged := make([]filesystem.Staged, 0, len(outcome.Files))
	for _, file := range outcome.Files {
		st, err := fs.Stage(file.Path, file.After)
		if err != nil {
			fs.Discard(staged)
			return fail(err)
		}
		staged = append(staged, st)
	}
	if err := fs.Commit(staged); err != nil {
		return fail(err)
	}

	for i, file := range outcome.Files {
		outcome.Result.Files[i].Written = true
		fmt.Fprintf(r.out, "  Patched %s\n", filepath.Join(targetDir, file.Path))
	}
	outcome.Result.Success = true
	return outcome, nil
}
