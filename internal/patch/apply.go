package patch

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/taigrr/webchat-preview/internal/types"
)

// Options control how a plan is applied.
type Options struct {
	Mode   types.Mode
	Logger *zap.Logger
}

// Apply runs every step of plan against text in declared order. The
// first failing step stops the plan; the returned results then cover
// only the steps that ran before it and the text is discarded.
func Apply(text string, plan types.Plan, opts Options) (string, []types.StepResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	mode := opts.Mode
	if mode == "" {
		mode = types.ModeStrict
	}
	logger = logger.With(zap.String("file", plan.Path))

	results := make([]types.StepResult, 0, len(plan.Steps))
	for _, step := range plan.Steps {
		next, result, err := applyStep(text, step, mode, logger)
		if err != nil {
			var pe *Error
			if errors.As(err, &pe) {
				pe.File = plan.Path
			}
			return "", results, err
		}
		results = append(results, result)
		text = next
	}
	return text, results, nil
}

func applyStep(text string, step types.EditStep, mode types.Mode, logger *zap.Logger) (string, types.StepResult, error) {
	result := types.StepResult{Name: step.Name, Kind: step.Kind}

	switch step.Kind {
	case types.KindExactReplace:
		if mode == types.ModeBestEffort {
			out, n := ReplaceAll(text, step.Pattern, step.Replacement)
			result.Matches = n
			if n == 0 {
				result.Skipped = true
				logger.Warn("pattern not found, step skipped", zap.String("step", step.Name))
				return text, result, nil
			}
			logger.Debug("step applied", zap.String("step", step.Name), zap.Int("matches", n))
			return out, result, nil
		}
		out, err := Substitute(text, step.Pattern, step.Replacement, step.Expected, step.Name)
		if err != nil {
			return "", result, err
		}
		result.Matches = step.Expected
		logger.Debug("step applied", zap.String("step", step.Name), zap.Int("matches", step.Expected))
		return out, result, nil

	case types.KindUncheckedReplace:
		out, n := ReplaceAll(text, step.Pattern, step.Replacement)
		result.Matches = n
		if n != 1 {
			logger.Warn("unchecked step matched unexpectedly",
				zap.String("step", step.Name), zap.Int("matches", n))
		} else {
			logger.Debug("step applied", zap.String("step", step.Name), zap.Int("matches", n))
		}
		return out, result, nil

	case types.KindAnchorInsert:
		index, err := LocateLast(text, step.Anchor, step.Name)
		if err != nil {
			return "", result, err
		}
		result.Matches = 1
		result.Line = index + 1
		logger.Debug("step applied", zap.String("step", step.Name), zap.Int("line", result.Line))
		return InsertAfter(text, index, step.Replacement), result, nil

	case types.KindPrepend:
		result.Matches = 1
		logger.Debug("step applied", zap.String("step", step.Name))
		return step.Replacement + text, result, nil
	}

	return "", result, fmt.Errorf("step %s: unknown step kind %q", step.Name, step.Kind)
}
