// Package main implements the webchat-preview command, which patches a
// checkout of the webchat testing app so a pull request build can be
// previewed on its own.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/taigrr/webchat-preview/internal/config"
	"github.com/taigrr/webchat-preview/internal/types"
)

const usageLine = "Usage: webchat-preview <dir> <pr> <sha> <endpoint> <base>"

var (
	logger *zap.Logger

	configPath string
	modeFlag   string
	reportPath string
	bannerFlag bool
	dryRun     bool
	verbose    bool
)

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webchat-preview <dir> <pr> <sha> <endpoint> <base>",
		Short: "Patch the webchat testing app for a pull request preview",
		Long: `webchat-preview rewrites a checkout of the webchat testing app so a
pull request build can be previewed in isolation. It injects the PR
metadata, selects the local build by default, namespaces persisted
storage keys per PR and sets the vite base path.

Every edit must match the app source exactly as expected. If the
source has drifted, nothing is written and the failing step is named.`,
		Example: `webchat-preview ./testing-app 42 abc1234 https://endpoint.test/e1 /Webchat/pr-42/`,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logConfig := zap.NewProductionConfig()
			logConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = logConfig.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runPatch,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&modeFlag, "mode", string(types.ModeStrict), "validation mode: strict or best-effort")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log every applied step")
	cmd.Flags().StringVar(&reportPath, "report", "", "write a run report (.yaml or .json)")
	cmd.Flags().BoolVar(&bannerFlag, "banner", false, "add the PR banner and its styles")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the changes without writing")

	cmd.AddCommand(newServeCmd())
	return cmd
}

// loadConfig reads --config and applies flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = types.Mode(modeFlag)
	}
	if flags.Lookup("banner") != nil && flags.Changed("banner") {
		cfg.Banner = bannerFlag
	}
	if flags.Lookup("report") != nil && flags.Changed("report") {
		cfg.Report = reportPath
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
