//go:build linux

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ja7ad/judge/pkg/checks"
	"github.com/ja7ad/judge/pkg/config"
	"github.com/ja7ad/judge/pkg/judge"
	"github.com/ja7ad/judge/pkg/paths"
	"github.com/ja7ad/judge/pkg/result"
)

func main() {
	root := &cobra.Command{
		Use:   "judge",
		Short: "Bounded-execution program judge",
		Long: `judge runs a user-supplied executable once per test case under strict
wall-clock and resident-memory limits, captures stdout, and emits a
machine-readable verdict vector.

Run parameters are read from the environment (CASE_COUNT, TIME_LIMIT,
SPACE_LIMIT, EXEC_COMMAND, DEV); see the package documentation for details.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
		SilenceUsage: true,
	}

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(_ context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Dev {
		level = slog.LevelDebug
	}
	slog.SetLogLoggerLevel(level)

	resolver := paths.NewResolver(cfg.Dev)

	if err := checks.Run(cfg, resolver); err != nil {
		return err
	}

	driver := judge.CaseDriver{
		Runner: judge.NewSupervisor(cfg.Dev),
		Paths:  resolver,
	}

	results := driver.Run(cfg)
	slog.Info("judge: run complete", "summary", judge.Describe(results))

	sink := result.Sink{Path: resolver.ResultFile()}
	if err := sink.Write(results); err != nil {
		return err
	}

	return nil
}
