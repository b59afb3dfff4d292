//go:build linux

// Package checks performs the fatal, up-front sanity checks the judge runs
// before any case executes: case count validity, presence of every case's
// input file, and a non-empty exec command.
package checks

import (
	"errors"
	"fmt"
	"os"

	"github.com/ja7ad/judge/pkg/judge"
	"github.com/ja7ad/judge/pkg/paths"
)

var (
	// ErrNoCases means RunConfig.CaseCount was not positive.
	ErrNoCases = errors.New("checks: case count must be at least one")

	// ErrMissingCaseFile means a case's input file does not exist.
	ErrMissingCaseFile = errors.New("checks: test case file missing")

	// ErrEmptyCommand means RunConfig.Command had no elements.
	ErrEmptyCommand = errors.New("checks: exec command is empty")
)

// Run performs every fatal sanity check for cfg, resolving case input paths
// via resolver. It checks all N case files (1..=N inclusive); the original
// judge this is descended from only checked 1..N-1, silently accepting a run
// missing its last case file.
func Run(cfg judge.RunConfig, resolver paths.Resolver) error {
	if cfg.CaseCount < 1 {
		return fmt.Errorf("%w: got %d", ErrNoCases, cfg.CaseCount)
	}

	if len(cfg.Command) == 0 {
		return ErrEmptyCommand
	}

	for i := 1; i <= cfg.CaseCount; i++ {
		casePath := resolver.CaseInput(i)
		if _, err := os.Stat(casePath); err != nil {
			return fmt.Errorf("%w: case %d at %s: %v", ErrMissingCaseFile, i, casePath, err)
		}
	}

	return nil
}
