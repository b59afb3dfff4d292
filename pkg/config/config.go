//go:build linux

// Package config ingests the judge's per-run parameters from the process
// environment. It is the one external collaborator allowed to fail fatally:
// every error it returns is a configuration error per the judge's error
// taxonomy and must abort the run before any case starts.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ja7ad/judge/pkg/judge"
	"github.com/ja7ad/judge/pkg/types"
)

var (
	// ErrMissingEnv means a required environment variable was not set.
	ErrMissingEnv = errors.New("config: missing environment variable")

	// ErrBadCaseCount means CASE_COUNT was present but not a positive
	// integer.
	ErrBadCaseCount = errors.New("config: CASE_COUNT must be a positive integer")

	// ErrBadTimeLimit means TIME_LIMIT was present but not a non-negative
	// integer.
	ErrBadTimeLimit = errors.New("config: TIME_LIMIT must be a non-negative integer")

	// ErrBadSpaceLimit means SPACE_LIMIT was present but not a non-negative
	// integer.
	ErrBadSpaceLimit = errors.New("config: SPACE_LIMIT must be a non-negative integer")

	// ErrBadExecCommand means EXEC_COMMAND was present but not a non-empty
	// JSON array of strings.
	ErrBadExecCommand = errors.New("config: EXEC_COMMAND must be a non-empty JSON array of strings")
)

const (
	envCaseCount   = "CASE_COUNT"
	envTimeLimit   = "TIME_LIMIT"
	envSpaceLimit  = "SPACE_LIMIT"
	envExecCommand = "EXEC_COMMAND"
	envDev         = "DEV"
)

// Load reads RunConfig from the environment. SPACE_LIMIT is read as KiB (the
// wire unit) and converted to bytes (the internal unit) via types.FromKiB.
func Load() (judge.RunConfig, error) {
	caseCount, err := requireInt(envCaseCount, ErrBadCaseCount)
	if err != nil {
		return judge.RunConfig{}, err
	}
	if caseCount < 1 {
		return judge.RunConfig{}, fmt.Errorf("%w: got %d", ErrBadCaseCount, caseCount)
	}

	timeLimit, err := requireInt(envTimeLimit, ErrBadTimeLimit)
	if err != nil {
		return judge.RunConfig{}, err
	}
	if timeLimit < 0 {
		return judge.RunConfig{}, fmt.Errorf("%w: got %d", ErrBadTimeLimit, timeLimit)
	}

	spaceLimitKiB, err := requireInt(envSpaceLimit, ErrBadSpaceLimit)
	if err != nil {
		return judge.RunConfig{}, err
	}
	if spaceLimitKiB < 0 {
		return judge.RunConfig{}, fmt.Errorf("%w: got %d", ErrBadSpaceLimit, spaceLimitKiB)
	}

	command, err := requireCommand()
	if err != nil {
		return judge.RunConfig{}, err
	}

	_, dev := os.LookupEnv(envDev)

	return judge.RunConfig{
		CaseCount:     int(caseCount),
		TimeLimitMs:   timeLimit,
		MemLimitBytes: types.FromKiB(uint64(spaceLimitKiB)).Uint64(),
		Command:       command,
		Dev:           dev,
	}, nil
}

func requireInt(name string, badErr error) (int64, error) {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingEnv, name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", badErr, name, raw)
	}
	return v, nil
}

func requireCommand() ([]string, error) {
	raw, ok := os.LookupEnv(envExecCommand)
	if !ok || raw == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingEnv, envExecCommand)
	}

	var command []string
	if err := json.Unmarshal([]byte(raw), &command); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadExecCommand, err)
	}
	if len(command) == 0 {
		return nil, ErrBadExecCommand
	}

	return command, nil
}
